package retorno

import (
	"time"
)

// RetornoPagamento registra um pagamento efetivamente recebido e o repasse
// devido ao proprietário. Imutável depois de criado: o processador rejeita
// um segundo retorno para o mesmo cliente/mês/ano.
type RetornoPagamento struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"not null;index" json:"client_id"`
	Month    int  `gorm:"not null" json:"month"`
	Year     int  `gorm:"not null" json:"year"`

	DueDate     time.Time `gorm:"not null" json:"due_date"`
	PaymentDate time.Time `gorm:"not null" json:"payment_date"`
	RentAmount  float64   `gorm:"not null" json:"rent_amount"` // valor do título
	AmountPaid  float64   `gorm:"not null" json:"amount_paid"`

	Interest           float64 `gorm:"default:0" json:"interest"`
	CondoFee           float64 `gorm:"default:0" json:"condo_fee"`
	Percentage         float64 `gorm:"default:0" json:"percentage"`
	Commission         float64 `gorm:"default:0" json:"commission"`
	DeliveryFee        float64 `gorm:"default:0" json:"delivery_fee"`
	CondoPaid          bool    `gorm:"default:false" json:"condo_paid"`
	OwnerPaymentAmount float64 `gorm:"default:0" json:"owner_payment_amount"`

	ProcessedAt time.Time  `gorm:"autoCreateTime" json:"processed_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func (RetornoPagamento) TableName() string { return "retornos_pagamentos" }
