package cliente

import (
	"time"
)

// Cliente representa o locatário/imóvel sob administração, vinculado a um
// proprietário. Os campos financeiros guardam os valores fixos padrão; meses
// com variação usam a tabela de valores variáveis.
type Cliente struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
	Status  string `gorm:"not null" json:"status"`
	DueDate *int   `json:"due_date"` // dia do vencimento (1-31)

	// Valores financeiros fixos
	AmountPaid  float64 `gorm:"default:0" json:"amount_paid"`
	PropertyTax float64 `gorm:"default:0" json:"property_tax"` // IPTU
	Interest    float64 `gorm:"default:0" json:"interest"`
	Utilities   float64 `gorm:"default:0" json:"utilities"` // Água/Gás
	Insurance   float64 `gorm:"default:0" json:"insurance"`
	CondoFee    float64 `gorm:"default:0" json:"condo_fee"`
	Percentage  float64 `gorm:"default:0" json:"percentage"`
	DeliveryFee float64 `gorm:"default:0" json:"delivery_fee"`

	StartDate        *time.Time `json:"start_date"` // início do contrato
	CondoPaid        bool       `gorm:"default:false" json:"condo_paid"`
	WithdrawalDate   *time.Time `json:"withdrawal_date"`
	WithdrawalNumber string     `json:"withdrawal_number"`
	PaymentDate      *time.Time `json:"payment_date"`

	Notes string `json:"notes"`

	HasMonthlyVariation bool `gorm:"default:false" json:"has_monthly_variation"`
	IsActive            bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (Cliente) TableName() string { return "clientes" }
