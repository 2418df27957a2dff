package calculomensal

import (
	"time"
)

// CalculoMensal guarda os valores financeiros derivados de um cliente num
// mês. Unicidade por (client_id, month, year) garantida por consulta no
// upsert, não por constraint.
type CalculoMensal struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"not null;index" json:"client_id"`
	Month    int  `gorm:"not null" json:"month"`
	Year     int  `gorm:"not null" json:"year"`

	RentAmount      float64 `json:"rent_amount"`      // Valor do aluguel
	CalculationBase float64 `json:"calculation_base"` // Base de cálculo
	TenantPayment   float64 `json:"tenant_payment"`   // Valor pago pelo locatário
	Commission      float64 `json:"commission"`       // Comissão
	DepositAmount   float64 `json:"deposit_amount"`   // Valor depósito

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (CalculoMensal) TableName() string { return "calculos_mensais" }
