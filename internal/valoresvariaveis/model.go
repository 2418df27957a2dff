package valoresvariaveis

import (
	"time"
)

// ValoresVariaveis guarda os valores que podem variar mês a mês para um
// cliente. Campos nulos significam "sem override": o cálculo cai de volta
// nos valores fixos do cliente.
type ValoresVariaveis struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"not null;uniqueIndex:uix_cliente_mes_ano" json:"client_id"`
	Month    int  `gorm:"not null;uniqueIndex:uix_cliente_mes_ano" json:"month"`
	Year     int  `gorm:"not null;uniqueIndex:uix_cliente_mes_ano" json:"year"`

	WaterBill         *float64 `json:"water_bill"`
	GasBill           *float64 `json:"gas_bill"`
	Insurance         *float64 `json:"insurance"`
	PropertyTax       *float64 `json:"property_tax"`
	CondoFee          *float64 `json:"condo_fee"`
	CondoPaidByAgency *bool    `gorm:"default:false" json:"condo_paid_by_agency"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (ValoresVariaveis) TableName() string { return "valores_variaveis_mensais" }
