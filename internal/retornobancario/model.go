package retornobancario

import (
	"time"
)

// RetornoBancario guarda os dados reportados pelo banco para o título de um
// cliente num mês. Unicidade por (client_id, month, year) garantida no banco.
type RetornoBancario struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"not null;uniqueIndex:uix_retorno_bancario_cliente_mes_ano" json:"client_id"`
	Month    int  `gorm:"not null;uniqueIndex:uix_retorno_bancario_cliente_mes_ano" json:"month"`
	Year     int  `gorm:"not null;uniqueIndex:uix_retorno_bancario_cliente_mes_ano" json:"year"`

	PayerName       string     `json:"payer_name"`
	DueDate         *time.Time `json:"due_date"`
	PaymentDate     *time.Time `json:"payment_date"`
	TitleAmount     *float64   `json:"title_amount"`     // valor do título
	ChargedAmount   *float64   `json:"charged_amount"`   // valor cobrado
	VariationAmount *float64   `json:"variation_amount"` // valor da oscilação

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (RetornoBancario) TableName() string { return "retornos_bancarios" }
