package cliente

import "time"

// CriarClienteDTO espelha o corpo aceito em POST /api/clients.
type CriarClienteDTO struct {
	Name    string `json:"name" validate:"required"`
	OwnerID uint   `json:"owner_id" validate:"required"`
	Status  string `json:"status" validate:"required"`
	DueDate *int   `json:"due_date" validate:"omitempty,gte=1,lte=31"`

	AmountPaid  float64 `json:"amount_paid"`
	PropertyTax float64 `json:"property_tax"`
	Interest    float64 `json:"interest"`
	Utilities   float64 `json:"utilities"`
	Insurance   float64 `json:"insurance"`
	CondoFee    float64 `json:"condo_fee"`
	Percentage  float64 `json:"percentage" validate:"gte=0,lte=100"`
	DeliveryFee float64 `json:"delivery_fee"`

	StartDate        *time.Time `json:"start_date"`
	CondoPaid        bool       `json:"condo_paid"`
	WithdrawalDate   *time.Time `json:"withdrawal_date"`
	WithdrawalNumber string     `json:"withdrawal_number"`
	PaymentDate      *time.Time `json:"payment_date"`
	Notes            string     `json:"notes"`

	HasMonthlyVariation bool  `json:"has_monthly_variation"`
	IsActive            *bool `json:"is_active"`
}

// AtualizarClienteDTO usa ponteiros para aplicar somente os campos enviados.
type AtualizarClienteDTO struct {
	Name    *string `json:"name"`
	OwnerID *uint   `json:"owner_id"`
	Status  *string `json:"status"`
	DueDate *int    `json:"due_date" validate:"omitempty,gte=1,lte=31"`

	AmountPaid  *float64 `json:"amount_paid"`
	PropertyTax *float64 `json:"property_tax"`
	Interest    *float64 `json:"interest"`
	Utilities   *float64 `json:"utilities"`
	Insurance   *float64 `json:"insurance"`
	CondoFee    *float64 `json:"condo_fee"`
	Percentage  *float64 `json:"percentage" validate:"omitempty,gte=0,lte=100"`
	DeliveryFee *float64 `json:"delivery_fee"`

	StartDate        *time.Time `json:"start_date"`
	CondoPaid        *bool      `json:"condo_paid"`
	WithdrawalDate   *time.Time `json:"withdrawal_date"`
	WithdrawalNumber *string    `json:"withdrawal_number"`
	PaymentDate      *time.Time `json:"payment_date"`
	Notes            *string    `json:"notes"`

	HasMonthlyVariation *bool `json:"has_monthly_variation"`
	IsActive            *bool `json:"is_active"`
}

// NomeCliente é a projeção usada em GET /api/clients/names.
type NomeCliente struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	OwnerID uint   `json:"owner_id"`
}
