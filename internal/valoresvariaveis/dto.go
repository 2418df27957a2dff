package valoresvariaveis

import "encoding/json"

// CriarValoresDTO espelha o corpo de POST /api/monthly-variable-values.
type CriarValoresDTO struct {
	ClientID uint `json:"client_id" validate:"required"`
	Month    int  `json:"month" validate:"gte=1,lte=12"`
	Year     int  `json:"year" validate:"gte=2000,lte=2100"`

	WaterBill         *float64 `json:"water_bill"`
	GasBill           *float64 `json:"gas_bill"`
	Insurance         *float64 `json:"insurance"`
	PropertyTax       *float64 `json:"property_tax"`
	CondoFee          *float64 `json:"condo_fee"`
	CondoPaidByAgency *bool    `json:"condo_paid_by_agency"`
}

// AtualizarValoresDTO aplica somente as chaves presentes no corpo. Enviar uma
// chave com null limpa o override daquele campo; chaves ausentes ficam como
// estão. A distinção é feita decodificando o corpo como mapa bruto.
type AtualizarValoresDTO map[string]json.RawMessage

// PendenciaCliente descreve um cliente com valores do mês por preencher.
type PendenciaCliente struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	OwnerID       uint     `json:"owner_id"`
	Month         int      `json:"month"`
	Year          int      `json:"year"`
	NeedsFilling  bool     `json:"needs_filling"`
	EmptyFields   []string `json:"empty_fields"`
	PendingFields []string `json:"pending_fields"`
}
