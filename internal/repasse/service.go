// Package repasse monta o relatório de repasse mensal por proprietário:
// composição dos cálculos mensais dos clientes ativos com os overrides de
// condomínio do período.
package repasse

import (
	"time"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/calculomensal"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/valoresvariaveis"
	"go.uber.org/zap"
)

// Service agrega os repasses mensais.
type Service struct {
	Clientes *cliente.Repository
	Calculos *calculomensal.Repository
	Valores  *valoresvariaveis.Repository
	Log      *zap.Logger
}

func NewService(clientes *cliente.Repository, calculos *calculomensal.Repository,
	valores *valoresvariaveis.Repository, log *zap.Logger) *Service {
	return &Service{Clientes: clientes, Calculos: calculos, Valores: valores, Log: log}
}

// Locatario identifica o cliente dentro de uma linha de repasse.
type Locatario struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ItemRepasse é a linha por imóvel do relatório de repasse.
type ItemRepasse struct {
	ID                uint       `json:"id"`
	Tenant            Locatario  `json:"tenant"`
	Month             int        `json:"month"`
	Year              int        `json:"year"`
	DueDate           *int       `json:"due_date"`
	RentAmount        float64    `json:"rent_amount"`
	AmountPaid        float64    `json:"amount_paid"`
	PaymentDate       *time.Time `json:"payment_date"`
	CondoFee          float64    `json:"condo_fee"`
	CondoPaidByAgency bool       `json:"condo_paid_by_agency"`
	CalculationBase   float64    `json:"calculation_base"`
	Percentage        float64    `json:"percentage"`
	Commission        float64    `json:"commission"`
	DeliveryFee       float64    `json:"delivery_fee"`
	DepositAmount     float64    `json:"deposit_amount"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}

// Resumo acumula os totais do repasse.
type Resumo struct {
	TotalRent         float64 `json:"total_rent"`
	TotalCommission   float64 `json:"total_commission"`
	TotalCondoFees    float64 `json:"total_condo_fees"`
	TotalDeliveryFees float64 `json:"total_delivery_fees"`
	TotalDeposit      float64 `json:"total_deposit"`
	TotalProperties   int     `json:"total_properties"`
}

// RelatorioProprietario monta o repasse do proprietário no período. Clientes
// sem cálculo no mês são omitidos do relatório (não entram como linha
// zerada). Passar 0 em mês/ano usa o período corrente.
func (s *Service) RelatorioProprietario(ownerID uint, mes, ano int) ([]ItemRepasse, Resumo, int, int, error) {
	if mes == 0 || ano == 0 {
		agora := time.Now()
		if mes == 0 {
			mes = int(agora.Month())
		}
		if ano == 0 {
			ano = agora.Year()
		}
	}

	ativos := true
	clientes, err := s.Clientes.Listar(cliente.Filtros{OwnerID: &ownerID, IsActive: &ativos})
	if err != nil {
		return nil, Resumo{}, mes, ano, err
	}

	itens := []ItemRepasse{}
	resumo := Resumo{TotalProperties: len(clientes)}

	for i := range clientes {
		c := &clientes[i]

		calc, err := s.Calculos.BuscarPorPeriodo(c.ID, mes, ano)
		if err != nil {
			return nil, Resumo{}, mes, ano, err
		}
		if calc == nil {
			continue
		}

		var vv *valoresvariaveis.ValoresVariaveis
		if c.HasMonthlyVariation {
			vv, err = s.Valores.BuscarPorPeriodo(c.ID, mes, ano)
			if err != nil {
				return nil, Resumo{}, mes, ano, err
			}
		}

		condoFee := c.CondoFee
		condoPago := c.CondoPaid
		if vv != nil {
			if vv.CondoFee != nil {
				condoFee = *vv.CondoFee
			}
			if vv.CondoPaidByAgency != nil {
				condoPago = *vv.CondoPaidByAgency
			}
		}

		itens = append(itens, ItemRepasse{
			ID:                calc.ID,
			Tenant:            Locatario{ID: c.ID, Name: c.Name},
			Month:             mes,
			Year:              ano,
			DueDate:           c.DueDate,
			RentAmount:        calc.RentAmount,
			AmountPaid:        c.AmountPaid,
			PaymentDate:       c.PaymentDate,
			CondoFee:          condoFee,
			CondoPaidByAgency: condoPago,
			CalculationBase:   calc.CalculationBase,
			Percentage:        c.Percentage,
			Commission:        calc.Commission,
			DeliveryFee:       c.DeliveryFee,
			DepositAmount:     calc.DepositAmount,
			CreatedAt:         calc.CreatedAt,
			UpdatedAt:         calc.UpdatedAt,
		})

		resumo.TotalRent += calc.RentAmount
		resumo.TotalCommission += calc.Commission
		resumo.TotalCondoFees += condoFee
		resumo.TotalDeliveryFees += c.DeliveryFee
		resumo.TotalDeposit += calc.DepositAmount
	}

	s.Log.Info("repasse gerado",
		zap.Uint("owner_id", ownerID), zap.Int("month", mes), zap.Int("year", ano),
		zap.Int("itens", len(itens)))
	return itens, resumo, mes, ano, nil
}
