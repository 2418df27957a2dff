package retorno

import (
	"errors"
	"fmt"
	"time"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/calculomensal"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"gorm.io/gorm"
)

// diaVencimentoPadrao é usado quando o cliente não tem dia de vencimento.
const diaVencimentoPadrao = 10

// Service processa retornos de pagamento.
type Service struct {
	Repo     *Repository
	Clientes *cliente.Repository
	Calculos *calculomensal.Repository
}

func NewService(repo *Repository, clientes *cliente.Repository, calculos *calculomensal.Repository) *Service {
	return &Service{Repo: repo, Clientes: clientes, Calculos: calculos}
}

// ResultadoProcessamento é a resposta de ProcessarRetorno. Success=false com
// Message explica rejeições de negócio (cliente inexistente, período
// duplicado) sem alterar estado.
type ResultadoProcessamento struct {
	Success            bool    `json:"success"`
	Message            string  `json:"message"`
	RetornoID          uint    `json:"retorno_id,omitempty"`
	OwnerPaymentAmount float64 `json:"owner_payment_amount,omitempty"`
}

// ProcessarRetorno registra o pagamento de um cliente no período derivado da
// data de pagamento. Reusa o cálculo mensal pré-existente quando houver;
// sem cálculo, assume título igual ao valor pago e comissão percentual direta.
func (s *Service) ProcessarRetorno(clientID uint, paymentDate time.Time, amountPaid, interest float64) (*ResultadoProcessamento, error) {
	c, err := s.Clientes.BuscarPorID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ResultadoProcessamento{
				Success: false,
				Message: fmt.Sprintf("Cliente com ID %d não encontrado", clientID),
			}, nil
		}
		return nil, err
	}

	mes := int(paymentDate.Month())
	ano := paymentDate.Year()

	existente, err := s.Repo.BuscarPorPeriodo(clientID, mes, ano)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return &ResultadoProcessamento{
			Success: false,
			Message: fmt.Sprintf("Já existe um retorno processado para este cliente no mês %d/%d", mes, ano),
		}, nil
	}

	calc, err := s.Calculos.BuscarPorPeriodo(clientID, mes, ano)
	if err != nil {
		return nil, err
	}

	vencimento := dataVencimento(c.DueDate, ano, mes)

	var rentAmount, commission float64
	if calc != nil {
		rentAmount = calc.RentAmount
		commission = calc.Commission
	} else {
		// título assumido igual ao valor pago
		rentAmount = amountPaid
		commission = amountPaid * c.Percentage / 100
	}

	// Dedução de condomínio fixa em 1 quando pago pela imobiliária,
	// reproduzindo o comportamento histórico do sistema.
	condoDeduzido := 0.0
	if c.CondoPaid {
		condoDeduzido = 1
	}
	ownerPayment := amountPaid + interest - commission - c.DeliveryFee - condoDeduzido

	novo := RetornoPagamento{
		ClientID:           clientID,
		Month:              mes,
		Year:               ano,
		DueDate:            vencimento,
		PaymentDate:        paymentDate,
		RentAmount:         rentAmount,
		AmountPaid:         amountPaid,
		Interest:           interest,
		CondoFee:           c.CondoFee,
		Percentage:         c.Percentage,
		Commission:         commission,
		DeliveryFee:        c.DeliveryFee,
		CondoPaid:          c.CondoPaid,
		OwnerPaymentAmount: ownerPayment,
	}
	if err := s.Repo.Criar(&novo); err != nil {
		return nil, err
	}

	return &ResultadoProcessamento{
		Success:            true,
		Message:            "Retorno processado com sucesso",
		RetornoID:          novo.ID,
		OwnerPaymentAmount: ownerPayment,
	}, nil
}

// dataVencimento monta a data de vencimento do período. Dias que excedem o
// tamanho do mês são grampeados no último dia válido; sem dia definido,
// usa o dia 10.
func dataVencimento(dia *int, ano, mes int) time.Time {
	d := diaVencimentoPadrao
	if dia != nil {
		d = *dia
	}
	if ultimo := utils.UltimoDiaDoMes(ano, mes); d > ultimo {
		d = ultimo
	}
	return time.Date(ano, time.Month(mes), d, 0, 0, 0, 0, time.UTC)
}

// ClienteSugestao é a projeção devolvida pela busca por prefixo de nome.
type ClienteSugestao struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	OwnerID     uint    `json:"owner_id"`
	DueDate     *int    `json:"due_date"`
	CondoFee    float64 `json:"condo_fee"`
	Percentage  float64 `json:"percentage"`
	DeliveryFee float64 `json:"delivery_fee"`
	CondoPaid   bool    `json:"condo_paid"`
}

// BuscarClientesPorNome lista clientes ativos cujo nome começa com o prefixo.
func (s *Service) BuscarClientesPorNome(prefixo string) ([]ClienteSugestao, error) {
	var clientes []cliente.Cliente
	err := s.Clientes.DB.
		Where("name LIKE ? AND is_active = ?", prefixo+"%", true).
		Find(&clientes).Error
	if err != nil {
		return nil, err
	}

	result := make([]ClienteSugestao, 0, len(clientes))
	for _, c := range clientes {
		result = append(result, ClienteSugestao{
			ID:          c.ID,
			Name:        c.Name,
			OwnerID:     c.OwnerID,
			DueDate:     c.DueDate,
			CondoFee:    c.CondoFee,
			Percentage:  c.Percentage,
			DeliveryFee: c.DeliveryFee,
			CondoPaid:   c.CondoPaid,
		})
	}
	return result, nil
}

// ListarPorProprietario retorna os retornos dos clientes ativos do proprietário.
func (s *Service) ListarPorProprietario(ownerID uint, mes, ano int) ([]RetornoPagamento, error) {
	clientes, err := s.Clientes.Listar(cliente.Filtros{
		OwnerID:  &ownerID,
		IsActive: ptrBool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(clientes) == 0 {
		return []RetornoPagamento{}, nil
	}

	ids := make([]uint, 0, len(clientes))
	for _, c := range clientes {
		ids = append(ids, c.ID)
	}
	return s.Repo.ListarPorClientes(ids, mes, ano)
}

func ptrBool(v bool) *bool { return &v }
