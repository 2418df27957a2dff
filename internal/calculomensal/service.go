package calculomensal

import (
	"fmt"
	"sync"
	"time"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/valoresvariaveis"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service executa o cálculo financeiro mensal dos clientes.
type Service struct {
	DB       *gorm.DB
	Clientes *cliente.Repository
	Log      *zap.Logger
}

func NewService(db *gorm.DB, clientes *cliente.Repository, log *zap.Logger) *Service {
	return &Service{DB: db, Clientes: clientes, Log: log}
}

// ResumoProcessamento é o resultado do cálculo em lote.
type ResumoProcessamento struct {
	TotalProcessed int    `json:"total_processed"`
	Successful     int    `json:"successful"`
	Failed         int    `json:"failed"`
	Message        string `json:"message"`
}

// CalcularParaTodos roda o cálculo para todos os clientes ativos do período,
// um goroutine por cliente, cada um na sua própria transação. A falha de um
// cliente não desfaz nem cancela os demais. Passar 0 em mês/ano usa o
// período corrente.
func (s *Service) CalcularParaTodos(mes, ano int) (*ResumoProcessamento, error) {
	if mes == 0 || ano == 0 {
		agora := time.Now()
		if mes == 0 {
			mes = int(agora.Month())
		}
		if ano == 0 {
			ano = agora.Year()
		}
	}

	clientes, err := s.Clientes.ListarAtivos()
	if err != nil {
		return nil, err
	}
	if len(clientes) == 0 {
		return &ResumoProcessamento{Message: "Nenhum cliente ativo encontrado."}, nil
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		sucesso int
		falha   int
	)
	for i := range clientes {
		wg.Add(1)
		go func(c cliente.Cliente) {
			defer wg.Done()
			err := s.DB.Transaction(func(tx *gorm.DB) error {
				return s.calcularParaCliente(tx, &c, mes, ano)
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				falha++
				s.Log.Error("erro ao calcular para cliente",
					zap.Uint("client_id", c.ID), zap.Int("month", mes), zap.Int("year", ano), zap.Error(err))
				return
			}
			sucesso++
		}(clientes[i])
	}
	wg.Wait()

	return &ResumoProcessamento{
		TotalProcessed: len(clientes),
		Successful:     sucesso,
		Failed:         falha,
		Message:        fmt.Sprintf("Processamento concluído. %d sucessos, %d falhas.", sucesso, falha),
	}, nil
}

// CalcularParaCliente roda o cálculo de um único cliente numa transação própria.
func (s *Service) CalcularParaCliente(c *cliente.Cliente, mes, ano int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.calcularParaCliente(tx, c, mes, ano)
	})
}

func (s *Service) calcularParaCliente(tx *gorm.DB, c *cliente.Cliente, mes, ano int) error {
	if c.Percentage < 0 || c.Percentage > 100 {
		return fmt.Errorf("percentual inválido para o cliente %d: %.2f", c.ID, c.Percentage)
	}

	existente, err := BuscarPorPeriodo(tx, c.ID, mes, ano)
	if err != nil {
		return err
	}

	var vv *valoresvariaveis.ValoresVariaveis
	if c.HasMonthlyVariation {
		vv, err = valoresvariaveis.BuscarPorPeriodo(tx, c.ID, mes, ano)
		if err != nil {
			return err
		}
		if vv != nil {
			s.Log.Info("usando valores variáveis",
				zap.Uint("client_id", c.ID), zap.Int("month", mes), zap.Int("year", ano))
		}
	}

	valores := ResolverValores(c, vv)

	// Valor do aluguel = Valor pago + IPTU + Água/Gás
	rentAmount := utils.Round2(c.AmountPaid + valores.PropertyTax + valores.Utilities)

	// Base de cálculo = IPTU + Água/Gás + Condomínio + Seguro
	calculationBase := utils.Round2(valores.PropertyTax + valores.Utilities + valores.CondoFee + valores.Insurance)

	// Valor pago pelo locatário = Valor aluguel - Base cálculo
	tenantPayment := utils.Round2(rentAmount - calculationBase)

	// Comissão = Valor pago pelo locatário * (Percentual / 100)
	commission := utils.Round2(tenantPayment * (c.Percentage / 100))

	// Valor depósito = Valor aluguel - Comissão - Taxa envio - Condomínio (quando pago)
	condoDeduzido := 0.0
	if valores.CondoPaid {
		condoDeduzido = valores.CondoFee
	}
	depositAmount := utils.Round2(rentAmount - commission - c.DeliveryFee - condoDeduzido)

	if existente != nil {
		existente.RentAmount = rentAmount
		existente.CalculationBase = calculationBase
		existente.TenantPayment = tenantPayment
		existente.Commission = commission
		existente.DepositAmount = depositAmount
		return tx.Save(existente).Error
	}

	return tx.Create(&CalculoMensal{
		ClientID:        c.ID,
		Month:           mes,
		Year:            ano,
		RentAmount:      rentAmount,
		CalculationBase: calculationBase,
		TenantPayment:   tenantPayment,
		Commission:      commission,
		DepositAmount:   depositAmount,
	}).Error
}
