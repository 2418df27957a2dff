package retornobancario

import (
	"time"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
)

// Service concentra as regras de retorno bancário.
type Service struct {
	Repo     *Repository
	Clientes *cliente.Repository
}

func NewService(repo *Repository, clientes *cliente.Repository) *Service {
	return &Service{Repo: repo, Clientes: clientes}
}

// DadosRetornoDTO é o corpo de criação/atualização; ponteiros permitem
// atualização parcial.
type DadosRetornoDTO struct {
	PayerName       *string    `json:"payer_name"`
	DueDate         *time.Time `json:"due_date"`
	PaymentDate     *time.Time `json:"payment_date"`
	TitleAmount     *float64   `json:"title_amount"`
	ChargedAmount   *float64   `json:"charged_amount"`
	VariationAmount *float64   `json:"variation_amount"`
}

// CriarOuAtualizar faz upsert por (cliente, mês, ano), aplicando apenas os
// campos enviados quando o registro já existe.
func (s *Service) CriarOuAtualizar(clientID uint, mes, ano int, dados *DadosRetornoDTO) (*RetornoBancario, error) {
	ret, err := s.Repo.BuscarPorPeriodo(clientID, mes, ano)
	if err != nil {
		return nil, err
	}

	if ret == nil {
		ret = &RetornoBancario{ClientID: clientID, Month: mes, Year: ano}
		aplicarDados(ret, dados)
		if err := s.Repo.Criar(ret); err != nil {
			return nil, err
		}
		return ret, nil
	}

	aplicarDados(ret, dados)
	if err := s.Repo.Atualizar(ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func aplicarDados(ret *RetornoBancario, dados *DadosRetornoDTO) {
	if dados.PayerName != nil {
		ret.PayerName = *dados.PayerName
	}
	if dados.DueDate != nil {
		ret.DueDate = dados.DueDate
	}
	if dados.PaymentDate != nil {
		ret.PaymentDate = dados.PaymentDate
	}
	if dados.TitleAmount != nil {
		ret.TitleAmount = dados.TitleAmount
	}
	if dados.ChargedAmount != nil {
		ret.ChargedAmount = dados.ChargedAmount
	}
	if dados.VariationAmount != nil {
		ret.VariationAmount = dados.VariationAmount
	}
}

// ItemRetorno é a linha por cliente do relatório agregado.
type ItemRetorno struct {
	ID              uint       `json:"id"`
	Client          ClienteRef `json:"client"`
	Month           int        `json:"month"`
	Year            int        `json:"year"`
	PayerName       string     `json:"payer_name"`
	DueDate         *time.Time `json:"due_date"`
	PaymentDate     *time.Time `json:"payment_date"`
	TitleAmount     *float64   `json:"title_amount"`
	ChargedAmount   *float64   `json:"charged_amount"`
	VariationAmount *float64   `json:"variation_amount"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

// ClienteRef identifica o cliente dentro de um item de relatório.
type ClienteRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Resumo acumula os totais do relatório.
type Resumo struct {
	TotalTitleAmount     float64 `json:"total_title_amount"`
	TotalChargedAmount   float64 `json:"total_charged_amount"`
	TotalVariationAmount float64 `json:"total_variation_amount"`
	TotalReturns         int     `json:"total_returns"`
}

// RelatorioProprietario monta as linhas e totais dos retornos bancários dos
// clientes ativos do proprietário. Clientes sem retorno no período são
// omitidos (sem linha zerada).
func (s *Service) RelatorioProprietario(ownerID uint, mes, ano int) ([]ItemRetorno, Resumo, error) {
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
		return nil, Resumo{}, err
	}

	itens := []ItemRetorno{}
	var resumo Resumo
	for _, c := range clientes {
		ret, err := s.Repo.BuscarPorPeriodo(c.ID, mes, ano)
		if err != nil {
			return nil, Resumo{}, err
		}
		if ret == nil {
			continue
		}
		itens = append(itens, novoItem(ret, &c, mes, ano))
		acumular(&resumo, ret)
	}
	return itens, resumo, nil
}

// RelatorioMensal monta as linhas e totais de todos os retornos do mês cujos
// clientes seguem ativos.
func (s *Service) RelatorioMensal(mes, ano int) ([]ItemRetorno, Resumo, error) {
	retornos, err := s.Repo.ListarDoMesComClienteAtivo(mes, ano)
	if err != nil {
		return nil, Resumo{}, err
	}

	itens := []ItemRetorno{}
	var resumo Resumo
	for i := range retornos {
		ret := &retornos[i]
		c, err := s.Clientes.BuscarPorID(ret.ClientID)
		if err != nil {
			return nil, Resumo{}, err
		}
		itens = append(itens, novoItem(ret, c, mes, ano))
		acumular(&resumo, ret)
	}
	return itens, resumo, nil
}

func novoItem(ret *RetornoBancario, c *cliente.Cliente, mes, ano int) ItemRetorno {
	return ItemRetorno{
		ID:              ret.ID,
		Client:          ClienteRef{ID: c.ID, Name: c.Name},
		Month:           mes,
		Year:            ano,
		PayerName:       ret.PayerName,
		DueDate:         ret.DueDate,
		PaymentDate:     ret.PaymentDate,
		TitleAmount:     ret.TitleAmount,
		ChargedAmount:   ret.ChargedAmount,
		VariationAmount: ret.VariationAmount,
		CreatedAt:       ret.CreatedAt,
		UpdatedAt:       ret.UpdatedAt,
	}
}

func acumular(resumo *Resumo, ret *RetornoBancario) {
	resumo.TotalTitleAmount += utils.Deref(ret.TitleAmount)
	resumo.TotalChargedAmount += utils.Deref(ret.ChargedAmount)
	resumo.TotalVariationAmount += utils.Deref(ret.VariationAmount)
	resumo.TotalReturns++
}
