package valoresvariaveis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
)

// camposVerificados são os campos numéricos checados na verificação de
// pendências, na ordem reportada ao chamador.
var camposVerificados = []string{
	"water_bill", "gas_bill", "insurance", "property_tax", "condo_fee",
}

var nomesExibicao = map[string]string{
	"water_bill":   "Water Bill",
	"gas_bill":     "Gas Bill",
	"insurance":    "Insurance",
	"property_tax": "Property Tax",
	"condo_fee":    "Condo Fee",
}

// Service concentra as regras de manutenção dos valores variáveis mensais.
type Service struct {
	Repo     *Repository
	Clientes *cliente.Repository
}

func NewService(repo *Repository, clientes *cliente.Repository) *Service {
	return &Service{Repo: repo, Clientes: clientes}
}

// CriarOuAtualizar faz upsert por (cliente, mês, ano).
func (s *Service) CriarOuAtualizar(dto *CriarValoresDTO) (*ValoresVariaveis, error) {
	existente, err := s.Repo.BuscarPorPeriodo(dto.ClientID, dto.Month, dto.Year)
	if err != nil {
		return nil, err
	}

	if existente != nil {
		existente.WaterBill = dto.WaterBill
		existente.GasBill = dto.GasBill
		existente.Insurance = dto.Insurance
		existente.PropertyTax = dto.PropertyTax
		existente.CondoFee = dto.CondoFee
		existente.CondoPaidByAgency = dto.CondoPaidByAgency
		if err := s.Repo.Atualizar(existente); err != nil {
			return nil, err
		}
		return existente, nil
	}

	vv := ValoresVariaveis{
		ClientID:          dto.ClientID,
		Month:             dto.Month,
		Year:              dto.Year,
		WaterBill:         dto.WaterBill,
		GasBill:           dto.GasBill,
		Insurance:         dto.Insurance,
		PropertyTax:       dto.PropertyTax,
		CondoFee:          dto.CondoFee,
		CondoPaidByAgency: dto.CondoPaidByAgency,
	}
	if err := s.Repo.Criar(&vv); err != nil {
		return nil, err
	}
	return &vv, nil
}

// Atualizar aplica só as chaves presentes no corpo; null limpa o override.
// Retorna nil quando não há registro para o período.
func (s *Service) Atualizar(clientID uint, mes, ano int, dto AtualizarValoresDTO) (*ValoresVariaveis, error) {
	vv, err := s.Repo.BuscarPorPeriodo(clientID, mes, ano)
	if err != nil {
		return nil, err
	}
	if vv == nil {
		return nil, nil
	}

	for chave, raw := range dto {
		switch chave {
		case "water_bill", "gas_bill", "insurance", "property_tax", "condo_fee":
			var v *float64
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, fmt.Errorf("campo %s inválido", chave)
			}
			aplicarCampo(vv, chave, v)
		case "condo_paid_by_agency":
			var v *bool
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, fmt.Errorf("campo %s inválido", chave)
			}
			vv.CondoPaidByAgency = v
		}
	}

	if err := s.Repo.Atualizar(vv); err != nil {
		return nil, err
	}
	return vv, nil
}

func aplicarCampo(vv *ValoresVariaveis, chave string, v *float64) {
	switch chave {
	case "water_bill":
		vv.WaterBill = v
	case "gas_bill":
		vv.GasBill = v
	case "insurance":
		vv.Insurance = v
	case "property_tax":
		vv.PropertyTax = v
	case "condo_fee":
		vv.CondoFee = v
	}
}

// Deletar remove o registro do período. Retorna false quando não existe.
func (s *Service) Deletar(clientID uint, mes, ano int) (bool, error) {
	vv, err := s.Repo.BuscarPorPeriodo(clientID, mes, ano)
	if err != nil {
		return false, err
	}
	if vv == nil {
		return false, nil
	}
	return true, s.Repo.Deletar(vv)
}

// VerificarPendencias cria registros vazios para clientes ativos com variação
// mensal que ainda não têm valores no período e lista quem precisa preencher
// o quê. Passar 0 em mês/ano usa o período corrente.
func (s *Service) VerificarPendencias(mes, ano int) ([]PendenciaCliente, error) {
	if mes == 0 || ano == 0 {
		agora := time.Now()
		if mes == 0 {
			mes = int(agora.Month())
		}
		if ano == 0 {
			ano = agora.Year()
		}
	}

	comVariacao, err := s.Clientes.Listar(cliente.Filtros{
		IsActive:            ptrBool(true),
		HasMonthlyVariation: ptrBool(true),
	})
	if err != nil {
		return nil, err
	}

	pendentes := []PendenciaCliente{}
	for _, c := range comVariacao {
		existente, err := s.Repo.BuscarPorPeriodo(c.ID, mes, ano)
		if err != nil {
			return nil, err
		}

		if existente == nil {
			// placeholder vazio criado na hora; preenchido depois via update
			naoPago := false
			vazio := ValoresVariaveis{
				ClientID:          c.ID,
				Month:             mes,
				Year:              ano,
				CondoPaidByAgency: &naoPago,
			}
			if err := s.Repo.Criar(&vazio); err != nil {
				return nil, err
			}
			pendentes = append(pendentes, novaPendencia(&c, mes, ano, camposVerificados))
			continue
		}

		vazios := camposVazios(existente)
		if len(vazios) > 0 {
			pendentes = append(pendentes, novaPendencia(&c, mes, ano, vazios))
		}
	}
	return pendentes, nil
}

func camposVazios(vv *ValoresVariaveis) []string {
	var vazios []string
	porCampo := map[string]*float64{
		"water_bill":   vv.WaterBill,
		"gas_bill":     vv.GasBill,
		"insurance":    vv.Insurance,
		"property_tax": vv.PropertyTax,
		"condo_fee":    vv.CondoFee,
	}
	for _, campo := range camposVerificados {
		if porCampo[campo] == nil {
			vazios = append(vazios, campo)
		}
	}
	return vazios
}

func novaPendencia(c *cliente.Cliente, mes, ano int, vazios []string) PendenciaCliente {
	traduzidos := make([]string, 0, len(vazios))
	for _, campo := range vazios {
		traduzidos = append(traduzidos, nomesExibicao[campo])
	}
	return PendenciaCliente{
		ID:            c.ID,
		Name:          c.Name,
		OwnerID:       c.OwnerID,
		Month:         mes,
		Year:          ano,
		NeedsFilling:  true,
		EmptyFields:   vazios,
		PendingFields: traduzidos,
	}
}

func ptrBool(v bool) *bool { return &v }
