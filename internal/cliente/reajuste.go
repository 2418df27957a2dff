package cliente

import (
	"fmt"
	"strings"
	"time"
)

// MarcadorReajuste é anexado às observações do cliente quando um reajuste
// está previsto para o mês seguinte.
const MarcadorReajuste = "REAJUSTE"

// ProximoReajuste calcula a próxima data de reajuste anual a partir da data
// de início do contrato: o aniversário no ano corrente ou, se já passou, no
// ano seguinte. Aniversários de 29/02 em anos não bissextos seguem a
// normalização de datas do Go (01/03).
func ProximoReajuste(inicio, hoje time.Time) time.Time {
	hoje = dataSemHora(hoje)
	aniversario := time.Date(hoje.Year(), inicio.Month(), inicio.Day(), 0, 0, 0, 0, time.UTC)
	if aniversario.Before(hoje) {
		aniversario = time.Date(hoje.Year()+1, inicio.Month(), inicio.Day(), 0, 0, 0, 0, time.UTC)
	}
	return aniversario
}

func dataSemHora(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ContratoReajuste descreve um contrato incluído numa verificação de reajuste.
type ContratoReajuste struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	StartDate      string `json:"start_date"`
	NextAdjustment string `json:"next_adjustment"`
	OwnerID        uint   `json:"owner_id"`
}

// ResultadoReajustes é o retorno de GET /api/clients/adjustments.
type ResultadoReajustes struct {
	Total             int                `json:"total"`
	ContratosReajuste []ContratoReajuste `json:"contratos_reajuste"`
	Message           string             `json:"message"`
}

// VerificarReajustes localiza os contratos com reajuste no mês seguinte e
// anexa o marcador REAJUSTE às observações de cada um (sem duplicar).
func VerificarReajustes(repo *Repository, hoje time.Time) (*ResultadoReajustes, error) {
	clientes, err := repo.ListarAtivosComInicio()
	if err != nil {
		return nil, err
	}
	if len(clientes) == 0 {
		return &ResultadoReajustes{
			ContratosReajuste: []ContratoReajuste{},
			Message:           "Nenhum cliente com data de início definida.",
		}, nil
	}

	mesAlvo, anoAlvo := mesSeguinte(hoje)
	contratos := []ContratoReajuste{}

	for i := range clientes {
		c := &clientes[i]
		if c.StartDate == nil {
			continue
		}
		proximo := ProximoReajuste(*c.StartDate, hoje)
		if int(proximo.Month()) != mesAlvo || proximo.Year() != anoAlvo {
			continue
		}

		contratos = append(contratos, ContratoReajuste{
			ID:             c.ID,
			Name:           c.Name,
			StartDate:      c.StartDate.Format("2006-01-02"),
			NextAdjustment: proximo.Format("2006-01-02"),
			OwnerID:        c.OwnerID,
		})

		if err := marcarReajuste(repo, c); err != nil {
			return nil, err
		}
	}

	return &ResultadoReajustes{
		Total:             len(contratos),
		ContratosReajuste: contratos,
		Message: fmt.Sprintf("Encontrados %d contratos com reajuste em %d/%d.",
			len(contratos), mesAlvo, anoAlvo),
	}, nil
}

// marcarReajuste anexa o marcador às observações, deduplicado por substring.
func marcarReajuste(repo *Repository, c *Cliente) error {
	if strings.Contains(c.Notes, MarcadorReajuste) {
		return nil
	}
	if c.Notes != "" {
		c.Notes = fmt.Sprintf("%s; %s", c.Notes, MarcadorReajuste)
	} else {
		c.Notes = MarcadorReajuste
	}
	return repo.Atualizar(c)
}

// mesSeguinte devolve (mês, ano) do mês de calendário seguinte ao de hoje.
func mesSeguinte(hoje time.Time) (int, int) {
	mes, ano := int(hoje.Month())+1, hoje.Year()
	if mes > 12 {
		mes, ano = 1, ano+1
	}
	return mes, ano
}

// ReajusteHorizonte acrescenta mês/ano ao contrato para agrupamento.
type ReajusteHorizonte struct {
	ContratoReajuste
	Month int `json:"month"`
	Year  int `json:"year"`
}

// ReajustesProximosTresMeses lista os contratos com reajuste entre hoje e
// três meses de calendário à frente (intervalo inclusivo). Não tem efeito
// colateral sobre as observações.
func ReajustesProximosTresMeses(repo *Repository, hoje time.Time) ([]ReajusteHorizonte, error) {
	clientes, err := repo.ListarAtivosComInicio()
	if err != nil {
		return nil, err
	}

	hoje = dataSemHora(hoje)
	limite := hoje.AddDate(0, 3, 0)
	result := []ReajusteHorizonte{}

	for i := range clientes {
		c := &clientes[i]
		if c.StartDate == nil {
			continue
		}
		proximo := ProximoReajuste(*c.StartDate, hoje)
		if proximo.Before(hoje) || proximo.After(limite) {
			continue
		}
		result = append(result, ReajusteHorizonte{
			ContratoReajuste: ContratoReajuste{
				ID:             c.ID,
				Name:           c.Name,
				StartDate:      c.StartDate.Format("2006-01-02"),
				NextAdjustment: proximo.Format("2006-01-02"),
				OwnerID:        c.OwnerID,
			},
			Month: int(proximo.Month()),
			Year:  proximo.Year(),
		})
	}
	return result, nil
}
