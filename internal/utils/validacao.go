package utils

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidarStruct aplica as tags `validate` de um DTO.
func ValidarStruct(v interface{}) error {
	return validate.Struct(v)
}

// MesAnoQuery lê os parâmetros opcionais month e year da query string.
// Retorna 0 para os ausentes; valores fora do intervalo (1-12 / 2000-2100)
// são rejeitados.
func MesAnoQuery(r *http.Request) (int, int, error) {
	mes, err := parametroIntervalo(r, "month", 1, 12)
	if err != nil {
		return 0, 0, err
	}
	ano, err := parametroIntervalo(r, "year", 2000, 2100)
	if err != nil {
		return 0, 0, err
	}
	return mes, ano, nil
}

func parametroIntervalo(r *http.Request, nome string, min, max int) (int, error) {
	raw := r.URL.Query().Get(nome)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parâmetro %s inválido", nome)
	}
	if err := validate.Var(v, fmt.Sprintf("gte=%d,lte=%d", min, max)); err != nil {
		return 0, fmt.Errorf("parâmetro %s fora do intervalo (%d-%d)", nome, min, max)
	}
	return v, nil
}

// ValidarMesAno valida mês e ano obrigatórios vindos de parâmetros de rota.
func ValidarMesAno(mes, ano int) error {
	if err := validate.Var(mes, "gte=1,lte=12"); err != nil {
		return fmt.Errorf("mês %d fora do intervalo (1-12)", mes)
	}
	if err := validate.Var(ano, "gte=2000,lte=2100"); err != nil {
		return fmt.Errorf("ano %d fora do intervalo (2000-2100)", ano)
	}
	return nil
}
