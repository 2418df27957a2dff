package utils

import "strconv"

// Round2 arredonda um valor monetário para 2 casas decimais.
// O arredondamento considera o valor decimal exato do float (empates vão
// para o par), e não o valor escalado por 100 — que distorce casos como
// -2.675, cujo valor exato fica abaixo de -2.675.
// Todo valor calculado passa por aqui antes de ser persistido.
func Round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

// Deref retorna o valor apontado ou 0 quando o ponteiro é nulo.
func Deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// UltimoDiaDoMes retorna o último dia válido do mês informado.
func UltimoDiaDoMes(ano, mes int) int {
	switch mes {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if (ano%4 == 0 && ano%100 != 0) || ano%400 == 0 {
			return 29
		}
		return 28
	}
}
