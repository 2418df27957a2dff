package calculomensal

import (
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/valoresvariaveis"
)

// ValoresResolvidos são os valores efetivos do mês depois de aplicada a
// precedência: override mensal preenchido > valor fixo do cliente > 0.
type ValoresResolvidos struct {
	PropertyTax float64
	Utilities   float64
	CondoFee    float64
	Insurance   float64
	CondoPaid   bool
}

// ResolverValores aplica os overrides do mês sobre os valores fixos do
// cliente. Água/Gás é caso especial: qualquer conta (água ou gás) preenchida
// substitui o valor fixo inteiro pela soma das duas.
func ResolverValores(c *cliente.Cliente, vv *valoresvariaveis.ValoresVariaveis) ValoresResolvidos {
	v := ValoresResolvidos{
		PropertyTax: c.PropertyTax,
		Utilities:   c.Utilities,
		CondoFee:    c.CondoFee,
		Insurance:   c.Insurance,
		CondoPaid:   c.CondoPaid,
	}
	if vv == nil {
		return v
	}

	if vv.PropertyTax != nil {
		v.PropertyTax = *vv.PropertyTax
	}
	if vv.WaterBill != nil || vv.GasBill != nil {
		v.Utilities = utils.Deref(vv.WaterBill) + utils.Deref(vv.GasBill)
	}
	if vv.CondoFee != nil {
		v.CondoFee = *vv.CondoFee
	}
	if vv.Insurance != nil {
		v.Insurance = *vv.Insurance
	}
	if vv.CondoPaidByAgency != nil {
		v.CondoPaid = *vv.CondoPaidByAgency
	}
	return v
}
