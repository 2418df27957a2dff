package repasse

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"github.com/gorilla/mux"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// RelatorioProprietario responde GET /api/monthly-transfers/owner/{id}.
func (h *Handler) RelatorioProprietario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		utils.EscreverErro(w, "ID do proprietário inválido")
		return
	}
	mes, ano, err := utils.MesAnoQuery(r)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}

	itens, resumo, mes, ano, err := h.Service.RelatorioProprietario(uint(id), mes, ano)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}

	utils.EscreverRelatorio(w, itens, resumo, utils.Metadados{
		OwnerID: uint(id), Month: mes, Year: ano, GeneratedAt: time.Now(),
	})
}
