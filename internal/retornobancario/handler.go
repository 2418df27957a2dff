package retornobancario

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"github.com/gorilla/mux"
)

// Handler gerencia as rotas de retornos bancários
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func periodoDaRota(r *http.Request) (uint, int, int, error) {
	vars := mux.Vars(r)
	id, _ := strconv.Atoi(vars["id"])
	mes, _ := strconv.Atoi(vars["month"])
	ano, _ := strconv.Atoi(vars["year"])
	if err := utils.ValidarMesAno(mes, ano); err != nil {
		return 0, 0, 0, err
	}
	return uint(id), mes, ano, nil
}

// CriarOuAtualizar trata POST /api/bank-returns/client/{id}/{month}/{year}
func (h *Handler) CriarOuAtualizar(w http.ResponseWriter, r *http.Request) {
	clientID, mes, ano, err := periodoDaRota(r)
	if err != nil || clientID == 0 {
		utils.EscreverErro(w, "parâmetros de rota inválidos")
		return
	}
	defer r.Body.Close()

	var dados DadosRetornoDTO
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		utils.EscreverErro(w, "JSON mal formado")
		return
	}

	ret, err := h.Service.CriarOuAtualizar(clientID, mes, ano, &dados)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, []RetornoBancario{*ret})
}

// RelatorioProprietario trata GET /api/bank-returns/owner/{id}
func (h *Handler) RelatorioProprietario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		utils.EscreverErro(w, "ID de proprietário inválido")
		return
	}
	mes, ano, err := utils.MesAnoQuery(r)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	if mes == 0 || ano == 0 {
		agora := time.Now()
		if mes == 0 {
			mes = int(agora.Month())
		}
		if ano == 0 {
			ano = agora.Year()
		}
	}

	itens, resumo, err := h.Service.RelatorioProprietario(uint(id), mes, ano)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverRelatorio(w, itens, resumo, utils.Metadados{
		OwnerID: uint(id), Month: mes, Year: ano, GeneratedAt: time.Now(),
	})
}

// RelatorioMensal trata GET /api/bank-returns/month/{month}/{year}
func (h *Handler) RelatorioMensal(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mes, _ := strconv.Atoi(vars["month"])
	ano, _ := strconv.Atoi(vars["year"])
	if err := utils.ValidarMesAno(mes, ano); err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}

	itens, resumo, err := h.Service.RelatorioMensal(mes, ano)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverRelatorio(w, itens, resumo, utils.Metadados{
		Month: mes, Year: ano, GeneratedAt: time.Now(),
	})
}
