package valoresvariaveis

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"github.com/gorilla/mux"
)

// Handler gerencia as rotas de valores variáveis mensais
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// Listar trata GET /api/monthly-variable-values
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	mes, ano, err := utils.MesAnoQuery(r)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	var clientID uint
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			utils.EscreverErro(w, "parâmetro client_id inválido")
			return
		}
		clientID = uint(id)
	}

	list, err := h.Service.Repo.Listar(clientID, mes, ano)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, list)
}

// ListarPorCliente trata GET /api/monthly-variable-values/client/{id}
func (h *Handler) ListarPorCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		utils.EscreverErro(w, "ID de cliente inválido")
		return
	}
	mes, ano, err := utils.MesAnoQuery(r)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}

	list, err := h.Service.Repo.Listar(uint(id), mes, ano)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, list)
}

// CriarOuAtualizar trata POST /api/monthly-variable-values
func (h *Handler) CriarOuAtualizar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var dto CriarValoresDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.EscreverErro(w, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Dados inválidos: %v", err))
		return
	}

	vv, err := h.Service.CriarOuAtualizar(&dto)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	// lista de um elemento, mesmo formato das consultas
	utils.EscreverDados(w, http.StatusOK, []ValoresVariaveis{*vv})
}

func periodoDaRota(r *http.Request) (uint, int, int, error) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil || id <= 0 {
		return 0, 0, 0, fmt.Errorf("ID de cliente inválido")
	}
	mes, _ := strconv.Atoi(vars["month"])
	ano, _ := strconv.Atoi(vars["year"])
	if err := utils.ValidarMesAno(mes, ano); err != nil {
		return 0, 0, 0, err
	}
	return uint(id), mes, ano, nil
}

// Atualizar trata PUT /api/monthly-variable-values/{id}/{month}/{year}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	clientID, mes, ano, err := periodoDaRota(r)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	defer r.Body.Close()

	var dto AtualizarValoresDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.EscreverErro(w, "JSON mal formado")
		return
	}

	vv, err := h.Service.Atualizar(clientID, mes, ano, dto)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	if vv == nil {
		utils.EscreverErro(w, fmt.Sprintf(
			"Valores variáveis mensais não encontrados para o cliente %d no mês %d/%d", clientID, mes, ano))
		return
	}
	utils.EscreverDados(w, http.StatusOK, []ValoresVariaveis{*vv})
}

// Deletar trata DELETE /api/monthly-variable-values/{id}/{month}/{year}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	clientID, mes, ano, err := periodoDaRota(r)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}

	ok, err := h.Service.Deletar(clientID, mes, ano)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	if !ok {
		utils.EscreverErro(w, fmt.Sprintf(
			"Valores variáveis mensais não encontrados para o cliente %d no mês %d/%d", clientID, mes, ano))
		return
	}
	utils.EscreverDados(w, http.StatusOK, []string{"Valores variáveis mensais removidos com sucesso"})
}

// VerificarPendencias trata GET /api/monthly-variable-values/pending
func (h *Handler) VerificarPendencias(w http.ResponseWriter, r *http.Request) {
	mes, ano, err := utils.MesAnoQuery(r)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}

	pendentes, err := h.Service.VerificarPendencias(mes, ano)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	if len(pendentes) == 0 {
		// lista vazia e mensagem informativa convivem no mesmo envelope
		msg := "Todos os clientes estão com dados completos para este mês"
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(utils.Resposta{Data: []PendenciaCliente{}, Error: &msg})
		return
	}
	utils.EscreverDados(w, http.StatusOK, pendentes)
}
