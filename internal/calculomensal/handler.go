package calculomensal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"github.com/gorilla/mux"
)

// Handler gerencia as rotas de cálculos mensais
type Handler struct {
	Service  *Service
	Repo     *Repository
	Clientes *cliente.Repository
}

func NewHandler(service *Service, repo *Repository, clientes *cliente.Repository) *Handler {
	return &Handler{Service: service, Repo: repo, Clientes: clientes}
}

// Calcular trata POST /api/monthly-calculations/calculate.
// Responde com o resumo do lote; falha inesperada vira 500.
func (h *Handler) Calcular(w http.ResponseWriter, r *http.Request) {
	mes, ano, err := utils.MesAnoQuery(r)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}

	resumo, err := h.Service.CalcularParaTodos(mes, ano)
	if err != nil {
		utils.EscreverFalha(w, fmt.Sprintf("Erro ao calcular valores mensais: %v", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}

// Listar trata GET /api/monthly-calculations
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

	list, err := h.Repo.Listar(clientID, mes, ano)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, list)
}

// ListarPorCliente trata GET /api/monthly-calculations/client/{id}
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

	if _, err := h.Clientes.BuscarPorID(uint(id)); err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Cliente com ID %d não encontrado", id))
		return
	}

	list, err := h.Repo.Listar(uint(id), mes, ano)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, list)
}

// ListarPorProprietario trata GET /api/monthly-calculations/owner/{id}
func (h *Handler) ListarPorProprietario(w http.ResponseWriter, r *http.Request) {
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

	ownerID := uint(id)
	clientes, err := h.Clientes.Listar(cliente.Filtros{OwnerID: &ownerID})
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	if len(clientes) == 0 {
		utils.EscreverErro(w, fmt.Sprintf(
			"Nenhum cliente encontrado para o proprietário com ID %d", id))
		return
	}

	ids := make([]uint, 0, len(clientes))
	for _, c := range clientes {
		ids = append(ids, c.ID)
	}
	list, err := h.Repo.ListarPorClientes(ids, mes, ano)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, list)
}
