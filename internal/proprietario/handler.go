package proprietario

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"github.com/gorilla/mux"
)

// Handler gerencia as rotas de proprietários
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type criarProprietarioDTO struct {
	Name string `json:"name" validate:"required"`
}

// Criar trata POST /api/owners
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var dto criarProprietarioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.EscreverErro(w, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.EscreverErro(w, "O campo 'name' é obrigatório")
		return
	}

	p := Proprietario{Name: dto.Name}
	if err := h.Repo.Criar(&p); err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, p)
}

// Listar trata GET /api/owners
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, list)
}

// BuscarPorID trata GET /api/owners/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		utils.EscreverErro(w, "ID de proprietário inválido")
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Proprietário com ID %d não encontrado", id))
		return
	}
	utils.EscreverDados(w, http.StatusOK, p)
}

// Atualizar trata PUT /api/owners/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		utils.EscreverErro(w, "ID de proprietário inválido")
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Proprietário com ID %d não encontrado", id))
		return
	}

	var dto struct {
		Name *string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.EscreverErro(w, "JSON mal formado")
		return
	}
	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if err := h.Repo.Atualizar(p); err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, p)
}

// Deletar trata DELETE /api/owners/{id}.
// Recusa a exclusão enquanto houver clientes vinculados.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		utils.EscreverErro(w, "ID de proprietário inválido")
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Proprietário com ID %d não encontrado", id))
		return
	}

	count, err := h.Repo.ContarClientes(p.ID)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	if count > 0 {
		utils.EscreverErro(w, fmt.Sprintf(
			"Não é possível excluir o proprietário com ID %d. Existem %d clientes associados.", id, count))
		return
	}

	if err := h.Repo.Deletar(p); err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, "Proprietário removido com sucesso")
}

// ListarClientes trata GET /api/owners/{id}/clients
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		utils.EscreverErro(w, "ID de proprietário inválido")
		return
	}
	if _, err := h.Repo.BuscarPorID(uint(id)); err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Proprietário com ID %d não encontrado", id))
		return
	}
	clientes, err := h.Repo.ListarClientesAtivos(uint(id))
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, clientes)
}
