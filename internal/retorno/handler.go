package retorno

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"github.com/gorilla/mux"
)

// Handler gerencia as rotas de retornos de pagamento
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// BuscarClientes trata POST /api/retornos/buscar-clientes
func (h *Handler) BuscarClientes(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var body struct {
		NomePrefixo string `json:"nome_prefixo" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.EscreverErro(w, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&body); err != nil {
		utils.EscreverErro(w, "O campo 'nome_prefixo' é obrigatório")
		return
	}

	clientes, err := h.Service.BuscarClientesPorNome(body.NomePrefixo)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, clientes)
}

type processarRetornoDTO struct {
	ClientID    uint    `json:"client_id" validate:"required"`
	PaymentDate string  `json:"payment_date" validate:"required"`
	AmountPaid  float64 `json:"amount_paid" validate:"required"`
	Interest    float64 `json:"interest"`
}

// Processar trata POST /api/retornos/processar
func (h *Handler) Processar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var dto processarRetornoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.EscreverErro(w, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Dados do retorno inválidos: %v", err))
		return
	}

	paymentDate, err := time.Parse("2006-01-02", dto.PaymentDate)
	if err != nil {
		utils.EscreverErro(w, "payment_date inválida, formato esperado AAAA-MM-DD")
		return
	}

	resultado, err := h.Service.ProcessarRetorno(dto.ClientID, paymentDate, dto.AmountPaid, dto.Interest)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	if !resultado.Success {
		utils.EscreverErro(w, resultado.Message)
		return
	}
	utils.EscreverDados(w, http.StatusOK, resultado)
}

// Listar trata GET /api/retornos
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

// ListarPorProprietario trata GET /api/retornos/owner/{id}
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

	list, err := h.Service.ListarPorProprietario(uint(id), mes, ano)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, list)
}

// BuscarPorID trata GET /api/retornos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		utils.EscreverErro(w, "ID de retorno inválido")
		return
	}
	ret, err := h.Service.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Retorno com ID %d não encontrado", id))
		return
	}
	utils.EscreverDados(w, http.StatusOK, ret)
}
