package cliente

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"github.com/gorilla/mux"
)

// Handler gerencia as rotas de clientes
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func filtrosDaQuery(r *http.Request) Filtros {
	var f Filtros
	if raw := r.URL.Query().Get("is_active"); raw != "" {
		v := raw == "true"
		f.IsActive = &v
	}
	if raw := r.URL.Query().Get("has_monthly_variation"); raw != "" {
		v := raw == "true"
		f.HasMonthlyVariation = &v
	}
	if raw := r.URL.Query().Get("owner_id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			v := uint(id)
			f.OwnerID = &v
		}
	}
	return f
}

// Listar trata GET /api/clients
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.Listar(filtrosDaQuery(r))
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, list)
}

// ListarNomes trata GET /api/clients/names — projeção enxuta para seletores.
func (h *Handler) ListarNomes(w http.ResponseWriter, r *http.Request) {
	f := filtrosDaQuery(r)
	if f.IsActive == nil {
		ativo := true
		f.IsActive = &ativo
	}
	list, err := h.Repo.Listar(f)
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	nomes := make([]NomeCliente, 0, len(list))
	for _, c := range list {
		nomes = append(nomes, NomeCliente{ID: c.ID, Name: c.Name, OwnerID: c.OwnerID})
	}
	utils.EscreverDados(w, http.StatusOK, nomes)
}

// Criar trata POST /api/clients
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var dto CriarClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.EscreverErro(w, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Dados do cliente inválidos: %v", err))
		return
	}

	ativo := true
	if dto.IsActive != nil {
		ativo = *dto.IsActive
	}
	c := Cliente{
		Name:                dto.Name,
		OwnerID:             dto.OwnerID,
		Status:              dto.Status,
		DueDate:             dto.DueDate,
		AmountPaid:          dto.AmountPaid,
		PropertyTax:         dto.PropertyTax,
		Interest:            dto.Interest,
		Utilities:           dto.Utilities,
		Insurance:           dto.Insurance,
		CondoFee:            dto.CondoFee,
		Percentage:          dto.Percentage,
		DeliveryFee:         dto.DeliveryFee,
		StartDate:           dto.StartDate,
		CondoPaid:           dto.CondoPaid,
		WithdrawalDate:      dto.WithdrawalDate,
		WithdrawalNumber:    dto.WithdrawalNumber,
		PaymentDate:         dto.PaymentDate,
		Notes:               dto.Notes,
		HasMonthlyVariation: dto.HasMonthlyVariation,
		IsActive:            ativo,
	}
	if err := h.Repo.Criar(&c); err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusCreated, c)
}

// BuscarPorID trata GET /api/clients/{id} — enxerga apenas clientes ativos.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		utils.EscreverErro(w, "ID de cliente inválido")
		return
	}
	c, err := h.Repo.BuscarAtivoPorID(uint(id))
	if err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Cliente com ID %d não encontrado", id))
		return
	}
	utils.EscreverDados(w, http.StatusOK, c)
}

// Atualizar trata PUT /api/clients/{id}. Aplica somente os campos enviados.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		utils.EscreverErro(w, "ID de cliente inválido")
		return
	}
	c, err := h.Repo.BuscarAtivoPorID(uint(id))
	if err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Cliente com ID %d não encontrado", id))
		return
	}

	var dto AtualizarClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.EscreverErro(w, "JSON mal formado")
		return
	}
	if err := utils.ValidarStruct(&dto); err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Dados do cliente inválidos: %v", err))
		return
	}

	aplicarAtualizacao(c, &dto)
	if err := h.Repo.Atualizar(c); err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	utils.EscreverDados(w, http.StatusOK, c)
}

func aplicarAtualizacao(c *Cliente, dto *AtualizarClienteDTO) {
	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.OwnerID != nil {
		c.OwnerID = *dto.OwnerID
	}
	if dto.Status != nil {
		c.Status = *dto.Status
	}
	if dto.DueDate != nil {
		c.DueDate = dto.DueDate
	}
	if dto.AmountPaid != nil {
		c.AmountPaid = *dto.AmountPaid
	}
	if dto.PropertyTax != nil {
		c.PropertyTax = *dto.PropertyTax
	}
	if dto.Interest != nil {
		c.Interest = *dto.Interest
	}
	if dto.Utilities != nil {
		c.Utilities = *dto.Utilities
	}
	if dto.Insurance != nil {
		c.Insurance = *dto.Insurance
	}
	if dto.CondoFee != nil {
		c.CondoFee = *dto.CondoFee
	}
	if dto.Percentage != nil {
		c.Percentage = *dto.Percentage
	}
	if dto.DeliveryFee != nil {
		c.DeliveryFee = *dto.DeliveryFee
	}
	if dto.StartDate != nil {
		c.StartDate = dto.StartDate
	}
	if dto.CondoPaid != nil {
		c.CondoPaid = *dto.CondoPaid
	}
	if dto.WithdrawalDate != nil {
		c.WithdrawalDate = dto.WithdrawalDate
	}
	if dto.WithdrawalNumber != nil {
		c.WithdrawalNumber = *dto.WithdrawalNumber
	}
	if dto.PaymentDate != nil {
		c.PaymentDate = dto.PaymentDate
	}
	if dto.Notes != nil {
		c.Notes = *dto.Notes
	}
	if dto.HasMonthlyVariation != nil {
		c.HasMonthlyVariation = *dto.HasMonthlyVariation
	}
	if dto.IsActive != nil {
		c.IsActive = *dto.IsActive
	}
}

// Desativar trata PUT /api/clients/{id}/deactivate (exclusão lógica).
func (h *Handler) Desativar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		utils.EscreverErro(w, "ID de cliente inválido")
		return
	}
	ok, err := h.Repo.Desativar(uint(id))
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	if !ok {
		utils.EscreverErro(w, fmt.Sprintf("Cliente com ID %d não encontrado", id))
		return
	}
	utils.EscreverDados(w, http.StatusOK,
		fmt.Sprintf("Cliente com ID %d desativado com sucesso", id))
}

// VerificarReajustes trata GET /api/clients/adjustments.
// Falhas inesperadas aqui respondem 500, diferente do restante da API.
func (h *Handler) VerificarReajustes(w http.ResponseWriter, r *http.Request) {
	resultado, err := VerificarReajustes(h.Repo, time.Now())
	if err != nil {
		utils.EscreverFalha(w, fmt.Sprintf("Erro ao verificar reajustes: %v", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resultado)
}

// ReajustesTresMeses trata GET /api/clients/adjustments/next-3-months,
// agrupando os contratos por chave "mês/ano".
func (h *Handler) ReajustesTresMeses(w http.ResponseWriter, r *http.Request) {
	itens, err := ReajustesProximosTresMeses(h.Repo, time.Now())
	if err != nil {
		utils.EscreverErro(w, err.Error())
		return
	}
	porMes := map[string][]ReajusteHorizonte{}
	for _, item := range itens {
		chave := fmt.Sprintf("%d/%d", item.Month, item.Year)
		porMes[chave] = append(porMes[chave], item)
	}
	utils.EscreverDados(w, http.StatusOK, porMes)
}

// ProximoReajusteDoCliente trata GET /api/clients/{id}/next-adjustment.
func (h *Handler) ProximoReajusteDoCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		utils.EscreverErro(w, "ID de cliente inválido")
		return
	}
	c, err := h.Repo.BuscarAtivoPorID(uint(id))
	if err != nil {
		utils.EscreverErro(w, fmt.Sprintf("Cliente com ID %d não encontrado", id))
		return
	}
	if c.StartDate == nil {
		utils.EscreverErro(w, fmt.Sprintf("Cliente com ID %d não possui data de início definida", id))
		return
	}

	hoje := time.Now()
	proximo := ProximoReajuste(*c.StartDate, hoje)
	dias := int(proximo.Sub(dataSemHora(hoje)).Hours() / 24)

	utils.EscreverDados(w, http.StatusOK, struct {
		ID                  uint   `json:"id"`
		Name                string `json:"name"`
		StartDate           string `json:"start_date"`
		NextAdjustment      string `json:"next_adjustment"`
		DaysUntilAdjustment int    `json:"days_until_adjustment"`
		OwnerID             uint   `json:"owner_id"`
	}{c.ID, c.Name, c.StartDate.Format("2006-01-02"), proximo.Format("2006-01-02"), dias, c.OwnerID})
}
