// Package health expõe as verificações de saúde da API e do banco.
package health

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

type estado struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func escrever(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Verificar responde GET /api/health.
func (h *Handler) Verificar(w http.ResponseWriter, r *http.Request) {
	escrever(w, http.StatusOK, estado{Status: "ok", Message: "Serviço funcionando normalmente"})
}

func (h *Handler) pingBanco() error {
	var resultado int
	if err := h.DB.Raw("SELECT 1").Scan(&resultado).Error; err != nil {
		return err
	}
	if resultado != 1 {
		return fmt.Errorf("banco de dados retornou resultado inesperado")
	}
	return nil
}

// VerificarBanco responde GET /api/health/db.
func (h *Handler) VerificarBanco(w http.ResponseWriter, r *http.Request) {
	if err := h.pingBanco(); err != nil {
		escrever(w, http.StatusInternalServerError, estado{
			Status:  "error",
			Message: fmt.Sprintf("Erro na conexão com o banco de dados: %v", err),
		})
		return
	}
	escrever(w, http.StatusOK, estado{Status: "ok", Message: "Conexão com o banco de dados está funcionando"})
}

// VerificarCompleto responde GET /api/health/complete com o estado de cada
// componente e o status geral.
func (h *Handler) VerificarCompleto(w http.ResponseWriter, r *http.Request) {
	resposta := map[string]interface{}{
		"api": estado{Status: "ok", Message: "API está funcionando corretamente"},
	}

	banco := estado{Status: "ok", Message: "Banco de dados está funcionando corretamente"}
	geral := "ok"
	status := http.StatusOK
	if err := h.pingBanco(); err != nil {
		banco = estado{Status: "error", Message: fmt.Sprintf("Erro na conexão com o banco de dados: %v", err)}
		geral = "error"
		status = http.StatusInternalServerError
	}

	resposta["database"] = banco
	resposta["overall"] = geral
	escrever(w, status, resposta)
}
