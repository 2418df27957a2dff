package repasse_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/repasse"
	"github.com/gorilla/mux"
)

func TestRelatorioProprietarioIDInvalido(t *testing.T) {
	db := setupTestDB(t)
	handler := repasse.NewHandler(novoService(db))

	r := mux.NewRouter()
	r.HandleFunc("/api/monthly-transfers/owner/{id}", handler.RelatorioProprietario).Methods("GET")

	for _, id := range []string{"-1", "0", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/monthly-transfers/owner/"+id, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		var resp struct {
			Error *string `json:"error"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("id %q: decodificar resposta: %v", id, err)
		}
		if resp.Error == nil || *resp.Error != "ID do proprietário inválido" {
			t.Errorf("id %q: erro = %v, esperado ID do proprietário inválido", id, resp.Error)
		}
	}
}
