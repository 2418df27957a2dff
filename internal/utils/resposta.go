package utils

import (
	"encoding/json"
	"net/http"
	"time"
)

// Resposta é o envelope padrão da API: {data, error}.
// Erros de negócio (não encontrado, período duplicado) viajam no campo error
// com status 200; só falhas inesperadas viram 500.
type Resposta struct {
	Data  interface{} `json:"data"`
	Error *string     `json:"error"`
}

// RespostaRelatorio é o envelope dos agregadores: {data, summary, metadata, error}.
type RespostaRelatorio struct {
	Data     interface{} `json:"data"`
	Summary  interface{} `json:"summary"`
	Metadata interface{} `json:"metadata"`
	Error    *string     `json:"error"`
}

// Metadados acompanha repasses e retornos bancários agregados.
type Metadados struct {
	OwnerID     uint      `json:"owner_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	GeneratedAt time.Time `json:"generated_at"`
}

func EscreverDados(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Resposta{Data: data})
}

func EscreverErro(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Resposta{Error: &msg})
}

// EscreverFalha responde 500 com o envelope padrão; usado apenas pelos
// endpoints que no restante do sistema propagam exceções.
func EscreverFalha(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(Resposta{Error: &msg})
}

func EscreverRelatorio(w http.ResponseWriter, data, summary, metadata interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(RespostaRelatorio{Data: data, Summary: summary, Metadata: metadata})
}
