package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"refrigeracao-miranda/go_backend/internal/app/config"
	"refrigeracao-miranda/go_backend/internal/domain/catalog"
	"refrigeracao-miranda/go_backend/internal/domain/event"
	"refrigeracao-miranda/go_backend/internal/domain/quote"
	"refrigeracao-miranda/go_backend/internal/domain/quote/pdf"
)

type Handlers struct {
	Cfg     config.Config
	Quotes  *quote.Store
	Catalog *catalog.Store
	Builder *quote.Builder
	PDF     pdf.Generator
	Events  event.Publisher
}

func New(cfg config.Config, quotes *quote.Store, cat *catalog.Store, builder *quote.Builder, gen pdf.Generator, events event.Publisher) *Handlers {
	return &Handlers{
		Cfg:     cfg,
		Quotes:  quotes,
		Catalog: cat,
		Builder: builder,
		PDF:     gen,
		Events:  events,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: encode response: %v", err)
	}
}

type errorBody struct {
	Error    string            `json:"error"`
	Message  string            `json:"message"`
	Fields   map[string]string `json:"fields,omitempty"`
	BackLink string            `json:"back_link,omitempty"`
}

// writeQuoteNotFound is the dedicated empty-state response: a readable
// message plus the recovery link back to the quotes list.
func writeQuoteNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorBody{
		Error:    "not_found",
		Message:  "Orçamento não encontrado",
		BackLink: "/quotes",
	})
}

func writeValidationError(w http.ResponseWriter, verr *quote.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, errorBody{
		Error:   "validation_failed",
		Message: "Verifique os campos destacados",
		Fields:  verr.Fields,
	})
}
