package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"refrigeracao-miranda/go_backend/internal/domain/event"
	"refrigeracao-miranda/go_backend/internal/domain/quote"
	"refrigeracao-miranda/go_backend/internal/domain/quote/render"
	"refrigeracao-miranda/go_backend/internal/format"
)

// CreateQuote builds a quote from the submitted form and returns it with 201.
// Validation failures come back as 422 with per-field messages.
func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var in quote.BuildInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad_request", Message: "Requisição inválida"})
		return
	}

	q, err := h.Builder.Build(in)
	if err != nil {
		var verr *quote.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		var dup *quote.DuplicateIDError
		if errors.As(err, &dup) {
			// Invariant violation in the id scheme; log and fail loudly.
			log.Printf("quotes: %v", dup)
		}
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal", Message: "Não foi possível criar o orçamento"})
		return
	}

	writeJSON(w, http.StatusCreated, q)
}

type quoteListItem struct {
	ID           string `json:"id"`
	Number       string `json:"number"`
	Date         string `json:"date"`
	CustomerName string `json:"customer_name"`
	Total        string `json:"total"`
	Status       string `json:"status"`
	StatusLabel  string `json:"status_label"`
}

// ListQuotes filters the store by free-text q and status; both empty means
// everything. All matches are returned, there is no pagination.
func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")

	matches := h.Quotes.Filter(query, status)
	out := make([]quoteListItem, 0, len(matches))
	for _, q := range matches {
		out = append(out, quoteListItem{
			ID:           q.ID,
			Number:       q.Number,
			Date:         format.ShortDate(q.Date),
			CustomerName: q.Customer.Name,
			Total:        format.BRL(q.Total),
			Status:       string(q.Status),
			StatusLabel:  q.Status.Label(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"quotes": out})
}

func (h *Handlers) GetQuote(w http.ResponseWriter, r *http.Request) {
	q, err := h.Quotes.FindByID(chi.URLParam(r, "id"))
	if err != nil {
		writeQuoteNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// PrintQuote returns the structured print document for the SPA's own
// print view.
func (h *Handlers) PrintQuote(w http.ResponseWriter, r *http.Request) {
	q, err := h.Quotes.FindByID(chi.URLParam(r, "id"))
	if err != nil {
		writeQuoteNotFound(w)
		return
	}
	doc := render.Project(q, h.Cfg.TaxRatePercent)
	writeJSON(w, http.StatusOK, doc)
}

// QuotePDF renders the print document to PDF.
func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	q, err := h.Quotes.FindByID(chi.URLParam(r, "id"))
	if err != nil {
		writeQuoteNotFound(w)
		return
	}

	doc := render.Project(q, h.Cfg.TaxRatePercent)
	pdfBytes, err := h.PDF.Generate(doc)
	if err != nil {
		log.Printf("quotes: pdf generation failed for %s: %v", q.Number, err)
		h.Events.Publish(event.PrintFailed, map[string]any{"id": q.ID, "number": q.Number})
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal", Message: "Falha ao gerar o PDF"})
		return
	}
	h.Events.Publish(event.PrintCompleted, map[string]any{"id": q.ID, "number": q.Number})

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="Orcamento-%s.pdf"`, q.Number))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
