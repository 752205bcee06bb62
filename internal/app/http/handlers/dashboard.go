package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"refrigeracao-miranda/go_backend/internal/domain/quote"
	"refrigeracao-miranda/go_backend/internal/format"
)

type dashboardResponse struct {
	DraftCount    int             `json:"draft_count"`
	SentCount     int             `json:"sent_count"`
	ApprovedCount int             `json:"approved_count"`
	RejectedCount int             `json:"rejected_count"`
	TotalRevenue  string          `json:"total_revenue"`
	LatestQuotes  []quoteListItem `json:"latest_quotes"`
}

// Dashboard summarizes the store: per-status counts, revenue over approved
// quotes, and the latest five quotes by date.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	counts := h.Quotes.CountByStatus()

	revenue := decimal.Zero
	for _, q := range h.Quotes.All() {
		if q.Status == quote.StatusApproved {
			revenue = revenue.Add(q.Total)
		}
	}

	latest := h.Quotes.ByDateDesc(5)
	items := make([]quoteListItem, 0, len(latest))
	for _, q := range latest {
		items = append(items, quoteListItem{
			ID:           q.ID,
			Number:       q.Number,
			Date:         format.ShortDate(q.Date),
			CustomerName: q.Customer.Name,
			Total:        format.BRL(q.Total),
			Status:       string(q.Status),
			StatusLabel:  q.Status.Label(),
		})
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		DraftCount:    counts[quote.StatusDraft],
		SentCount:     counts[quote.StatusSent],
		ApprovedCount: counts[quote.StatusApproved],
		RejectedCount: counts[quote.StatusRejected],
		TotalRevenue:  format.BRL(revenue),
		LatestQuotes:  items,
	})
}
