package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"refrigeracao-miranda/go_backend/internal/app/config"
	"refrigeracao-miranda/go_backend/internal/app/http/handlers"
	"refrigeracao-miranda/go_backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", h.ListQuotes)
			r.Post("/", h.CreateQuote)
			r.Get("/{id}", h.GetQuote)
			r.Get("/{id}/print", h.PrintQuote)
			r.Get("/{id}/pdf", h.QuotePDF)
		})

		r.Get("/customers", h.ListCustomers)
		r.Get("/services", h.ListServices)
		r.Get("/dashboard", h.Dashboard)
	})

	return r
}
