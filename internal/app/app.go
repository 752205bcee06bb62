package app

import (
	"log"
	"net/http"
	"time"

	"refrigeracao-miranda/go_backend/internal/app/config"
	apphttp "refrigeracao-miranda/go_backend/internal/app/http"
	"refrigeracao-miranda/go_backend/internal/app/http/handlers"
	"refrigeracao-miranda/go_backend/internal/domain/catalog"
	"refrigeracao-miranda/go_backend/internal/domain/event"
	"refrigeracao-miranda/go_backend/internal/domain/quote"
	pdfgen "refrigeracao-miranda/go_backend/internal/domain/quote/pdf/gofpdf"
	"refrigeracao-miranda/go_backend/internal/infra/seed"
)

func Run() {
	cfg := config.MustLoad()

	cat := catalog.NewStore(seed.Customers(), seed.Services())
	quotes := quote.NewStore()
	seed.Load(quotes)

	events := event.LogPublisher{}
	builder := quote.NewBuilder(quotes, cat, cfg.Company, cfg.TaxRatePercent, events)

	h := handlers.New(cfg, quotes, cat, builder, pdfgen.New(), events)
	router := apphttp.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
