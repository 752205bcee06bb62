package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"refrigeracao-miranda/go_backend/internal/domain/quote"
)

type Config struct {
	HTTPAddr        string
	CORSAllowOrigin string

	// TaxRatePercent is the quote tax policy. Zero disables tax entirely.
	TaxRatePercent decimal.Decimal

	Company quote.CompanyInfo
}

func MustLoad() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	defaults := quote.DefaultCompany()
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		TaxRatePercent:  mustDecimal("TAX_RATE_PERCENT", "10"),
		Company: quote.CompanyInfo{
			Name:      env("COMPANY_NAME", defaults.Name),
			ShortName: env("COMPANY_SHORT_NAME", defaults.ShortName),
			Address:   env("COMPANY_ADDRESS", defaults.Address),
			Phone:     env("COMPANY_PHONE", defaults.Phone),
			Email:     env("COMPANY_EMAIL", defaults.Email),
			TaxID:     env("COMPANY_TAX_ID", defaults.TaxID),
		},
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustDecimal(k, def string) decimal.Decimal {
	raw := env(k, def)
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		log.Fatalf("invalid env %s=%q", k, raw)
	}
	return d
}
