package render

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refrigeracao-miranda/go_backend/internal/domain/quote"
)

func fixtureQuote() *quote.Quote {
	tax := decimal.NewFromInt(70)
	company := quote.DefaultCompany()
	return &quote.Quote{
		ID:     "1",
		Number: "RM0001-23",
		Date:   time.Date(2023, time.December, 10, 0, 0, 0, 0, time.UTC),
		Customer: quote.CustomerSnapshot{
			Name:    "Empresa ABC Ltda.",
			Address: "Av. Principal, 123, Centro",
			Phone:   "(11) 9999-8888",
			Email:   "contato@empresaabc.com",
		},
		Device: quote.Device{
			Type:    "Ar-condicionado Split",
			Brand:   "LG",
			Voltage: quote.Voltage220,
		},
		Items: []quote.Item{
			{ID: "1", Description: "Recarga de gás", Quantity: 2, UnitPrice: decimal.NewFromInt(350), Total: decimal.NewFromInt(700)},
		},
		Subtotal: decimal.NewFromInt(700),
		Tax:      &tax,
		Total:    decimal.NewFromInt(770),
		Notes:    "Serviço agendado para 15/12/2023",
		Status:   quote.StatusApproved,
		Company:  &company,
	}
}

func TestProjectSections(t *testing.T) {
	doc := Project(fixtureQuote(), decimal.NewFromInt(10))

	assert.Equal(t, "Refrigeração Miranda", doc.Header.Name)
	assert.Equal(t, "RM", doc.Header.ShortName)
	assert.Equal(t, "Soluções em Refrigeração", doc.Header.Tagline)
	assert.Equal(t, "ORÇAMENTO", doc.Header.Title)

	assert.Equal(t, "RM0001-23", doc.Identification.Number)
	assert.Equal(t, "10/12/2023", doc.Identification.Date)
	assert.Equal(t, "10 de dezembro de 2023", doc.Identification.DateLong)
	assert.Equal(t, "Aprovado", doc.Identification.StatusLabel)

	assert.Equal(t, "Empresa ABC Ltda.", doc.Customer.Name)

	require.NotNil(t, doc.Device)
	assert.Equal(t, "220v", doc.Device.Voltage)
	assert.Equal(t, "", doc.Device.Model, "absent fields render as blanks")

	require.Len(t, doc.Items, 1)
	row := doc.Items[0]
	assert.Equal(t, "—", row.Code, "missing code gets the placeholder")
	assert.Equal(t, 2, row.Quantity)
	assert.Equal(t, "Recarga de gás", row.Description)
	assert.Equal(t, "R$ 350,00", row.UnitPrice)
	assert.Equal(t, "R$ 700,00", row.Total)

	assert.Equal(t, "R$ 0,00", doc.Summary.PartsCost, "absent costs normalize to zero")
	assert.Equal(t, "R$ 0,00", doc.Summary.LaborCost)
	assert.Empty(t, doc.Summary.WaterproofingCost)
	assert.Empty(t, doc.Summary.TransportCost)
	assert.Equal(t, "R$ 700,00", doc.Summary.Subtotal)
	assert.Equal(t, "Impostos (10%)", doc.Summary.TaxLabel)
	assert.Equal(t, "R$ 70,00", doc.Summary.Tax)
	assert.Equal(t, "R$ 770,00", doc.Summary.Total)

	assert.Equal(t, "Serviço agendado para 15/12/2023", doc.Notes)
	assert.Equal(t, "Refrigeração Miranda - CNPJ: 12.345.678/0001-99", doc.Footer.CompanyLine)
	assert.Contains(t, doc.Footer.ContactLine, "contato@refrigeracaomiranda.com.br")
}

func TestProjectIsDeterministic(t *testing.T) {
	q := fixtureQuote()
	rate := decimal.NewFromInt(10)

	first, err := json.Marshal(Project(q, rate))
	require.NoError(t, err)
	second, err := json.Marshal(Project(q, rate))
	require.NoError(t, err)

	assert.Equal(t, first, second, "same quote must render byte-identically")
}

func TestProjectDefaultsCompanyProfile(t *testing.T) {
	q := fixtureQuote()
	q.Company = nil

	doc := Project(q, decimal.NewFromInt(10))
	assert.Equal(t, "Refrigeração Miranda", doc.Header.Name)
	assert.Equal(t, "CNPJ: 12.345.678/0001-99", quote.DefaultCompany().TaxID)
	assert.Contains(t, doc.Footer.CompanyLine, quote.DefaultCompany().TaxID)
}

func TestProjectOmitsEmptySections(t *testing.T) {
	q := fixtureQuote()
	q.Device = quote.Device{}
	q.Notes = ""
	q.Tax = nil
	q.Total = q.Subtotal

	doc := Project(q, decimal.Zero)
	assert.Nil(t, doc.Device)
	assert.Empty(t, doc.Notes)
	assert.Empty(t, doc.Summary.Tax)
	assert.Empty(t, doc.Summary.TaxLabel)
	assert.Equal(t, doc.Summary.Subtotal, doc.Summary.Total)
}

func TestProjectDerivesTaxLabelForLegacyQuotes(t *testing.T) {
	// tax policy turned off, but the stored quote still carries 10%
	doc := Project(fixtureQuote(), decimal.Zero)
	assert.Equal(t, "Impostos (10%)", doc.Summary.TaxLabel)
	assert.Equal(t, "R$ 70,00", doc.Summary.Tax)
}

func TestProjectKeepsItemCosts(t *testing.T) {
	q := fixtureQuote()
	transport := decimal.NewFromInt(80)
	q.Costs = quote.CostBreakdown{
		Parts:     decimal.NewFromInt(200),
		Labor:     decimal.NewFromInt(150),
		Transport: &transport,
	}

	doc := Project(q, decimal.NewFromInt(10))
	assert.Equal(t, "R$ 200,00", doc.Summary.PartsCost)
	assert.Equal(t, "R$ 150,00", doc.Summary.LaborCost)
	assert.Equal(t, "R$ 80,00", doc.Summary.TransportCost)
	assert.Empty(t, doc.Summary.WaterproofingCost)
}
