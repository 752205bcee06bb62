// Package render projects a quote into the fixed-layout printable document.
// The projection is pure: the same quote always yields the same document.
package render

import (
	"github.com/shopspring/decimal"

	"refrigeracao-miranda/go_backend/internal/domain/quote"
	"refrigeracao-miranda/go_backend/internal/format"
)

// Document is the structured print model. Section order is part of the
// contract: header, identification, customer, device, items, summary,
// notes, footer.
type Document struct {
	Header         Header    `json:"header"`
	Identification Identity  `json:"identification"`
	Customer       Customer  `json:"customer"`
	Device         *Device   `json:"device,omitempty"`
	Items          []ItemRow `json:"items"`
	Summary        Summary   `json:"summary"`
	Notes          string    `json:"notes,omitempty"`
	Footer         Footer    `json:"footer"`
}

type Header struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Tagline   string `json:"tagline"`
	Title     string `json:"title"`
}

type Identity struct {
	Number      string `json:"number"`
	Date        string `json:"date"`
	DateLong    string `json:"date_long"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type Device struct {
	Type         string `json:"type"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	PurchaseDate string `json:"purchase_date"`
	Voltage      string `json:"voltage"`
}

type ItemRow struct {
	Code        string `json:"code"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

// Summary is the fully-normalized cost block: optional figures collapse to
// formatted values here, once, instead of scattering fallbacks through the
// print surfaces.
type Summary struct {
	PartsCost         string `json:"parts_cost"`
	LaborCost         string `json:"labor_cost"`
	WaterproofingCost string `json:"waterproofing_cost,omitempty"`
	TransportCost     string `json:"transport_cost,omitempty"`
	Subtotal          string `json:"subtotal"`
	TaxLabel          string `json:"tax_label,omitempty"`
	Tax               string `json:"tax,omitempty"`
	Total             string `json:"total"`
}

type Footer struct {
	PaymentTerms string `json:"payment_terms"`
	Warranty     string `json:"warranty"`
	Signature    string `json:"signature"`
	CompanyLine  string `json:"company_line"`
	AddressLine  string `json:"address_line"`
	ContactLine  string `json:"contact_line"`
}

const (
	paymentTerms    = "Condições de pagamento: 50% na aprovação e 50% na conclusão do serviço."
	warrantyTerms   = "Garantia de 90 dias sobre os serviços executados."
	signatureLine   = "Declaro que aceito os termos deste orçamento.  Assinatura: ______________________  Data: ____/____/______"
	codePlaceholder = "—"
)

// Project builds the document for q. Tax rate percent only labels the tax
// line; the quote's stored tax value is authoritative.
func Project(q *quote.Quote, taxRatePercent decimal.Decimal) Document {
	company := quote.DefaultCompany()
	if q.Company != nil {
		company = *q.Company
	}

	doc := Document{
		Header: Header{
			Name:      company.Name,
			ShortName: company.ShortName,
			Tagline:   quote.CompanyTagline,
			Title:     "ORÇAMENTO",
		},
		Identification: Identity{
			Number:      q.Number,
			Date:        format.ShortDate(q.Date),
			DateLong:    format.LongDate(q.Date),
			Status:      string(q.Status),
			StatusLabel: q.Status.Label(),
		},
		Customer: Customer{
			Name:    q.Customer.Name,
			Address: q.Customer.Address,
			Phone:   q.Customer.Phone,
			Email:   q.Customer.Email,
		},
		Notes: q.Notes,
		Footer: Footer{
			PaymentTerms: paymentTerms,
			Warranty:     warrantyTerms,
			Signature:    signatureLine,
			CompanyLine:  company.Name + " - " + company.TaxID,
			AddressLine:  company.Address,
			ContactLine:  "Tel: " + company.Phone + " - Email: " + company.Email,
		},
	}

	if !q.Device.Empty() {
		doc.Device = &Device{
			Type:         q.Device.Type,
			Brand:        q.Device.Brand,
			Model:        q.Device.Model,
			SerialNumber: q.Device.SerialNumber,
			PurchaseDate: q.Device.PurchaseDate,
			Voltage:      string(q.Device.Voltage),
		}
	}

	doc.Items = make([]ItemRow, 0, len(q.Items))
	for _, item := range q.Items {
		code := item.Code
		if code == "" {
			code = codePlaceholder
		}
		doc.Items = append(doc.Items, ItemRow{
			Code:        code,
			Quantity:    item.Quantity,
			Description: item.Description,
			UnitPrice:   format.BRL(item.UnitPrice),
			Total:       format.BRL(item.Total),
		})
	}

	doc.Summary = Summary{
		PartsCost: format.BRL(q.Costs.Parts),
		LaborCost: format.BRL(q.Costs.Labor),
		Subtotal:  format.BRL(q.Subtotal),
		Total:     format.BRL(q.Total),
	}
	if q.Costs.Waterproofing != nil {
		doc.Summary.WaterproofingCost = format.BRL(*q.Costs.Waterproofing)
	}
	if q.Costs.Transport != nil {
		doc.Summary.TransportCost = format.BRL(*q.Costs.Transport)
	}
	if q.Tax != nil {
		percent := taxRatePercent
		if !percent.IsPositive() && q.Subtotal.IsPositive() {
			// Quote predates the current tax policy; derive the label
			// from its own stored values.
			percent = q.Tax.Div(q.Subtotal).Mul(decimal.NewFromInt(100)).Round(0)
		}
		doc.Summary.TaxLabel = "Impostos (" + percent.String() + "%)"
		doc.Summary.Tax = format.BRL(*q.Tax)
	}
	return doc
}
