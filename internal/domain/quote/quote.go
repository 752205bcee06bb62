package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Label returns the pt-BR label shown on screens and on the printed document.
func (s Status) Label() string {
	switch s {
	case StatusSent:
		return "Enviado"
	case StatusApproved:
		return "Aprovado"
	case StatusRejected:
		return "Rejeitado"
	default:
		return "Rascunho"
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Voltage string

const (
	Voltage110  Voltage = "110v"
	Voltage220  Voltage = "220v"
	VoltageNone Voltage = ""
)

func (v Voltage) Valid() bool {
	return v == Voltage110 || v == Voltage220 || v == VoltageNone
}

// CustomerSnapshot is the resolved customer identity embedded on a quote.
// Inline fields and the catalog reference collapse into this single value at
// build time, so nothing downstream has to pick between representations.
type CustomerSnapshot struct {
	CustomerID string `json:"customer_id,omitempty"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
}

// Device describes the equipment the quote covers. All fields optional.
type Device struct {
	Type         string  `json:"type,omitempty"`
	Brand        string  `json:"brand,omitempty"`
	Model        string  `json:"model,omitempty"`
	SerialNumber string  `json:"serial_number,omitempty"`
	PurchaseDate string  `json:"purchase_date,omitempty"`
	Voltage      Voltage `json:"voltage,omitempty"`
}

func (d Device) Empty() bool {
	return d == Device{}
}

// CompanyInfo is the issuing-company profile snapshotted onto each quote at
// creation, so historical quotes keep the details the company had back then.
type CompanyInfo struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	TaxID     string `json:"tax_id"`
}

type Item struct {
	ID          string          `json:"id"`
	Code        string          `json:"code,omitempty"`
	ServiceID   string          `json:"service_id,omitempty"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// CostBreakdown carries informational cost figures shown on the summary.
// They never feed subtotal/total; the item lines are the pricing authority.
type CostBreakdown struct {
	Parts         decimal.Decimal  `json:"parts"`
	Labor         decimal.Decimal  `json:"labor"`
	Waterproofing *decimal.Decimal `json:"waterproofing,omitempty"`
	Transport     *decimal.Decimal `json:"transport,omitempty"`
}

type Quote struct {
	ID       string           `json:"id"`
	Number   string           `json:"number"`
	Date     time.Time        `json:"date"`
	Customer CustomerSnapshot `json:"customer"`
	Device   Device           `json:"device,omitzero"`
	Items    []Item           `json:"items"`

	Costs    CostBreakdown    `json:"costs"`
	Subtotal decimal.Decimal  `json:"subtotal"`
	Tax      *decimal.Decimal `json:"tax,omitempty"`
	Total    decimal.Decimal  `json:"total"`

	Notes   string       `json:"notes,omitempty"`
	Status  Status       `json:"status"`
	Company *CompanyInfo `json:"company_info,omitempty"`
}
