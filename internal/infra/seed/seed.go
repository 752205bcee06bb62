// Package seed supplies the initial customer, service and quote collections
// loaded into the in-memory stores at startup.
package seed

import (
	"log"
	"time"

	"github.com/shopspring/decimal"

	"refrigeracao-miranda/go_backend/internal/domain/catalog"
	"refrigeracao-miranda/go_backend/internal/domain/quote"
)

func Customers() []catalog.Customer {
	return []catalog.Customer{
		{ID: "1", Name: "Empresa ABC Ltda.", Address: "Av. Principal, 123, Centro", Phone: "(11) 9999-8888", Email: "contato@empresaabc.com"},
		{ID: "2", Name: "Restaurante Sabor Certo", Address: "Rua das Flores, 456, Jardim", Phone: "(11) 3333-2222", Email: "admin@saborcerto.com"},
		{ID: "3", Name: "Supermercado Economia", Address: "Av. Comercial, 789, Vila Nova", Phone: "(11) 7777-6666", Email: "compras@economia.com"},
	}
}

func Services() []catalog.Service {
	return []catalog.Service{
		{ID: "1", Description: "Manutenção preventiva em ar-condicionado split", Price: dec(250)},
		{ID: "2", Description: "Instalação de ar-condicionado split até 12000 BTUs", Price: dec(450)},
		{ID: "3", Description: "Limpeza de sistema de refrigeração comercial", Price: dec(600)},
		{ID: "4", Description: "Reparo em compressor", Price: dec(800)},
		{ID: "5", Description: "Recarga de gás refrigerante", Price: dec(350)},
		{ID: "6", Description: "Diagnóstico técnico", Price: dec(150)},
	}
}

// Quotes returns the three sample quotes. Each already carries the default
// company snapshot, like quotes created through the builder would.
func Quotes() []*quote.Quote {
	company := quote.DefaultCompany()
	customers := Customers()

	q1 := &quote.Quote{
		ID:     "1",
		Number: "RM0001-23",
		Date:   date(2023, time.December, 10),
		Customer: quote.CustomerSnapshot{
			CustomerID: customers[0].ID,
			Name:       customers[0].Name,
			Address:    customers[0].Address,
			Phone:      customers[0].Phone,
			Email:      customers[0].Email,
		},
		Device: quote.Device{
			Type:         "Ar-condicionado Split",
			Brand:        "LG",
			Model:        "Inverter 12000 BTUs",
			SerialNumber: "LG123456789",
			Voltage:      quote.Voltage220,
		},
		Items: []quote.Item{
			{ID: "1", ServiceID: "1", Description: "Manutenção preventiva em ar-condicionado split", Quantity: 3, UnitPrice: dec(250), Total: dec(750)},
			{ID: "2", ServiceID: "5", Description: "Recarga de gás refrigerante", Quantity: 2, UnitPrice: dec(350), Total: dec(700)},
		},
		Subtotal: dec(1450),
		Tax:      decPtr(145),
		Total:    dec(1595),
		Notes:    "Serviço agendado para 15/12/2023",
		Status:   quote.StatusApproved,
		Company:  &company,
	}

	q2 := &quote.Quote{
		ID:     "2",
		Number: "RM0002-23",
		Date:   date(2023, time.December, 15),
		Customer: quote.CustomerSnapshot{
			CustomerID: customers[1].ID,
			Name:       customers[1].Name,
			Address:    customers[1].Address,
			Phone:      customers[1].Phone,
			Email:      customers[1].Email,
		},
		Device: quote.Device{
			Type:         "Freezer Comercial",
			Brand:        "Metalfrio",
			Model:        "VF55D",
			SerialNumber: "MF987654321",
			Voltage:      quote.Voltage110,
		},
		Items: []quote.Item{
			{ID: "1", ServiceID: "3", Description: "Limpeza de sistema de refrigeração comercial", Quantity: 1, UnitPrice: dec(600), Total: dec(600)},
		},
		Subtotal: dec(600),
		Tax:      decPtr(60),
		Total:    dec(660),
		Notes:    "Cliente solicitou urgência",
		Status:   quote.StatusSent,
		Company:  &company,
	}

	q3 := &quote.Quote{
		ID:     "3",
		Number: "RM0003-23",
		Date:   date(2023, time.December, 20),
		Customer: quote.CustomerSnapshot{
			CustomerID: customers[2].ID,
			Name:       customers[2].Name,
			Address:    customers[2].Address,
			Phone:      customers[2].Phone,
			Email:      customers[2].Email,
		},
		Device: quote.Device{
			Type:         "Câmara Fria",
			Brand:        "Danfoss",
			Model:        "CF-2000",
			SerialNumber: "DF123987456",
			Voltage:      quote.Voltage220,
		},
		Items: []quote.Item{
			{ID: "1", ServiceID: "4", Description: "Reparo em compressor", Quantity: 1, UnitPrice: dec(800), Total: dec(800)},
			{ID: "2", ServiceID: "6", Description: "Diagnóstico técnico", Quantity: 1, UnitPrice: dec(150), Total: dec(150)},
		},
		Subtotal: dec(950),
		Tax:      decPtr(95),
		Total:    dec(1045),
		Notes:    "Garantia de 6 meses para o serviço",
		Status:   quote.StatusDraft,
		Company:  &company,
	}

	return []*quote.Quote{q1, q2, q3}
}

// Load fills the quote store with the sample quotes.
func Load(store *quote.Store) {
	for _, q := range Quotes() {
		if err := store.Append(q); err != nil {
			log.Printf("seed: skip quote %s: %v", q.Number, err)
		}
	}
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
