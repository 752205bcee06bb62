package quote

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refrigeracao-miranda/go_backend/internal/domain/catalog"
	"refrigeracao-miranda/go_backend/internal/domain/event"
)

func testCatalog() *catalog.Store {
	return catalog.NewStore(
		[]catalog.Customer{
			{ID: "1", Name: "Empresa ABC Ltda.", Address: "Av. Principal, 123, Centro", Phone: "(11) 9999-8888", Email: "contato@empresaabc.com"},
		},
		[]catalog.Service{
			{ID: "5", Description: "Recarga de gás refrigerante", Price: decimal.NewFromInt(350)},
		},
	)
}

func testBuilder(store *Store, taxPercent int64) *Builder {
	return NewBuilder(store, testCatalog(), DefaultCompany(), decimal.NewFromInt(taxPercent), event.Discard{})
}

func TestBuildComputesTotals(t *testing.T) {
	store := NewStore()
	b := testBuilder(store, 10)

	q, err := b.Build(BuildInput{
		CustomerName: "Empresa ABC",
		Date:         time.Date(2023, time.December, 10, 0, 0, 0, 0, time.UTC),
		Items: []ItemInput{
			{Description: "Recarga de gás", Quantity: 2, UnitPrice: decimal.NewFromInt(350)},
		},
	})
	require.NoError(t, err)

	assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(700)), "subtotal = %s", q.Subtotal)
	require.NotNil(t, q.Tax)
	assert.True(t, q.Tax.Equal(decimal.NewFromInt(70)), "tax = %s", q.Tax)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(770)), "total = %s", q.Total)
	assert.Equal(t, StatusDraft, q.Status)

	require.Len(t, q.Items, 1)
	assert.True(t, q.Items[0].Total.Equal(decimal.NewFromInt(700)))
}

func TestBuildSubtotalSumsItemTotals(t *testing.T) {
	store := NewStore()
	b := testBuilder(store, 0)

	q, err := b.Build(BuildInput{
		CustomerName: "Cliente",
		Items: []ItemInput{
			{Description: "Manutenção preventiva", Quantity: 3, UnitPrice: decimal.NewFromInt(250)},
			{Description: "Recarga de gás", Quantity: 2, UnitPrice: decimal.NewFromInt(350)},
		},
	})
	require.NoError(t, err)

	assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(1450)))
	assert.Nil(t, q.Tax, "tax disabled at rate 0")
	assert.True(t, q.Total.Equal(q.Subtotal), "total == subtotal without tax")
}

func TestBuildRoundsItemTotals(t *testing.T) {
	store := NewStore()
	b := testBuilder(store, 10)

	price := decimal.RequireFromString("33.335")
	q, err := b.Build(BuildInput{
		CustomerName: "Cliente",
		Items:        []ItemInput{{Description: "Diagnóstico", Quantity: 1, UnitPrice: price}},
	})
	require.NoError(t, err)

	// half-up at currency precision
	assert.Equal(t, "33.34", q.Items[0].Total.StringFixed(2))
	assert.Equal(t, "3.33", q.Tax.StringFixed(2))
	assert.True(t, q.Total.Equal(q.Subtotal.Add(*q.Tax)))
}

func TestBuildZeroItemsFailsWithoutCommit(t *testing.T) {
	store := NewStore()
	b := testBuilder(store, 10)

	_, err := b.Build(BuildInput{CustomerName: "Cliente"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items")
	assert.Empty(t, store.All(), "store must not be touched on validation failure")
}

func TestBuildFieldValidation(t *testing.T) {
	store := NewStore()
	b := testBuilder(store, 10)

	_, err := b.Build(BuildInput{
		CustomerEmail: "not-an-email",
		Items: []ItemInput{
			{Description: "", Quantity: 0, UnitPrice: decimal.NewFromInt(-1)},
		},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	assert.Contains(t, verr.Fields, "customer_name")
	assert.Contains(t, verr.Fields, "customer_email")
	assert.Contains(t, verr.Fields, "items[0].description")
	assert.Contains(t, verr.Fields, "items[0].quantity")
	assert.Contains(t, verr.Fields, "items[0].unit_price")
	assert.Empty(t, store.All())
}

func TestBuildResolvesCustomerReference(t *testing.T) {
	store := NewStore()
	b := testBuilder(store, 10)

	q, err := b.Build(BuildInput{
		CustomerID: "1",
		Items:      []ItemInput{{Description: "Recarga de gás", Quantity: 1, UnitPrice: decimal.NewFromInt(350)}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Empresa ABC Ltda.", q.Customer.Name)
	assert.Equal(t, "Av. Principal, 123, Centro", q.Customer.Address)
	assert.Equal(t, "contato@empresaabc.com", q.Customer.Email)
}

func TestBuildInlineFieldsWinOverReference(t *testing.T) {
	store := NewStore()
	b := testBuilder(store, 10)

	q, err := b.Build(BuildInput{
		CustomerID:    "1",
		CustomerName:  "Filial Zona Sul",
		CustomerPhone: "(11) 5555-4444",
		Items:         []ItemInput{{Description: "Reparo", Quantity: 1, UnitPrice: decimal.NewFromInt(800)}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Filial Zona Sul", q.Customer.Name)
	assert.Equal(t, "(11) 5555-4444", q.Customer.Phone)
	// gaps still fill from the referenced customer
	assert.Equal(t, "Av. Principal, 123, Centro", q.Customer.Address)
}

func TestBuildUnknownCustomerReference(t *testing.T) {
	store := NewStore()
	b := testBuilder(store, 10)

	_, err := b.Build(BuildInput{
		CustomerID: "999",
		Items:      []ItemInput{{Description: "Reparo", Quantity: 1, UnitPrice: decimal.NewFromInt(100)}},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "customer_id")
}

func TestBuildAssignsIdentityAndSnapshot(t *testing.T) {
	store := NewStore()
	b := testBuilder(store, 10)

	date := time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC)
	first, err := b.Build(BuildInput{
		CustomerName: "Cliente A",
		Date:         date,
		Items:        []ItemInput{{Description: "Reparo", Quantity: 1, UnitPrice: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)
	second, err := b.Build(BuildInput{
		CustomerName: "Cliente B",
		Date:         date,
		Items:        []ItemInput{{Description: "Reparo", Quantity: 1, UnitPrice: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "RM0001-23", first.Number)
	assert.Equal(t, "RM0002-23", second.Number)

	require.NotNil(t, first.Company)
	assert.Equal(t, "Refrigeração Miranda", first.Company.Name)

	stored, err := store.FindByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, stored)
}

func TestBuildNormalizesCostBreakdown(t *testing.T) {
	store := NewStore()
	b := testBuilder(store, 10)

	transport := decimal.NewFromInt(80)
	q, err := b.Build(BuildInput{
		CustomerName:  "Cliente",
		TransportCost: &transport,
		Items:         []ItemInput{{Description: "Reparo", Quantity: 1, UnitPrice: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)

	assert.True(t, q.Costs.Parts.IsZero())
	assert.True(t, q.Costs.Labor.IsZero())
	assert.Nil(t, q.Costs.Waterproofing)
	require.NotNil(t, q.Costs.Transport)
	assert.True(t, q.Costs.Transport.Equal(transport))
	// informational figures never feed the total
	assert.True(t, q.Total.Equal(decimal.NewFromInt(110)))
}
