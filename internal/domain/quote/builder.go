package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"refrigeracao-miranda/go_backend/internal/domain/catalog"
	"refrigeracao-miranda/go_backend/internal/domain/event"
)

// ItemInput is one {description, quantity, unitPrice} tuple from the form.
type ItemInput struct {
	Code        string          `json:"code"`
	ServiceID   string          `json:"service_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// BuildInput is everything the quote form submits. Customer identity may be
// a catalog reference (CustomerID), inline fields, or both; inline fields
// take precedence.
type BuildInput struct {
	CustomerID      string `json:"customer_id" validate:"-"`
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email" validate:"omitempty,email"`
	CustomerCity    string `json:"customer_city"`
	CustomerState   string `json:"customer_state"`

	Date   time.Time   `json:"date"`
	Device Device      `json:"device"`
	Items  []ItemInput `json:"items"`

	PartsCost         *decimal.Decimal `json:"parts_cost"`
	LaborCost         *decimal.Decimal `json:"labor_cost"`
	WaterproofingCost *decimal.Decimal `json:"waterproofing_cost"`
	TransportCost     *decimal.Decimal `json:"transport_cost"`

	Notes string `json:"notes"`
}

// Builder validates form input, derives the money fields and appends the
// finished quote to the store. It never partially commits: the store is only
// touched after validation and computation succeed.
type Builder struct {
	store    *Store
	catalog  *catalog.Store
	company  CompanyInfo
	taxRate  decimal.Decimal // percent, e.g. 10; zero disables tax
	events   event.Publisher
	validate *validator.Validate
	now      func() time.Time
}

func NewBuilder(store *Store, cat *catalog.Store, company CompanyInfo, taxRatePercent decimal.Decimal, events event.Publisher) *Builder {
	return &Builder{
		store:    store,
		catalog:  cat,
		company:  company,
		taxRate:  taxRatePercent,
		events:   events,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Build produces a draft quote from in and appends it to the store.
// Returns *ValidationError with per-field messages when the input is bad.
func (b *Builder) Build(in BuildInput) (*Quote, error) {
	if verr := b.validateInput(in); verr != nil {
		b.events.Publish(event.QuoteValidationFailed, map[string]any{"fields": verr.Fields})
		return nil, verr
	}

	snapshot := b.resolveCustomer(in)

	date := in.Date
	if date.IsZero() {
		date = b.now()
	}

	items := make([]Item, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, raw := range in.Items {
		total := raw.UnitPrice.Mul(decimal.NewFromInt(int64(raw.Quantity))).Round(2)
		items = append(items, Item{
			ID:          uuid.NewString(),
			Code:        strings.TrimSpace(raw.Code),
			ServiceID:   raw.ServiceID,
			Description: strings.TrimSpace(raw.Description),
			Quantity:    raw.Quantity,
			UnitPrice:   raw.UnitPrice,
			Total:       total,
		})
		subtotal = subtotal.Add(total)
	}

	q := &Quote{
		ID:       uuid.NewString(),
		Number:   b.store.NextNumber(date),
		Date:     date,
		Customer: snapshot,
		Device:   in.Device,
		Items:    items,
		Costs: CostBreakdown{
			Parts:         derefOrZero(in.PartsCost),
			Labor:         derefOrZero(in.LaborCost),
			Waterproofing: in.WaterproofingCost,
			Transport:     in.TransportCost,
		},
		Subtotal: subtotal,
		Total:    subtotal,
		Notes:    strings.TrimSpace(in.Notes),
		Status:   StatusDraft,
	}
	if b.taxRate.IsPositive() {
		tax := subtotal.Mul(b.taxRate).Div(decimal.NewFromInt(100)).Round(2)
		q.Tax = &tax
		q.Total = subtotal.Add(tax)
	}
	company := b.company
	q.Company = &company

	if err := b.store.Append(q); err != nil {
		return nil, err
	}
	b.events.Publish(event.QuoteCreated, map[string]any{"id": q.ID, "number": q.Number})
	return q, nil
}

// TaxRatePercent reports the active tax policy. Zero means tax is disabled.
func (b *Builder) TaxRatePercent() decimal.Decimal { return b.taxRate }

func (b *Builder) validateInput(in BuildInput) *ValidationError {
	fields := make(map[string]string)

	hasReference := false
	if in.CustomerID != "" && b.catalog != nil {
		if _, err := b.catalog.CustomerByID(in.CustomerID); err == nil {
			hasReference = true
		} else {
			fields["customer_id"] = "Cliente não encontrado"
		}
	}
	if strings.TrimSpace(in.CustomerName) == "" && !hasReference {
		fields["customer_name"] = "Cliente é obrigatório"
	}

	if err := b.validate.Struct(in); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			if fieldErr.Field() == "CustomerEmail" {
				fields["customer_email"] = "Email inválido"
			}
		}
	}

	if !in.Device.Voltage.Valid() {
		fields["device.voltage"] = "Voltagem deve ser 110v ou 220v"
	}

	if len(in.Items) == 0 {
		fields["items"] = "Adicione pelo menos um item"
	}
	for i, item := range in.Items {
		if strings.TrimSpace(item.Description) == "" {
			fields[fmt.Sprintf("items[%d].description", i)] = "Descrição é obrigatória"
		}
		if item.Quantity < 1 {
			fields[fmt.Sprintf("items[%d].quantity", i)] = "Quantidade deve ser maior que 0"
		}
		if item.UnitPrice.IsNegative() {
			fields[fmt.Sprintf("items[%d].unit_price", i)] = "Valor unitário não pode ser negativo"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// resolveCustomer collapses the dual customer representation into one
// snapshot. Inline fields win over the referenced catalog customer.
func (b *Builder) resolveCustomer(in BuildInput) CustomerSnapshot {
	snapshot := CustomerSnapshot{
		CustomerID: in.CustomerID,
		Name:       strings.TrimSpace(in.CustomerName),
		Address:    strings.TrimSpace(in.CustomerAddress),
		Phone:      strings.TrimSpace(in.CustomerPhone),
		Email:      strings.TrimSpace(in.CustomerEmail),
		City:       strings.TrimSpace(in.CustomerCity),
		State:      strings.TrimSpace(in.CustomerState),
	}
	if in.CustomerID == "" || b.catalog == nil {
		return snapshot
	}
	ref, err := b.catalog.CustomerByID(in.CustomerID)
	if err != nil {
		return snapshot
	}
	if snapshot.Name == "" {
		snapshot.Name = ref.Name
	}
	if snapshot.Address == "" {
		snapshot.Address = ref.Address
	}
	if snapshot.Phone == "" {
		snapshot.Phone = ref.Phone
	}
	if snapshot.Email == "" {
		snapshot.Email = ref.Email
	}
	return snapshot
}

func derefOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
