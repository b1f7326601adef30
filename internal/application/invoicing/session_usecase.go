package invoicing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asmitlabs/gst-invoice-api/internal/application/dto"
	"github.com/asmitlabs/gst-invoice-api/internal/domain"
	"github.com/asmitlabs/gst-invoice-api/internal/domain/catalog"
	"github.com/asmitlabs/gst-invoice-api/internal/domain/entity"
	"github.com/asmitlabs/gst-invoice-api/internal/domain/tax"
	"github.com/asmitlabs/gst-invoice-api/pkg/format"
)

// SessionUseCase owns the lifecycle of one invoice editing session: create
// with generated defaults, merge updates, add/remove items, reset. Derived
// totals are recomputed on every read, never cached.
type SessionUseCase struct {
	store SessionStore
}

// NewSessionUseCase builds the use case.
func NewSessionUseCase(store SessionStore) *SessionUseCase {
	return &SessionUseCase{store: store}
}

// NewInvoiceNumber generates a number in the INV-YYMM-RRR form: two-digit
// year, zero-padded month, zero-padded random value in [0,999].
func NewInvoiceNumber() string {
	return fmt.Sprintf("INV-%s-%03d", time.Now().Format("0601"), rand.IntN(1000))
}

// newInvoice builds a fresh invoice with catalog defaults and today's date.
func newInvoice() *entity.Invoice {
	return &entity.Invoice{
		BusinessName:  catalog.DefaultBusinessName,
		ShopType:      catalog.DefaultShopType,
		InvoiceNumber: NewInvoiceNumber(),
		InvoiceDate:   time.Now().Format("2006-01-02"),
		PaymentMode:   catalog.DefaultPaymentMode,
		TaxType:       entity.TaxTypeCGSTSGST,
		Items:         []entity.InvoiceItem{},
	}
}

// CreateSession opens a new editing session holding a fresh invoice.
func (uc *SessionUseCase) CreateSession(_ context.Context) *dto.SessionResponse {
	inv := newInvoice()
	id := uc.store.Create(inv)
	return &dto.SessionResponse{SessionID: id, Invoice: toResponse(inv.Snapshot())}
}

// GetInvoice returns the session's invoice with fresh calculations.
func (uc *SessionUseCase) GetInvoice(_ context.Context, sessionID string) (*dto.InvoiceResponse, error) {
	inv, ok := uc.store.Get(sessionID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(inv)
	return &resp, nil
}

// UpdateInvoice shallow-merges the supplied fields into the invoice. The
// caller is trusted; unknown shop types or tax types are ignored rather than
// rejected, matching the silent-rejection policy of the form.
func (uc *SessionUseCase) UpdateInvoice(_ context.Context, sessionID string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, ok := uc.store.Mutate(sessionID, func(inv *entity.Invoice) {
		if in.BusinessName != nil {
			inv.BusinessName = *in.BusinessName
		}
		if in.ShopType != nil {
			if st, found := catalog.ShopTypeByName(*in.ShopType); found {
				inv.ShopType = st
			}
		}
		if in.InvoiceNumber != nil {
			inv.InvoiceNumber = *in.InvoiceNumber
		}
		if in.InvoiceDate != nil {
			inv.InvoiceDate = *in.InvoiceDate
		}
		if in.PaymentMode != nil {
			inv.PaymentMode = *in.PaymentMode
		}
		if in.TaxType != nil {
			if tt := entity.TaxType(*in.TaxType); tt.Valid() {
				inv.TaxType = tt
			}
		}
		if in.BusinessDetails != nil {
			inv.BusinessDetails = entity.BusinessDetails{
				Branch:        in.BusinessDetails.Branch,
				Address:       in.BusinessDetails.Address,
				ContactNumber: in.BusinessDetails.ContactNumber,
				GSTIN:         in.BusinessDetails.GSTIN,
				CashierName:   in.BusinessDetails.CashierName,
				CounterNumber: in.BusinessDetails.CounterNumber,
			}
		}
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(inv)
	return &resp, nil
}

// SelectBusiness applies a preset or, for the "Custom Business Name"
// sentinel, stores the supplied custom name as the effective display name
// while retaining the custom-name buffer. Switching back to a preset clears
// the buffer.
func (uc *SessionUseCase) SelectBusiness(_ context.Context, sessionID, name, customName string) (*dto.InvoiceResponse, error) {
	inv, ok := uc.store.Mutate(sessionID, func(inv *entity.Invoice) {
		if name == catalog.CustomBusinessName {
			inv.CustomBusinessName = customName
			inv.BusinessName = customName
			return
		}
		inv.BusinessName = name
		inv.CustomBusinessName = ""
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(inv)
	return &resp, nil
}

// AddItem appends a line item with a fresh id and a line total fixed at
// creation. Invalid input (empty name, unparseable or non-positive quantity
// or price) is a silent no-op: the invoice is returned unchanged and no
// error surfaces.
func (uc *SessionUseCase) AddItem(_ context.Context, sessionID string, in dto.AddItemRequest) (*dto.InvoiceResponse, error) {
	name := strings.TrimSpace(in.ProductName)
	qty, qtyErr := decimal.NewFromString(strings.TrimSpace(in.Quantity))
	price, priceErr := decimal.NewFromString(strings.TrimSpace(in.PricePerUnit))
	valid := name != "" && qtyErr == nil && priceErr == nil &&
		qty.IsPositive() && price.IsPositive()

	inv, ok := uc.store.Mutate(sessionID, func(inv *entity.Invoice) {
		if !valid {
			return
		}
		inv.Items = append(inv.Items, entity.InvoiceItem{
			ID:           uuid.New().String(),
			ProductName:  name,
			Quantity:     qty,
			PricePerUnit: price,
			LineTotal:    qty.Mul(price),
		})
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(inv)
	return &resp, nil
}

// RemoveItem deletes the item with the given id, preserving the order of
// the remaining items. An absent id is an idempotent no-op.
func (uc *SessionUseCase) RemoveItem(_ context.Context, sessionID, itemID string) (*dto.InvoiceResponse, error) {
	inv, ok := uc.store.Mutate(sessionID, func(inv *entity.Invoice) {
		for i, it := range inv.Items {
			if it.ID == itemID {
				inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
				return
			}
		}
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(inv)
	return &resp, nil
}

// Reset discards all session state and re-runs the create semantics: fresh
// invoice number and date, catalog defaults, empty item list.
func (uc *SessionUseCase) Reset(_ context.Context, sessionID string) (*dto.InvoiceResponse, error) {
	inv, ok := uc.store.Mutate(sessionID, func(inv *entity.Invoice) {
		*inv = *newInvoice()
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(inv)
	return &resp, nil
}

// Catalog returns the fixed selector data.
func (uc *SessionUseCase) Catalog(_ context.Context) *dto.CatalogResponse {
	shopTypes := make([]dto.ShopTypeResponse, 0, len(catalog.ShopTypes))
	for _, st := range catalog.ShopTypes {
		shopTypes = append(shopTypes, dto.ShopTypeResponse{Name: st.Name, GSTRate: st.GSTRate})
	}
	return &dto.CatalogResponse{
		ShopTypes:    shopTypes,
		Businesses:   catalog.Businesses,
		PaymentModes: catalog.PaymentModes,
	}
}

// toResponse maps an invoice snapshot plus freshly computed totals to the
// response DTO. Display strings use the en-IN preview formatter; the PDF
// uses its own.
func toResponse(inv entity.Invoice) dto.InvoiceResponse {
	calc := tax.Compute(inv.Items, inv.ShopType.GSTRate, inv.TaxType)

	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			ID:                  it.ID,
			ProductName:         it.ProductName,
			Quantity:            it.Quantity,
			PricePerUnit:        it.PricePerUnit,
			LineTotal:           it.LineTotal,
			PricePerUnitDisplay: format.Rupees(it.PricePerUnit),
			LineTotalDisplay:    format.Rupees(it.LineTotal),
		})
	}

	return dto.InvoiceResponse{
		BusinessName:       inv.BusinessName,
		CustomBusinessName: inv.CustomBusinessName,
		ShopType:           dto.ShopTypeResponse{Name: inv.ShopType.Name, GSTRate: inv.ShopType.GSTRate},
		BusinessDetails: dto.BusinessDetailsRequest{
			Branch:        inv.BusinessDetails.Branch,
			Address:       inv.BusinessDetails.Address,
			ContactNumber: inv.BusinessDetails.ContactNumber,
			GSTIN:         inv.BusinessDetails.GSTIN,
			CashierName:   inv.BusinessDetails.CashierName,
			CounterNumber: inv.BusinessDetails.CounterNumber,
		},
		InvoiceNumber:      inv.InvoiceNumber,
		InvoiceDate:        inv.InvoiceDate,
		InvoiceDateDisplay: format.DisplayDate(inv.InvoiceDate),
		PaymentMode:        inv.PaymentMode,
		TaxType:            string(inv.TaxType),
		TaxTypeLabel:       inv.TaxType.Label(),
		Items:              items,
		Calculations: dto.CalculationsResponse{
			Subtotal:          calc.Subtotal,
			TaxAmount:         calc.TaxAmount,
			GrandTotal:        calc.GrandTotal,
			CGST:              calc.CGST,
			SGST:              calc.SGST,
			IGST:              calc.IGST,
			GSTRate:           calc.GSTRate,
			SubtotalDisplay:   format.Rupees(calc.Subtotal),
			GrandTotalDisplay: format.Rupees(calc.GrandTotal),
		},
	}
}
