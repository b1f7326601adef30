package invoicing_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmitlabs/gst-invoice-api/internal/application/dto"
	"github.com/asmitlabs/gst-invoice-api/internal/application/invoicing"
	"github.com/asmitlabs/gst-invoice-api/internal/domain"
	"github.com/asmitlabs/gst-invoice-api/internal/domain/catalog"
	"github.com/asmitlabs/gst-invoice-api/internal/infrastructure/memory"
)

var invoiceNumberPattern = regexp.MustCompile(`^INV-\d{2}\d{2}-\d{3}$`)

func newUseCase() (*invoicing.SessionUseCase, string) {
	uc := invoicing.NewSessionUseCase(memory.NewSessionStore(time.Hour))
	sess := uc.CreateSession(context.Background())
	return uc, sess.SessionID
}

func addReferenceItems(t *testing.T, uc *invoicing.SessionUseCase, id string) {
	t.Helper()
	_, err := uc.AddItem(context.Background(), id, dto.AddItemRequest{
		ProductName: "Product A", Quantity: "2", PricePerUnit: "100.00",
	})
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), id, dto.AddItemRequest{
		ProductName: "Product B", Quantity: "1", PricePerUnit: "250.00",
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Session creation and defaults
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSession_GeneratedDefaults(t *testing.T) {
	uc := invoicing.NewSessionUseCase(memory.NewSessionStore(time.Hour))
	sess := uc.CreateSession(context.Background())

	require.NotEmpty(t, sess.SessionID)
	inv := sess.Invoice

	assert.Regexp(t, invoiceNumberPattern, inv.InvoiceNumber,
		"invoice number must follow INV-YYMM-RRR")
	assert.Equal(t, time.Now().Format("2006-01-02"), inv.InvoiceDate,
		"a fresh invoice is dated today")
	assert.Equal(t, "Asmit Electronics", inv.BusinessName)
	assert.Equal(t, "Electronics", inv.ShopType.Name, "default shop type is the second catalog entry")
	assert.True(t, inv.ShopType.GSTRate.Equal(decimal.RequireFromString("0.18")))
	assert.Equal(t, "Cash", inv.PaymentMode)
	assert.Equal(t, "cgst_sgst", inv.TaxType)
	assert.Empty(t, inv.Items)
}

func TestGetInvoice_UnknownSession(t *testing.T) {
	uc := invoicing.NewSessionUseCase(memory.NewSessionStore(time.Hour))
	_, err := uc.GetInvoice(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Adding items
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_FixesLineTotalAtCreation(t *testing.T) {
	uc, id := newUseCase()

	resp, err := uc.AddItem(context.Background(), id, dto.AddItemRequest{
		ProductName: "  USB Cable  ", Quantity: "2", PricePerUnit: "149.50",
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	it := resp.Items[0]
	assert.NotEmpty(t, it.ID)
	assert.Equal(t, "USB Cable", it.ProductName, "product name is trimmed")
	assert.True(t, it.LineTotal.Equal(decimal.RequireFromString("299")),
		"line total = quantity * price, fixed at creation")
}

func TestAddItem_SilentlyRejectsInvalidInput(t *testing.T) {
	uc, id := newUseCase()
	addReferenceItems(t, uc, id)

	invalid := []dto.AddItemRequest{
		{ProductName: "   ", Quantity: "1", PricePerUnit: "10"},      // blank name
		{ProductName: "X", Quantity: "0", PricePerUnit: "10"},        // zero quantity
		{ProductName: "X", Quantity: "-5", PricePerUnit: "10"},       // negative quantity
		{ProductName: "X", Quantity: "1", PricePerUnit: "0"},         // zero price
		{ProductName: "X", Quantity: "two", PricePerUnit: "10"},      // non-numeric quantity
		{ProductName: "X", Quantity: "1", PricePerUnit: "a lot"},     // non-numeric price
	}

	for _, in := range invalid {
		resp, err := uc.AddItem(context.Background(), id, in)
		require.NoError(t, err, "invalid input must not surface an error")
		assert.Len(t, resp.Items, 2,
			"item sequence must be unchanged for input %+v", in)
	}
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	uc, id := newUseCase()
	addReferenceItems(t, uc, id)

	resp, err := uc.GetInvoice(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Product A", resp.Items[0].ProductName)
	assert.Equal(t, "Product B", resp.Items[1].ProductName)
}

func TestAddItem_AllowsFractionalQuantity(t *testing.T) {
	uc, id := newUseCase()

	resp, err := uc.AddItem(context.Background(), id, dto.AddItemRequest{
		ProductName: "Loose rice", Quantity: "2.5", PricePerUnit: "44.20",
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].LineTotal.Equal(decimal.RequireFromString("110.5")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Removing items
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveItem_RemovesExactlyOneAndKeepsOrder(t *testing.T) {
	uc, id := newUseCase()
	addReferenceItems(t, uc, id)
	_, err := uc.AddItem(context.Background(), id, dto.AddItemRequest{
		ProductName: "Product C", Quantity: "3", PricePerUnit: "10",
	})
	require.NoError(t, err)

	resp, err := uc.GetInvoice(context.Background(), id)
	require.NoError(t, err)
	middle := resp.Items[1].ID

	resp, err = uc.RemoveItem(context.Background(), id, middle)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2, "removing a present id shortens the sequence by one")
	assert.Equal(t, "Product A", resp.Items[0].ProductName)
	assert.Equal(t, "Product C", resp.Items[1].ProductName,
		"order of the remaining items is unchanged")
}

func TestRemoveItem_UnknownIDIsNoOp(t *testing.T) {
	uc, id := newUseCase()
	addReferenceItems(t, uc, id)

	resp, err := uc.RemoveItem(context.Background(), id, "not-an-item")
	require.NoError(t, err, "removing an absent id must not error")
	assert.Len(t, resp.Items, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Business selection
// ──────────────────────────────────────────────────────────────────────────────

func TestSelectBusiness_CustomNameAndBack(t *testing.T) {
	uc, id := newUseCase()

	resp, err := uc.SelectBusiness(context.Background(), id, catalog.CustomBusinessName, "Joe's Mart")
	require.NoError(t, err)
	assert.Equal(t, "Joe's Mart", resp.BusinessName,
		"custom name becomes the effective display name")
	assert.Equal(t, "Joe's Mart", resp.CustomBusinessName,
		"custom-name buffer is retained")

	resp, err = uc.SelectBusiness(context.Background(), id, "Asmit Pharmacy", "")
	require.NoError(t, err)
	assert.Equal(t, "Asmit Pharmacy", resp.BusinessName,
		"switching back to a preset restores the preset name")
	assert.Empty(t, resp.CustomBusinessName,
		"switching back to a preset clears the custom-name buffer")
}

// ──────────────────────────────────────────────────────────────────────────────
// Merge updates
// ──────────────────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

func TestUpdateInvoice_MergesOnlySuppliedFields(t *testing.T) {
	uc, id := newUseCase()

	resp, err := uc.UpdateInvoice(context.Background(), id, dto.UpdateInvoiceRequest{
		PaymentMode: strPtr("UPI"),
		TaxType:     strPtr("igst"),
	})
	require.NoError(t, err)
	assert.Equal(t, "UPI", resp.PaymentMode)
	assert.Equal(t, "igst", resp.TaxType)
	assert.Equal(t, "IGST", resp.TaxTypeLabel)
	assert.Equal(t, "Asmit Electronics", resp.BusinessName, "untouched fields survive the merge")
}

func TestUpdateInvoice_ShopTypeSwitchChangesRate(t *testing.T) {
	uc, id := newUseCase()
	addReferenceItems(t, uc, id)

	resp, err := uc.UpdateInvoice(context.Background(), id, dto.UpdateInvoiceRequest{
		ShopType: strPtr("General Store"),
	})
	require.NoError(t, err)
	assert.Equal(t, "General Store", resp.ShopType.Name)
	assert.True(t, resp.Calculations.TaxAmount.IsZero(), "0% rate yields zero tax")
	assert.True(t, resp.Calculations.GrandTotal.Equal(resp.Calculations.Subtotal),
		"grand total equals subtotal exactly at 0%")
}

func TestUpdateInvoice_IgnoresUnknownShopTypeAndTaxType(t *testing.T) {
	uc, id := newUseCase()

	resp, err := uc.UpdateInvoice(context.Background(), id, dto.UpdateInvoiceRequest{
		ShopType: strPtr("Fireworks"),
		TaxType:  strPtr("vat"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", resp.ShopType.Name, "unknown shop type is ignored")
	assert.Equal(t, "cgst_sgst", resp.TaxType, "unknown tax type is ignored")
}

func TestUpdateInvoice_BusinessDetailsReplacedWhole(t *testing.T) {
	uc, id := newUseCase()

	resp, err := uc.UpdateInvoice(context.Background(), id, dto.UpdateInvoiceRequest{
		BusinessDetails: &dto.BusinessDetailsRequest{
			Branch:      "Main Branch",
			GSTIN:       "22AAAAA0000A1Z5",
			CashierName: "Asmit Samal",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Main Branch", resp.BusinessDetails.Branch)
	assert.Equal(t, "22AAAAA0000A1Z5", resp.BusinessDetails.GSTIN)
	assert.Empty(t, resp.BusinessDetails.CounterNumber, "counter number stays optional")
}

// ──────────────────────────────────────────────────────────────────────────────
// Derived calculations through the model
// ──────────────────────────────────────────────────────────────────────────────

func TestGetInvoice_ReferenceCalculations(t *testing.T) {
	uc, id := newUseCase()
	addReferenceItems(t, uc, id)

	resp, err := uc.GetInvoice(context.Background(), id)
	require.NoError(t, err)

	calc := resp.Calculations
	assert.True(t, calc.Subtotal.Equal(decimal.NewFromInt(450)))
	assert.True(t, calc.TaxAmount.Equal(decimal.NewFromInt(81)))
	assert.True(t, calc.CGST.Equal(decimal.RequireFromString("40.5")))
	assert.True(t, calc.SGST.Equal(decimal.RequireFromString("40.5")))
	assert.True(t, calc.IGST.IsZero())
	assert.True(t, calc.GrandTotal.Equal(decimal.NewFromInt(531)))
	assert.Equal(t, "₹450.00", calc.SubtotalDisplay)
	assert.Equal(t, "₹531.00", calc.GrandTotalDisplay)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reset
// ──────────────────────────────────────────────────────────────────────────────

func TestReset_RegeneratesDefaults(t *testing.T) {
	uc, id := newUseCase()
	addReferenceItems(t, uc, id)
	_, err := uc.SelectBusiness(context.Background(), id, catalog.CustomBusinessName, "Joe's Mart")
	require.NoError(t, err)

	resp, err := uc.Reset(context.Background(), id)
	require.NoError(t, err)

	assert.Empty(t, resp.Items, "reset discards all items")
	assert.Regexp(t, invoiceNumberPattern, resp.InvoiceNumber,
		"reset generates a fresh invoice number")
	assert.Equal(t, "Asmit Electronics", resp.BusinessName, "reset restores the default business")
	assert.Empty(t, resp.CustomBusinessName, "reset clears the custom-name buffer")
}
