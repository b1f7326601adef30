package pdf_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmitlabs/gst-invoice-api/internal/domain/catalog"
	"github.com/asmitlabs/gst-invoice-api/internal/domain/entity"
	"github.com/asmitlabs/gst-invoice-api/internal/domain/tax"
	"github.com/asmitlabs/gst-invoice-api/internal/infrastructure/pdf"
)

func sampleInvoice(taxType entity.TaxType) entity.Invoice {
	qty := decimal.NewFromInt(2)
	price := decimal.NewFromInt(100)
	return entity.Invoice{
		BusinessName: "Asmit Electronics",
		ShopType:     catalog.DefaultShopType,
		BusinessDetails: entity.BusinessDetails{
			Branch:        "Main Branch",
			Address:       "123 Business Street, Cuttack, Odisha - 753001",
			ContactNumber: "+91 98765 43210",
			GSTIN:         "22AAAAA0000A1Z5",
			CashierName:   "Asmit Samal",
			CounterNumber: "Counter 1",
		},
		InvoiceNumber: "INV-2608-042",
		InvoiceDate:   "2026-08-31",
		PaymentMode:   "Cash",
		TaxType:       taxType,
		Items: []entity.InvoiceItem{
			{ID: "a", ProductName: "USB Cable", Quantity: qty, PricePerUnit: price, LineTotal: qty.Mul(price)},
			{ID: "b", ProductName: "Power Bank", Quantity: decimal.NewFromInt(1), PricePerUnit: decimal.NewFromInt(250), LineTotal: decimal.NewFromInt(250)},
		},
	}
}

func TestGenerateInvoicePDF_ProducesDocument(t *testing.T) {
	inv := sampleInvoice(entity.TaxTypeCGSTSGST)
	calc := tax.Compute(inv.Items, inv.ShopType.GSTRate, inv.TaxType)

	g := pdf.NewMarotoInvoiceGenerator()
	out, err := g.GenerateInvoicePDF(context.Background(), inv, calc)

	require.NoError(t, err, "rendering a complete invoice must not fail")
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "output must be a PDF document")
}

func TestGenerateInvoicePDF_IGSTVariant(t *testing.T) {
	inv := sampleInvoice(entity.TaxTypeIGST)
	calc := tax.Compute(inv.Items, inv.ShopType.GSTRate, inv.TaxType)

	g := pdf.NewMarotoInvoiceGenerator()
	out, err := g.GenerateInvoicePDF(context.Background(), inv, calc)

	require.NoError(t, err, "the single-IGST totals branch must render")
	assert.NotEmpty(t, out)
}

// The optional counter line must not break rendering when absent.
func TestGenerateInvoicePDF_NoCounterNumber(t *testing.T) {
	inv := sampleInvoice(entity.TaxTypeCGSTSGST)
	inv.BusinessDetails.CounterNumber = ""
	calc := tax.Compute(inv.Items, inv.ShopType.GSTRate, inv.TaxType)

	g := pdf.NewMarotoInvoiceGenerator()
	out, err := g.GenerateInvoicePDF(context.Background(), inv, calc)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
