// Package tax implements the GST calculation over an invoice's line items.
// The computation is a pure function of (items, rate, split mode); callers
// re-derive it on every read instead of caching.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/asmitlabs/gst-invoice-api/internal/domain/entity"
)

var two = decimal.NewFromInt(2)

// Calculations is the derived financial view of an invoice. No rounding is
// applied here; rounding happens only at format time.
type Calculations struct {
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	GrandTotal decimal.Decimal
	CGST       decimal.Decimal
	SGST       decimal.Decimal
	IGST       decimal.Decimal
	GSTRate    decimal.Decimal // fraction in [0,1]
}

// Compute derives totals from the items in insertion order.
//
//	subtotal   = Σ line totals
//	taxAmount  = subtotal * gstRate
//	grandTotal = subtotal + taxAmount
//
// For cgst_sgst the tax is halved into CGST and SGST; for igst it lands on a
// single IGST line. An empty item list yields all zeros, not an error.
func Compute(items []entity.InvoiceItem, gstRate decimal.Decimal, taxType entity.TaxType) Calculations {
	var subtotal decimal.Decimal
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal)
	}

	taxAmount := subtotal.Mul(gstRate)
	calc := Calculations{
		Subtotal:   subtotal,
		TaxAmount:  taxAmount,
		GrandTotal: subtotal.Add(taxAmount),
		GSTRate:    gstRate,
	}

	if taxType == entity.TaxTypeIGST {
		calc.IGST = taxAmount
	} else {
		half := taxAmount.Div(two)
		calc.CGST = half
		calc.SGST = half
	}
	return calc
}
