// Package pdf renders the printable GST tax invoice using Maroto v2.
//
// A4 page layout, top to bottom:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│        Business Name (large, bold, centered)                │
//	│        Branch / Address / "Ph: … | GSTIN: …" (centered)     │
//	│        TAX INVOICE  ·  Shop Type • GST: NN%                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Invoice No / Payment / Cashier   │   Date / Tax Type / Ctr │
//	│  TABLE: S.No | Product Description | Qty | Rate | Amount    │
//	│                       TOTALS: Subtotal / CGST+SGST or IGST  │
//	│                               GRAND TOTAL                   │
//	│               Thank you for your business!                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/asmitlabs/gst-invoice-api/internal/domain/entity"
	"github.com/asmitlabs/gst-invoice-api/internal/domain/tax"
	"github.com/asmitlabs/gst-invoice-api/pkg/format"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorHeader = &props.Color{Red: 41, Green: 128, Blue: 185}
	colorBand   = &props.Color{Red: 248, Green: 249, Blue: 250}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite  = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var (
	fifty   = decimal.NewFromInt(50)
	hundred = decimal.NewFromInt(100)
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoInvoiceGenerator implements invoicing.InvoicePDFGenerator.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator builds the generator.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// GenerateInvoicePDF renders the invoice snapshot and returns the PDF bytes.
// The empty-items case is guarded by the caller, not here.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	inv entity.Invoice,
	calc tax.Calculations,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Tax Invoice "+inv.InvoiceNumber, true).
		WithAuthor(inv.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	// Header block
	for _, r := range headerRows(inv) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(3, props.Line{Color: colorGray, Thickness: 0.8}))

	// Metadata block
	m.AddRows(metadataRow(inv))
	m.AddRows(row.New(4))

	// Line-item table
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(inv.Items) {
		m.AddRows(r)
	}

	// Totals block
	m.AddRows(row.New(4))
	for _, r := range totalsRows(inv.TaxType, calc) {
		m.AddRows(r)
	}

	// Footer
	m.AddRows(row.New(16))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRows: centered identity block ending with the shop type line.
func headerRows(inv entity.Invoice) []core.Row {
	centered := func(h float64, value string, p props.Text) core.Row {
		p.Align = align.Center
		return row.New(h).Add(col.New(12).Add(text.New(value, p)))
	}

	return []core.Row{
		centered(10, inv.BusinessName, props.Text{Style: fontstyle.Bold, Size: 20}),
		centered(6, inv.BusinessDetails.Branch, props.Text{Size: 11}),
		centered(5, inv.BusinessDetails.Address, props.Text{Size: 9, Color: colorGray}),
		centered(5, fmt.Sprintf("Ph: %s | GSTIN: %s",
			inv.BusinessDetails.ContactNumber, inv.BusinessDetails.GSTIN),
			props.Text{Size: 9, Color: colorGray}),
		centered(8, "TAX INVOICE", props.Text{Style: fontstyle.Bold, Size: 14, Top: 2}),
		centered(6, fmt.Sprintf("%s • GST: %s%%",
			inv.ShopType.Name, inv.ShopType.GSTRate.Mul(hundred).StringFixed(0)),
			props.Text{Size: 9}),
	}
}

// metadataRow: invoice number, payment mode and cashier on the left; date,
// tax-type label and counter (only when set) right-aligned.
func metadataRow(inv entity.Invoice) core.Row {
	left := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 10, Top: top})
	}
	right := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 10, Top: top, Align: align.Right})
	}

	leftCol := col.New(6).Add(
		left("Invoice No: "+inv.InvoiceNumber, 1),
		left("Payment Mode: "+inv.PaymentMode, 7),
		left("Cashier: "+inv.BusinessDetails.CashierName, 13),
	)

	rightItems := []core.Component{
		right("Date: "+format.DisplayDate(inv.InvoiceDate), 1),
		right("Tax Type: "+inv.TaxType.Label(), 7),
	}
	if inv.BusinessDetails.CounterNumber != "" {
		rightItems = append(rightItems, right("Counter: "+inv.BusinessDetails.CounterNumber, 13))
	}

	return row.New(20).Add(leftCol, col.New(6).Add(rightItems...))
}

// tableHeaderRow: colored fill with white bold labels.
func tableHeaderRow() core.Row {
	h := func(size int, label string, a align.Type) core.Col {
		c := col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
		c.WithStyle(&props.Cell{BackgroundColor: colorHeader})
		return c
	}
	return row.New(8).Add(
		h(1, "S.No", align.Center),
		h(6, "Product Description", align.Left),
		h(1, "Qty", align.Center),
		h(2, "Rate", align.Right),
		h(2, "Amount", align.Right),
	)
}

// tableItemRows: one banded row per line item, S.No 1-based, amounts in the
// plain "Rs." PDF formatter, Amount bold.
func tableItemRows(items []entity.InvoiceItem) []core.Row {
	cell := func(size int, value string, a align.Type, style fontstyle.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 9, Align: a, Style: style, Top: 1.5, Left: 1, Right: 1,
		}))
	}

	rows := make([]core.Row, 0, len(items))
	for i, it := range items {
		r := row.New(7).Add(
			cell(1, fmt.Sprintf("%d", i+1), align.Center, fontstyle.Normal),
			cell(6, it.ProductName, align.Left, fontstyle.Normal),
			cell(1, it.Quantity.String(), align.Center, fontstyle.Normal),
			cell(2, format.RupeesPlain(it.PricePerUnit), align.Right, fontstyle.Normal),
			cell(2, format.RupeesPlain(it.LineTotal), align.Right, fontstyle.Bold),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorBand})
		}
		rows = append(rows, r)
	}
	return rows
}

// totalsRows: right-aligned block below the table. CGST/SGST percentages are
// shown to one decimal (half the rate), IGST as the integer full rate.
func totalsRows(taxType entity.TaxType, calc tax.Calculations) []core.Row {
	totalLine := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{Size: 10, Align: align.Right, Right: 2})),
			col.New(3).Add(text.New(value, props.Text{Size: 10, Align: align.Right})),
		)
	}

	rows := []core.Row{
		totalLine("Subtotal:", format.RupeesPlain(calc.Subtotal)),
	}

	if taxType == entity.TaxTypeIGST {
		fullPct := calc.GSTRate.Mul(hundred).StringFixed(0)
		rows = append(rows,
			totalLine(fmt.Sprintf("IGST (%s%%):", fullPct), format.RupeesPlain(calc.IGST)),
		)
	} else {
		halfPct := calc.GSTRate.Mul(fifty).StringFixed(1)
		rows = append(rows,
			totalLine(fmt.Sprintf("CGST (%s%%):", halfPct), format.RupeesPlain(calc.CGST)),
			totalLine(fmt.Sprintf("SGST (%s%%):", halfPct), format.RupeesPlain(calc.SGST)),
		)
	}

	rows = append(rows,
		row.New(3).Add(
			col.New(6),
			col.New(6).Add(line.New(props.Line{Color: colorGray, Thickness: 0.8})),
		),
		row.New(9).Add(
			col.New(5),
			col.New(4).Add(text.New("Grand Total:", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Right: 2, Top: 1,
			})),
			col.New(3).Add(text.New(format.RupeesPlain(calc.GrandTotal), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			})),
		),
	)
	return rows
}

// footerRow: centered thank-you line near the page bottom.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Thank you for your business!", props.Text{
			Style: fontstyle.Italic, Size: 9, Align: align.Center, Color: colorGray,
		}),
	))
}
