package entity

import "github.com/asmitlabs/gst-invoice-api/internal/domain/catalog"

// TaxType selects how the GST amount is split on the invoice.
type TaxType string

const (
	TaxTypeCGSTSGST TaxType = "cgst_sgst" // intra-state: tax halved into CGST + SGST
	TaxTypeIGST     TaxType = "igst"      // inter-state: single IGST line
)

// Valid reports whether t is one of the two known tax types.
func (t TaxType) Valid() bool {
	return t == TaxTypeCGSTSGST || t == TaxTypeIGST
}

// Label returns the human-readable form used on the invoice.
func (t TaxType) Label() string {
	if t == TaxTypeIGST {
		return "IGST"
	}
	return "CGST + SGST"
}

// BusinessDetails is the free-text identity block printed in the invoice
// header. CounterNumber is optional and only rendered when non-empty.
type BusinessDetails struct {
	Branch        string
	Address       string
	ContactNumber string
	GSTIN         string
	CashierName   string
	CounterNumber string
}

// Invoice is the aggregate root: the mutable state of one invoice in
// progress. Its lifetime is bounded to a single editing session; nothing is
// persisted.
type Invoice struct {
	BusinessName       string
	CustomBusinessName string // retained buffer while the custom sentinel is selected
	ShopType           catalog.ShopType
	BusinessDetails    BusinessDetails
	InvoiceNumber      string
	InvoiceDate        string // ISO YYYY-MM-DD
	PaymentMode        string
	TaxType            TaxType
	Items              []InvoiceItem
}

// Snapshot returns a copy whose item slice is independent of the original,
// so readers (the PDF renderer in particular) never observe later mutations.
func (inv *Invoice) Snapshot() Invoice {
	out := *inv
	out.Items = make([]InvoiceItem, len(inv.Items))
	copy(out.Items, inv.Items)
	return out
}
