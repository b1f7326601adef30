package invoicing

import (
	"context"

	"github.com/asmitlabs/gst-invoice-api/internal/domain/entity"
	"github.com/asmitlabs/gst-invoice-api/internal/domain/tax"
)

// SessionStore holds the in-progress invoices, one per editing session.
// Get and Mutate return snapshots: callers never share the stored item
// slice. Each session has a single logical writer, but sessions of different
// clients are served concurrently, so implementations must be safe for
// concurrent use.
type SessionStore interface {
	// Create stores the invoice under a fresh session id and returns the id.
	Create(inv *entity.Invoice) string
	// Get returns a snapshot of the session's invoice, or false if the
	// session does not exist (or has expired).
	Get(id string) (entity.Invoice, bool)
	// Mutate applies fn to the stored invoice under the store's lock and
	// returns the resulting snapshot, or false if the session is unknown.
	Mutate(id string, fn func(*entity.Invoice)) (entity.Invoice, bool)
	// Delete discards the session; unknown ids are a no-op.
	Delete(id string)
}

// InvoicePDFGenerator renders a read-only invoice snapshot and its derived
// totals into a single PDF document.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv entity.Invoice, calc tax.Calculations) ([]byte, error)
}
