package invoicing

import (
	"context"
	"fmt"
	"time"

	"github.com/asmitlabs/gst-invoice-api/internal/domain"
	"github.com/asmitlabs/gst-invoice-api/internal/domain/tax"
	"github.com/asmitlabs/gst-invoice-api/pkg/logger"
)

// ExportUseCase turns the current (invoice, calculations) pair into the
// downloadable PDF artifact. Export is all-or-nothing: there is no retry and
// no partial output.
type ExportUseCase struct {
	store     SessionStore
	generator InvoicePDFGenerator
	delay     time.Duration // artificial pause so clients can show a loading indicator
	log       *logger.Logger
}

// NewExportUseCase builds the use case.
func NewExportUseCase(store SessionStore, generator InvoicePDFGenerator, delay time.Duration, log *logger.Logger) *ExportUseCase {
	return &ExportUseCase{store: store, generator: generator, delay: delay, log: log}
}

// ExportInvoicePDF renders the session's invoice to a PDF.
//
// Returns:
//   - (pdfBytes, filename, nil) on success; filename is "<invoiceNumber>.pdf".
//   - domain.ErrNotFound when the session does not exist.
//   - domain.ErrEmptyInvoice when the item list is empty (export is gated on
//     items being present; the renderer itself never validates this).
func (uc *ExportUseCase) ExportInvoicePDF(ctx context.Context, sessionID string) (pdfBytes []byte, filename string, err error) {
	inv, ok := uc.store.Get(sessionID)
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	if len(inv.Items) == 0 {
		return nil, "", domain.ErrEmptyInvoice
	}

	if uc.delay > 0 {
		select {
		case <-time.After(uc.delay):
		case <-ctx.Done():
			return nil, "", ctx.Err()
		}
	}

	calc := tax.Compute(inv.Items, inv.ShopType.GSTRate, inv.TaxType)
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, calc)
	if err != nil {
		uc.log.Error().Err(err).
			Str("session_id", sessionID).
			Str("invoice_number", inv.InvoiceNumber).
			Msg("invoice pdf generation failed")
		return nil, "", fmt.Errorf("pdf: generation failed: %w", err)
	}

	return pdfBytes, inv.InvoiceNumber + ".pdf", nil
}
