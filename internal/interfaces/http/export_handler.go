package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/asmitlabs/gst-invoice-api/internal/application/dto"
	"github.com/asmitlabs/gst-invoice-api/internal/application/invoicing"
	"github.com/asmitlabs/gst-invoice-api/internal/domain"
)

// ExportHandler serves the PDF download endpoint.
type ExportHandler struct {
	uc *invoicing.ExportUseCase
}

// NewExportHandler builds the handler.
func NewExportHandler(uc *invoicing.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Download renders the session's invoice as a PDF attachment named
// "<invoiceNumber>.pdf". Export is gated on the invoice having items.
// GET /api/sessions/:id/invoice/pdf
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.ExportInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "session not found"})
		case errors.Is(err, domain.ErrEmptyInvoice):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_INVOICE", Message: "add at least one item before exporting"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "pdf generation failed"})
		}
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
