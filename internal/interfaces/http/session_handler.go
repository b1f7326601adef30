package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/asmitlabs/gst-invoice-api/internal/application/dto"
	"github.com/asmitlabs/gst-invoice-api/internal/application/invoicing"
	"github.com/asmitlabs/gst-invoice-api/internal/domain"
)

// SessionHandler serves the invoice editing session endpoints.
type SessionHandler struct {
	uc *invoicing.SessionUseCase
}

// NewSessionHandler builds the handler.
func NewSessionHandler(uc *invoicing.SessionUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// CreateSession opens a fresh editing session.
// POST /api/sessions
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	resp := h.uc.CreateSession(c.Context())
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetInvoice returns the invoice with fresh calculations.
// GET /api/sessions/:id/invoice
func (h *SessionHandler) GetInvoice(c *fiber.Ctx) error {
	resp, err := h.uc.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(resp)
}

// UpdateInvoice shallow-merges the supplied fields into the invoice.
// PATCH /api/sessions/:id/invoice
func (h *SessionHandler) UpdateInvoice(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	resp, err := h.uc.UpdateInvoice(c.Context(), c.Params("id"), in)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(resp)
}

// SelectBusiness applies a preset or the custom business name.
// POST /api/sessions/:id/business
func (h *SessionHandler) SelectBusiness(c *fiber.Ctx) error {
	var in dto.SelectBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	resp, err := h.uc.SelectBusiness(c.Context(), c.Params("id"), in.Name, in.CustomName)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(resp)
}

// AddItem appends a line item. Invalid item input is a silent no-op: the
// response is 200 with the unchanged invoice, mirroring the form behaviour.
// POST /api/sessions/:id/items
func (h *SessionHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	resp, err := h.uc.AddItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(resp)
}

// RemoveItem deletes a line item; unknown item ids are an idempotent no-op.
// DELETE /api/sessions/:id/items/:itemID
func (h *SessionHandler) RemoveItem(c *fiber.Ctx) error {
	resp, err := h.uc.RemoveItem(c.Context(), c.Params("id"), c.Params("itemID"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(resp)
}

// Reset discards the session state and regenerates the invoice defaults.
// POST /api/sessions/:id/reset
func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	resp, err := h.uc.Reset(c.Context(), c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(resp)
}

// Catalog returns the fixed selector data (shop types, businesses, payment
// modes).
// GET /api/catalog
func (h *SessionHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(h.uc.Catalog(c.Context()))
}

// sessionError maps domain sentinels to HTTP statuses.
func sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "session not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid input"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
