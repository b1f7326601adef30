package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asmitlabs/gst-invoice-api/internal/application/invoicing"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	Sessions *invoicing.SessionUseCase
	Export   *invoicing.ExportUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	sessionHandler := NewSessionHandler(deps.Sessions)
	exportHandler := NewExportHandler(deps.Export)

	// Catalog (fixed selector data)
	api.Get("/catalog", sessionHandler.Catalog)

	// Invoice editing sessions
	sessions := api.Group("/sessions")
	sessions.Post("/", sessionHandler.CreateSession)
	sessions.Get("/:id/invoice", sessionHandler.GetInvoice)
	sessions.Patch("/:id/invoice", sessionHandler.UpdateInvoice)
	sessions.Post("/:id/business", sessionHandler.SelectBusiness)
	sessions.Post("/:id/items", sessionHandler.AddItem)
	sessions.Delete("/:id/items/:itemID", sessionHandler.RemoveItem)
	sessions.Post("/:id/reset", sessionHandler.Reset)

	// PDF export
	sessions.Get("/:id/invoice/pdf", exportHandler.Download)
}
