package dto

import "github.com/shopspring/decimal"

// UpdateInvoiceRequest body for PATCH /api/sessions/:id/invoice.
// Only the supplied fields are merged into the invoice; the caller is
// trusted to send well-typed values.
type UpdateInvoiceRequest struct {
	BusinessName    *string                 `json:"business_name,omitempty"`
	ShopType        *string                 `json:"shop_type,omitempty"` // catalog name
	InvoiceNumber   *string                 `json:"invoice_number,omitempty"`
	InvoiceDate     *string                 `json:"invoice_date,omitempty"` // YYYY-MM-DD
	PaymentMode     *string                 `json:"payment_mode,omitempty"`
	TaxType         *string                 `json:"tax_type,omitempty"` // cgst_sgst | igst
	BusinessDetails *BusinessDetailsRequest `json:"business_details,omitempty"`
}

// BusinessDetailsRequest free-text identity block; replaced as a whole.
type BusinessDetailsRequest struct {
	Branch        string `json:"branch"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
	GSTIN         string `json:"gstin"`
	CashierName   string `json:"cashier_name"`
	CounterNumber string `json:"counter_number,omitempty"`
}

// SelectBusinessRequest body for POST /api/sessions/:id/business.
// CustomName only matters when Name is the "Custom Business Name" sentinel.
type SelectBusinessRequest struct {
	Name       string `json:"name"`
	CustomName string `json:"custom_name,omitempty"`
}

// AddItemRequest body for POST /api/sessions/:id/items. Quantity and price
// travel as strings exactly as typed into the form; values that do not parse
// as positive numbers make the call a silent no-op.
type AddItemRequest struct {
	ProductName  string `json:"product_name"`
	Quantity     string `json:"quantity"`
	PricePerUnit string `json:"price_per_unit"`
}

// InvoiceItemResponse one invoice line in responses.
type InvoiceItemResponse struct {
	ID                  string          `json:"id"`
	ProductName         string          `json:"product_name"`
	Quantity            decimal.Decimal `json:"quantity"`
	PricePerUnit        decimal.Decimal `json:"price_per_unit"`
	LineTotal           decimal.Decimal `json:"line_total"`
	PricePerUnitDisplay string          `json:"price_per_unit_display"`
	LineTotalDisplay    string          `json:"line_total_display"`
}

// CalculationsResponse derived totals, recomputed on every read.
type CalculationsResponse struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
	CGST              decimal.Decimal `json:"cgst"`
	SGST              decimal.Decimal `json:"sgst"`
	IGST              decimal.Decimal `json:"igst"`
	GSTRate           decimal.Decimal `json:"gst_rate"`
	SubtotalDisplay   string          `json:"subtotal_display"`
	GrandTotalDisplay string          `json:"grand_total_display"`
}

// ShopTypeResponse catalog entry in responses.
type ShopTypeResponse struct {
	Name    string          `json:"name"`
	GSTRate decimal.Decimal `json:"gst_rate"`
}

// InvoiceResponse full invoice state plus fresh calculations.
type InvoiceResponse struct {
	BusinessName       string                 `json:"business_name"`
	CustomBusinessName string                 `json:"custom_business_name,omitempty"`
	ShopType           ShopTypeResponse       `json:"shop_type"`
	BusinessDetails    BusinessDetailsRequest `json:"business_details"`
	InvoiceNumber      string                 `json:"invoice_number"`
	InvoiceDate        string                 `json:"invoice_date"`
	InvoiceDateDisplay string                 `json:"invoice_date_display"`
	PaymentMode        string                 `json:"payment_mode"`
	TaxType            string                 `json:"tax_type"`
	TaxTypeLabel       string                 `json:"tax_type_label"`
	Items              []InvoiceItemResponse  `json:"items"`
	Calculations       CalculationsResponse   `json:"calculations"`
}

// SessionResponse session id plus the invoice it holds.
type SessionResponse struct {
	SessionID string          `json:"session_id"`
	Invoice   InvoiceResponse `json:"invoice"`
}

// CatalogResponse the fixed selector data for clients.
type CatalogResponse struct {
	ShopTypes    []ShopTypeResponse `json:"shop_types"`
	Businesses   []string           `json:"businesses"`
	PaymentModes []string           `json:"payment_modes"`
}
