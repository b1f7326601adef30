package entity

import "github.com/shopspring/decimal"

// InvoiceItem is one line of the invoice. Items are immutable after
// insertion: there is no edit-in-place, only add and remove.
type InvoiceItem struct {
	ID           string
	ProductName  string
	Quantity     decimal.Decimal
	PricePerUnit decimal.Decimal
	LineTotal    decimal.Decimal // Quantity * PricePerUnit, fixed at creation
}
