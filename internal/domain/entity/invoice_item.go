package entity

import "github.com/shopspring/decimal"

// InvoiceItem is one line of an invoice. ProductName and SKU are snapshots
// taken at invoice time so later catalog edits do not rewrite history.
// Position fixes the display order on the printed document.
type InvoiceItem struct {
	ID              string
	InvoiceID       string
	ProductID       string
	ProductName     string
	SKU             string
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	TaxRate         decimal.Decimal
	TaxAmount       decimal.Decimal
	DiscountAmount  decimal.Decimal
	LineTotal       decimal.Decimal
	Position        int
}
