package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item (tiles: SKU + size + finish).
type Product struct {
	ID        string
	CompanyID string
	Name      string
	SKU       string
	HSNCode   string // harmonized tariff code printed on invoices
	Size      string // e.g. "600x600"
	Finish    string // e.g. "glossy", "matt"
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
	StockQty  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
