package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase order lifecycle states.
const (
	POStatusDraft     = "Draft"
	POStatusOrdered   = "Ordered"
	POStatusReceived  = "Received"
	POStatusCancelled = "Cancelled"
)

// PurchaseOrder is a restocking order placed with a supplier.
type PurchaseOrder struct {
	ID           string
	CompanyID    string
	SupplierID   string
	PONumber     string
	OrderDate    time.Time
	ExpectedDate time.Time
	Status       string
	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	TotalAmount  decimal.Decimal
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PurchaseOrderItem is one line of a purchase order.
type PurchaseOrderItem struct {
	ID          string
	POID        string
	ProductName string
	SKU         string
	Quantity    int
	UnitCost    decimal.Decimal
	LineTotal   decimal.Decimal
	Position    int
}
