package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle states. Unknown values are tolerated by the renderer
// (they fall back to the Draft badge color) but never produced by this code.
const (
	InvoiceStatusDraft     = "Draft"     // Not yet issued; PDF carries a watermark
	InvoiceStatusSent      = "Sent"      // Issued and delivered to the customer
	InvoiceStatusPaid      = "Paid"      // Settled in full
	InvoiceStatusOverdue   = "Overdue"   // Past due date without full payment
	InvoiceStatusCancelled = "Cancelled" // Voided; kept for numbering continuity
)

// Invoice is the header of a tax invoice. All monetary fields are
// caller-computed and currency-scale (2 fractional digits); the document
// renderer displays them as given and never recomputes tax math.
type Invoice struct {
	ID             string
	CompanyID      string
	CustomerID     string
	InvoiceNumber  string
	InvoiceDate    time.Time
	DueDate        time.Time
	PaymentTerms   string
	Status         string
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	CGSTAmount     decimal.Decimal
	SGSTAmount     decimal.Decimal
	IGSTAmount     decimal.Decimal
	TotalAmount    decimal.Decimal
	Notes          string
	Terms          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
