package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest: only Name is required.
type CreateCustomerRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	GSTIN         string `json:"gstin"`
}

// InvoiceItemRequest is one line of a new invoice. Monetary fields are
// caller-computed; the server stores and prints them as given.
type InvoiceItemRequest struct {
	ProductName     string          `json:"product_name"`
	SKU             string          `json:"sku"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

// CreateInvoiceRequest carries a fully-computed invoice. Dates are
// YYYY-MM-DD strings validated by ParseDate.
type CreateInvoiceRequest struct {
	CustomerID     string               `json:"customer_id"`
	InvoiceNumber  string               `json:"invoice_number"`
	InvoiceDate    string               `json:"invoice_date"`
	DueDate        string               `json:"due_date"`
	PaymentTerms   string               `json:"payment_terms"`
	Status         string               `json:"status"`
	Subtotal       decimal.Decimal      `json:"subtotal"`
	DiscountAmount decimal.Decimal      `json:"discount_amount"`
	CGSTAmount     decimal.Decimal      `json:"cgst_amount"`
	SGSTAmount     decimal.Decimal      `json:"sgst_amount"`
	IGSTAmount     decimal.Decimal      `json:"igst_amount"`
	TotalAmount    decimal.Decimal      `json:"total_amount"`
	Notes          string               `json:"notes"`
	Terms          string               `json:"terms"`
	Items          []InvoiceItemRequest `json:"items"`
}

// UpdateInvoiceStatusRequest moves an invoice through its lifecycle.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}

// BusinessProfileRequest upserts the seller identity.
type BusinessProfileRequest struct {
	LegalName string `json:"legal_name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	GSTIN     string `json:"gstin"`
	PAN       string `json:"pan"`
	LogoPath  string `json:"logo_path"`
}
