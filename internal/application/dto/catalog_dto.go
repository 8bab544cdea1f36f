package dto

import "github.com/shopspring/decimal"

// CreateProductRequest adds a tile to the catalog.
type CreateProductRequest struct {
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	HSNCode   string          `json:"hsn_code"`
	Size      string          `json:"size"`
	Finish    string          `json:"finish"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	StockQty  int             `json:"stock_qty"`
}

// CreateSupplierRequest adds a purchasing counterparty.
type CreateSupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	GSTIN         string `json:"gstin"`
}

// POItemRequest is one line of a new purchase order.
type POItemRequest struct {
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// CreatePORequest places an order with a supplier.
type CreatePORequest struct {
	SupplierID   string          `json:"supplier_id"`
	PONumber     string          `json:"po_number"`
	OrderDate    string          `json:"order_date"`
	ExpectedDate string          `json:"expected_date"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Notes        string          `json:"notes"`
	Items        []POItemRequest `json:"items"`
}
