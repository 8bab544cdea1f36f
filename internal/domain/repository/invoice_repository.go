package repository

import "github.com/tilekart/tilekart-api/internal/domain/entity"

// InvoiceRepository persists invoice headers and their lines. GetByID
// returns (nil, nil) when the invoice does not exist.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice, items []entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]entity.InvoiceItem, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error)
	UpdateStatus(id, status string) error
}
