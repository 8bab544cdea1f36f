package repository

import "github.com/tilekart/tilekart-api/internal/domain/entity"

// PurchaseOrderRepository persists purchase orders and their lines.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder, items []entity.PurchaseOrderItem) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	GetItemsByPOID(poID string) ([]entity.PurchaseOrderItem, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.PurchaseOrder, error)
	UpdateStatus(id, status string) error
}
