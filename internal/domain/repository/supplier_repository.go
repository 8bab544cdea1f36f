package repository

import "github.com/tilekart/tilekart-api/internal/domain/entity"

// SupplierRepository persists purchasing counterparties.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error)
}
