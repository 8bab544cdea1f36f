package repository

import "github.com/tilekart/tilekart-api/internal/domain/entity"

// ProductRepository persists the tile catalog.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
}
