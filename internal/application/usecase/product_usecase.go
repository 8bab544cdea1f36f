package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tilekart/tilekart-api/internal/application/dto"
	"github.com/tilekart/tilekart-api/internal/domain"
	"github.com/tilekart/tilekart-api/internal/domain/entity"
	"github.com/tilekart/tilekart-api/internal/domain/repository"
)

// ProductUseCase covers the tile catalog.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase wires the usecase.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create adds a tile to the catalog.
func (uc *ProductUseCase) Create(_ context.Context, companyID string, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" {
		return nil, domain.MissingField("name")
	}
	if in.SKU == "" {
		return nil, domain.MissingField("sku")
	}
	now := time.Now()
	p := &entity.Product{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Name:      in.Name,
		SKU:       in.SKU,
		HSNCode:   in.HSNCode,
		Size:      in.Size,
		Finish:    in.Finish,
		UnitPrice: in.UnitPrice,
		TaxRate:   in.TaxRate,
		StockQty:  in.StockQty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Get returns one product with ownership enforced.
func (uc *ProductUseCase) Get(_ context.Context, companyID, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// List pages through the company's catalog.
func (uc *ProductUseCase) List(_ context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	return uc.repo.ListByCompany(companyID, limit, offset)
}

// Update rewrites a product's mutable fields.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.CreateProductRequest) (*entity.Product, error) {
	p, err := uc.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.MissingField("name")
	}
	p.Name = in.Name
	p.SKU = in.SKU
	p.HSNCode = in.HSNCode
	p.Size = in.Size
	p.Finish = in.Finish
	p.UnitPrice = in.UnitPrice
	p.TaxRate = in.TaxRate
	p.StockQty = in.StockQty
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}
