package purchasing

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

// SupplierUseCase covers supplier CRUD.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase wires the usecase.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create persists a new supplier.
func (uc *SupplierUseCase) Create(_ context.Context, companyID string, in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.MissingField("name")
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:            uuid.NewString(),
		CompanyID:     companyID,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		GSTIN:         in.GSTIN,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return s, nil
}

// Get returns one supplier with ownership enforced.
func (uc *SupplierUseCase) Get(_ context.Context, companyID, id string) (*entity.Supplier, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load supplier: %w", err)
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if s.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return s, nil
}

// List pages through the company's suppliers.
func (uc *SupplierUseCase) List(_ context.Context, companyID string, limit, offset int) ([]*entity.Supplier, error) {
	return uc.repo.ListByCompany(companyID, limit, offset)
}
