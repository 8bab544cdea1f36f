package billing

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

// CustomerUseCase covers customer CRUD.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase wires the usecase.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create persists a new customer. Only the name is mandatory; optional
// contact fields stay empty and are omitted from rendered documents.
func (uc *CustomerUseCase) Create(_ context.Context, companyID string, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.MissingField("name")
	}
	now := time.Now()
	c := &entity.Customer{
		ID:            uuid.NewString(),
		CompanyID:     companyID,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		PostalCode:    in.PostalCode,
		GSTIN:         in.GSTIN,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

// Get returns one customer with ownership enforced.
func (uc *CustomerUseCase) Get(_ context.Context, companyID, id string) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

// List pages through the company's customers.
func (uc *CustomerUseCase) List(_ context.Context, companyID string, limit, offset int) ([]*entity.Customer, error) {
	return uc.repo.ListByCompany(companyID, limit, offset)
}

// Update rewrites a customer's mutable fields.
func (uc *CustomerUseCase) Update(ctx context.Context, companyID, id string, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	c, err := uc.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.MissingField("name")
	}
	c.Name = in.Name
	c.ContactPerson = in.ContactPerson
	c.Phone = in.Phone
	c.Email = in.Email
	c.Address = in.Address
	c.City = in.City
	c.State = in.State
	c.PostalCode = in.PostalCode
	c.GSTIN = in.GSTIN
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return c, nil
}

// Delete removes a customer.
func (uc *CustomerUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.Get(ctx, companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
