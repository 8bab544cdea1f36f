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

// ProfileUseCase manages the seller identity printed on documents.
type ProfileUseCase struct {
	repo repository.BusinessProfileRepository
}

// NewProfileUseCase wires the usecase.
func NewProfileUseCase(repo repository.BusinessProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Get returns the company's business profile, or ErrNotFound if it was
// never configured.
func (uc *ProfileUseCase) Get(_ context.Context, companyID string) (*entity.BusinessProfile, error) {
	p, err := uc.repo.GetByCompanyID(companyID)
	if err != nil {
		return nil, fmt.Errorf("load business profile: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Upsert creates or replaces the profile. LegalName is mandatory because
// every outgoing document prints it.
func (uc *ProfileUseCase) Upsert(_ context.Context, companyID string, in dto.BusinessProfileRequest) (*entity.BusinessProfile, error) {
	if in.LegalName == "" {
		return nil, domain.MissingField("legal_name")
	}
	now := time.Now()
	p := &entity.BusinessProfile{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		LegalName: in.LegalName,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		GSTIN:     in.GSTIN,
		PAN:       in.PAN,
		LogoPath:  in.LogoPath,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Upsert(p); err != nil {
		return nil, fmt.Errorf("upsert business profile: %w", err)
	}
	return p, nil
}
