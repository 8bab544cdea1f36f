package repository

import "github.com/tilekart/tilekart-api/internal/domain/entity"

// BusinessProfileRepository persists the per-company seller identity.
type BusinessProfileRepository interface {
	GetByCompanyID(companyID string) (*entity.BusinessProfile, error)
	Upsert(profile *entity.BusinessProfile) error
}
