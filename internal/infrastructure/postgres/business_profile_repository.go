package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tilekart/tilekart-api/internal/domain/entity"
	"github.com/tilekart/tilekart-api/internal/domain/repository"
)

var _ repository.BusinessProfileRepository = (*BusinessProfileRepo)(nil)

// BusinessProfileRepo implements BusinessProfileRepository.
type BusinessProfileRepo struct {
	q Querier
}

// NewBusinessProfileRepository builds the adapter.
func NewBusinessProfileRepository(q Querier) *BusinessProfileRepo {
	return &BusinessProfileRepo{q: q}
}

// GetByCompanyID returns the company's seller identity, or (nil, nil).
func (r *BusinessProfileRepo) GetByCompanyID(companyID string) (*entity.BusinessProfile, error) {
	query := `
		SELECT id, company_id, legal_name, address, phone, email, gstin, pan,
		       COALESCE(logo_path, ''), created_at, updated_at
		FROM business_profiles WHERE company_id = $1`
	var p entity.BusinessProfile
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(
		&p.ID, &p.CompanyID, &p.LegalName, &p.Address, &p.Phone, &p.Email,
		&p.GSTIN, &p.PAN, &p.LogoPath, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business profile: %w", err)
	}
	return &p, nil
}

// Upsert inserts or replaces the company's profile. company_id is unique,
// so ON CONFLICT keeps one row per company.
func (r *BusinessProfileRepo) Upsert(profile *entity.BusinessProfile) error {
	query := `
		INSERT INTO business_profiles (id, company_id, legal_name, address, phone, email,
		                               gstin, pan, logo_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (company_id) DO UPDATE
		SET legal_name = EXCLUDED.legal_name,
		    address    = EXCLUDED.address,
		    phone      = EXCLUDED.phone,
		    email      = EXCLUDED.email,
		    gstin      = EXCLUDED.gstin,
		    pan        = EXCLUDED.pan,
		    logo_path  = EXCLUDED.logo_path,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.CompanyID, profile.LegalName, profile.Address,
		profile.Phone, profile.Email, profile.GSTIN, profile.PAN,
		nullIfEmpty(profile.LogoPath), profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert business profile: %w", err)
	}
	return nil
}
