package entity

import "time"

// BusinessProfile is the seller identity printed on every document the
// company issues. One profile per company.
type BusinessProfile struct {
	ID        string
	CompanyID string
	LegalName string
	Address   string
	Phone     string
	Email     string
	GSTIN     string
	PAN       string
	LogoPath  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
