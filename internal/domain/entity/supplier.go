package entity

import "time"

// Supplier is a purchasing counterparty (tile manufacturer or distributor).
type Supplier struct {
	ID            string
	CompanyID     string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	GSTIN         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
