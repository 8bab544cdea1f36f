package entity

import "time"

// Customer is a billing customer of the company. Only Name is required;
// every other contact field may be empty and is then omitted from documents.
type Customer struct {
	ID            string
	CompanyID     string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	City          string
	State         string
	PostalCode    string
	GSTIN         string // GST registration number
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
