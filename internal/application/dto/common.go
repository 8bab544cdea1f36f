package dto

import (
	"fmt"
	"time"

	"github.com/tilekart/tilekart-api/internal/domain"
)

// PageRequest is the pagination query for listings.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage applies defaults when Limit/Offset are unset.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ParseDate parses a YYYY-MM-DD field. Malformed dates are rejected here,
// at request construction — the document renderer never sees one. Empty
// input yields the zero time (rendered as a dash).
func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid %s %q, want YYYY-MM-DD", domain.ErrInvalidInput, field, value)
	}
	return t, nil
}
