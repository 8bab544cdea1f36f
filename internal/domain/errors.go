package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")
	ErrDocumentWrite      = errors.New("document write failed")
)

// MissingField builds an ErrInvalidInput naming the field that is absent.
// Callers can match it with errors.Is(err, ErrInvalidInput).
func MissingField(field string) error {
	return fmt.Errorf("%w: missing required field %q", ErrInvalidInput, field)
}
