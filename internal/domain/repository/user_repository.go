package repository

import "github.com/tilekart/tilekart-api/internal/domain/entity"

// UserRepository persists application accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
