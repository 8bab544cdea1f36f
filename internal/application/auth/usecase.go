package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tilekart/tilekart-api/internal/application/dto"
	"github.com/tilekart/tilekart-api/internal/domain"
	"github.com/tilekart/tilekart-api/internal/domain/entity"
	"github.com/tilekart/tilekart-api/internal/domain/repository"
	"github.com/tilekart/tilekart-api/pkg/jwt"
)

// JWTConfig parameters for token generation.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase handles registration and login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase wires the usecase.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register creates an account (bcrypt-hashed password) and returns a token.
// The first registration for a shop also mints its company ID.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.TokenResponse, error) {
	if in.Email == "" {
		return nil, domain.MissingField("email")
	}
	if in.Password == "" {
		return nil, domain.MissingField("password")
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = entity.RoleSales
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		CompanyID:    uuid.NewString(),
		Name:         name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return uc.tokenFor(user)
}

// Login verifies credentials and returns a fresh token.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.tokenFor(user)
}

func (uc *AuthUseCase) tokenFor(user *entity.User) (*dto.TokenResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &dto.TokenResponse{
		Token:     token,
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		Role:      user.Role,
	}, nil
}
