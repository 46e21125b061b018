package service

import (
	"context"
	"errors"

	"github.com/evanlesnar/billetterie/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// AdminRepository is interface for interacting with administrator accounts
type AdminRepository interface {
	// GetAdminByEmail returns admin by email
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// AuthService authenticates administrators
type AuthService struct {
	repo  AdminRepository
	token TokenService
}

// NewAuthService creates new AuthService instance
func NewAuthService(repo AdminRepository, token TokenService) *AuthService {
	return &AuthService{
		repo:  repo,
		token: token,
	}
}

// Login checks credentials and returns a signed bearer token with the admin.
// Unknown email and wrong password are indistinguishable to the caller.
func (as *AuthService) Login(ctx context.Context, email, password string) (string, *models.Admin, error) {
	admin, err := as.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrAdminNotFound) {
			return "", nil, models.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	tokenString, err := as.token.CreateToken(admin)
	if err != nil {
		return "", nil, err
	}

	return tokenString, admin, nil
}
