package service

import "github.com/evanlesnar/billetterie/internal/models"

// TokenService issues and verifies administrator bearer tokens
type TokenService interface {
	CreateToken(admin *models.Admin) (string, error)
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}
