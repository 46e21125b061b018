package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin is administrator account
type Admin struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// TokenPayload is verified bearer token payload
type TokenPayload struct {
	AdminID uuid.UUID
	Email   string
}
