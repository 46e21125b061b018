package repository

import (
	"context"
	"errors"

	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/evanlesnar/billetterie/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
)

const selectAdminByEmailQuery = `
						SELECT id, email, name, password_hash, created_at FROM admins
						WHERE email = $1
`

// AdminRepository persists administrator accounts
type AdminRepository struct {
	db *postgres.DB
}

// NewAdminRepository creates new AdminRepository instance
func NewAdminRepository(db *postgres.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetAdminByEmail returns admin by email
func (ar *AdminRepository) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin := models.Admin{}
	err := ar.db.QueryRow(ctx, selectAdminByEmailQuery, email).Scan(
		&admin.ID, &admin.Email, &admin.Name, &admin.PasswordHash, &admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrAdminNotFound
		}
		return nil, err
	}

	return &admin, nil
}
