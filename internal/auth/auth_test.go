package auth

import (
	"testing"

	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthToken_RoundTrip(t *testing.T) {
	at := NewAuthToken([]byte("test-signing-key"))

	admin := &models.Admin{
		ID:    uuid.New(),
		Email: "admin@evanlesnar.com",
	}

	tokenString, err := at.CreateToken(admin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	payload, err := at.VerifyToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, payload.AdminID)
	assert.Equal(t, admin.Email, payload.Email)
}

func TestAuthToken_WrongKey(t *testing.T) {
	at := NewAuthToken([]byte("test-signing-key"))
	other := NewAuthToken([]byte("another-key"))

	tokenString, err := at.CreateToken(&models.Admin{ID: uuid.New(), Email: "admin@evanlesnar.com"})
	require.NoError(t, err)

	_, err = other.VerifyToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthToken_Garbage(t *testing.T) {
	at := NewAuthToken([]byte("test-signing-key"))

	_, err := at.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
