package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evanlesnar/billetterie/internal/auth"
	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tokens := auth.NewAuthToken([]byte("test-signing-key"))
	admin := &models.Admin{ID: uuid.New(), Email: "admin@evanlesnar.com"}

	valid, err := tokens.CreateToken(admin)
	require.NoError(t, err)

	foreign, err := auth.NewAuthToken([]byte("other-key")).CreateToken(admin)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid token",
			header:     "Bearer " + valid,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer scheme",
			header:     "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token signed with another key",
			header:     "Bearer " + foreign,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			header:     "Bearer not.a.jwt",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				payload, ok := AdminFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, admin.ID, payload.AdminID)
				assert.Equal(t, admin.Email, payload.Email)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			Auth(tokens)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
