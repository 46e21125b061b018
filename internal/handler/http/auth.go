package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evanlesnar/billetterie/internal/models"
)

type AuthService interface {
	// Login checks credentials and returns a signed bearer token
	Login(ctx context.Context, email, password string) (string, *models.Admin, error)
}

// AuthHandler represents HTTP handler for administrator authentication
type AuthHandler struct {
	svc AuthService
}

// NewAuthHandler creates new AuthHandler instance
func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	Admin adminModel `json:"admin"`
}

type adminModel struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Login authenticates administrator
// 200 — token issued;
// 400 — malformed request body;
// 401 — unknown email or wrong password;
// 500 — internal error.
func (ah *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		token, admin, err := ah.svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, models.ErrInvalidCredentials) {
				http.Error(w, "invalid email or password", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(loginResponse{
			Token: token,
			Admin: adminModel{
				ID:    admin.ID.String(),
				Email: admin.Email,
				Name:  admin.Name,
			},
		}); err != nil {
			return
		}
	}
}
