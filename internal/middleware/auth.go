package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/evanlesnar/billetterie/internal/service"
)

type contextKey int

const (
	contextKeyAdmin contextKey = iota
)

// Auth verifies the Authorization bearer token and puts its payload
// into the request context
func Auth(ts service.TokenService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString := strings.TrimPrefix(header, "Bearer ")
			if header == "" || tokenString == header {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			payload, err := ts.VerifyToken(tokenString)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyAdmin, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext extracts the verified admin payload from ctx
func AdminFromContext(ctx context.Context) (*models.TokenPayload, bool) {
	payload, ok := ctx.Value(contextKeyAdmin).(*models.TokenPayload)
	return payload, ok
}
