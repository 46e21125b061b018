package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/evanlesnar/billetterie/internal/models"
)

type AchievementService interface {
	// List returns achievements, newest first
	List(ctx context.Context) ([]models.Achievement, error)
}

// AchievementHandler represents HTTP handler for achievement-related requests
type AchievementHandler struct {
	svc AchievementService
}

// NewAchievementHandler creates new AchievementHandler instance
func NewAchievementHandler(svc AchievementService) *AchievementHandler {
	return &AchievementHandler{svc: svc}
}

// ListAchievements returns achievements, newest first
// 200 — achievements returned;
// 500 — internal error.
func (ah *AchievementHandler) ListAchievements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievements, err := ah.svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := make([]*achievementResponse, 0, len(achievements))
		for i := range achievements {
			resp = append(resp, newAchievementResponse(&achievements[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}
