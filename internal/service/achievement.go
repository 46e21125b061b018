package service

import (
	"context"

	"github.com/evanlesnar/billetterie/internal/models"
)

// AchievementRepository is interface for interacting with achievement-related data
type AchievementRepository interface {
	// CreateAchievement inserts new achievement to database
	CreateAchievement(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error)
	// ListAchievements returns achievements, newest first
	ListAchievements(ctx context.Context) ([]models.Achievement, error)
}

// AchievementService reads the achievement catalog
type AchievementService struct {
	repo AchievementRepository
}

// NewAchievementService creates new AchievementService instance
func NewAchievementService(repo AchievementRepository) *AchievementService {
	return &AchievementService{repo: repo}
}

// List returns achievements, newest first
func (as *AchievementService) List(ctx context.Context) ([]models.Achievement, error) {
	return as.repo.ListAchievements(ctx)
}
