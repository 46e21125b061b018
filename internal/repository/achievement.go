package repository

import (
	"context"

	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/evanlesnar/billetterie/internal/repository/postgres"
)

const (
	insertAchievementQuery = `
						INSERT INTO achievements (id, title, description, date, image, type, source_event, is_manual)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
						RETURNING created_at
`
	selectAchievementsQuery = `
						SELECT id, title, description, date, image, type, source_event, is_manual, created_at
						FROM achievements
						ORDER BY date DESC NULLS LAST, created_at DESC
`
)

// AchievementRepository persists achievements
type AchievementRepository struct {
	db *postgres.DB
}

// NewAchievementRepository creates new AchievementRepository instance
func NewAchievementRepository(db *postgres.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// CreateAchievement inserts new achievement to database
func (ar *AchievementRepository) CreateAchievement(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error) {
	err := ar.db.QueryRow(ctx, insertAchievementQuery,
		achievement.ID, achievement.Title, achievement.Description, achievement.Date,
		achievement.Image, achievement.Type, achievement.SourceEvent, achievement.IsManual,
	).Scan(&achievement.CreatedAt)
	if err != nil {
		return nil, err
	}

	return achievement, nil
}

// ListAchievements returns achievements, newest first
func (ar *AchievementRepository) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	rows, err := ar.db.Query(ctx, selectAchievementsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := []models.Achievement{}

	for rows.Next() {
		achievement := models.Achievement{}
		err = rows.Scan(
			&achievement.ID, &achievement.Title, &achievement.Description, &achievement.Date,
			&achievement.Image, &achievement.Type, &achievement.SourceEvent, &achievement.IsManual,
			&achievement.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, achievement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return achievements, nil
}
