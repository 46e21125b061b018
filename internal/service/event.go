package service

import (
	"context"
	"errors"
	"time"

	"github.com/evanlesnar/billetterie/internal/logger"
	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventRepository is interface for interacting with event-related data
type EventRepository interface {
	// CreateEvent inserts new event to database
	CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	// GetEventByID returns event by id
	GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	// ListEvents returns events matching filter
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	// UpdateEvent replaces mutable event fields
	UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	// DeleteEvent removes event
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	// GetExpiredEvents returns events dated before now that are not yet past
	GetExpiredEvents(ctx context.Context, now time.Time) ([]models.Event, error)
	// ArchiveEvent transitions event to past exactly once
	ArchiveEvent(ctx context.Context, id uuid.UUID) error
}

// EventService manages the event catalog and the archival transition
type EventService struct {
	repo         EventRepository
	achievements AchievementRepository
}

// NewEventService creates new EventService instance
func NewEventService(repo EventRepository, achievements AchievementRepository) *EventService {
	return &EventService{
		repo:         repo,
		achievements: achievements,
	}
}

// Create persists a new event
func (es *EventService) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	event.ID = uuid.New()
	if event.Status == "" {
		event.Status = models.EventStatusUpcoming
	}
	for i := range event.Tickets {
		if event.Tickets[i].Currency == "" {
			event.Tickets[i].Currency = defaultCurrency
		}
	}

	return es.repo.CreateEvent(ctx, event)
}

// Get returns event by id
func (es *EventService) Get(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	return es.repo.GetEventByID(ctx, id)
}

// List returns events matching filter
func (es *EventService) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	return es.repo.ListEvents(ctx, filter)
}

// Update replaces mutable event fields
func (es *EventService) Update(ctx context.Context, event *models.Event) (*models.Event, error) {
	return es.repo.UpdateEvent(ctx, event)
}

// Delete removes event
func (es *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	return es.repo.DeleteEvent(ctx, id)
}

// ArchiveExpired moves every event dated in the past to the past status and
// mints one achievement per archived event. Each event is processed on its
// own: a failure is logged and the scan continues. The per-event conditional
// update makes a rerun, even a concurrent one, a no-op for events already
// archived. Returns the number of events archived.
func (es *EventService) ArchiveExpired(ctx context.Context) (int, error) {
	events, err := es.repo.GetExpiredEvents(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	archived := 0

	for _, event := range events {
		if err := es.repo.ArchiveEvent(ctx, event.ID); err != nil {
			if errors.Is(err, models.ErrEventArchived) {
				// another run got there first
				continue
			}
			logger.Log.Error("archive event", zap.String("title", event.Title), zap.Error(err))
			continue
		}

		achievement := &models.Achievement{
			ID:          uuid.New(),
			Title:       event.Title,
			Description: event.Description,
			Date:        &event.Date,
			Image:       event.Image,
			Type:        models.AchievementTypeEvent,
			SourceEvent: &event.ID,
			IsManual:    false,
		}

		if _, err := es.achievements.CreateAchievement(ctx, achievement); err != nil {
			logger.Log.Error("create achievement for archived event",
				zap.String("title", event.Title), zap.Error(err))
			continue
		}

		archived++
		logger.Log.Info("archived event", zap.String("title", event.Title))
	}

	return archived, nil
}
