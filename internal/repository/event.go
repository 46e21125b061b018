package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/evanlesnar/billetterie/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const pgErrForeignKeyViolationCode = "23503"

const (
	insertEventQuery = `
						INSERT INTO events (id, title, description, date, time, venue, city, image, tickets, status)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
						RETURNING created_at
`
	selectEventByIDQuery = `
						SELECT id, title, description, date, time, venue, city, image, tickets, status, is_archived, created_at
						FROM events
						WHERE id = $1
`
	selectEventsQuery = `
						SELECT id, title, description, date, time, venue, city, image, tickets, status, is_archived, created_at
						FROM events
`
	updateEventQuery = `
						UPDATE events
						SET title = $2, description = $3, date = $4, time = $5, venue = $6, city = $7, image = $8, tickets = $9, status = $10
						WHERE id = $1
						RETURNING id, title, description, date, time, venue, city, image, tickets, status, is_archived, created_at
`
	deleteEventQuery = `
						DELETE FROM events
						WHERE id = $1
`
	selectExpiredEventsQuery = `
						SELECT id, title, description, date, time, venue, city, image, tickets, status, is_archived, created_at
						FROM events
						WHERE date < $1 AND status <> 'past'
						ORDER BY date
`
	// idempotent forward-only transition, a second run matches no rows
	archiveEventQuery = `
						UPDATE events
						SET status = 'past', is_archived = true
						WHERE id = $1 AND status <> 'past'
`
)

// EventRepository persists events
type EventRepository struct {
	db *postgres.DB
}

// NewEventRepository creates new EventRepository instance
func NewEventRepository(db *postgres.DB) *EventRepository {
	return &EventRepository{db: db}
}

// CreateEvent inserts new event to database
func (er *EventRepository) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	err := er.db.QueryRow(ctx, insertEventQuery,
		event.ID, event.Title, event.Description, event.Date, event.Time,
		event.Venue, event.City, event.Image, event.Tickets, event.Status,
	).Scan(&event.CreatedAt)
	if err != nil {
		return nil, err
	}

	return event, nil
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	event := models.Event{}
	err := row.Scan(
		&event.ID, &event.Title, &event.Description, &event.Date, &event.Time,
		&event.Venue, &event.City, &event.Image, &event.Tickets, &event.Status,
		&event.IsArchived, &event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetEventByID returns event by id
func (er *EventRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := scanEvent(er.db.QueryRow(ctx, selectEventByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

// ListEvents returns events matching filter, soonest first
func (er *EventRepository) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	query := selectEventsQuery
	args := []any{}
	conds := []string{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Upcoming {
		startOfDay := time.Now().Truncate(24 * time.Hour)
		args = append(args, startOfDay)
		conds = append(conds, fmt.Sprintf("date >= $%d AND status <> 'past'", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date"

	rows, err := er.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}

	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			continue
		}
		events = append(events, *event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// UpdateEvent replaces mutable event fields
func (er *EventRepository) UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	updated, err := scanEvent(er.db.QueryRow(ctx, updateEventQuery,
		event.ID, event.Title, event.Description, event.Date, event.Time,
		event.Venue, event.City, event.Image, event.Tickets, event.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, err
	}

	return updated, nil
}

// DeleteEvent removes event. Events that already received orders are kept.
func (er *EventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	cmd, err := er.db.Exec(ctx, deleteEventQuery, id)
	if err != nil {
		if errCode := er.db.ErrorCode(err); errCode == pgErrForeignKeyViolationCode {
			return models.ErrEventHasOrders
		}
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrEventNotFound
	}

	return nil
}

// GetExpiredEvents returns events dated before now that are not yet past
func (er *EventRepository) GetExpiredEvents(ctx context.Context, now time.Time) ([]models.Event, error) {
	rows, err := er.db.Query(ctx, selectExpiredEventsQuery, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}

	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			continue
		}
		events = append(events, *event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// ArchiveEvent transitions event to past. It returns models.ErrEventArchived
// when the event is already past or gone, which makes the archival job safe
// to run concurrently with itself.
func (er *EventRepository) ArchiveEvent(ctx context.Context, id uuid.UUID) error {
	cmd, err := er.db.Exec(ctx, archiveEventQuery, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrEventArchived
	}

	return nil
}
