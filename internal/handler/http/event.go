package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type EventService interface {
	// Create persists a new event
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	// Get returns event by id
	Get(ctx context.Context, id uuid.UUID) (*models.Event, error)
	// List returns events matching filter
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	// Update replaces mutable event fields
	Update(ctx context.Context, event *models.Event) (*models.Event, error)
	// Delete removes event
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventHandler represents HTTP handler for event-related requests
type EventHandler struct {
	svc EventService
}

// NewEventHandler creates new EventHandler instance
func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

type eventRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Date        time.Time           `json:"date"`
	Time        string              `json:"time"`
	Venue       string              `json:"venue"`
	City        string              `json:"city"`
	Image       string              `json:"image"`
	Tickets     []models.TicketType `json:"tickets"`
	Status      string              `json:"status"`
}

func (req *eventRequest) toModel() *models.Event {
	return &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		City:        req.City,
		Image:       req.Image,
		Tickets:     req.Tickets,
		Status:      req.Status,
	}
}

// ListEvents returns events, optionally filtered by status or upcoming flag
// 200 — events returned;
// 500 — internal error.
func (eh *EventHandler) ListEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := models.EventFilter{
			Status:   r.URL.Query().Get("status"),
			Upcoming: r.URL.Query().Get("upcoming") == "true",
		}

		events, err := eh.svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := make([]*eventResponse, 0, len(events))
		for i := range events {
			resp = append(resp, newEventResponse(&events[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

// GetEvent returns single event
// 200 — event found;
// 404 — event does not exist;
// 500 — internal error.
func (eh *EventHandler) GetEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		event, err := eh.svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrEventNotFound) {
				http.Error(w, "event not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(newEventResponse(event)); err != nil {
			return
		}
	}
}

// CreateEvent creates new event
// 201 — event created;
// 400 — malformed request body;
// 401 — administrator is not authenticated;
// 500 — internal error.
func (eh *EventHandler) CreateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		event, err := eh.svc.Create(r.Context(), req.toModel())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(newEventResponse(event)); err != nil {
			return
		}
	}
}

// UpdateEvent replaces mutable event fields
// 200 — event updated;
// 400 — malformed request body;
// 401 — administrator is not authenticated;
// 404 — event does not exist;
// 500 — internal error.
func (eh *EventHandler) UpdateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		var req eventRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		event := req.toModel()
		event.ID = id

		updated, err := eh.svc.Update(r.Context(), event)
		if err != nil {
			if errors.Is(err, models.ErrEventNotFound) {
				http.Error(w, "event not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(newEventResponse(updated)); err != nil {
			return
		}
	}
}

// DeleteEvent removes event
// 200 — event deleted;
// 401 — administrator is not authenticated;
// 404 — event does not exist;
// 409 — event has orders and is kept;
// 500 — internal error.
func (eh *EventHandler) DeleteEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		if err := eh.svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, models.ErrEventNotFound):
				http.Error(w, "event not found", http.StatusNotFound)
			case errors.Is(err, models.ErrEventHasOrders):
				http.Error(w, "event has orders", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
