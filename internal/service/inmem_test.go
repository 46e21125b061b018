package service

import (
	"context"
	"sync"
	"time"

	"github.com/evanlesnar/billetterie/internal/mailer"
	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/google/uuid"
)

// In-memory repositories mirroring the conditional-update contracts of the
// postgres layer. A single mutex per repository stands in for the store's
// per-row atomicity, which is what makes the concurrency tests meaningful.

type memOrderRepo struct {
	mu     sync.Mutex
	events *memEventRepo
	orders map[uuid.UUID]*models.Order

	// number of ValidateOrder calls to fail with ErrTokenExists
	forceTokenExists int
}

func newMemOrderRepo(events *memEventRepo) *memOrderRepo {
	return &memOrderRepo{
		events: events,
		orders: make(map[uuid.UUID]*models.Order),
	}
}

func (r *memOrderRepo) attachEvent(order models.Order) *models.Order {
	if r.events != nil {
		if event, err := r.events.GetEventByID(context.Background(), order.EventID); err == nil {
			order.Event = event
		}
	}
	return &order
}

func (r *memOrderRepo) CreateOrder(_ context.Context, order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.CreatedAt = time.Now()
	stored := *order
	r.orders[order.ID] = &stored

	return order, nil
}

func (r *memOrderRepo) GetOrderByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}

	return r.attachEvent(*order), nil
}

func (r *memOrderRepo) ListOrders(_ context.Context, filter models.OrderFilter) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := []models.Order{}
	for _, order := range r.orders {
		if filter.Status != "" && order.PaymentStatus != filter.Status {
			continue
		}
		if filter.EventID != nil && order.EventID != *filter.EventID {
			continue
		}
		orders = append(orders, *order)
	}

	return orders, nil
}

func (r *memOrderRepo) ValidateOrder(_ context.Context, id uuid.UUID, token string, validatedAt time.Time) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceTokenExists > 0 {
		r.forceTokenExists--
		return nil, models.ErrTokenExists
	}

	order, ok := r.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	if order.PaymentStatus == models.PaymentStatusValidated {
		return nil, models.ErrOrderAlreadyValidated
	}
	for otherID, other := range r.orders {
		if otherID != id && other.Token != nil && *other.Token == token {
			return nil, models.ErrTokenExists
		}
	}

	order.PaymentStatus = models.PaymentStatusValidated
	order.Token = &token
	order.ValidatedAt = &validatedAt

	return r.attachEvent(*order), nil
}

func (r *memOrderRepo) CancelOrder(_ context.Context, id uuid.UUID) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}

	order.PaymentStatus = models.PaymentStatusCancelled
	order.Token = nil
	order.TokenUsed = false
	order.TokenUsedAt = nil
	order.ValidatedAt = nil

	return r.attachEvent(*order), nil
}

func (r *memOrderRepo) RedeemToken(_ context.Context, token string, usedAt time.Time) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var order *models.Order
	for _, candidate := range r.orders {
		if candidate.Token != nil && *candidate.Token == token {
			order = candidate
			break
		}
	}
	if order == nil {
		return nil, models.ErrTokenNotFound
	}
	if order.PaymentStatus != models.PaymentStatusValidated {
		return nil, models.ErrPaymentNotValidated
	}
	if order.TokenUsed {
		return nil, models.ErrTokenAlreadyUsed
	}

	order.TokenUsed = true
	order.TokenUsedAt = &usedAt

	return r.attachEvent(*order), nil
}

type memEventRepo struct {
	mu     sync.Mutex
	events map[uuid.UUID]*models.Event

	// per-event errors injected into ArchiveEvent
	archiveErrs map[uuid.UUID]error
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{
		events:      make(map[uuid.UUID]*models.Event),
		archiveErrs: make(map[uuid.UUID]error),
	}
}

func (r *memEventRepo) CreateEvent(_ context.Context, event *models.Event) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.CreatedAt = time.Now()
	stored := *event
	r.events[event.ID] = &stored

	return event, nil
}

func (r *memEventRepo) GetEventByID(_ context.Context, id uuid.UUID) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}

	eventCopy := *event
	return &eventCopy, nil
}

func (r *memEventRepo) ListEvents(_ context.Context, filter models.EventFilter) ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := []models.Event{}
	for _, event := range r.events {
		if filter.Status != "" && event.Status != filter.Status {
			continue
		}
		if filter.Upcoming && event.Status == models.EventStatusPast {
			continue
		}
		events = append(events, *event)
	}

	return events, nil
}

func (r *memEventRepo) UpdateEvent(_ context.Context, event *models.Event) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[event.ID]; !ok {
		return nil, models.ErrEventNotFound
	}

	stored := *event
	r.events[event.ID] = &stored

	eventCopy := stored
	return &eventCopy, nil
}

func (r *memEventRepo) DeleteEvent(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return models.ErrEventNotFound
	}
	delete(r.events, id)

	return nil
}

func (r *memEventRepo) GetExpiredEvents(_ context.Context, now time.Time) ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := []models.Event{}
	for _, event := range r.events {
		if event.Date.Before(now) && event.Status != models.EventStatusPast {
			events = append(events, *event)
		}
	}

	return events, nil
}

func (r *memEventRepo) ArchiveEvent(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err, ok := r.archiveErrs[id]; ok {
		return err
	}

	event, ok := r.events[id]
	if !ok || event.Status == models.EventStatusPast {
		return models.ErrEventArchived
	}

	event.Status = models.EventStatusPast
	event.IsArchived = true

	return nil
}

type memAchievementRepo struct {
	mu           sync.Mutex
	achievements []models.Achievement

	createErr error
}

func newMemAchievementRepo() *memAchievementRepo {
	return &memAchievementRepo{}
}

func (r *memAchievementRepo) CreateAchievement(_ context.Context, achievement *models.Achievement) (*models.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return nil, r.createErr
	}

	achievement.CreatedAt = time.Now()
	r.achievements = append(r.achievements, *achievement)

	return achievement, nil
}

func (r *memAchievementRepo) ListAchievements(_ context.Context) ([]models.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.Achievement{}, r.achievements...), nil
}

// stubMailer records sends, safe for the background dispatch goroutines
type stubMailer struct {
	mu            sync.Mutex
	confirmations int
	notifications int
	tokens        []string
}

func (m *stubMailer) SendOrderConfirmation(context.Context, mailer.OrderDetails, models.PaymentInstructions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmations++
	return nil
}

func (m *stubMailer) SendAdminNotification(context.Context, mailer.OrderDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications++
	return nil
}

func (m *stubMailer) SendToken(_ context.Context, token string, _ mailer.OrderDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = append(m.tokens, token)
	return nil
}

func (m *stubMailer) counts() (int, int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.confirmations, m.notifications, len(m.tokens)
}
