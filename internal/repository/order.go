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

const pgErrUniqueViolationCode = "23505"

const (
	insertOrderQuery = `
						INSERT INTO orders (id, event_id, customer_name, customer_email, customer_phone, tickets, total_amount, payment_method, payment_status)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
						RETURNING created_at
`
	selectOrderByIDQuery = `
						SELECT o.id, o.event_id, o.customer_name, o.customer_email, o.customer_phone, o.tickets,
						       o.total_amount, o.payment_method, o.payment_status, o.token, o.token_used,
						       o.token_used_at, o.validated_at, o.created_at,
						       e.title, e.description, e.date, e.time, e.venue, e.city, e.image, e.tickets,
						       e.status, e.is_archived, e.created_at
						FROM orders o
						JOIN events e ON e.id = o.event_id
						WHERE o.id = $1
`
	selectOrdersQuery = `
						SELECT o.id, o.event_id, o.customer_name, o.customer_email, o.customer_phone, o.tickets,
						       o.total_amount, o.payment_method, o.payment_status, o.token, o.token_used,
						       o.token_used_at, o.validated_at, o.created_at,
						       e.title, e.date, e.venue, e.city
						FROM orders o
						JOIN events e ON e.id = o.event_id
`
	// transition is refused only for already validated orders, a cancelled
	// order may be validated again
	validateOrderQuery = `
						UPDATE orders
						SET payment_status = 'validated', token = $2, validated_at = $3
						WHERE id = $1 AND payment_status <> 'validated'
						RETURNING id
`
	cancelOrderQuery = `
						UPDATE orders
						SET payment_status = 'cancelled', token = NULL, token_used = false, token_used_at = NULL, validated_at = NULL
						WHERE id = $1
						RETURNING id
`
	// compare-and-set, exactly one concurrent redemption can succeed
	redeemTokenQuery = `
						UPDATE orders
						SET token_used = true, token_used_at = $2
						WHERE token = $1 AND payment_status = 'validated' AND token_used = false
						RETURNING id
`
	orderExistsQuery = `
						SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)
`
	selectTokenStatusQuery = `
						SELECT payment_status FROM orders
						WHERE token = $1
`
)

// OrderRepository persists orders
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder inserts new order to database
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := or.db.QueryRow(ctx, insertOrderQuery,
		order.ID, order.EventID, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.Tickets, order.TotalAmount, order.PaymentMethod, order.PaymentStatus,
	).Scan(&order.CreatedAt)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderByID returns order with its event
func (or *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order := models.Order{}
	event := models.Event{}

	err := or.db.QueryRow(ctx, selectOrderByIDQuery, id).Scan(
		&order.ID, &order.EventID, &order.CustomerName, &order.CustomerEmail, &order.CustomerPhone,
		&order.Tickets, &order.TotalAmount, &order.PaymentMethod, &order.PaymentStatus,
		&order.Token, &order.TokenUsed, &order.TokenUsedAt, &order.ValidatedAt, &order.CreatedAt,
		&event.Title, &event.Description, &event.Date, &event.Time, &event.Venue, &event.City,
		&event.Image, &event.Tickets, &event.Status, &event.IsArchived, &event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}

	event.ID = order.EventID
	order.Event = &event

	return &order, nil
}

// ListOrders returns orders matching filter, newest first
func (or *OrderRepository) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	query := selectOrdersQuery
	args := []any{}
	conds := []string{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("o.payment_status = $%d", len(args)))
	}
	if filter.EventID != nil {
		args = append(args, *filter.EventID)
		conds = append(conds, fmt.Sprintf("o.event_id = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := or.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		event := models.Event{}
		err = rows.Scan(
			&order.ID, &order.EventID, &order.CustomerName, &order.CustomerEmail, &order.CustomerPhone,
			&order.Tickets, &order.TotalAmount, &order.PaymentMethod, &order.PaymentStatus,
			&order.Token, &order.TokenUsed, &order.TokenUsedAt, &order.ValidatedAt, &order.CreatedAt,
			&event.Title, &event.Date, &event.Venue, &event.City,
		)
		if err != nil {
			continue
		}
		event.ID = order.EventID
		order.Event = &event
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// ValidateOrder sets order to validated with given token in a single
// conditional update. It returns models.ErrTokenExists when the token
// collides with another order, the caller retries with a fresh token.
func (or *OrderRepository) ValidateOrder(ctx context.Context, id uuid.UUID, token string, validatedAt time.Time) (*models.Order, error) {
	var updatedID uuid.UUID
	err := or.db.QueryRow(ctx, validateOrderQuery, id, token, validatedAt).Scan(&updatedID)
	if err != nil {
		if errCode := or.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrTokenExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, or.classifyValidateFailure(ctx, id)
		}
		return nil, err
	}

	return or.GetOrderByID(ctx, updatedID)
}

// classifyValidateFailure names the precondition that rejected the update
func (or *OrderRepository) classifyValidateFailure(ctx context.Context, id uuid.UUID) error {
	var exists bool
	if err := or.db.QueryRow(ctx, orderExistsQuery, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return models.ErrOrderNotFound
	}
	// the order exists but the update matched no row, so it was validated
	// at that moment
	return models.ErrOrderAlreadyValidated
}

// CancelOrder resets order to cancelled regardless of its prior state
func (or *OrderRepository) CancelOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var updatedID uuid.UUID
	err := or.db.QueryRow(ctx, cancelOrderQuery, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}

	return or.GetOrderByID(ctx, updatedID)
}

// RedeemToken marks token as used if and only if its order is validated and
// the token has not been used yet. The conditional update settles concurrent
// redemption attempts, losers get a classification of what failed.
func (or *OrderRepository) RedeemToken(ctx context.Context, token string, usedAt time.Time) (*models.Order, error) {
	var id uuid.UUID
	err := or.db.QueryRow(ctx, redeemTokenQuery, token, usedAt).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, or.classifyRedeemFailure(ctx, token)
		}
		return nil, err
	}

	return or.GetOrderByID(ctx, id)
}

// classifyRedeemFailure names the precondition that rejected the redemption
func (or *OrderRepository) classifyRedeemFailure(ctx context.Context, token string) error {
	var status string
	err := or.db.QueryRow(ctx, selectTokenStatusQuery, token).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrTokenNotFound
		}
		return err
	}
	if status != models.PaymentStatusValidated {
		return models.ErrPaymentNotValidated
	}
	// validated and the update still matched nothing, so the token was used
	return models.ErrTokenAlreadyUsed
}
