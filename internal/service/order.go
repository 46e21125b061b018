package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evanlesnar/billetterie/internal/logger"
	"github.com/evanlesnar/billetterie/internal/mailer"
	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/evanlesnar/billetterie/internal/token"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// token generation is retried when the store reports a collision
const maxTokenAttempts = 5

const defaultCurrency = "CDF"

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder inserts new order to database
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByID returns order with its event
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// ListOrders returns orders matching filter, newest first
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	// ValidateOrder sets order to validated with given token
	ValidateOrder(ctx context.Context, id uuid.UUID, token string, validatedAt time.Time) (*models.Order, error)
	// CancelOrder resets order to cancelled regardless of its prior state
	CancelOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// RedeemToken marks token as used exactly once
	RedeemToken(ctx context.Context, token string, usedAt time.Time) (*models.Order, error)
}

// OrderService drives the order payment lifecycle
type OrderService struct {
	repo        OrderRepository
	events      EventRepository
	mailer      mailer.Mailer
	mailTimeout time.Duration
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository, events EventRepository, m mailer.Mailer, mailTimeout time.Duration) *OrderService {
	return &OrderService{
		repo:        repo,
		events:      events,
		mailer:      m,
		mailTimeout: mailTimeout,
	}
}

// Create persists a new pending order after checking the referenced event
// exists. Payment instructions for the chosen provider are returned so the
// caller can show them immediately; they are also mailed to the customer.
func (os *OrderService) Create(ctx context.Context, order *models.Order) (*models.Order, models.PaymentInstructions, error) {
	instructions, ok := models.PaymentInstructionsFor(order.PaymentMethod)
	if !ok {
		return nil, models.PaymentInstructions{}, models.ErrInvalidPaymentMethod
	}
	if order.CustomerName == "" {
		return nil, models.PaymentInstructions{}, models.ErrCustomerNameRequired
	}
	if order.CustomerPhone == "" {
		return nil, models.PaymentInstructions{}, models.ErrCustomerPhoneRequired
	}
	if len(order.Tickets) == 0 {
		return nil, models.PaymentInstructions{}, models.ErrNoTickets
	}
	for _, ticket := range order.Tickets {
		if ticket.Quantity < 1 {
			return nil, models.PaymentInstructions{}, models.ErrInvalidTicketQuantity
		}
	}

	event, err := os.events.GetEventByID(ctx, order.EventID)
	if err != nil {
		return nil, models.PaymentInstructions{}, err
	}

	order.ID = uuid.New()
	order.PaymentStatus = models.PaymentStatusPending

	order, err = os.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, models.PaymentInstructions{}, err
	}

	details := emailDetails(order, event)
	if order.CustomerEmail != "" {
		os.dispatch("order confirmation", func(ctx context.Context) error {
			return os.mailer.SendOrderConfirmation(ctx, details, instructions)
		})
	}
	os.dispatch("admin notification", func(ctx context.Context) error {
		return os.mailer.SendAdminNotification(ctx, details)
	})

	order.Event = event

	return order, instructions, nil
}

// Get returns order with its event
func (os *OrderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return os.repo.GetOrderByID(ctx, id)
}

// List returns orders matching filter
func (os *OrderService) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	return os.repo.ListOrders(ctx, filter)
}

// Validate confirms payment for order: it issues a fresh redemption token
// and moves the order to validated in one atomic update. An order that is
// already validated is rejected and keeps its token.
func (os *OrderService) Validate(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		order, err := os.repo.ValidateOrder(ctx, id, token.Generate(), time.Now())
		if errors.Is(err, models.ErrTokenExists) {
			logger.Log.Warn("token collision, retrying", zap.String("order", id.String()))
			continue
		}
		if err != nil {
			return nil, err
		}

		if order.CustomerEmail != "" && order.Token != nil {
			details := emailDetails(order, order.Event)
			tok := *order.Token
			os.dispatch("token", func(ctx context.Context) error {
				return os.mailer.SendToken(ctx, tok, details)
			})
		}

		return order, nil
	}

	return nil, models.ErrTokenExists
}

// Cancel revokes order access: status becomes cancelled and the token,
// its usage marks and the validation timestamp are cleared
func (os *OrderService) Cancel(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return os.repo.CancelOrder(ctx, id)
}

// Redeem consumes tokenValue exactly once and returns the matching order.
// Concurrent redemptions of the same token settle at the store: one wins,
// the rest observe models.ErrTokenAlreadyUsed.
func (os *OrderService) Redeem(ctx context.Context, tokenValue string) (*models.Order, error) {
	if tokenValue == "" {
		return nil, models.ErrTokenRequired
	}

	return os.repo.RedeemToken(ctx, tokenValue, time.Now())
}

// dispatch fires an email send in the background, bounded by the mail
// timeout. Failures are logged and swallowed.
func (os *OrderService) dispatch(name string, send func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), os.mailTimeout)
		defer cancel()

		if err := send(ctx); err != nil {
			logger.Log.Error("send email", zap.String("kind", name), zap.Error(err))
		}
	}()
}

func emailDetails(order *models.Order, event *models.Event) mailer.OrderDetails {
	details := mailer.OrderDetails{
		OrderID:       order.ID.String(),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		TotalAmount:   order.TotalAmount,
		Currency:      defaultCurrency,
	}
	if event != nil {
		details.EventTitle = event.Title
		details.EventDate = event.Date.Format("02/01/2006")
		details.EventVenue = fmt.Sprintf("%s, %s", event.Venue, event.City)
	}
	return details
}
