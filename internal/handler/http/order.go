package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OrderService interface {
	// Create persists a new pending order
	Create(ctx context.Context, order *models.Order) (*models.Order, models.PaymentInstructions, error)
	// Get returns order with its event
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// List returns orders matching filter
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	// Validate confirms payment and issues the redemption token
	Validate(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// Cancel revokes order access
	Cancel(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// Redeem consumes token exactly once
	Redeem(ctx context.Context, token string) (*models.Order, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type createOrderRequest struct {
	EventID       string          `json:"eventId"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	Tickets       []models.Ticket `json:"tickets"`
	TotalAmount   float64         `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod"`
}

type createOrderResponse struct {
	Order               *orderResponse             `json:"order"`
	PaymentInstructions models.PaymentInstructions `json:"paymentInstructions"`
}

// CreateOrder creates new pending order
// 201 — order accepted, payment instructions returned;
// 400 — malformed request body or failed validation;
// 404 — referenced event does not exist;
// 500 — internal error.
func (oh *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		eventID, err := uuid.Parse(req.EventID)
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		order := models.Order{
			EventID:       eventID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Tickets:       req.Tickets,
			TotalAmount:   req.TotalAmount,
			PaymentMethod: req.PaymentMethod,
		}

		created, instructions, err := oh.svc.Create(r.Context(), &order)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrEventNotFound):
				http.Error(w, "event not found", http.StatusNotFound)
			case errors.Is(err, models.ErrInvalidPaymentMethod),
				errors.Is(err, models.ErrCustomerNameRequired),
				errors.Is(err, models.ErrCustomerPhoneRequired),
				errors.Is(err, models.ErrNoTickets),
				errors.Is(err, models.ErrInvalidTicketQuantity):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(createOrderResponse{
			Order:               newOrderResponse(created),
			PaymentInstructions: instructions,
		}); err != nil {
			return
		}
	}
}

// ListOrders returns orders, optionally filtered by payment status and event
// 200 — orders returned;
// 401 — administrator is not authenticated;
// 500 — internal error.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := models.OrderFilter{
			Status: r.URL.Query().Get("status"),
		}
		if eventIDParam := r.URL.Query().Get("eventId"); eventIDParam != "" {
			eventID, err := uuid.Parse(eventIDParam)
			if err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			filter.EventID = &eventID
		}

		orders, err := oh.svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := make([]*orderResponse, 0, len(orders))
		for i := range orders {
			resp = append(resp, newOrderResponse(&orders[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

// GetOrder returns single order with its event
// 200 — order found;
// 404 — order does not exist;
// 500 — internal error.
func (oh *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		order, err := oh.svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrOrderNotFound) {
				http.Error(w, "order not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(newOrderResponse(order)); err != nil {
			return
		}
	}
}

// ValidateOrder confirms payment and issues the redemption token
// 200 — payment validated, token issued;
// 400 — order is already validated;
// 404 — order does not exist;
// 500 — internal error.
func (oh *OrderHandler) ValidateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		order, err := oh.svc.Validate(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrOrderNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			case errors.Is(err, models.ErrOrderAlreadyValidated):
				http.Error(w, "order already validated", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(newOrderResponse(order)); err != nil {
			return
		}
	}
}

// CancelOrder revokes order access regardless of its current state
// 200 — order cancelled;
// 404 — order does not exist;
// 500 — internal error.
func (oh *OrderHandler) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		order, err := oh.svc.Cancel(r.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrOrderNotFound) {
				http.Error(w, "order not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(newOrderResponse(order)); err != nil {
			return
		}
	}
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

// VerifyToken redeems a ticket token, public entry point
// 200 — token redeemed, order returned;
// 400 — missing token, payment not validated or token already used;
// 404 — token does not resolve to an order;
// 500 — internal error.
func (oh *OrderHandler) VerifyToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req verifyTokenRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := oh.svc.Redeem(r.Context(), req.Token)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrTokenNotFound):
				http.Error(w, "invalid token", http.StatusNotFound)
			case errors.Is(err, models.ErrTokenRequired):
				http.Error(w, "token is required", http.StatusBadRequest)
			case errors.Is(err, models.ErrPaymentNotValidated):
				http.Error(w, "payment is not validated", http.StatusBadRequest)
			case errors.Is(err, models.ErrTokenAlreadyUsed):
				http.Error(w, "token already used", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(newOrderResponse(order)); err != nil {
			return
		}
	}
}
