package models

import (
	"time"

	"github.com/google/uuid"
)

// payment status
const (
	PaymentStatusPending   = "pending"
	PaymentStatusValidated = "validated"
	PaymentStatusCancelled = "cancelled"
)

// mobile-money payment methods
const (
	PaymentMethodMpesa    = "mpesa"
	PaymentMethodOrange   = "orange"
	PaymentMethodAirtel   = "airtel"
	PaymentMethodAfricell = "africell"
)

// Ticket is one order line item
type Ticket struct {
	Type     string  `json:"type"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a purchase attempt for event tickets
type Order struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Tickets       []Ticket
	TotalAmount   float64
	PaymentMethod string
	PaymentStatus string
	Token         *string
	TokenUsed     bool
	TokenUsedAt   *time.Time
	ValidatedAt   *time.Time
	CreatedAt     time.Time
	Event         *Event
}

// OrderFilter narrows order listings
type OrderFilter struct {
	Status  string
	EventID *uuid.UUID
}
