package models

import (
	"time"

	"github.com/google/uuid"
)

// event status
const (
	EventStatusUpcoming    = "upcoming"
	EventStatusPast        = "past"
	EventStatusSellingFast = "selling-fast"
)

// TicketType is one ticket category sold for an event
type TicketType struct {
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Available int     `json:"available"`
	Total     int     `json:"total"`
}

// Event is a live event with its ticket inventory
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Date        time.Time
	Time        string
	Venue       string
	City        string
	Image       string
	Tickets     []TicketType
	Status      string
	IsArchived  bool
	CreatedAt   time.Time
}

// EventFilter narrows event listings
type EventFilter struct {
	Status   string
	Upcoming bool
}
