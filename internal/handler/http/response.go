package handler

import (
	"time"

	"github.com/evanlesnar/billetterie/internal/models"
)

type eventResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Date        string              `json:"date"`
	Time        string              `json:"time,omitempty"`
	Venue       string              `json:"venue"`
	City        string              `json:"city"`
	Image       string              `json:"image,omitempty"`
	Tickets     []models.TicketType `json:"tickets,omitempty"`
	Status      string              `json:"status"`
	IsArchived  bool                `json:"isArchived"`
	CreatedAt   string              `json:"createdAt,omitempty"`
}

func newEventResponse(event *models.Event) *eventResponse {
	resp := eventResponse{
		ID:          event.ID.String(),
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date.Format(time.RFC3339),
		Time:        event.Time,
		Venue:       event.Venue,
		City:        event.City,
		Image:       event.Image,
		Tickets:     event.Tickets,
		Status:      event.Status,
		IsArchived:  event.IsArchived,
	}
	if !event.CreatedAt.IsZero() {
		resp.CreatedAt = event.CreatedAt.Format(time.RFC3339)
	}
	return &resp
}

type orderResponse struct {
	ID            string          `json:"id"`
	EventID       string          `json:"eventId"`
	Event         *eventResponse  `json:"event,omitempty"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	CustomerPhone string          `json:"customerPhone"`
	Tickets       []models.Ticket `json:"tickets"`
	TotalAmount   float64         `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
	Token         string          `json:"token,omitempty"`
	TokenUsed     bool            `json:"tokenUsed"`
	TokenUsedAt   string          `json:"tokenUsedAt,omitempty"`
	ValidatedAt   string          `json:"validatedAt,omitempty"`
	CreatedAt     string          `json:"createdAt"`
}

func newOrderResponse(order *models.Order) *orderResponse {
	resp := orderResponse{
		ID:            order.ID.String(),
		EventID:       order.EventID.String(),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Tickets:       order.Tickets,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		TokenUsed:     order.TokenUsed,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}
	if order.Event != nil {
		resp.Event = newEventResponse(order.Event)
	}
	if order.Token != nil {
		resp.Token = *order.Token
	}
	if order.TokenUsedAt != nil {
		resp.TokenUsedAt = order.TokenUsedAt.Format(time.RFC3339)
	}
	if order.ValidatedAt != nil {
		resp.ValidatedAt = order.ValidatedAt.Format(time.RFC3339)
	}
	return &resp
}

type achievementResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Image       string `json:"image,omitempty"`
	Type        string `json:"type"`
	SourceEvent string `json:"sourceEvent,omitempty"`
	IsManual    bool   `json:"isManual"`
	CreatedAt   string `json:"createdAt"`
}

func newAchievementResponse(achievement *models.Achievement) *achievementResponse {
	resp := achievementResponse{
		ID:          achievement.ID.String(),
		Title:       achievement.Title,
		Description: achievement.Description,
		Image:       achievement.Image,
		Type:        achievement.Type,
		IsManual:    achievement.IsManual,
		CreatedAt:   achievement.CreatedAt.Format(time.RFC3339),
	}
	if achievement.Date != nil {
		resp.Date = achievement.Date.Format(time.RFC3339)
	}
	if achievement.SourceEvent != nil {
		resp.SourceEvent = achievement.SourceEvent.String()
	}
	return &resp
}
