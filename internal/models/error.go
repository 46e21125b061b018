package models

import "errors"

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrAdminNotFound         = errors.New("admin not found")
	ErrOrderAlreadyValidated = errors.New("order already validated")
	ErrTokenNotFound         = errors.New("token not found")
	ErrTokenRequired         = errors.New("token is required")
	ErrTokenAlreadyUsed      = errors.New("token already used")
	ErrTokenExists           = errors.New("token already exists")
	ErrPaymentNotValidated   = errors.New("payment is not validated")
	ErrInvalidPaymentMethod  = errors.New("unknown payment method")
	ErrCustomerNameRequired  = errors.New("customer name is required")
	ErrCustomerPhoneRequired = errors.New("customer phone is required")
	ErrNoTickets             = errors.New("order must contain at least one ticket")
	ErrInvalidTicketQuantity = errors.New("ticket quantity must be positive")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEventHasOrders        = errors.New("event has orders")
	ErrEventArchived         = errors.New("event already archived")
	ErrInternalError         = errors.New("internal error")
)
