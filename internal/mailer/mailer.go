// Package mailer sends customer and administrator notification emails.
// Every send is best-effort: callers bound it with a timeout and only log
// failures, delivery never gates an order operation.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/wneessen/go-mail"
)

// OrderDetails carries the order facts rendered into emails
type OrderDetails struct {
	OrderID       string
	CustomerName  string
	CustomerEmail string
	EventTitle    string
	EventDate     string
	EventVenue    string
	TotalAmount   float64
	Currency      string
}

// Mailer sends order lifecycle notifications
type Mailer interface {
	// SendOrderConfirmation sends payment instructions to the customer
	SendOrderConfirmation(ctx context.Context, details OrderDetails, instructions models.PaymentInstructions) error
	// SendAdminNotification tells the administrator about a new order
	SendAdminNotification(ctx context.Context, details OrderDetails) error
	// SendToken sends the redemption token to the customer
	SendToken(ctx context.Context, token string, details OrderDetails) error
}

// Config is SMTP mailer configuration
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
	Timeout    time.Duration
}

// SMTPMailer sends emails over SMTP
type SMTPMailer struct {
	client     *mail.Client
	from       string
	adminEmail string
}

// NewSMTPMailer creates new SMTPMailer instance
func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}

	return &SMTPMailer{
		client:     client,
		from:       cfg.From,
		adminEmail: cfg.AdminEmail,
	}, nil
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat("Evan Lesnar - Billetterie", m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	return m.client.DialAndSendWithContext(ctx, msg)
}

// SendOrderConfirmation sends payment instructions to the customer
func (m *SMTPMailer) SendOrderConfirmation(ctx context.Context, details OrderDetails, instructions models.PaymentInstructions) error {
	subject := "Confirmation de votre commande - Evan Lesnar"
	return m.send(ctx, details.CustomerEmail, subject, orderConfirmationBody(details, instructions))
}

// SendAdminNotification tells the administrator about a new order
func (m *SMTPMailer) SendAdminNotification(ctx context.Context, details OrderDetails) error {
	if m.adminEmail == "" {
		return fmt.Errorf("admin email is not configured")
	}
	subject := fmt.Sprintf("Nouvelle commande de %s", details.CustomerName)
	return m.send(ctx, m.adminEmail, subject, adminNotificationBody(details))
}

// SendToken sends the redemption token to the customer
func (m *SMTPMailer) SendToken(ctx context.Context, token string, details OrderDetails) error {
	subject := "Votre billet - Evan Lesnar"
	return m.send(ctx, details.CustomerEmail, subject, tokenBody(token, details))
}

// NoopMailer is used when SMTP is not configured
type NoopMailer struct{}

func (NoopMailer) SendOrderConfirmation(context.Context, OrderDetails, models.PaymentInstructions) error {
	return nil
}

func (NoopMailer) SendAdminNotification(context.Context, OrderDetails) error {
	return nil
}

func (NoopMailer) SendToken(context.Context, string, OrderDetails) error {
	return nil
}
