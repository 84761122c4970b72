package messaging

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendgridSender sends transactional email through SendGrid.
type SendgridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewSendgridSender creates an email sender, failing fast on missing credentials.
func NewSendgridSender(apiKey, fromEmail, fromName string) (*SendgridSender, error) {
	if apiKey == "" || fromEmail == "" {
		return nil, errors.New("sendgrid credentials not configured")
	}

	log.Println("[SendGrid] Client initialized")
	return &SendgridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

// SendEmail delivers a single plain-text email.
func (s *SendgridSender) SendEmail(ctx context.Context, toAddress, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", toAddress)
	message := mail.NewSingleEmail(from, subject, to, body, "<p>"+body+"</p>")

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send rejected: status %d", resp.StatusCode)
	}
	return nil
}
