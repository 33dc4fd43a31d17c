package notify

import (
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Email is a single outbound transactional message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers an email through the configured provider.
type Sender interface {
	Send(email Email) error
}

// ResendSender delivers email through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendSender) Send(email Email) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("resend: %w", err)
	}

	return nil
}
