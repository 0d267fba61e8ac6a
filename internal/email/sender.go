// Package email sends operator notifications for new leads.
package email

import (
	"context"

	"seller_landing/platform/config"
)

// Lead is the lead summary included in a notification.
type Lead struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	Privacy     bool   `json:"privacy"`
	SubmittedAt string `json:"submittedAt"`
}

type Sender interface {
	SendLeadNotification(ctx context.Context, toEmail string, lead Lead) error
}

type NoopSender struct{}

func (NoopSender) SendLeadNotification(ctx context.Context, toEmail string, lead Lead) error {
	return nil
}

// NewSender returns an SMTP sender when mail is configured and a NoopSender
// otherwise.
func NewSender(cfg config.MailConfig) Sender {
	if !cfg.IsMailEnabled() {
		return NoopSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetSMTPFromAddress(),
		cfg.GetSMTPFromName(),
	)
}
