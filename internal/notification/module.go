// Package notification provides event handlers for sending notifications
// in response to domain events.
// This module subscribes to events and inverts the dependency: the lead form
// does not need to know about email providers, templates or queues.
package notification

import (
	"context"
	"errors"
	"fmt"

	"seller_landing/internal/email"
	"seller_landing/internal/events"
	"seller_landing/internal/scheduler"
	"seller_landing/platform/logger"
	"seller_landing/platform/phone"
)

// Module handles notification-related event subscriptions.
type Module struct {
	sender     email.Sender
	notifier   scheduler.LeadNotifier
	recipients []string
	log        *logger.Logger
}

// New creates a notification module. When notifier is non-nil, lead
// notifications are queued for the worker; otherwise they are sent with
// sender from the event handler.
func New(sender email.Sender, notifier scheduler.LeadNotifier, recipients []string, log *logger.Logger) *Module {
	if sender == nil {
		sender = email.NoopSender{}
	}
	return &Module{
		sender:     sender,
		notifier:   notifier,
		recipients: recipients,
		log:        log,
	}
}

// RegisterHandlers subscribes to all relevant domain events.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadSubmitted{}.EventName(), m)
}

// Handle implements events.Handler.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.LeadSubmitted:
		return m.handleLeadSubmitted(ctx, e)
	default:
		m.log.Warn("unhandled event type", "event", event.EventName())
		return nil
	}
}

func (m *Module) handleLeadSubmitted(ctx context.Context, e events.LeadSubmitted) error {
	if len(m.recipients) == 0 {
		return nil
	}

	if m.notifier != nil {
		return m.enqueueLeadNotifications(ctx, e)
	}

	if _, disabled := m.sender.(email.NoopSender); disabled {
		m.log.Debug("mail not configured; lead notification skipped", "eventId", e.ID)
		return nil
	}

	lead := email.Lead{
		Name:        e.Name,
		Phone:       e.Phone,
		Message:     e.Message,
		Privacy:     e.Privacy,
		SubmittedAt: e.SubmittedAt,
	}

	var errs []error
	for _, to := range m.recipients {
		if err := m.sender.SendLeadNotification(ctx, to, lead); err != nil {
			errs = append(errs, fmt.Errorf("notify %s: %w", to, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		m.log.Error("failed to send lead notification", "eventId", e.ID, "phone", phone.Mask(e.Phone), "error", err)
		return err
	}

	m.log.Info("lead notification sent", "eventId", e.ID, "recipients", len(m.recipients))
	return nil
}

// enqueueLeadNotifications queues one task per recipient.
func (m *Module) enqueueLeadNotifications(ctx context.Context, e events.LeadSubmitted) error {
	var errs []error
	for _, to := range m.recipients {
		err := m.notifier.EnqueueLeadNotification(ctx, scheduler.LeadNotifyPayload{
			EventID:     e.ID.String(),
			Recipient:   to,
			Name:        e.Name,
			Phone:       e.Phone,
			Message:     e.Message,
			Privacy:     e.Privacy,
			SubmittedAt: e.SubmittedAt,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("enqueue %s: %w", to, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		m.log.Error("failed to enqueue lead notification", "eventId", e.ID, "error", err)
		return err
	}

	m.log.Info("lead notification enqueued", "eventId", e.ID, "recipients", len(m.recipients))
	return nil
}
