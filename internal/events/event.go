// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"seller_landing/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// LeadSubmitted is published after a lead row has been appended.
type LeadSubmitted struct {
	BaseEvent
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	Privacy     bool   `json:"privacy"`
	SubmittedAt string `json:"submittedAt"`
}

func (e LeadSubmitted) EventName() string { return "leadform.lead.submitted" }
