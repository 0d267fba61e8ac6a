package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskLeadNotify = "lead.notify"

// LeadNotifyPayload carries one accepted lead to the worker that emails
// one operator. Each recipient gets its own task so retries never resend
// to an operator that was already notified.
type LeadNotifyPayload struct {
	EventID     string `json:"eventId"`
	Recipient   string `json:"recipient"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	Privacy     bool   `json:"privacy"`
	SubmittedAt string `json:"submittedAt"`
}

// TaskID identifies the task for one event and recipient.
func (p LeadNotifyPayload) TaskID() string {
	if p.EventID == "" {
		return ""
	}
	return p.EventID + ":" + p.Recipient
}

func NewLeadNotifyTask(payload LeadNotifyPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLeadNotify, data), nil
}

func ParseLeadNotifyPayload(task *asynq.Task) (LeadNotifyPayload, error) {
	var payload LeadNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return LeadNotifyPayload{}, err
	}
	return payload, nil
}
