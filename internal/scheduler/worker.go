package scheduler

import (
	"context"
	"fmt"

	"seller_landing/internal/email"
	"seller_landing/platform/config"
	"seller_landing/platform/logger"
	"seller_landing/platform/phone"

	"github.com/hibiken/asynq"
)

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	sender email.Sender
	log    *logger.Logger
}

func NewWorker(cfg config.QueueConfig, sender email.Sender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 5
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	w := &Worker{
		server: server,
		sender: sender,
		log:    log,
	}
	w.mux = w.newMux()

	return w, nil
}

func (w *Worker) newMux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskLeadNotify, w.handleLeadNotify)
	return mux
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleLeadNotify(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseLeadNotifyPayload(task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	if payload.Recipient == "" {
		return nil
	}

	lead := email.Lead{
		Name:        payload.Name,
		Phone:       payload.Phone,
		Message:     payload.Message,
		Privacy:     payload.Privacy,
		SubmittedAt: payload.SubmittedAt,
	}

	if err := w.sender.SendLeadNotification(ctx, payload.Recipient, lead); err != nil {
		w.log.Warn("lead notification failed", "eventId", payload.EventID, "phone", phone.Mask(payload.Phone), "error", err)
		return fmt.Errorf("notify %s: %w", payload.Recipient, err)
	}

	w.log.Info("lead notification sent", "eventId", payload.EventID)
	return nil
}
