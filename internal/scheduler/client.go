package scheduler

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"seller_landing/platform/config"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const leadNotifyMaxRetry = 5

type Client struct {
	client *asynq.Client
	queue  string
}

// LeadNotifier enqueues one lead notification email per call.
type LeadNotifier interface {
	EnqueueLeadNotification(ctx context.Context, payload LeadNotifyPayload) error
}

func NewClient(cfg config.QueueConfig) (*Client, error) {
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

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueLeadNotification enqueues the notification for payload.Recipient.
// The task ID is derived from the event ID and recipient, so a repeated
// event is enqueued at most once per recipient.
func (c *Client) EnqueueLeadNotification(ctx context.Context, payload LeadNotifyPayload) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewLeadNotifyTask(payload)
	if err != nil {
		return err
	}

	opts := []asynq.Option{asynq.Queue(c.queue), asynq.MaxRetry(leadNotifyMaxRetry)}
	if id := payload.TaskID(); id != "" {
		opts = append(opts, asynq.TaskID(id))
	}

	_, err = c.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		tlsConfig = clone
	} else if tlsInsecure {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}

var _ LeadNotifier = (*Client)(nil)
