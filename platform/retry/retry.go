// Package retry runs startup checks with exponential backoff.
// This is part of the platform layer and contains no business logic.
package retry

import (
	"context"
	"time"

	"seller_landing/platform/logger"

	"github.com/cenkalti/backoff/v5"
)

const (
	defaultInitialInterval = 500 * time.Millisecond
	defaultMultiplier      = 2.0
	defaultMaxInterval     = 5 * time.Second
	defaultRandomization   = 0.5
	defaultMaxElapsed      = 20 * time.Second
)

// Options tunes Init. Zero values use the defaults above.
type Options struct {
	InitialInterval time.Duration
	MaxElapsed      time.Duration
	MaxTries        uint
}

// Permanent marks an error as non-retryable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}

// Init retries fn with exponential backoff for startup/init flows, logging
// each failed attempt under name. It stops on context cancellation,
// permanent errors, max tries or max elapsed time.
func Init(ctx context.Context, log *logger.Logger, name string, opts Options, fn func(ctx context.Context) error) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = defaultInitialInterval
	if opts.InitialInterval > 0 {
		exp.InitialInterval = opts.InitialInterval
	}
	exp.Multiplier = defaultMultiplier
	exp.MaxInterval = defaultMaxInterval
	exp.RandomizationFactor = defaultRandomization
	exp.Reset()

	maxElapsed := defaultMaxElapsed
	if opts.MaxElapsed > 0 {
		maxElapsed = opts.MaxElapsed
	}

	attempt := 0
	op := func() (struct{}, error) {
		attempt++
		err := fn(ctx)
		if err != nil {
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}
		return struct{}{}, err
	}

	retryOpts := []backoff.RetryOption{
		backoff.WithBackOff(exp),
		backoff.WithMaxElapsedTime(maxElapsed),
	}
	if opts.MaxTries > 0 {
		retryOpts = append(retryOpts, backoff.WithMaxTries(opts.MaxTries))
	}

	_, err := backoff.Retry(ctx, op, retryOpts...)
	return err
}
