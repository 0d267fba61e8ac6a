// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"seller_landing/platform/config"
	"seller_landing/platform/logger"
	"seller_landing/platform/metrics"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.RateLimitConfig
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and rate limit settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Metrics is exposed on /metrics when set.
	Metrics *metrics.Metrics
	// Modules contains all HTTP-facing modules.
	Modules []Module
}
