// Package leadform provides the lead capture bounded context module.
// This file defines the module that encapsulates all setup and route registration.
package leadform

import (
	"seller_landing/internal/events"
	apphttp "seller_landing/internal/http"
	"seller_landing/internal/leadform/handler"
	"seller_landing/internal/leadform/ports"
	"seller_landing/internal/leadform/service"
	"seller_landing/platform/logger"
	"seller_landing/platform/metrics"
	"seller_landing/platform/validator"
)

// Module is the lead form bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the lead form module with all its dependencies.
func NewModule(appender ports.RowAppender, target ports.Target, eventBus events.Bus, rec metrics.Recorder, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(appender, target, eventBus, rec, val, log)
	return &Module{
		handler: handler.New(svc),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leadform"
}

// Service returns the submission service.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the form endpoint under /api, behind the submit
// rate limiter when one is configured.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	if ctx.SubmitLimiter != nil {
		m.handler.RegisterRoutes(ctx.API, ctx.SubmitLimiter.RateLimit())
		return
	}
	m.handler.RegisterRoutes(ctx.API)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
