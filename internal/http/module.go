// Package http provides HTTP server infrastructure including the Module interface
// that all modules must implement for route registration.
package http

import (
	"seller_landing/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module represents a bounded context that can register its HTTP routes.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes using the shared RouterContext.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
type RouterContext struct {
	// Engine is the root Gin engine for modules that serve top-level paths.
	Engine *gin.Engine
	// API is the /api route group.
	API *gin.RouterGroup
	// SubmitLimiter is the per-IP limiter for form submissions.
	SubmitLimiter *httpkit.IPRateLimiter
}
