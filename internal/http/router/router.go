// Package router builds the gin engine from the composed application.
package router

import (
	"net/http"
	"time"

	apphttp "seller_landing/internal/http"
	"seller_landing/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New creates the gin engine with global middleware, health and metrics
// endpoints, and every module's routes.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	// ClientIP keys the rate limiter, so forwarded headers are honored only
	// from configured proxies.
	if err := engine.SetTrustedProxies(app.Config.GetTrustedProxies()); err != nil {
		app.Logger.Error("invalid TRUSTED_PROXIES; trusting no proxies", "error", err)
		_ = engine.SetTrustedProxies(nil)
	}
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())

	if corsMiddleware := newCORS(app.Config); corsMiddleware != nil {
		engine.Use(corsMiddleware)
	}

	api := engine.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if app.Metrics != nil {
		engine.GET("/metrics", app.Metrics.Handler())
	}

	routerCtx := &apphttp.RouterContext{
		Engine:        engine,
		API:           api,
		SubmitLimiter: httpkit.NewPerMinuteLimiter(app.Config.GetSubmitRatePerMinute(), app.Config.GetSubmitRateBurst(), app.Logger),
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(routerCtx)
		app.Logger.Debug("module routes registered", "module", module.Name())
	}

	return engine
}

// newCORS returns nil when the page and API share an origin and no extra
// origins are configured.
func newCORS(cfg apphttp.RouterConfig) gin.HandlerFunc {
	if !cfg.GetCORSAllowAll() && len(cfg.GetCORSOrigins()) == 0 {
		return nil
	}

	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", httpkit.RequestIDHeader},
		ExposeHeaders: []string{httpkit.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if cfg.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}

	return cors.New(corsCfg)
}
