// Package web serves the landing page that hosts the lead form.
package web

import (
	"embed"
	"net/http"

	apphttp "seller_landing/internal/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var staticFS embed.FS

// Module serves the embedded landing page at the site root.
type Module struct {
	page []byte
}

// NewModule loads the embedded landing page.
func NewModule() (*Module, error) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		return nil, err
	}
	return &Module{page: page}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "web"
}

// RegisterRoutes mounts GET / on the root engine.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.GET("/", m.index)
}

func (m *Module) index(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/html; charset=utf-8", m.page)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
