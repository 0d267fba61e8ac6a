package handler

import (
	"seller_landing/internal/leadform/service"
	"seller_landing/internal/leadform/transport"
	"seller_landing/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles the landing page form endpoint.
type Handler struct {
	svc *service.Service
}

// New creates a new lead form handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the submission route. Extra middleware (rate
// limiting) runs before the handler.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, middleware ...gin.HandlerFunc) {
	rg.POST("/submit-form", append(middleware, h.Submit)...)
}

// Submit records a lead.
// POST /api/submit-form
func (h *Handler) Submit(c *gin.Context) {
	if httpkit.HandleError(c, h.svc.CheckConfigured()) {
		return
	}

	var req transport.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, h.svc.Malformed(err))
		return
	}

	data, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.SubmitResponse{
		Message: service.MsgSuccess,
		Data:    data,
	})
}
