package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdial_backend/internal/settings/repository"
	"salesdial_backend/internal/settings/service"
	"salesdial_backend/platform/httpkit"
	"salesdial_backend/platform/validator"
)

// Handler handles HTTP requests for org settings.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new settings handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Get returns the org settings.
// GET /api/v1/admin/settings
func (h *Handler) Get(c *gin.Context) {
	result, err := h.svc.Get(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Update replaces the org settings.
// PUT /api/v1/admin/settings
func (h *Handler) Update(c *gin.Context) {
	var req repository.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}

	result, err := h.svc.Update(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
