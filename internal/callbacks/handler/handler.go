package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salesdial_backend/internal/callbacks/service"
	"salesdial_backend/internal/callbacks/transport"
	"salesdial_backend/platform/httpkit"
	"salesdial_backend/platform/validator"
)

// Handler handles HTTP requests for callbacks.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new callbacks handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// List returns the caller's open callbacks bucketed by due time.
// GET /api/v1/callbacks
func (h *Handler) List(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.List(c.Request.Context(), identity.UserID(), time.Now())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Complete marks a callback done or reopens it.
// PATCH /api/v1/callbacks/:id/complete
func (h *Handler) Complete(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid callback ID", nil)
		return
	}

	req := transport.CompleteRequest{Completed: true}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
			return
		}
	}

	if err := h.svc.SetCompleted(c.Request.Context(), id, identity.UserID(), req.Completed); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"id": id, "isCompleted": req.Completed})
}
