package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salesdial_backend/internal/profiles/service"
	"salesdial_backend/internal/profiles/transport"
	"salesdial_backend/platform/httpkit"
	"salesdial_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid rep ID"
)

// Handler handles HTTP requests for profiles and rep management.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new profiles handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Me returns the caller's own profile.
// GET /api/v1/me
func (h *Handler) Me(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.GetMe(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListReps returns all reps with activity counters.
// GET /api/v1/admin/reps
func (h *Handler) ListReps(c *gin.Context) {
	result, err := h.svc.ListReps(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"reps": result})
}

// CreateRep registers a profile for an auth-provider user.
// POST /api/v1/admin/reps
func (h *Handler) CreateRep(c *gin.Context) {
	var req transport.CreateRepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.CreateRep(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// UpdateRep applies a partial update to a rep profile.
// PATCH /api/v1/admin/reps/:id
func (h *Handler) UpdateRep(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateRepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.UpdateRep(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ToggleActive activates or deactivates a rep.
// PATCH /api/v1/admin/reps/:id/toggle-active
func (h *Handler) ToggleActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.ToggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	if err := h.svc.ToggleActive(c.Request.Context(), id, req.Active); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"id": id, "active": req.Active})
}
