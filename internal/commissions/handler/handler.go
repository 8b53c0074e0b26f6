package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salesdial_backend/internal/commissions/service"
	"salesdial_backend/internal/commissions/transport"
	"salesdial_backend/platform/httpkit"
	"salesdial_backend/platform/validator"
)

// Handler handles HTTP requests for commissions.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new commissions handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ListAll returns all commissions with totals by status.
// GET /api/v1/admin/commissions
func (h *Handler) ListAll(c *gin.Context) {
	commissions, totals, err := h.svc.ListAll(c.Request.Context(), c.Query("status"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"commissions": commissions, "totals": totals})
}

// UpdateStatus approves, pays or rejects a commission.
// PATCH /api/v1/admin/commissions/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid commission ID", nil)
		return
	}

	var req transport.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListMine returns the caller's commissions with totals.
// GET /api/v1/commissions
func (h *Handler) ListMine(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	commissions, totals, err := h.svc.ListForRep(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"commissions": commissions, "totals": totals})
}
