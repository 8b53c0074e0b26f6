package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"salesdial_backend/internal/reporting/service"
	"salesdial_backend/platform/httpkit"
)

// Handler handles HTTP requests for dashboards and reports.
type Handler struct {
	svc *service.Service
}

// New creates a new reporting handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RepDashboard returns the caller's daily numbers against targets.
// GET /api/v1/dashboard/rep
func (h *Handler) RepDashboard(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.RepDashboard(c.Request.Context(), identity.UserID(), time.Now())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Reports returns the pipeline funnel, leaderboard and source totals.
// GET /api/v1/admin/reports
func (h *Handler) Reports(c *gin.Context) {
	result, err := h.svc.Reports(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// AdminDashboard returns the admin headline numbers.
// GET /api/v1/admin/dashboard
func (h *Handler) AdminDashboard(c *gin.Context) {
	result, err := h.svc.AdminDashboard(c.Request.Context(), time.Now())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
