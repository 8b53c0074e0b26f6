package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salesdial_backend/internal/leads/service"
	"salesdial_backend/internal/leads/transport"
	"salesdial_backend/platform/httpkit"
	"salesdial_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for leads and lead lists.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// MyLeads returns the caller's assigned leads.
// GET /api/v1/leads
func (h *Handler) MyLeads(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.ListForRep(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"leads": result})
}

// CreateLead adds a manually-entered lead assigned to the caller.
// POST /api/v1/leads
func (h *Handler) CreateLead(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.CreateManual(c.Request.Context(), identity.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// ListLeads returns the filtered, paginated admin lead list.
// GET /api/v1/admin/leads
func (h *Handler) ListLeads(c *gin.Context) {
	var req transport.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.ListWithFilters(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Assign assigns the selected leads to one rep.
// POST /api/v1/admin/leads/assign
func (h *Handler) Assign(c *gin.Context) {
	var req transport.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	leadIDs, err := parseUUIDs(req.LeadIDs)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	repID, err := uuid.Parse(req.RepID)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	assigned, err := h.svc.AssignBulk(c.Request.Context(), leadIDs, repID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"assigned": assigned})
}

// AssignRoundRobin spreads the selected leads across the selected reps.
// POST /api/v1/admin/leads/assign/round-robin
func (h *Handler) AssignRoundRobin(c *gin.Context) {
	var req transport.RoundRobinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	leadIDs, err := parseUUIDs(req.LeadIDs)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	repIDs, err := parseUUIDs(req.RepIDs)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	assigned, err := h.svc.AssignRoundRobin(c.Request.Context(), leadIDs, repIDs)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"assigned": assigned})
}

// Delete removes the selected leads.
// DELETE /api/v1/admin/leads
func (h *Handler) Delete(c *gin.Context) {
	var req transport.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	leadIDs, err := parseUUIDs(req.LeadIDs)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	deleted, err := h.svc.DeleteBulk(c.Request.Context(), leadIDs)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"deleted": deleted})
}

// OptedIn returns export rows for leads whose contact opted into email
// updates.
// GET /api/v1/admin/leads/opted-in
func (h *Handler) OptedIn(c *gin.Context) {
	result, err := h.svc.ListOptedIn(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"leads": result})
}

// Lists returns lead lists for the admin screen.
// GET /api/v1/admin/lead-lists
func (h *Handler) Lists(c *gin.Context) {
	includeArchived := c.Query("includeArchived") == "true"

	result, err := h.svc.Lists(c.Request.Context(), includeArchived)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"lists": result})
}

// ArchiveList flips a lead list's archived flag.
// PATCH /api/v1/admin/lead-lists/:id/archive
func (h *Handler) ArchiveList(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid list ID", nil)
		return
	}

	var req transport.ArchiveListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	if err := h.svc.ArchiveList(c.Request.Context(), id, *req.Archived); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"id": id, "archived": *req.Archived})
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
