package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salesdial_backend/internal/imports/service"
	"salesdial_backend/internal/imports/transport"
	"salesdial_backend/platform/httpkit"
	"salesdial_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgMissingFile      = "missing CSV file"
)

// Handler handles HTTP requests for CSV imports.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new imports handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// MappingPreview reads the uploaded CSV's headers and guesses the column
// mapping.
// POST /api/v1/admin/imports/mapping-preview
func (h *Handler) MappingPreview(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgMissingFile, nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	defer file.Close()

	preview, err := h.svc.PreviewMapping(file)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, preview)
}

// Start uploads a CSV and creates the import job.
// POST /api/v1/admin/imports
func (h *Handler) Start(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var form transport.StartImportForm
	if err := c.ShouldBind(&form); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(form); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	var mapping map[string]int
	if err := json.Unmarshal([]byte(form.Mapping), &mapping); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "mapping must be a JSON object of field to column index", nil)
		return
	}

	repIDs := []uuid.UUID{}
	if form.RepIDs != "" {
		var raw []string
		if err := json.Unmarshal([]byte(form.RepIDs), &raw); err != nil {
			httpkit.Error(c, http.StatusBadRequest, "repIds must be a JSON array of UUIDs", nil)
			return
		}
		for _, v := range raw {
			id, err := uuid.Parse(v)
			if err != nil {
				httpkit.Error(c, http.StatusBadRequest, "repIds must be a JSON array of UUIDs", nil)
				return
			}
			repIDs = append(repIDs, id)
		}
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgMissingFile, nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	defer file.Close()

	job, err := h.svc.Start(c.Request.Context(), identity.UserID(), service.StartParams{
		ListName:       form.ListName,
		Industry:       form.Industry,
		AutoAssign:     form.AutoAssign,
		RepIDs:         repIDs,
		SkipDuplicates: form.SkipDuplicates,
		Mapping:        mapping,
		FileName:       fileHeader.Filename,
		ContentType:    fileHeader.Header.Get("Content-Type"),
		File:           file,
		Size:           fileHeader.Size,
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusAccepted, job)
}

// Job returns an import job for status polling.
// GET /api/v1/admin/imports/:id
func (h *Handler) Job(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid job ID", nil)
		return
	}

	job, err := h.svc.Job(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, job)
}
