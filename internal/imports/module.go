// Package imports provides the CSV import bounded context module.
package imports

import (
	appevents "salesdial_backend/internal/events"
	apphttp "salesdial_backend/internal/http"
	"salesdial_backend/internal/imports/handler"
	"salesdial_backend/internal/imports/repository"
	"salesdial_backend/internal/imports/service"
	leadrepo "salesdial_backend/internal/leads/repository"
	"salesdial_backend/platform/config"
	"salesdial_backend/platform/logger"
	"salesdial_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the imports bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repo
}

// NewModule creates and initializes the imports module with all its dependencies.
func NewModule(pool *pgxpool.Pool, leads *leadrepo.Repo, store service.ObjectStore, enqueuer service.Enqueuer, bus appevents.Bus, cfg config.ImportConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, leads, store, enqueuer, bus, cfg, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "imports"
}

// Service returns the service layer for the worker's import processor.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts import routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	adminGroup := ctx.Admin.Group("/imports")
	adminGroup.POST("", m.handler.Start)
	adminGroup.POST("/mapping-preview", m.handler.MappingPreview)
	adminGroup.GET("/:id", m.handler.Job)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
