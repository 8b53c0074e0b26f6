// Package settings provides the org settings bounded context module.
package settings

import (
	apphttp "salesdial_backend/internal/http"
	"salesdial_backend/internal/settings/handler"
	"salesdial_backend/internal/settings/repository"
	"salesdial_backend/internal/settings/service"
	"salesdial_backend/platform/logger"
	"salesdial_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the settings bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repo
}

// NewModule creates and initializes the settings module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "settings"
}

// Service returns the service layer for other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts settings routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Admin.GET("/settings", m.handler.Get)
	ctx.Admin.PUT("/settings", m.handler.Update)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
