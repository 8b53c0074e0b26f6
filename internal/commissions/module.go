// Package commissions provides the commissions bounded context module.
package commissions

import (
	"salesdial_backend/internal/commissions/handler"
	"salesdial_backend/internal/commissions/repository"
	"salesdial_backend/internal/commissions/service"
	appevents "salesdial_backend/internal/events"
	apphttp "salesdial_backend/internal/http"
	settingssvc "salesdial_backend/internal/settings/service"
	"salesdial_backend/platform/logger"
	"salesdial_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the commissions bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repo
}

// NewModule creates and initializes the commissions module with all its dependencies.
func NewModule(pool *pgxpool.Pool, settings *settingssvc.Service, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, settings, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "commissions"
}

// RegisterHandlers subscribes the commission triggers on the event bus.
func (m *Module) RegisterHandlers(bus appevents.Bus) {
	m.service.RegisterHandlers(bus)
}

// RegisterRoutes mounts commission routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/commissions", m.handler.ListMine)

	adminGroup := ctx.Admin.Group("/commissions")
	adminGroup.GET("", m.handler.ListAll)
	adminGroup.PATCH("/:id/status", m.handler.UpdateStatus)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
