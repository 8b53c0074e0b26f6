// Package callbacks provides the callbacks bounded context module.
package callbacks

import (
	"salesdial_backend/internal/callbacks/handler"
	"salesdial_backend/internal/callbacks/repository"
	"salesdial_backend/internal/callbacks/service"
	apphttp "salesdial_backend/internal/http"
	"salesdial_backend/platform/logger"
	"salesdial_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the callbacks bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repo
}

// NewModule creates and initializes the callbacks module with all its dependencies.
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
	return "callbacks"
}

// Service returns the service layer for the worker's reminder handler.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repo returns the repository layer for other modules.
func (m *Module) Repo() *repository.Repo {
	return m.repo
}

// RegisterRoutes mounts callback routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/callbacks", m.handler.List)
	ctx.Protected.PATCH("/callbacks/:id/complete", m.handler.Complete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
