// Package profiles provides the profiles bounded context module.
package profiles

import (
	apphttp "salesdial_backend/internal/http"
	"salesdial_backend/internal/profiles/handler"
	"salesdial_backend/internal/profiles/repository"
	"salesdial_backend/internal/profiles/service"
	"salesdial_backend/platform/logger"
	"salesdial_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the profiles bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repo
}

// NewModule creates and initializes the profiles module with all its dependencies.
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
	return "profiles"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Gate returns the role gate middleware backed by this module's service.
func (m *Module) Gate() gin.HandlerFunc {
	return Gate(m.service)
}

// AdminGate returns the admin-only middleware.
func (m *Module) AdminGate() gin.HandlerFunc {
	return RequireAdmin()
}

// RegisterRoutes mounts profile routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/me", m.handler.Me)

	adminGroup := ctx.Admin.Group("/reps")
	adminGroup.GET("", m.handler.ListReps)
	adminGroup.POST("", m.handler.CreateRep)
	adminGroup.PATCH("/:id", m.handler.UpdateRep)
	adminGroup.PATCH("/:id/toggle-active", m.handler.ToggleActive)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
