// Package reporting provides the reporting bounded context module.
package reporting

import (
	apphttp "salesdial_backend/internal/http"
	"salesdial_backend/internal/reporting/handler"
	"salesdial_backend/internal/reporting/repository"
	"salesdial_backend/internal/reporting/service"
	settingssvc "salesdial_backend/internal/settings/service"
	"salesdial_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the reporting bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repo
}

// NewModule creates and initializes the reporting module with all its dependencies.
func NewModule(pool *pgxpool.Pool, settings *settingssvc.Service, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, settings, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "reporting"
}

// RegisterRoutes mounts reporting routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/dashboard/rep", m.handler.RepDashboard)

	ctx.Admin.GET("/reports", m.handler.Reports)
	ctx.Admin.GET("/dashboard", m.handler.AdminDashboard)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
