// Package leads provides the leads bounded context module.
package leads

import (
	apphttp "salesdial_backend/internal/http"
	"salesdial_backend/internal/leads/handler"
	"salesdial_backend/internal/leads/repository"
	"salesdial_backend/internal/leads/service"
	"salesdial_backend/platform/logger"
	"salesdial_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repo
}

// NewModule creates and initializes the leads module with all its dependencies.
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
	return "leads"
}

// Repo returns the repository layer for other modules.
func (m *Module) Repo() *repository.Repo {
	return m.repo
}

// RegisterRoutes mounts lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/leads", m.handler.MyLeads)
	ctx.Protected.POST("/leads", m.handler.CreateLead)

	adminLeads := ctx.Admin.Group("/leads")
	adminLeads.GET("", m.handler.ListLeads)
	adminLeads.POST("/assign", m.handler.Assign)
	adminLeads.POST("/assign/round-robin", m.handler.AssignRoundRobin)
	adminLeads.DELETE("", m.handler.Delete)
	adminLeads.GET("/opted-in", m.handler.OptedIn)

	adminLists := ctx.Admin.Group("/lead-lists")
	adminLists.GET("", m.handler.Lists)
	adminLists.PATCH("/:id/archive", m.handler.ArchiveList)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
