// Package dialer provides the dialer bounded context module: the queue,
// call dispositions, callback scheduling and demo booking.
package dialer

import (
	"salesdial_backend/internal/dialer/handler"
	"salesdial_backend/internal/dialer/repository"
	"salesdial_backend/internal/dialer/service"
	appevents "salesdial_backend/internal/events"
	apphttp "salesdial_backend/internal/http"
	leadrepo "salesdial_backend/internal/leads/repository"
	"salesdial_backend/platform/config"
	"salesdial_backend/platform/logger"
	"salesdial_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the dialer bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repo
}

// NewModule creates and initializes the dialer module with all its dependencies.
func NewModule(pool *pgxpool.Pool, leads *leadrepo.Repo, bus appevents.Bus, scheduler service.ReminderScheduler, locations service.LocationResolver, cfg config.DialerConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, leads, bus, scheduler, locations, cfg, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "dialer"
}

// RegisterRoutes mounts dialer routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	dialerGroup := ctx.Protected.Group("/dialer")
	dialerGroup.GET("/queue", m.handler.Queue)
	dialerGroup.POST("/dispositions", m.handler.RecordDisposition)
	dialerGroup.POST("/callbacks", m.handler.ScheduleCallback)
	dialerGroup.POST("/demos", m.handler.BookDemo)

	ctx.Protected.GET("/demos", m.handler.ListDemos)
	ctx.Protected.PATCH("/demos/:id/status", m.handler.UpdateDemoStatus)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
