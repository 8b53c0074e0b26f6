package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesdial_backend/internal/callbacks"
	"salesdial_backend/internal/commissions"
	"salesdial_backend/internal/dialer"
	dialersvc "salesdial_backend/internal/dialer/service"
	"salesdial_backend/internal/events"
	apphttp "salesdial_backend/internal/http"
	"salesdial_backend/internal/http/router"
	"salesdial_backend/internal/imports"
	importsvc "salesdial_backend/internal/imports/service"
	"salesdial_backend/internal/leads"
	"salesdial_backend/internal/profiles"
	"salesdial_backend/internal/reporting"
	"salesdial_backend/internal/scheduler"
	"salesdial_backend/internal/settings"
	"salesdial_backend/internal/storage"
	"salesdial_backend/platform/config"
	"salesdial_backend/platform/db"
	"salesdial_backend/platform/logger"
	"salesdial_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	taskClient, closeTaskClient := initTaskClient(cfg, log)
	if closeTaskClient != nil {
		defer closeTaskClient()
	}

	// Storage service for uploaded import files (MinIO)
	var store importsvc.ObjectStore
	if cfg.IsMinIOEnabled() {
		minioSvc, err := storage.NewMinIOService(ctx, cfg)
		if err != nil {
			log.Error("failed to initialize storage service", "error", err)
			panic("failed to initialize storage service: " + err.Error())
		}
		store = minioSvc
		log.Info("storage service initialized", "bucket", cfg.GetMinioBucketImports())
	} else {
		log.Warn("MINIO_ENDPOINT not configured; CSV imports disabled")
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	profilesModule := profiles.NewModule(pool, val, log)
	leadsModule := leads.NewModule(pool, val, log)
	settingsModule := settings.NewModule(pool, val, log)

	var reminders dialersvc.ReminderScheduler
	if taskClient != nil {
		reminders = taskClient
	}
	// Callback and demo times entered by reps are interpreted in the org's
	// configured timezone.
	dialerModule := dialer.NewModule(pool, leadsModule.Repo(), eventBus, reminders, settingsModule.Service(), cfg, val, log)

	callbacksModule := callbacks.NewModule(pool, val, log)

	var enqueuer importsvc.Enqueuer
	if taskClient != nil {
		enqueuer = taskClient
	}
	importsModule := imports.NewModule(pool, leadsModule.Repo(), store, enqueuer, eventBus, cfg, val, log)

	// Commissions subscribe to dialer events (demo booked/completed, deal closed)
	commissionsModule := commissions.NewModule(pool, settingsModule.Service(), val, log)
	commissionsModule.RegisterHandlers(eventBus)

	reportingModule := reporting.NewModule(pool, settingsModule.Service(), log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:    cfg,
		Logger:    log,
		Health:    pool,
		EventBus:  eventBus,
		RoleGate:  profilesModule.Gate(),
		AdminGate: profilesModule.AdminGate(),
		Modules: []apphttp.Module{
			profilesModule,
			leadsModule,
			dialerModule,
			callbacksModule,
			importsModule,
			settingsModule,
			commissionsModule,
			reportingModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initTaskClient(cfg config.SchedulerConfig, log *logger.Logger) (*scheduler.Client, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; imports run in-request and callback reminders are disabled")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize task client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
