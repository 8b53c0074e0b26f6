package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	callbacksrepo "salesdial_backend/internal/callbacks/repository"
	callbacksvc "salesdial_backend/internal/callbacks/service"
	"salesdial_backend/internal/events"
	importsrepo "salesdial_backend/internal/imports/repository"
	importsvc "salesdial_backend/internal/imports/service"
	leadrepo "salesdial_backend/internal/leads/repository"
	"salesdial_backend/internal/scheduler"
	"salesdial_backend/internal/storage"
	"salesdial_backend/platform/config"
	"salesdial_backend/platform/db"
	"salesdial_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting worker", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	eventBus := events.NewInMemoryBus(log)

	store, err := storage.NewMinIOService(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize storage service", "error", err)
		panic("failed to initialize storage service: " + err.Error())
	}

	// The worker never enqueues; a nil enqueuer keeps processing local.
	importService := importsvc.New(importsrepo.New(pool), leadrepo.New(pool),
		store, nil, eventBus, cfg, log)
	callbackService := callbacksvc.New(callbacksrepo.New(pool), log)

	worker, err := scheduler.NewWorker(cfg, importService, callbackService, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	log.Info("worker listening", "queue", cfg.GetAsynqQueueName())
	worker.Run(ctx)
	log.Info("worker stopped")
}
