package scheduler

import (
	"context"
	"fmt"

	"salesdial_backend/platform/config"
	"salesdial_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ImportProcessor runs a queued CSV import job to completion.
type ImportProcessor interface {
	ProcessJob(ctx context.Context, jobID uuid.UUID) error
}

// CallbackReminder handles a due callback reminder.
type CallbackReminder interface {
	Remind(ctx context.Context, callbackID uuid.UUID) error
}

type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	imports   ImportProcessor
	callbacks CallbackReminder
	log       *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, imports ImportProcessor, callbacks CallbackReminder, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:    server,
		mux:       mux,
		imports:   imports,
		callbacks: callbacks,
		log:       log,
	}

	mux.HandleFunc(TaskImportProcess, w.handleImportProcess)
	mux.HandleFunc(TaskCallbackReminder, w.handleCallbackReminder)

	return w, nil
}

func (w *Worker) handleImportProcess(ctx context.Context, task *asynq.Task) error {
	if w.imports == nil {
		return nil
	}

	payload, err := ParseImportProcessPayload(task)
	if err != nil {
		return err
	}

	jobID, err := uuid.Parse(payload.JobID)
	if err != nil {
		return err
	}

	w.log.TaskEvent(TaskImportProcess, "processing", "job_id", jobID)
	return w.imports.ProcessJob(ctx, jobID)
}

func (w *Worker) handleCallbackReminder(ctx context.Context, task *asynq.Task) error {
	if w.callbacks == nil {
		return nil
	}

	payload, err := ParseCallbackReminderPayload(task)
	if err != nil {
		return err
	}

	callbackID, err := uuid.Parse(payload.CallbackID)
	if err != nil {
		return err
	}

	return w.callbacks.Remind(ctx, callbackID)
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
