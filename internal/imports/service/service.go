package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	appevents "salesdial_backend/internal/events"
	"salesdial_backend/internal/imports/repository"
	leaddomain "salesdial_backend/internal/leads/domain"
	leadrepo "salesdial_backend/internal/leads/repository"
	"salesdial_backend/platform/apperr"
	"salesdial_backend/platform/config"
	"salesdial_backend/platform/logger"
	"salesdial_backend/platform/phone"
)

// ObjectStore stores and retrieves uploaded import files.
type ObjectStore interface {
	Upload(ctx context.Context, fileName, contentType string, reader io.Reader, size int64) (string, error)
	Download(ctx context.Context, fileKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, fileKey string) error
}

// Enqueuer hands a job to the background worker. A nil enqueuer makes
// imports run synchronously in the request.
type Enqueuer interface {
	EnqueueImport(ctx context.Context, jobID uuid.UUID) error
}

// Service implements the CSV import pipeline.
type Service struct {
	repo     *repository.Repo
	leads    *leadrepo.Repo
	store    ObjectStore
	enqueuer Enqueuer
	bus      appevents.Bus
	cfg      config.ImportConfig
	log      *logger.Logger
}

// New creates a new imports service.
func New(repo *repository.Repo, leads *leadrepo.Repo, store ObjectStore, enqueuer Enqueuer, bus appevents.Bus, cfg config.ImportConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, leads: leads, store: store, enqueuer: enqueuer, bus: bus, cfg: cfg, log: log}
}

// Preview is what the mapping screen shows before an import starts.
type Preview struct {
	Headers []string       `json:"headers"`
	Rows    [][]string     `json:"rows"`
	Mapping map[string]int `json:"mapping"`
}

// PreviewMapping reads the header row and a handful of data rows and
// guesses the column mapping.
func (s *Service) PreviewMapping(reader io.Reader) (Preview, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err != nil {
		return Preview{}, apperr.Validation("file is empty or not valid CSV")
	}

	rows := [][]string{}
	for len(rows) < 5 {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Preview{}, apperr.Validation("file is not valid CSV")
		}
		rows = append(rows, record)
	}

	return Preview{Headers: headers, Rows: rows, Mapping: AutoMap(headers)}, nil
}

// StartParams describes one import request.
type StartParams struct {
	ListName       string
	Industry       string
	AutoAssign     bool
	RepIDs         []uuid.UUID
	SkipDuplicates bool
	Mapping        map[string]int
	FileName       string
	ContentType    string
	File           io.Reader
	Size           int64
}

// Start stores the file, creates the lead list and the job, and hands the
// job to the worker. Without a worker the job runs before Start returns.
func (s *Service) Start(ctx context.Context, adminID uuid.UUID, params StartParams) (repository.Job, error) {
	if s.store == nil {
		return repository.Job{}, apperr.Internal("import storage is not configured")
	}
	if params.AutoAssign && len(params.RepIDs) == 0 {
		return repository.Job{}, apperr.Validation("auto-assign requires at least one rep")
	}
	if _, ok := params.Mapping[FieldCompanyName]; !ok {
		return repository.Job{}, apperr.Validation("mapping must include company_name")
	}
	if _, ok := params.Mapping[FieldPhone]; !ok {
		return repository.Job{}, apperr.Validation("mapping must include phone")
	}

	list, err := s.leads.CreateList(ctx, params.ListName, params.Industry, adminID)
	if err != nil {
		return repository.Job{}, err
	}

	fileKey, err := s.store.Upload(ctx, params.FileName, params.ContentType, params.File, params.Size)
	if err != nil {
		return repository.Job{}, fmt.Errorf("store import file: %w", err)
	}

	var industry *string
	if params.Industry != "" {
		industry = &params.Industry
	}

	job, err := s.repo.Create(ctx, repository.CreateParams{
		ListID:         list.ID,
		FileKey:        fileKey,
		FileName:       params.FileName,
		Mapping:        params.Mapping,
		Industry:       industry,
		AutoAssign:     params.AutoAssign,
		RepIDs:         params.RepIDs,
		SkipDuplicates: params.SkipDuplicates,
		CreatedBy:      adminID,
	})
	if err != nil {
		return repository.Job{}, err
	}

	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueImport(ctx, job.ID); err != nil {
			return repository.Job{}, fmt.Errorf("enqueue import job: %w", err)
		}
		return job, nil
	}

	// No queue configured: process in-request.
	if err := s.ProcessJob(ctx, job.ID); err != nil {
		s.log.Error("synchronous import failed", "error", err, "job_id", job.ID)
	}
	return s.repo.GetByID(ctx, job.ID)
}

// Job returns an import job for status polling.
func (s *Service) Job(ctx context.Context, id uuid.UUID) (repository.Job, error) {
	return s.repo.GetByID(ctx, id)
}

// ProcessJob streams the stored CSV and inserts its leads. Safe to call
// twice; only the first claim processes.
func (s *Service) ProcessJob(ctx context.Context, jobID uuid.UUID) error {
	claimed, err := s.repo.SetProcessing(ctx, jobID)
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	job, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	imported, skipped, failed, err := s.processFile(ctx, job)
	if err != nil {
		msg := err.Error()
		if finishErr := s.repo.Finish(ctx, jobID, repository.StatusFailed, imported, skipped, failed, &msg); finishErr != nil {
			s.log.Error("mark import failed", "error", finishErr, "job_id", jobID)
		}
		return err
	}

	if err := s.leads.AddToListTotal(ctx, job.ListID, imported); err != nil {
		s.log.Error("update list total", "error", err, "list_id", job.ListID)
	}
	if err := s.repo.Finish(ctx, jobID, repository.StatusCompleted, imported, skipped, failed, nil); err != nil {
		return err
	}

	// The CSV is fully consumed; failed jobs keep theirs for reruns.
	if err := s.store.Delete(ctx, job.FileKey); err != nil {
		s.log.Error("delete import file", "error", err, "file_key", job.FileKey)
	}

	s.bus.Publish(ctx, appevents.LeadsImported{
		BaseEvent: appevents.NewBaseEvent(),
		JobID:     jobID,
		ListID:    job.ListID,
		Imported:  imported,
		Skipped:   skipped,
		Failed:    failed,
	})

	s.log.Info("import completed", "job_id", jobID,
		"imported", imported, "skipped", skipped, "failed", failed)
	return nil
}

func (s *Service) processFile(ctx context.Context, job repository.Job) (imported, skipped, failed int, err error) {
	file, err := s.store.Download(ctx, job.FileKey)
	if err != nil {
		return 0, 0, 0, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	// Header row is consumed; the mapping addresses data rows by index.
	if _, err := r.Read(); err != nil {
		return 0, 0, 0, fmt.Errorf("read CSV header: %w", err)
	}

	rowLimit := s.cfg.GetImportRowLimit()
	candidates := []leadrepo.CreateParams{}
	var failedCount int

	for rowLimit <= 0 || len(candidates) < rowLimit {
		record, readErr := r.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			failedCount++
			continue
		}

		params, ok := s.rowToLead(job, record)
		if !ok {
			failedCount++
			continue
		}
		if job.AutoAssign && len(job.RepIDs) > 0 {
			repID := job.RepIDs[len(candidates)%len(job.RepIDs)]
			params.AssignedTo = &repID
			params.Status = leaddomain.StatusAssigned
		}
		candidates = append(candidates, params)
	}

	var importedCount, skippedCount, insertFailed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	concurrency := s.cfg.GetImportConcurrency()
	if concurrency < 1 {
		concurrency = 4
	}
	g.SetLimit(concurrency)

	for _, params := range candidates {
		g.Go(func() error {
			if job.SkipDuplicates {
				exists, err := s.leads.ExistsByPhone(gctx, params.Phone)
				if err != nil {
					insertFailed.Add(1)
					return nil
				}
				if exists {
					skippedCount.Add(1)
					return nil
				}
			}
			if _, err := s.leads.Create(gctx, params); err != nil {
				insertFailed.Add(1)
				return nil
			}
			importedCount.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(importedCount.Load()), int(skippedCount.Load()),
			failedCount + int(insertFailed.Load()), err
	}

	return int(importedCount.Load()), int(skippedCount.Load()),
		failedCount + int(insertFailed.Load()), nil
}

// rowToLead maps one CSV record through the job's column mapping. Rows
// without a company name or a phone number are rejected.
func (s *Service) rowToLead(job repository.Job, record []string) (leadrepo.CreateParams, bool) {
	field := func(name string) string {
		idx, ok := job.Mapping[name]
		if !ok || idx < 0 || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	company := field(FieldCompanyName)
	rawPhone := field(FieldPhone)
	if company == "" || rawPhone == "" {
		return leadrepo.CreateParams{}, false
	}

	params := leadrepo.CreateParams{
		ListID:      &job.ListID,
		CompanyName: company,
		Phone:       phone.NormalizeE164(rawPhone),
		Priority:    leaddomain.PriorityCold,
		Status:      leaddomain.StatusNew,
		Source:      leaddomain.SourceCSVImport,
		Industry:    job.Industry,
	}
	params.ContactName = optional(field(FieldContactName))
	params.ContactTitle = optional(field(FieldContactTitle))
	params.Email = optional(field(FieldEmail))
	params.Website = optional(field(FieldWebsite))
	params.City = optional(field(FieldCity))
	params.State = optional(field(FieldState))
	return params, true
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
