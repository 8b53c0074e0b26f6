// Package repository implements import job persistence.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salesdial_backend/platform/apperr"
)

// Job statuses.
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

// Job mirrors a row in the import_jobs table.
type Job struct {
	ID             uuid.UUID      `json:"id"`
	ListID         uuid.UUID      `json:"listId"`
	FileKey        string         `json:"fileKey"`
	FileName       string         `json:"fileName"`
	Mapping        map[string]int `json:"mapping"`
	Industry       *string        `json:"industry,omitempty"`
	AutoAssign     bool           `json:"autoAssign"`
	RepIDs         []uuid.UUID    `json:"repIds"`
	SkipDuplicates bool           `json:"skipDuplicates"`
	Status         string         `json:"status"`
	Imported       int            `json:"imported"`
	Skipped        int            `json:"skipped"`
	Failed         int            `json:"failed"`
	Error          *string        `json:"error,omitempty"`
	CreatedBy      uuid.UUID      `json:"createdBy"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// CreateParams holds the fields for inserting a job.
type CreateParams struct {
	ListID         uuid.UUID
	FileKey        string
	FileName       string
	Mapping        map[string]int
	Industry       *string
	AutoAssign     bool
	RepIDs         []uuid.UUID
	SkipDuplicates bool
	CreatedBy      uuid.UUID
}

// Repo implements import job persistence with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new imports repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const jobColumns = `id, list_id, file_key, file_name, mapping, industry, auto_assign,
	rep_ids, skip_duplicates, status, imported, skipped, failed, error,
	created_by, created_at, updated_at`

// Create inserts a pending job.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Job, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO import_jobs (list_id, file_key, file_name, mapping, industry,
			auto_assign, rep_ids, skip_duplicates, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, jobColumns),
		params.ListID, params.FileKey, params.FileName, params.Mapping, params.Industry,
		params.AutoAssign, params.RepIDs, params.SkipDuplicates, StatusPending, params.CreatedBy)

	job, err := scanJob(row)
	if err != nil {
		return Job{}, fmt.Errorf("create import job: %w", err)
	}
	return job, nil
}

// GetByID retrieves one job.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Job, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM import_jobs WHERE id = $1`, jobColumns), id)

	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Job{}, apperr.NotFound("import job not found")
	}
	if err != nil {
		return Job{}, fmt.Errorf("get import job: %w", err)
	}
	return job, nil
}

// SetProcessing moves a pending job to PROCESSING. It reports false when
// the job was already claimed.
func (r *Repo) SetProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE import_jobs SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3`,
		id, StatusProcessing, StatusPending)
	if err != nil {
		return false, fmt.Errorf("claim import job: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Finish records the job's terminal state and counters.
func (r *Repo) Finish(ctx context.Context, id uuid.UUID, status string, imported, skipped, failed int, jobErr *string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE import_jobs SET
			status = $2, imported = $3, skipped = $4, failed = $5, error = $6,
			updated_at = now()
		WHERE id = $1`,
		id, status, imported, skipped, failed, jobErr)
	if err != nil {
		return fmt.Errorf("finish import job: %w", err)
	}
	return nil
}

func scanJob(row pgx.Row) (Job, error) {
	var job Job
	err := row.Scan(&job.ID, &job.ListID, &job.FileKey, &job.FileName, &job.Mapping,
		&job.Industry, &job.AutoAssign, &job.RepIDs, &job.SkipDuplicates, &job.Status,
		&job.Imported, &job.Skipped, &job.Failed, &job.Error,
		&job.CreatedBy, &job.CreatedAt, &job.UpdatedAt)
	return job, err
}
