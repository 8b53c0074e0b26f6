// Package repository implements dialer persistence: call logs, demos and
// the lead mutations a disposition triggers.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	leaddomain "salesdial_backend/internal/leads/domain"
	"salesdial_backend/platform/apperr"
)

// CallLog mirrors a row in the call_logs table.
type CallLog struct {
	ID        uuid.UUID `json:"id"`
	LeadID    uuid.UUID `json:"leadId"`
	RepID     uuid.UUID `json:"repId"`
	Outcome   string    `json:"outcome"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Demo mirrors a row in the demos table. Company and contact are
// denormalized from the lead at booking time so the demo list survives
// later lead edits.
type Demo struct {
	ID          uuid.UUID `json:"id"`
	LeadID      uuid.UUID `json:"leadId"`
	RepID       uuid.UUID `json:"repId"`
	CompanyName string    `json:"companyName"`
	ContactName *string   `json:"contactName,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Link        string    `json:"link"`
	Status      string    `json:"status"`
	Outcome     *string   `json:"outcome,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Demo statuses.
const (
	DemoStatusScheduled   = "SCHEDULED"
	DemoStatusCompleted   = "COMPLETED"
	DemoStatusNoShow      = "NO_SHOW"
	DemoStatusCancelled   = "CANCELLED"
	DemoStatusRescheduled = "RESCHEDULED"
)

// DispositionParams describes the mutations one disposition applies.
// StatusTo nil means the lead status is untouched, in which case the
// contact fields are ignored as well.
type DispositionParams struct {
	LeadID       uuid.UUID
	RepID        uuid.UUID
	Outcome      string
	Notes        *string
	StatusTo     *leaddomain.Status
	ContactName  string
	ContactEmail string
	EmailOptIn   bool
}

// Repo implements dialer persistence with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dialer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// RecordDisposition inserts the call log and applies the lead mutations in
// one transaction. If the log insert fails nothing else is written.
func (r *Repo) RecordDisposition(ctx context.Context, params DispositionParams) (CallLog, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return CallLog{}, fmt.Errorf("begin disposition tx: %w", err)
	}
	defer tx.Rollback(ctx)

	log, err := insertCallLog(ctx, tx, params.LeadID, params.RepID, params.Outcome, params.Notes)
	if err != nil {
		return CallLog{}, err
	}

	if params.StatusTo != nil {
		tag, err := tx.Exec(ctx, `
			UPDATE leads SET
				status = $2,
				contact_name = COALESCE(NULLIF($3, ''), contact_name),
				email = COALESCE(NULLIF($4, ''), email),
				notes = COALESCE(NULLIF($5, ''), notes),
				email_opt_in = email_opt_in OR $6,
				updated_at = now()
			WHERE id = $1`,
			params.LeadID, *params.StatusTo, params.ContactName, params.ContactEmail,
			params.Notes, params.EmailOptIn)
		if err != nil {
			return CallLog{}, fmt.Errorf("update lead on disposition: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return CallLog{}, apperr.NotFound("lead not found")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return CallLog{}, fmt.Errorf("commit disposition tx: %w", err)
	}
	return log, nil
}

// ScheduleCallback inserts the callbacks row, the call log row, and moves
// the lead to CALLBACK in one transaction. It returns the callback ID for
// the reminder task.
func (r *Repo) ScheduleCallback(ctx context.Context, leadID, repID uuid.UUID, scheduledAt time.Time, outcome string, notes *string) (uuid.UUID, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin callback tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := insertCallLog(ctx, tx, leadID, repID, outcome, notes); err != nil {
		return uuid.Nil, err
	}

	var callbackID uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO callbacks (lead_id, rep_id, scheduled_at, notes, is_completed)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id`,
		leadID, repID, scheduledAt, notes).Scan(&callbackID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert callback: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE leads SET status = $2, updated_at = now() WHERE id = $1`,
		leadID, leaddomain.StatusCallback)
	if err != nil {
		return uuid.Nil, fmt.Errorf("update lead for callback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, apperr.NotFound("lead not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit callback tx: %w", err)
	}
	return callbackID, nil
}

// DemoParams describes a demo booking.
type DemoParams struct {
	LeadID       uuid.UUID
	RepID        uuid.UUID
	CompanyName  string
	ContactName  string
	ContactEmail string
	ScheduledAt  time.Time
	Link         string
	Notes        *string
	EmailOptIn   bool
}

// BookDemo inserts the demos row, the DEMO_BOOKED call log, and updates
// the lead in one transaction.
func (r *Repo) BookDemo(ctx context.Context, params DemoParams) (Demo, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Demo{}, fmt.Errorf("begin demo tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := insertCallLog(ctx, tx, params.LeadID, params.RepID, "DEMO_BOOKED", params.Notes); err != nil {
		return Demo{}, err
	}

	var demo Demo
	err = tx.QueryRow(ctx, `
		INSERT INTO demos (lead_id, rep_id, company_name, contact_name, scheduled_at, link, status, notes)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)
		RETURNING id, lead_id, rep_id, company_name, contact_name, scheduled_at, link,
			status, outcome, notes, created_at, updated_at`,
		params.LeadID, params.RepID, params.CompanyName, params.ContactName,
		params.ScheduledAt, params.Link, DemoStatusScheduled, params.Notes).
		Scan(&demo.ID, &demo.LeadID, &demo.RepID, &demo.CompanyName, &demo.ContactName,
			&demo.ScheduledAt, &demo.Link, &demo.Status, &demo.Outcome, &demo.Notes,
			&demo.CreatedAt, &demo.UpdatedAt)
	if err != nil {
		return Demo{}, fmt.Errorf("insert demo: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE leads SET
			status = $2,
			demo_scheduled_at = $3,
			demo_link = $4,
			contact_name = COALESCE(NULLIF($5, ''), contact_name),
			email = COALESCE(NULLIF($6, ''), email),
			notes = COALESCE(NULLIF($7, ''), notes),
			email_opt_in = email_opt_in OR $8,
			updated_at = now()
		WHERE id = $1`,
		params.LeadID, leaddomain.StatusDemoScheduled, params.ScheduledAt, params.Link,
		params.ContactName, params.ContactEmail, params.Notes, params.EmailOptIn)
	if err != nil {
		return Demo{}, fmt.Errorf("update lead for demo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Demo{}, apperr.NotFound("lead not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return Demo{}, fmt.Errorf("commit demo tx: %w", err)
	}
	return demo, nil
}

// GetDemo retrieves a demo by ID.
func (r *Repo) GetDemo(ctx context.Context, id uuid.UUID) (Demo, error) {
	var demo Demo
	err := r.pool.QueryRow(ctx, `
		SELECT id, lead_id, rep_id, company_name, contact_name, scheduled_at, link,
			status, outcome, notes, created_at, updated_at
		FROM demos WHERE id = $1`, id).
		Scan(&demo.ID, &demo.LeadID, &demo.RepID, &demo.CompanyName, &demo.ContactName,
			&demo.ScheduledAt, &demo.Link, &demo.Status, &demo.Outcome, &demo.Notes,
			&demo.CreatedAt, &demo.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Demo{}, apperr.NotFound("demo not found")
	}
	if err != nil {
		return Demo{}, fmt.Errorf("get demo: %w", err)
	}
	return demo, nil
}

// ListDemosByRep retrieves a rep's demos, soonest first.
func (r *Repo) ListDemosByRep(ctx context.Context, repID uuid.UUID) ([]Demo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, lead_id, rep_id, company_name, contact_name, scheduled_at, link,
			status, outcome, notes, created_at, updated_at
		FROM demos WHERE rep_id = $1
		ORDER BY scheduled_at ASC`, repID)
	if err != nil {
		return nil, fmt.Errorf("list demos: %w", err)
	}
	defer rows.Close()

	demos := []Demo{}
	for rows.Next() {
		var demo Demo
		if err := rows.Scan(&demo.ID, &demo.LeadID, &demo.RepID, &demo.CompanyName,
			&demo.ContactName, &demo.ScheduledAt, &demo.Link, &demo.Status,
			&demo.Outcome, &demo.Notes, &demo.CreatedAt, &demo.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan demo: %w", err)
		}
		demos = append(demos, demo)
	}
	return demos, rows.Err()
}

// UpdateDemoStatus moves a demo through its lifecycle and records the
// optional outcome.
func (r *Repo) UpdateDemoStatus(ctx context.Context, id uuid.UUID, status string, outcome *string) (Demo, error) {
	var demo Demo
	err := r.pool.QueryRow(ctx, `
		UPDATE demos SET
			status = $2,
			outcome = COALESCE($3, outcome),
			updated_at = now()
		WHERE id = $1
		RETURNING id, lead_id, rep_id, company_name, contact_name, scheduled_at, link,
			status, outcome, notes, created_at, updated_at`,
		id, status, outcome).
		Scan(&demo.ID, &demo.LeadID, &demo.RepID, &demo.CompanyName, &demo.ContactName,
			&demo.ScheduledAt, &demo.Link, &demo.Status, &demo.Outcome, &demo.Notes,
			&demo.CreatedAt, &demo.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Demo{}, apperr.NotFound("demo not found")
	}
	if err != nil {
		return Demo{}, fmt.Errorf("update demo status: %w", err)
	}
	return demo, nil
}

// SetLeadStatus moves a lead to the given status.
func (r *Repo) SetLeadStatus(ctx context.Context, leadID uuid.UUID, status leaddomain.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE leads SET status = $2, updated_at = now() WHERE id = $1`,
		leadID, status)
	if err != nil {
		return fmt.Errorf("set lead status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("lead not found")
	}
	return nil
}

func insertCallLog(ctx context.Context, tx pgx.Tx, leadID, repID uuid.UUID, outcome string, notes *string) (CallLog, error) {
	var log CallLog
	err := tx.QueryRow(ctx, `
		INSERT INTO call_logs (lead_id, rep_id, outcome, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, lead_id, rep_id, outcome, notes, created_at`,
		leadID, repID, outcome, notes).
		Scan(&log.ID, &log.LeadID, &log.RepID, &log.Outcome, &log.Notes, &log.CreatedAt)
	if err != nil {
		return CallLog{}, fmt.Errorf("insert call log: %w", err)
	}
	return log, nil
}
