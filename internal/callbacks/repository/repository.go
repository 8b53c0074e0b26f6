// Package repository implements callback persistence.
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

// Callback mirrors a row in the callbacks table joined with its lead for
// display.
type Callback struct {
	ID          uuid.UUID `json:"id"`
	LeadID      uuid.UUID `json:"leadId"`
	RepID       uuid.UUID `json:"repId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Notes       *string   `json:"notes,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`

	CompanyName string  `json:"companyName"`
	ContactName *string `json:"contactName,omitempty"`
	Phone       string  `json:"phone"`
}

const callbackColumns = `c.id, c.lead_id, c.rep_id, c.scheduled_at, c.notes, c.is_completed,
	c.created_at, l.company_name, l.contact_name, l.phone`

// Repo implements callback persistence with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new callbacks repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListIncompleteByRep retrieves a rep's open callbacks, earliest first.
func (r *Repo) ListIncompleteByRep(ctx context.Context, repID uuid.UUID) ([]Callback, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM callbacks c
		JOIN leads l ON l.id = c.lead_id
		WHERE c.rep_id = $1 AND NOT c.is_completed
		ORDER BY c.scheduled_at ASC`, callbackColumns), repID)
	if err != nil {
		return nil, fmt.Errorf("list callbacks: %w", err)
	}
	defer rows.Close()
	return scanCallbacks(rows)
}

// GetByID retrieves one callback.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Callback, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s
		FROM callbacks c
		JOIN leads l ON l.id = c.lead_id
		WHERE c.id = $1`, callbackColumns), id)

	cb, err := scanCallback(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Callback{}, apperr.NotFound("callback not found")
	}
	if err != nil {
		return Callback{}, fmt.Errorf("get callback: %w", err)
	}
	return cb, nil
}

// SetCompleted marks a callback done (or reopens it). Scoped to the
// owning rep.
func (r *Repo) SetCompleted(ctx context.Context, id, repID uuid.UUID, completed bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE callbacks SET is_completed = $3 WHERE id = $1 AND rep_id = $2`,
		id, repID, completed)
	if err != nil {
		return fmt.Errorf("complete callback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("callback not found")
	}
	return nil
}

func scanCallback(row pgx.Row) (Callback, error) {
	var cb Callback
	err := row.Scan(&cb.ID, &cb.LeadID, &cb.RepID, &cb.ScheduledAt, &cb.Notes,
		&cb.IsCompleted, &cb.CreatedAt, &cb.CompanyName, &cb.ContactName, &cb.Phone)
	return cb, err
}

func scanCallbacks(rows pgx.Rows) ([]Callback, error) {
	callbacks := []Callback{}
	for rows.Next() {
		cb, err := scanCallback(rows)
		if err != nil {
			return nil, fmt.Errorf("scan callback: %w", err)
		}
		callbacks = append(callbacks, cb)
	}
	return callbacks, rows.Err()
}
