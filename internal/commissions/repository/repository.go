// Package repository implements commission persistence.
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

// Commission statuses.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusPaid     = "PAID"
	StatusRejected = "REJECTED"
)

// Commission mirrors a row in the commissions table.
type Commission struct {
	ID        uuid.UUID  `json:"id"`
	RepID     uuid.UUID  `json:"repId"`
	RepName   *string    `json:"repName,omitempty"`
	LeadID    uuid.UUID  `json:"leadId"`
	DemoID    *uuid.UUID `json:"demoId,omitempty"`
	Type      string     `json:"type"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	Period    string     `json:"period"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Totals sums commission amounts by status.
type Totals struct {
	Pending  float64 `json:"pending"`
	Approved float64 `json:"approved"`
	Paid     float64 `json:"paid"`
	Rejected float64 `json:"rejected"`
}

// CreateParams holds the fields for inserting a commission.
type CreateParams struct {
	RepID  uuid.UUID
	LeadID uuid.UUID
	DemoID *uuid.UUID
	Type   string
	Amount float64
	Period string
}

// Repo implements commission persistence with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new commissions repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const commissionColumns = `c.id, c.rep_id, p.full_name, c.lead_id, c.demo_id, c.type, c.amount,
	c.status, c.period, c.paid_at, c.created_at, c.updated_at`

// Create inserts a pending commission.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Commission, error) {
	var comm Commission
	err := r.pool.QueryRow(ctx, `
		INSERT INTO commissions (rep_id, lead_id, demo_id, type, amount, status, period)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, rep_id, lead_id, demo_id, type, amount, status, period,
			paid_at, created_at, updated_at`,
		params.RepID, params.LeadID, params.DemoID, params.Type, params.Amount,
		StatusPending, params.Period).
		Scan(&comm.ID, &comm.RepID, &comm.LeadID, &comm.DemoID, &comm.Type, &comm.Amount,
			&comm.Status, &comm.Period, &comm.PaidAt, &comm.CreatedAt, &comm.UpdatedAt)
	if err != nil {
		return Commission{}, fmt.Errorf("create commission: %w", err)
	}
	return comm, nil
}

// ListAll retrieves commissions for the admin screen, optionally filtered
// by status, newest first.
func (r *Repo) ListAll(ctx context.Context, status string) ([]Commission, error) {
	var filter interface{}
	if status != "" {
		filter = status
	}

	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM commissions c
		JOIN profiles p ON p.id = c.rep_id
		WHERE ($1::text IS NULL OR c.status = $1)
		ORDER BY c.created_at DESC`, commissionColumns), filter)
	if err != nil {
		return nil, fmt.Errorf("list commissions: %w", err)
	}
	defer rows.Close()
	return scanCommissions(rows, true)
}

// ListByRep retrieves a rep's own commissions, newest first.
func (r *Repo) ListByRep(ctx context.Context, repID uuid.UUID) ([]Commission, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, rep_id, lead_id, demo_id, type, amount, status, period,
			paid_at, created_at, updated_at
		FROM commissions WHERE rep_id = $1
		ORDER BY created_at DESC`, repID)
	if err != nil {
		return nil, fmt.Errorf("list rep commissions: %w", err)
	}
	defer rows.Close()
	return scanCommissions(rows, false)
}

// TotalsByStatus sums amounts per status, optionally scoped to one rep.
func (r *Repo) TotalsByStatus(ctx context.Context, repID *uuid.UUID) (Totals, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, COALESCE(SUM(amount), 0)
		FROM commissions
		WHERE ($1::uuid IS NULL OR rep_id = $1)
		GROUP BY status`, repID)
	if err != nil {
		return Totals{}, fmt.Errorf("commission totals: %w", err)
	}
	defer rows.Close()

	var totals Totals
	for rows.Next() {
		var status string
		var sum float64
		if err := rows.Scan(&status, &sum); err != nil {
			return Totals{}, fmt.Errorf("scan commission total: %w", err)
		}
		switch status {
		case StatusPending:
			totals.Pending = sum
		case StatusApproved:
			totals.Approved = sum
		case StatusPaid:
			totals.Paid = sum
		case StatusRejected:
			totals.Rejected = sum
		}
	}
	return totals, rows.Err()
}

// UpdateStatus moves a commission to a new status. Paying stamps paid_at.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Commission, error) {
	var comm Commission
	err := r.pool.QueryRow(ctx, `
		UPDATE commissions SET
			status = $2,
			paid_at = CASE WHEN $2 = $3 THEN now() ELSE paid_at END,
			updated_at = now()
		WHERE id = $1
		RETURNING id, rep_id, lead_id, demo_id, type, amount, status, period,
			paid_at, created_at, updated_at`,
		id, status, StatusPaid).
		Scan(&comm.ID, &comm.RepID, &comm.LeadID, &comm.DemoID, &comm.Type, &comm.Amount,
			&comm.Status, &comm.Period, &comm.PaidAt, &comm.CreatedAt, &comm.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Commission{}, apperr.NotFound("commission not found")
	}
	if err != nil {
		return Commission{}, fmt.Errorf("update commission status: %w", err)
	}
	return comm, nil
}

func scanCommissions(rows pgx.Rows, withRepName bool) ([]Commission, error) {
	commissions := []Commission{}
	for rows.Next() {
		var comm Commission
		var err error
		if withRepName {
			err = rows.Scan(&comm.ID, &comm.RepID, &comm.RepName, &comm.LeadID, &comm.DemoID,
				&comm.Type, &comm.Amount, &comm.Status, &comm.Period, &comm.PaidAt,
				&comm.CreatedAt, &comm.UpdatedAt)
		} else {
			err = rows.Scan(&comm.ID, &comm.RepID, &comm.LeadID, &comm.DemoID,
				&comm.Type, &comm.Amount, &comm.Status, &comm.Period, &comm.PaidAt,
				&comm.CreatedAt, &comm.UpdatedAt)
		}
		if err != nil {
			return nil, fmt.Errorf("scan commission: %w", err)
		}
		commissions = append(commissions, comm)
	}
	return commissions, rows.Err()
}
