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

const profileNotFoundMessage = "profile not found"

// Profile mirrors a row in the profiles table. The ID equals the auth
// provider's subject so tokens map straight onto profiles.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// RepWithStats is a profile joined with call activity counters for the
// admin reps screen.
type RepWithStats struct {
	Profile
	CallsToday int `json:"callsToday"`
	CallsTotal int `json:"callsTotal"`
	DemosTotal int `json:"demosTotal"`
}

// CreateParams holds the fields for inserting a profile.
type CreateParams struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Role     string
	Phone    *string
}

// UpdateParams holds the nullable fields for a partial profile update.
type UpdateParams struct {
	ID       uuid.UUID
	FullName *string
	Role     *string
	Phone    *string
}

// Repo implements profile persistence with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profiles repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const profileColumns = `id, email, full_name, role, phone, is_active, created_at, updated_at`

// GetByID retrieves a profile by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	var p Profile
	var createdAt, updatedAt time.Time

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Email, &p.FullName, &p.Role, &p.Phone, &p.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, apperr.NotFound(profileNotFoundMessage)
		}
		return Profile{}, fmt.Errorf("get profile by id: %w", err)
	}

	p.CreatedAt = createdAt.Format(time.RFC3339)
	p.UpdatedAt = updatedAt.Format(time.RFC3339)

	return p, nil
}

// ListReps retrieves all rep profiles with call and demo counters.
func (r *Repo) ListReps(ctx context.Context) ([]RepWithStats, error) {
	query := `
		SELECT p.id, p.email, p.full_name, p.role, p.phone, p.is_active, p.created_at, p.updated_at,
			COUNT(cl.id) FILTER (WHERE cl.created_at >= date_trunc('day', now())) AS calls_today,
			COUNT(cl.id) AS calls_total,
			COUNT(DISTINCT d.id) AS demos_total
		FROM profiles p
		LEFT JOIN call_logs cl ON cl.rep_id = p.id
		LEFT JOIN demos d ON d.rep_id = p.id
		WHERE p.role = 'rep'
		GROUP BY p.id
		ORDER BY p.full_name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reps: %w", err)
	}
	defer rows.Close()

	var results []RepWithStats
	for rows.Next() {
		var rep RepWithStats
		var createdAt, updatedAt time.Time

		err := rows.Scan(
			&rep.ID, &rep.Email, &rep.FullName, &rep.Role, &rep.Phone, &rep.IsActive,
			&createdAt, &updatedAt, &rep.CallsToday, &rep.CallsTotal, &rep.DemosTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("scan rep: %w", err)
		}

		rep.CreatedAt = createdAt.Format(time.RFC3339)
		rep.UpdatedAt = updatedAt.Format(time.RFC3339)
		results = append(results, rep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reps: %w", err)
	}

	return results, nil
}

// Create inserts a new profile.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Profile, error) {
	query := `
		INSERT INTO profiles (id, email, full_name, role, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + profileColumns

	var p Profile
	var createdAt, updatedAt time.Time

	err := r.pool.QueryRow(ctx, query,
		params.ID, params.Email, params.FullName, params.Role, params.Phone,
	).Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.Phone, &p.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}

	p.CreatedAt = createdAt.Format(time.RFC3339)
	p.UpdatedAt = updatedAt.Format(time.RFC3339)

	return p, nil
}

// Update applies a partial update to a profile.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Profile, error) {
	query := `
		UPDATE profiles SET
			full_name = COALESCE($2, full_name),
			role = COALESCE($3, role),
			phone = COALESCE($4, phone),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + profileColumns

	var p Profile
	var createdAt, updatedAt time.Time

	err := r.pool.QueryRow(ctx, query,
		params.ID, params.FullName, params.Role, params.Phone,
	).Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.Phone, &p.IsActive, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, apperr.NotFound(profileNotFoundMessage)
		}
		return Profile{}, fmt.Errorf("update profile: %w", err)
	}

	p.CreatedAt = createdAt.Format(time.RFC3339)
	p.UpdatedAt = updatedAt.Format(time.RFC3339)

	return p, nil
}

// SetActive flips the is_active flag on a profile.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	query := `UPDATE profiles SET is_active = $2, updated_at = now() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, isActive)
	if err != nil {
		return fmt.Errorf("set profile active: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(profileNotFoundMessage)
	}

	return nil
}
