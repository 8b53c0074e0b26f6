package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"salesdial_backend/platform/apperr"
)

// LeadList mirrors a row in the lead_lists table: one imported batch of leads.
type LeadList struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Industry       string    `json:"industry"`
	TotalLeads     int       `json:"totalLeads"`
	ImportedByID   uuid.UUID `json:"importedById"`
	ImportedByName *string   `json:"importedByName,omitempty"`
	Archived       bool      `json:"archived"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateList inserts a new lead list.
func (r *Repo) CreateList(ctx context.Context, name, industry string, importedBy uuid.UUID) (LeadList, error) {
	query := `
		INSERT INTO lead_lists (name, industry, imported_by)
		VALUES ($1, $2, $3)
		RETURNING id, name, industry, total_leads, imported_by, is_archived, created_at`

	var list LeadList
	err := r.pool.QueryRow(ctx, query, name, industry, importedBy).Scan(
		&list.ID, &list.Name, &list.Industry, &list.TotalLeads,
		&list.ImportedByID, &list.Archived, &list.CreatedAt,
	)
	if err != nil {
		return LeadList{}, fmt.Errorf("create lead list: %w", err)
	}
	return list, nil
}

// ListLists retrieves all lead lists, newest first.
func (r *Repo) ListLists(ctx context.Context, includeArchived bool) ([]LeadList, error) {
	query := `
		SELECT ll.id, ll.name, ll.industry, ll.total_leads, ll.imported_by, p.full_name, ll.is_archived, ll.created_at
		FROM lead_lists ll
		LEFT JOIN profiles p ON p.id = ll.imported_by
		WHERE $1::boolean OR NOT ll.is_archived
		ORDER BY ll.created_at DESC`

	rows, err := r.pool.Query(ctx, query, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("list lead lists: %w", err)
	}
	defer rows.Close()

	var results []LeadList
	for rows.Next() {
		var list LeadList
		err := rows.Scan(
			&list.ID, &list.Name, &list.Industry, &list.TotalLeads,
			&list.ImportedByID, &list.ImportedByName, &list.Archived, &list.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lead list: %w", err)
		}
		results = append(results, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lead lists: %w", err)
	}

	return results, nil
}

// SetListArchived flips a list's archived flag.
func (r *Repo) SetListArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE lead_lists SET is_archived = $2 WHERE id = $1`, id, archived)
	if err != nil {
		return fmt.Errorf("set lead list archived: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("lead list not found")
	}
	return nil
}

// AddToListTotal bumps a list's imported lead counter.
func (r *Repo) AddToListTotal(ctx context.Context, id uuid.UUID, delta int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE lead_lists SET total_leads = total_leads + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("update lead list total: %w", err)
	}
	return nil
}

// GetList retrieves a lead list by ID.
func (r *Repo) GetList(ctx context.Context, id uuid.UUID) (LeadList, error) {
	query := `
		SELECT id, name, industry, total_leads, imported_by, is_archived, created_at
		FROM lead_lists WHERE id = $1`

	var list LeadList
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&list.ID, &list.Name, &list.Industry, &list.TotalLeads,
		&list.ImportedByID, &list.Archived, &list.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LeadList{}, apperr.NotFound("lead list not found")
		}
		return LeadList{}, fmt.Errorf("get lead list: %w", err)
	}
	return list, nil
}
