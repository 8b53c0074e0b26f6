package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salesdial_backend/internal/leads/domain"
	"salesdial_backend/platform/apperr"
)

const leadNotFoundMessage = "lead not found"

// Lead mirrors a row in the leads table.
type Lead struct {
	ID              uuid.UUID       `json:"id"`
	ListID          *uuid.UUID      `json:"listId,omitempty"`
	CompanyName     string          `json:"companyName"`
	ContactName     *string         `json:"contactName,omitempty"`
	ContactTitle    *string         `json:"contactTitle,omitempty"`
	Phone           string          `json:"phone"`
	Email           *string         `json:"email,omitempty"`
	Website         *string         `json:"website,omitempty"`
	Industry        *string         `json:"industry,omitempty"`
	SubIndustry     *string         `json:"subIndustry,omitempty"`
	City            *string         `json:"city,omitempty"`
	State           *string         `json:"state,omitempty"`
	Timezone        *string         `json:"timezone,omitempty"`
	EmployeeCount   *int            `json:"employeeCount,omitempty"`
	RevenueRange    *string         `json:"revenueRange,omitempty"`
	Status          domain.Status   `json:"status"`
	Priority        domain.Priority `json:"priority"`
	Source          domain.Source   `json:"source"`
	AssignedTo      *uuid.UUID      `json:"assignedTo,omitempty"`
	AssignedRepName *string         `json:"assignedRepName,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	EmailOptIn      bool            `json:"emailOptIn"`
	DemoScheduledAt *time.Time      `json:"demoScheduledAt,omitempty"`
	DemoLink        *string         `json:"demoLink,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CreateParams holds the fields for inserting a lead.
type CreateParams struct {
	ListID        *uuid.UUID
	CompanyName   string
	ContactName   *string
	ContactTitle  *string
	Phone         string
	Email         *string
	Website       *string
	Industry      *string
	SubIndustry   *string
	City          *string
	State         *string
	Timezone      *string
	EmployeeCount *int
	RevenueRange  *string
	Priority      domain.Priority
	Status        domain.Status
	Source        domain.Source
	AssignedTo    *uuid.UUID
	Notes         *string
}

// ListParams filters the admin lead list.
type ListParams struct {
	Search     string
	Status     *domain.Status
	Industry   *string
	AssignedTo *uuid.UUID
	Unassigned bool
	Limit      int
	Offset     int
}

// Repo implements lead persistence with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const leadColumns = `l.id, l.list_id, l.company_name, l.contact_name, l.contact_title, l.phone,
	l.email, l.website, l.industry, l.sub_industry, l.city, l.state, l.timezone,
	l.employee_count, l.revenue_range,
	l.status, l.priority, l.source, l.assigned_to, l.notes, l.email_opt_in,
	l.demo_scheduled_at, l.demo_link, l.created_at, l.updated_at`

func scanLead(row pgx.Row) (Lead, error) {
	var l Lead
	err := row.Scan(
		&l.ID, &l.ListID, &l.CompanyName, &l.ContactName, &l.ContactTitle, &l.Phone,
		&l.Email, &l.Website, &l.Industry, &l.SubIndustry, &l.City, &l.State, &l.Timezone,
		&l.EmployeeCount, &l.RevenueRange,
		&l.Status, &l.Priority, &l.Source, &l.AssignedTo, &l.Notes, &l.EmailOptIn,
		&l.DemoScheduledAt, &l.DemoLink, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func scanLeads(rows pgx.Rows) ([]Lead, error) {
	var results []Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}
	return results, nil
}

// GetByID retrieves a lead by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads l WHERE l.id = $1`

	l, err := scanLead(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("get lead by id: %w", err)
	}
	return l, nil
}

// ListDialable retrieves a rep's leads whose status keeps them in the call
// queue, oldest first. Priority ordering is applied by the dialer service.
func (r *Repo) ListDialable(ctx context.Context, repID uuid.UUID) ([]Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		WHERE l.assigned_to = $1 AND l.status = ANY($2)
		ORDER BY l.created_at ASC`

	statuses := make([]string, len(domain.DialableStatuses))
	for i, s := range domain.DialableStatuses {
		statuses[i] = string(s)
	}

	rows, err := r.pool.Query(ctx, query, repID, statuses)
	if err != nil {
		return nil, fmt.Errorf("list dialable leads: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// ListByRep retrieves all leads assigned to a rep, newest first.
func (r *Repo) ListByRep(ctx context.Context, repID uuid.UUID) ([]Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		WHERE l.assigned_to = $1
		ORDER BY l.created_at DESC`

	rows, err := r.pool.Query(ctx, query, repID)
	if err != nil {
		return nil, fmt.Errorf("list leads by rep: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// ListWithFilters retrieves leads for the admin list with search, status,
// industry and assignment filters plus pagination.
func (r *Repo) ListWithFilters(ctx context.Context, params ListParams) ([]Lead, int, error) {
	var searchParam interface{}
	if params.Search != "" {
		searchParam = "%" + params.Search + "%"
	}
	var statusParam interface{}
	if params.Status != nil {
		statusParam = string(*params.Status)
	}
	var industryParam interface{}
	if params.Industry != nil {
		industryParam = *params.Industry
	}
	var repParam interface{}
	if params.AssignedTo != nil {
		repParam = *params.AssignedTo
	}

	where := `
		WHERE ($1::text IS NULL OR l.company_name ILIKE $1 OR l.contact_name ILIKE $1 OR l.phone ILIKE $1)
			AND ($2::text IS NULL OR l.status = $2)
			AND ($3::text IS NULL OR l.industry = $3)
			AND ($4::uuid IS NULL OR l.assigned_to = $4)
			AND (NOT $5::boolean OR l.assigned_to IS NULL)`

	countQuery := `SELECT COUNT(*) FROM leads l` + where

	args := []interface{}{searchParam, statusParam, industryParam, repParam, params.Unassigned}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	query := `
		SELECT ` + leadColumns + `, p.full_name
		FROM leads l
		LEFT JOIN profiles p ON p.id = l.assigned_to` + where + `
		ORDER BY l.created_at DESC
		LIMIT $6 OFFSET $7`

	args = append(args, params.Limit, params.Offset)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var results []Lead
	for rows.Next() {
		var l Lead
		err := rows.Scan(
			&l.ID, &l.ListID, &l.CompanyName, &l.ContactName, &l.ContactTitle, &l.Phone,
			&l.Email, &l.Website, &l.Industry, &l.SubIndustry, &l.City, &l.State, &l.Timezone,
			&l.EmployeeCount, &l.RevenueRange,
			&l.Status, &l.Priority, &l.Source, &l.AssignedTo, &l.Notes, &l.EmailOptIn,
			&l.DemoScheduledAt, &l.DemoLink, &l.CreatedAt, &l.UpdatedAt,
			&l.AssignedRepName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lead: %w", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate leads: %w", err)
	}

	return results, total, nil
}

// Create inserts a new lead.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Lead, error) {
	query := `
		INSERT INTO leads (list_id, company_name, contact_name, contact_title, phone, email,
			website, industry, sub_industry, city, state, timezone, employee_count,
			revenue_range, status, priority, source, assigned_to, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + leadColumnsBare

	l, err := scanLead(r.pool.QueryRow(ctx, query,
		params.ListID, params.CompanyName, params.ContactName, params.ContactTitle,
		params.Phone, params.Email, params.Website, params.Industry, params.SubIndustry,
		params.City, params.State, params.Timezone, params.EmployeeCount, params.RevenueRange,
		params.Status, params.Priority, params.Source, params.AssignedTo, params.Notes,
	))
	if err != nil {
		return Lead{}, fmt.Errorf("create lead: %w", err)
	}
	return l, nil
}

// ExistsByPhone reports whether any lead already carries the given phone.
func (r *Repo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM leads WHERE phone = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, phone).Scan(&exists); err != nil {
		return false, fmt.Errorf("check lead phone exists: %w", err)
	}
	return exists, nil
}

// AssignBulk assigns the given leads to one rep and moves them to ASSIGNED.
func (r *Repo) AssignBulk(ctx context.Context, leadIDs []uuid.UUID, repID uuid.UUID) (int, error) {
	query := `
		UPDATE leads
		SET assigned_to = $2, status = $3, updated_at = now()
		WHERE id = ANY($1)`

	result, err := r.pool.Exec(ctx, query, leadIDs, repID, domain.StatusAssigned)
	if err != nil {
		return 0, fmt.Errorf("assign leads: %w", err)
	}
	return int(result.RowsAffected()), nil
}

// AssignOne assigns a single lead to a rep and moves it to ASSIGNED.
func (r *Repo) AssignOne(ctx context.Context, leadID, repID uuid.UUID) error {
	query := `
		UPDATE leads
		SET assigned_to = $2, status = $3, updated_at = now()
		WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, leadID, repID, domain.StatusAssigned)
	if err != nil {
		return fmt.Errorf("assign lead: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(leadNotFoundMessage)
	}
	return nil
}

// DeleteBulk removes leads by ID (admin bulk action).
func (r *Repo) DeleteBulk(ctx context.Context, leadIDs []uuid.UUID) (int, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = ANY($1)`, leadIDs)
	if err != nil {
		return 0, fmt.Errorf("delete leads: %w", err)
	}
	return int(result.RowsAffected()), nil
}

// ListOptedIn retrieves leads whose contact agreed to email updates.
func (r *Repo) ListOptedIn(ctx context.Context) ([]Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		WHERE l.email_opt_in = true AND l.email IS NOT NULL
		ORDER BY l.company_name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list opted-in leads: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// leadColumnsBare is leadColumns without the table alias, for RETURNING clauses.
const leadColumnsBare = `id, list_id, company_name, contact_name, contact_title, phone,
	email, website, industry, sub_industry, city, state, timezone,
	employee_count, revenue_range,
	status, priority, source, assigned_to, notes, email_opt_in,
	demo_scheduled_at, demo_link, created_at, updated_at`
