// Package repository implements reporting queries. All numbers are SQL
// aggregates computed on demand; nothing here stores state.
package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	dialerdomain "salesdial_backend/internal/dialer/domain"
)

// connectPredicate matches call_logs outcomes that count as connects. It is
// derived from the dialer's outcome classification so the two can't drift.
var connectPredicate = buildConnectPredicate()

func buildConnectPredicate() string {
	terms := []string{}
	for _, o := range dialerdomain.Outcomes() {
		if !dialerdomain.IsConnect(o) {
			continue
		}
		// Timestamped outcomes append details after " - "; those match
		// on their label prefix.
		if label, _, timestamped := strings.Cut(o.Log(), " - "); timestamped {
			terms = append(terms, fmt.Sprintf("outcome LIKE '%s%%'", label))
		} else {
			terms = append(terms, fmt.Sprintf("outcome = '%s'", o.Log()))
		}
	}
	return "(" + strings.Join(terms, " OR ") + ")"
}

// ActivityEntry is one recent call for the rep dashboard.
type ActivityEntry struct {
	CallLogID   uuid.UUID `json:"callLogId"`
	LeadID      uuid.UUID `json:"leadId"`
	CompanyName string    `json:"companyName"`
	Outcome     string    `json:"outcome"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RepDayStats are one rep's counters for a single day.
type RepDayStats struct {
	Dials    int `json:"dials"`
	Connects int `json:"connects"`
	Demos    int `json:"demos"`
}

// FunnelRow is one pipeline stage count.
type FunnelRow struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// LeaderboardRow is one rep's standing.
type LeaderboardRow struct {
	RepID     uuid.UUID `json:"repId"`
	RepName   string    `json:"repName"`
	Dials     int       `json:"dials"`
	Demos     int       `json:"demos"`
	Closes    int       `json:"closes"`
	CloseRate float64   `json:"closeRate"`
}

// SourceRow is one lead source total.
type SourceRow struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// AdminTotals are the admin dashboard headline numbers.
type AdminTotals struct {
	TotalLeads      int `json:"totalLeads"`
	UnassignedLeads int `json:"unassignedLeads"`
	DialsToday      int `json:"dialsToday"`
	DemosThisWeek   int `json:"demosThisWeek"`
	ActiveReps      int `json:"activeReps"`
}

// Repo implements reporting queries with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reporting repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// RepDayStats counts one rep's dials, connects and booked demos inside
// the given window.
func (r *Repo) RepDayStats(ctx context.Context, repID uuid.UUID, from, to time.Time) (RepDayStats, error) {
	var stats RepDayStats
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE %s),
			COUNT(*) FILTER (WHERE outcome = 'DEMO_BOOKED')
		FROM call_logs
		WHERE rep_id = $1 AND created_at >= $2 AND created_at < $3`, connectPredicate),
		repID, from, to).
		Scan(&stats.Dials, &stats.Connects, &stats.Demos)
	if err != nil {
		return RepDayStats{}, fmt.Errorf("rep day stats: %w", err)
	}
	return stats, nil
}

// CountCallbacksDue counts a rep's open callbacks inside the window.
func (r *Repo) CountCallbacksDue(ctx context.Context, repID uuid.UUID, from, to time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM callbacks
		WHERE rep_id = $1 AND NOT is_completed
			AND scheduled_at >= $2 AND scheduled_at < $3`,
		repID, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count callbacks due: %w", err)
	}
	return count, nil
}

// RecentActivity returns a rep's latest calls with company names.
func (r *Repo) RecentActivity(ctx context.Context, repID uuid.UUID, limit int) ([]ActivityEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cl.id, cl.lead_id, l.company_name, cl.outcome, cl.created_at
		FROM call_logs cl
		JOIN leads l ON l.id = cl.lead_id
		WHERE cl.rep_id = $1
		ORDER BY cl.created_at DESC
		LIMIT $2`, repID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	defer rows.Close()

	entries := []ActivityEntry{}
	for rows.Next() {
		var e ActivityEntry
		if err := rows.Scan(&e.CallLogID, &e.LeadID, &e.CompanyName, &e.Outcome, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Funnel counts leads per pipeline status.
func (r *Repo) Funnel(ctx context.Context) ([]FunnelRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM leads GROUP BY status ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("pipeline funnel: %w", err)
	}
	defer rows.Close()

	funnel := []FunnelRow{}
	for rows.Next() {
		var row FunnelRow
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, fmt.Errorf("scan funnel row: %w", err)
		}
		funnel = append(funnel, row)
	}
	return funnel, rows.Err()
}

// Leaderboard ranks active reps by demos booked. Closes come from demos
// resolved CLOSED_WON; the rate is closes over completed demos.
func (r *Repo) Leaderboard(ctx context.Context) ([]LeaderboardRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.full_name,
			(SELECT COUNT(*) FROM call_logs cl WHERE cl.rep_id = p.id),
			(SELECT COUNT(*) FROM demos d WHERE d.rep_id = p.id),
			(SELECT COUNT(*) FROM demos d WHERE d.rep_id = p.id AND d.outcome = 'CLOSED_WON'),
			(SELECT COUNT(*) FROM demos d WHERE d.rep_id = p.id AND d.status = 'COMPLETED')
		FROM profiles p
		WHERE p.role = 'rep' AND p.is_active
		ORDER BY 4 DESC`)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	defer rows.Close()

	board := []LeaderboardRow{}
	for rows.Next() {
		var row LeaderboardRow
		var completed int
		if err := rows.Scan(&row.RepID, &row.RepName, &row.Dials, &row.Demos, &row.Closes, &completed); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		if completed > 0 {
			row.CloseRate = float64(row.Closes) / float64(completed)
		}
		board = append(board, row)
	}
	return board, rows.Err()
}

// SourceTotals counts leads per source.
func (r *Repo) SourceTotals(ctx context.Context) ([]SourceRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT source, COUNT(*) FROM leads GROUP BY source`)
	if err != nil {
		return nil, fmt.Errorf("source totals: %w", err)
	}
	defer rows.Close()

	sources := []SourceRow{}
	for rows.Next() {
		var row SourceRow
		if err := rows.Scan(&row.Source, &row.Count); err != nil {
			return nil, fmt.Errorf("scan source row: %w", err)
		}
		sources = append(sources, row)
	}
	return sources, rows.Err()
}

// AdminTotals computes the admin dashboard headline numbers.
func (r *Repo) AdminTotals(ctx context.Context, dayStart, weekStart, weekEnd time.Time) (AdminTotals, error) {
	var totals AdminTotals
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM leads),
			(SELECT COUNT(*) FROM leads WHERE assigned_to IS NULL),
			(SELECT COUNT(*) FROM call_logs WHERE created_at >= $1),
			(SELECT COUNT(*) FROM demos WHERE scheduled_at >= $2 AND scheduled_at < $3),
			(SELECT COUNT(*) FROM profiles WHERE role = 'rep' AND is_active)`,
		dayStart, weekStart, weekEnd).
		Scan(&totals.TotalLeads, &totals.UnassignedLeads, &totals.DialsToday,
			&totals.DemosThisWeek, &totals.ActiveReps)
	if err != nil {
		return AdminTotals{}, fmt.Errorf("admin totals: %w", err)
	}
	return totals, nil
}
