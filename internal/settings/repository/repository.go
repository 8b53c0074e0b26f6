// Package repository implements org settings persistence. Settings live
// in a single row seeded by migration.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salesdial_backend/platform/apperr"
)

// CommissionRule is one payout rule stored in the settings row.
type CommissionRule struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Enabled     bool    `json:"enabled"`
}

// Settings mirrors the single org_settings row.
type Settings struct {
	CompanyName           string           `json:"companyName"`
	Timezone              string           `json:"timezone"`
	DailyDialTarget       int              `json:"dailyDialTarget"`
	DailyConnectTarget    int              `json:"dailyConnectTarget"`
	DailyDemoTarget       int              `json:"dailyDemoTarget"`
	LeaderboardEnabled    bool             `json:"leaderboardEnabled"`
	LeaderboardAnonymized bool             `json:"leaderboardAnonymized"`
	CommissionRules       []CommissionRule `json:"commissionRules"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}

// Repo implements settings persistence with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get retrieves the org settings.
func (r *Repo) Get(ctx context.Context) (Settings, error) {
	var s Settings
	err := r.pool.QueryRow(ctx, `
		SELECT company_name, timezone, daily_dial_target, daily_connect_target,
			daily_demo_target, leaderboard_enabled, leaderboard_anonymized,
			commission_rules, updated_at
		FROM org_settings LIMIT 1`).
		Scan(&s.CompanyName, &s.Timezone, &s.DailyDialTarget, &s.DailyConnectTarget,
			&s.DailyDemoTarget, &s.LeaderboardEnabled, &s.LeaderboardAnonymized,
			&s.CommissionRules, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Settings{}, apperr.NotFound("settings not seeded")
	}
	if err != nil {
		return Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// Update replaces the org settings.
func (r *Repo) Update(ctx context.Context, s Settings) (Settings, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE org_settings SET
			company_name = $1, timezone = $2,
			daily_dial_target = $3, daily_connect_target = $4, daily_demo_target = $5,
			leaderboard_enabled = $6, leaderboard_anonymized = $7,
			commission_rules = $8, updated_at = now()
		RETURNING updated_at`,
		s.CompanyName, s.Timezone, s.DailyDialTarget, s.DailyConnectTarget,
		s.DailyDemoTarget, s.LeaderboardEnabled, s.LeaderboardAnonymized,
		s.CommissionRules).Scan(&s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Settings{}, apperr.NotFound("settings not seeded")
	}
	if err != nil {
		return Settings{}, fmt.Errorf("update settings: %w", err)
	}
	return s, nil
}
