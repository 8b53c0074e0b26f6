// Package service assembles dashboards and reports from the reporting
// queries and the org settings.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"salesdial_backend/internal/reporting/repository"
	settingssvc "salesdial_backend/internal/settings/service"
	"salesdial_backend/platform/logger"
)

// Targets are the daily goals from the org settings.
type Targets struct {
	Dials    int `json:"dials"`
	Connects int `json:"connects"`
	Demos    int `json:"demos"`
}

// RepDashboard is everything the rep home screen shows.
type RepDashboard struct {
	Stats             repository.RepDayStats     `json:"stats"`
	Targets           Targets                    `json:"targets"`
	CallbacksDueToday int                        `json:"callbacksDueToday"`
	RecentActivity    []repository.ActivityEntry `json:"recentActivity"`
}

// AdminReports is the admin reporting page payload.
type AdminReports struct {
	Funnel      []repository.FunnelRow      `json:"funnel"`
	Leaderboard []repository.LeaderboardRow `json:"leaderboard"`
	Sources     []repository.SourceRow      `json:"sources"`
}

// Service implements reporting business logic.
type Service struct {
	repo     *repository.Repo
	settings *settingssvc.Service
	log      *logger.Logger
}

// New creates a new reporting service.
func New(repo *repository.Repo, settings *settingssvc.Service, log *logger.Logger) *Service {
	return &Service{repo: repo, settings: settings, log: log}
}

// RepDashboard computes a rep's numbers for the day containing now.
func (s *Service) RepDashboard(ctx context.Context, repID uuid.UUID, now time.Time) (RepDashboard, error) {
	dayStart := startOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats, err := s.repo.RepDayStats(ctx, repID, dayStart, dayEnd)
	if err != nil {
		return RepDashboard{}, err
	}
	callbacksDue, err := s.repo.CountCallbacksDue(ctx, repID, dayStart, dayEnd)
	if err != nil {
		return RepDashboard{}, err
	}
	activity, err := s.repo.RecentActivity(ctx, repID, 10)
	if err != nil {
		return RepDashboard{}, err
	}

	dashboard := RepDashboard{
		Stats:             stats,
		Targets:           Targets{Dials: 80, Connects: 15, Demos: 3},
		CallbacksDueToday: callbacksDue,
		RecentActivity:    activity,
	}
	if settings, err := s.settings.Get(ctx); err == nil {
		dashboard.Targets = Targets{
			Dials:    settings.DailyDialTarget,
			Connects: settings.DailyConnectTarget,
			Demos:    settings.DailyDemoTarget,
		}
	}
	return dashboard, nil
}

// Reports builds the admin reporting page. Rep names are masked when the
// settings ask for an anonymized leaderboard.
func (s *Service) Reports(ctx context.Context) (AdminReports, error) {
	funnel, err := s.repo.Funnel(ctx)
	if err != nil {
		return AdminReports{}, err
	}
	sources, err := s.repo.SourceTotals(ctx)
	if err != nil {
		return AdminReports{}, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return AdminReports{}, err
	}

	leaderboard := []repository.LeaderboardRow{}
	if settings.LeaderboardEnabled {
		leaderboard, err = s.repo.Leaderboard(ctx)
		if err != nil {
			return AdminReports{}, err
		}
		if settings.LeaderboardAnonymized {
			for i := range leaderboard {
				leaderboard[i].RepName = fmt.Sprintf("Rep %d", i+1)
			}
		}
	}

	return AdminReports{Funnel: funnel, Leaderboard: leaderboard, Sources: sources}, nil
}

// AdminDashboard computes the admin headline numbers for the day and the
// ISO week containing now.
func (s *Service) AdminDashboard(ctx context.Context, now time.Time) (repository.AdminTotals, error) {
	dayStart := startOfDay(now)
	weekStart := startOfWeek(now)
	return s.repo.AdminTotals(ctx, dayStart, weekStart, weekStart.AddDate(0, 0, 7))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfWeek returns midnight on the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, 1-weekday)
}
