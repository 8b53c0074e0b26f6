// Package service implements org settings logic.
package service

import (
	"context"
	"time"

	"salesdial_backend/internal/settings/repository"
	"salesdial_backend/platform/apperr"
	"salesdial_backend/platform/logger"
)

// Commission rule types.
const (
	RuleDemoBooked    = "DEMO_BOOKED"
	RuleDemoCompleted = "DEMO_COMPLETED"
	RuleClose         = "CLOSE"
	RuleResidual      = "RESIDUAL"
	RuleBonus         = "BONUS"
)

var knownRuleTypes = map[string]bool{
	RuleDemoBooked:    true,
	RuleDemoCompleted: true,
	RuleClose:         true,
	RuleResidual:      true,
	RuleBonus:         true,
}

// Service implements settings business logic.
type Service struct {
	repo *repository.Repo
	log  *logger.Logger
}

// New creates a new settings service.
func New(repo *repository.Repo, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Get returns the org settings.
func (s *Service) Get(ctx context.Context) (repository.Settings, error) {
	return s.repo.Get(ctx)
}

// Location resolves the org's configured timezone. An unset or unloadable
// timezone falls back to the server zone.
func (s *Service) Location(ctx context.Context) *time.Location {
	settings, err := s.repo.Get(ctx)
	if err != nil || settings.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Update replaces the org settings.
func (s *Service) Update(ctx context.Context, settings repository.Settings) (repository.Settings, error) {
	if settings.Timezone != "" {
		if _, err := time.LoadLocation(settings.Timezone); err != nil {
			return repository.Settings{}, apperr.Validation("unknown timezone")
		}
	}
	for _, rule := range settings.CommissionRules {
		if !knownRuleTypes[rule.Type] {
			return repository.Settings{}, apperr.Validation("unknown commission rule type " + rule.Type)
		}
		if rule.Amount < 0 {
			return repository.Settings{}, apperr.Validation("commission amounts cannot be negative")
		}
	}

	updated, err := s.repo.Update(ctx, settings)
	if err != nil {
		return repository.Settings{}, err
	}

	s.log.Info("settings updated", "company", updated.CompanyName)
	return updated, nil
}

// FindRule returns the enabled rule of the given type, if any.
func FindRule(rules []repository.CommissionRule, ruleType string) (repository.CommissionRule, bool) {
	for _, rule := range rules {
		if rule.Type == ruleType && rule.Enabled {
			return rule, true
		}
	}
	return repository.CommissionRule{}, false
}
