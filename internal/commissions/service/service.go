// Package service implements commission creation and review. Commissions
// are created by dialer events, never by direct writes.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salesdial_backend/internal/commissions/repository"
	appevents "salesdial_backend/internal/events"
	settingssvc "salesdial_backend/internal/settings/service"
	"salesdial_backend/platform/apperr"
	"salesdial_backend/platform/logger"
)

// Service implements commission business logic.
type Service struct {
	repo     *repository.Repo
	settings *settingssvc.Service
	log      *logger.Logger
}

// New creates a new commissions service.
func New(repo *repository.Repo, settings *settingssvc.Service, log *logger.Logger) *Service {
	return &Service{repo: repo, settings: settings, log: log}
}

// RegisterHandlers subscribes the commission triggers on the event bus.
func (s *Service) RegisterHandlers(bus appevents.Bus) {
	bus.Subscribe(appevents.DemoBooked{}.EventName(), appevents.HandlerFunc(s.onDemoBooked))
	bus.Subscribe(appevents.DemoCompleted{}.EventName(), appevents.HandlerFunc(s.onDemoCompleted))
	bus.Subscribe(appevents.DealClosed{}.EventName(), appevents.HandlerFunc(s.onDealClosed))
}

func (s *Service) onDemoBooked(ctx context.Context, event appevents.Event) error {
	e, ok := event.(appevents.DemoBooked)
	if !ok {
		return nil
	}
	return s.createFromRule(ctx, settingssvc.RuleDemoBooked, e.RepID, e.LeadID, &e.DemoID)
}

func (s *Service) onDemoCompleted(ctx context.Context, event appevents.Event) error {
	e, ok := event.(appevents.DemoCompleted)
	if !ok {
		return nil
	}
	return s.createFromRule(ctx, settingssvc.RuleDemoCompleted, e.RepID, e.LeadID, &e.DemoID)
}

func (s *Service) onDealClosed(ctx context.Context, event appevents.Event) error {
	e, ok := event.(appevents.DealClosed)
	if !ok {
		return nil
	}
	return s.createFromRule(ctx, settingssvc.RuleClose, e.RepID, e.LeadID, &e.DemoID)
}

func (s *Service) createFromRule(ctx context.Context, ruleType string, repID, leadID uuid.UUID, demoID *uuid.UUID) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}

	rule, ok := settingssvc.FindRule(settings.CommissionRules, ruleType)
	if !ok {
		return nil
	}

	comm, err := s.repo.Create(ctx, repository.CreateParams{
		RepID:  repID,
		LeadID: leadID,
		DemoID: demoID,
		Type:   ruleType,
		Amount: rule.Amount,
		Period: time.Now().Format("2006-01"),
	})
	if err != nil {
		return err
	}

	s.log.Info("commission created", "commission_id", comm.ID,
		"type", comm.Type, "amount", comm.Amount, "rep_id", repID)
	return nil
}

// ListAll returns commissions for the admin screen with totals by status.
func (s *Service) ListAll(ctx context.Context, status string) ([]repository.Commission, repository.Totals, error) {
	if status != "" && !validStatus(status) {
		return nil, repository.Totals{}, apperr.Validation("unknown commission status")
	}

	commissions, err := s.repo.ListAll(ctx, status)
	if err != nil {
		return nil, repository.Totals{}, err
	}
	totals, err := s.repo.TotalsByStatus(ctx, nil)
	if err != nil {
		return nil, repository.Totals{}, err
	}
	return commissions, totals, nil
}

// ListForRep returns a rep's own commissions with their totals.
func (s *Service) ListForRep(ctx context.Context, repID uuid.UUID) ([]repository.Commission, repository.Totals, error) {
	commissions, err := s.repo.ListByRep(ctx, repID)
	if err != nil {
		return nil, repository.Totals{}, err
	}
	totals, err := s.repo.TotalsByStatus(ctx, &repID)
	if err != nil {
		return nil, repository.Totals{}, err
	}
	return commissions, totals, nil
}

// UpdateStatus approves, pays or rejects a commission.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (repository.Commission, error) {
	if !validStatus(status) || status == repository.StatusPending {
		return repository.Commission{}, apperr.Validation("status must be APPROVED, PAID or REJECTED")
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func validStatus(status string) bool {
	switch status {
	case repository.StatusPending, repository.StatusApproved,
		repository.StatusPaid, repository.StatusRejected:
		return true
	}
	return false
}
