// Package service implements the dialer workflows: queue, dispositions,
// callback scheduling and demo booking.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"salesdial_backend/internal/dialer/domain"
	"salesdial_backend/internal/dialer/repository"
	"salesdial_backend/internal/dialer/transport"
	appevents "salesdial_backend/internal/events"
	leaddomain "salesdial_backend/internal/leads/domain"
	leadrepo "salesdial_backend/internal/leads/repository"
	"salesdial_backend/platform/apperr"
	"salesdial_backend/platform/config"
	"salesdial_backend/platform/logger"
)

// ReminderScheduler enqueues callback reminder tasks. A nil scheduler
// disables reminders without breaking the dialer.
type ReminderScheduler interface {
	ScheduleCallbackReminder(ctx context.Context, callbackID uuid.UUID, at time.Time) error
}

// LocationResolver resolves the org's configured timezone, so "2pm"
// entered by a rep means 2pm where the org operates.
type LocationResolver interface {
	Location(ctx context.Context) *time.Location
}

// Service implements dialer business logic.
type Service struct {
	repo      *repository.Repo
	leads     *leadrepo.Repo
	bus       appevents.Bus
	scheduler ReminderScheduler
	locations LocationResolver
	cfg       config.DialerConfig
	log       *logger.Logger
}

// New creates a new dialer service.
func New(repo *repository.Repo, leads *leadrepo.Repo, bus appevents.Bus, scheduler ReminderScheduler, locations LocationResolver, cfg config.DialerConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, leads: leads, bus: bus, scheduler: scheduler, locations: locations, cfg: cfg, log: log}
}

// Queue returns the rep's dialable leads, hottest first.
func (s *Service) Queue(ctx context.Context, repID uuid.UUID) (transport.QueueResponse, error) {
	leads, err := s.leads.ListDialable(ctx, repID)
	if err != nil {
		return transport.QueueResponse{}, err
	}
	ordered := OrderForDialing(leads)
	return transport.QueueResponse{Leads: ordered, Total: len(ordered)}, nil
}

// RecordDisposition logs one dial result and applies the status transition
// it implies, if any.
func (s *Service) RecordDisposition(ctx context.Context, repID uuid.UUID, req transport.DispositionRequest) (transport.DispositionResponse, error) {
	leadID, err := uuid.Parse(req.LeadID)
	if err != nil {
		return transport.DispositionResponse{}, apperr.Validation("invalid lead ID")
	}

	outcome, err := domain.ParseCode(req.Outcome)
	if err != nil {
		return transport.DispositionResponse{}, err
	}

	params := repository.DispositionParams{
		LeadID:  leadID,
		RepID:   repID,
		Outcome: outcome.Log(),
		Notes:   optional(req.Notes),
	}
	if status, ok := outcome.NextStatus(); ok {
		params.StatusTo = &status
		params.ContactName = req.ContactName
		params.ContactEmail = req.ContactEmail
		params.EmailOptIn = req.EmailOptIn
	}

	callLog, err := s.repo.RecordDisposition(ctx, params)
	if err != nil {
		return transport.DispositionResponse{}, err
	}

	s.bus.Publish(ctx, appevents.CallLogged{
		BaseEvent: appevents.NewBaseEvent(),
		CallLogID: callLog.ID,
		LeadID:    leadID,
		RepID:     repID,
		Outcome:   callLog.Outcome,
	})

	return transport.DispositionResponse{CallLog: callLog, Advance: advanceAfter(req.Advance)}, nil
}

// ScheduleCallback creates a follow-up call: callback row, call log, lead
// status CALLBACK, and a reminder task at the due instant.
func (s *Service) ScheduleCallback(ctx context.Context, repID uuid.UUID, req transport.CallbackRequest) (uuid.UUID, error) {
	leadID, err := uuid.Parse(req.LeadID)
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid lead ID")
	}

	scheduledAt, err := parseIn(req.Date, req.Time, s.orgLocation(ctx))
	if err != nil {
		return uuid.Nil, err
	}

	outcome := domain.CallbackScheduled{At: scheduledAt}
	callbackID, err := s.repo.ScheduleCallback(ctx, leadID, repID, scheduledAt, outcome.Log(), optional(req.Notes))
	if err != nil {
		return uuid.Nil, err
	}

	if s.scheduler != nil {
		if err := s.scheduler.ScheduleCallbackReminder(ctx, callbackID, scheduledAt); err != nil {
			// The callback is persisted; a missing reminder is recoverable.
			s.log.Error("schedule callback reminder", "error", err, "callback_id", callbackID)
		}
	}

	s.bus.Publish(ctx, appevents.CallbackScheduled{
		BaseEvent:   appevents.NewBaseEvent(),
		CallbackID:  callbackID,
		LeadID:      leadID,
		RepID:       repID,
		ScheduledAt: scheduledAt,
	})

	return callbackID, nil
}

// BookDemo books a product demo and moves the lead to DEMO_SCHEDULED.
// When the request carries no link one is generated under the configured
// meeting base URL.
func (s *Service) BookDemo(ctx context.Context, repID uuid.UUID, req transport.DemoRequest) (repository.Demo, error) {
	leadID, err := uuid.Parse(req.LeadID)
	if err != nil {
		return repository.Demo{}, apperr.Validation("invalid lead ID")
	}

	scheduledAt, err := parseIn(req.Date, req.Time, s.orgLocation(ctx))
	if err != nil {
		return repository.Demo{}, err
	}

	lead, err := s.leads.GetByID(ctx, leadID)
	if err != nil {
		return repository.Demo{}, err
	}

	link := req.Link
	if link == "" {
		link = s.generateMeetingLink()
	}

	demo, err := s.repo.BookDemo(ctx, repository.DemoParams{
		LeadID:       leadID,
		RepID:        repID,
		CompanyName:  lead.CompanyName,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ScheduledAt:  scheduledAt,
		Link:         link,
		Notes:        optional(req.Notes),
		EmailOptIn:   req.EmailOptIn,
	})
	if err != nil {
		return repository.Demo{}, err
	}

	s.bus.Publish(ctx, appevents.DemoBooked{
		BaseEvent:   appevents.NewBaseEvent(),
		DemoID:      demo.ID,
		LeadID:      leadID,
		RepID:       repID,
		ScheduledAt: scheduledAt,
	})

	s.log.Info("demo booked", "demo_id", demo.ID, "lead_id", leadID, "rep_id", repID)
	return demo, nil
}

// ListDemos returns the rep's demos.
func (s *Service) ListDemos(ctx context.Context, repID uuid.UUID) ([]repository.Demo, error) {
	return s.repo.ListDemosByRep(ctx, repID)
}

// UpdateDemoStatus moves a demo through its lifecycle. COMPLETED emits a
// completion event; a CLOSED_WON outcome closes the deal and the lead.
func (s *Service) UpdateDemoStatus(ctx context.Context, repID uuid.UUID, demoID uuid.UUID, req transport.DemoStatusRequest) (repository.Demo, error) {
	existing, err := s.repo.GetDemo(ctx, demoID)
	if err != nil {
		return repository.Demo{}, err
	}
	if existing.RepID != repID {
		return repository.Demo{}, apperr.Forbidden("demo belongs to another rep")
	}

	demo, err := s.repo.UpdateDemoStatus(ctx, demoID, req.Status, optional(req.Outcome))
	if err != nil {
		return repository.Demo{}, err
	}

	if req.Status == repository.DemoStatusCompleted {
		s.bus.Publish(ctx, appevents.DemoCompleted{
			BaseEvent: appevents.NewBaseEvent(),
			DemoID:    demo.ID,
			LeadID:    demo.LeadID,
			RepID:     demo.RepID,
		})

		if req.Outcome == "CLOSED_WON" {
			if err := s.repo.SetLeadStatus(ctx, demo.LeadID, leaddomain.StatusClosedWon); err != nil {
				return repository.Demo{}, err
			}
			s.bus.Publish(ctx, appevents.DealClosed{
				BaseEvent: appevents.NewBaseEvent(),
				DemoID:    demo.ID,
				LeadID:    demo.LeadID,
				RepID:     demo.RepID,
			})
		}
	}

	return demo, nil
}

func (s *Service) generateMeetingLink() string {
	slug := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.GetMeetingLinkBase(), "/"), slug)
}

// orgLocation falls back to the server zone when no resolver is wired.
func (s *Service) orgLocation(ctx context.Context) *time.Location {
	if s.locations == nil {
		return time.Local
	}
	return s.locations.Location(ctx)
}

// advanceAfter reports whether the dialer should move to the next lead.
// Advancing is the default; callers opt out explicitly.
func advanceAfter(explicit *bool) bool {
	return explicit == nil || *explicit
}

func parseIn(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, apperr.Validation("invalid date or time")
	}
	return t, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
