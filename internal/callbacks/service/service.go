package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salesdial_backend/internal/callbacks/repository"
	"salesdial_backend/platform/logger"
)

// Service implements callback business logic.
type Service struct {
	repo *repository.Repo
	log  *logger.Logger
}

// New creates a new callbacks service.
func New(repo *repository.Repo, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns the rep's open callbacks bucketed around now.
func (s *Service) List(ctx context.Context, repID uuid.UUID, now time.Time) (Buckets, error) {
	callbacks, err := s.repo.ListIncompleteByRep(ctx, repID)
	if err != nil {
		return Buckets{}, err
	}
	return Bucketize(callbacks, now), nil
}

// SetCompleted marks a callback done or reopens it.
func (s *Service) SetCompleted(ctx context.Context, id, repID uuid.UUID, completed bool) error {
	return s.repo.SetCompleted(ctx, id, repID, completed)
}

// Remind handles a due reminder task. Completed callbacks are skipped;
// the reminder itself is a log entry since outbound notification channels
// are out of scope.
func (s *Service) Remind(ctx context.Context, callbackID uuid.UUID) error {
	cb, err := s.repo.GetByID(ctx, callbackID)
	if err != nil {
		return err
	}
	if cb.IsCompleted {
		return nil
	}

	s.log.Info("callback due",
		"callback_id", cb.ID,
		"lead_id", cb.LeadID,
		"rep_id", cb.RepID,
		"company", cb.CompanyName,
		"scheduled_at", cb.ScheduledAt)
	return nil
}
