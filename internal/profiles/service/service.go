package service

import (
	"context"

	"github.com/google/uuid"

	"salesdial_backend/internal/profiles/domain"
	"salesdial_backend/internal/profiles/repository"
	"salesdial_backend/internal/profiles/transport"
	"salesdial_backend/platform/apperr"
	"salesdial_backend/platform/logger"
	"salesdial_backend/platform/phone"
)

// Service implements profile business logic.
type Service struct {
	repo *repository.Repo
	log  *logger.Logger
}

// New creates a new profiles service.
func New(repo *repository.Repo, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetMe returns the caller's profile. Inactive accounts are rejected so a
// deactivated rep loses access on their next request.
func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (repository.Profile, error) {
	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return repository.Profile{}, err
	}
	if !p.IsActive {
		return repository.Profile{}, apperr.Forbidden("account is inactive")
	}
	return p, nil
}

// Resolve returns the stored role and active flag for the gate middleware.
func (s *Service) Resolve(ctx context.Context, userID uuid.UUID) (role string, active bool, err error) {
	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", false, err
	}
	return p.Role, p.IsActive, nil
}

// ListReps returns all rep profiles with activity counters.
func (s *Service) ListReps(ctx context.Context) ([]repository.RepWithStats, error) {
	return s.repo.ListReps(ctx)
}

// CreateRep registers a profile for a rep provisioned in the auth provider.
func (s *Service) CreateRep(ctx context.Context, req transport.CreateRepRequest) (repository.Profile, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return repository.Profile{}, apperr.Validation("id must be the auth provider subject UUID")
	}

	role := req.Role
	if role == "" {
		role = domain.RoleRep
	}
	if role != domain.RoleRep && role != domain.RoleAdmin {
		return repository.Profile{}, apperr.Validation("role must be rep or admin")
	}

	var phonePtr *string
	if req.Phone != "" {
		normalized := phone.NormalizeE164(req.Phone)
		phonePtr = &normalized
	}

	created, err := s.repo.Create(ctx, repository.CreateParams{
		ID:       id,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     role,
		Phone:    phonePtr,
	})
	if err != nil {
		return repository.Profile{}, err
	}

	s.log.Info("rep profile created", "rep_id", created.ID, "email", created.Email)
	return created, nil
}

// UpdateRep applies a partial update to a rep profile.
func (s *Service) UpdateRep(ctx context.Context, id uuid.UUID, req transport.UpdateRepRequest) (repository.Profile, error) {
	if req.Role != nil && *req.Role != domain.RoleRep && *req.Role != domain.RoleAdmin {
		return repository.Profile{}, apperr.Validation("role must be rep or admin")
	}

	var phonePtr *string
	if req.Phone != nil {
		normalized := phone.NormalizeE164(*req.Phone)
		phonePtr = &normalized
	}

	return s.repo.Update(ctx, repository.UpdateParams{
		ID:       id,
		FullName: req.FullName,
		Role:     req.Role,
		Phone:    phonePtr,
	})
}

// ToggleActive flips a rep's active flag.
func (s *Service) ToggleActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}
