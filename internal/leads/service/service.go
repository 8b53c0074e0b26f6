package service

import (
	"context"

	"github.com/google/uuid"

	"salesdial_backend/internal/leads/domain"
	"salesdial_backend/internal/leads/repository"
	"salesdial_backend/internal/leads/transport"
	"salesdial_backend/platform/apperr"
	"salesdial_backend/platform/logger"
	"salesdial_backend/platform/phone"
)

// Service implements lead business logic.
type Service struct {
	repo *repository.Repo
	log  *logger.Logger
}

// New creates a new leads service.
func New(repo *repository.Repo, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// ListForRep returns the leads assigned to a rep.
func (s *Service) ListForRep(ctx context.Context, repID uuid.UUID) ([]repository.Lead, error) {
	return s.repo.ListByRep(ctx, repID)
}

// CreateManual adds a lead entered by a rep, assigned to themselves.
func (s *Service) CreateManual(ctx context.Context, repID uuid.UUID, req transport.CreateLeadRequest) (repository.Lead, error) {
	priority := domain.Priority(req.Priority)
	if req.Priority == "" {
		priority = domain.PriorityWarm
	}
	if !priority.IsValid() {
		return repository.Lead{}, apperr.Validation("priority must be HOT, WARM or COLD")
	}

	params := repository.CreateParams{
		CompanyName: req.CompanyName,
		Phone:       phone.NormalizeE164(req.Phone),
		Priority:    priority,
		Status:      domain.StatusAssigned,
		Source:      domain.SourceManual,
		AssignedTo:  &repID,
	}
	applyOptional(&params, req)

	lead, err := s.repo.Create(ctx, params)
	if err != nil {
		return repository.Lead{}, err
	}

	s.log.Info("lead created", "lead_id", lead.ID, "source", lead.Source, "rep_id", repID)
	return lead, nil
}

// ListWithFilters returns the admin lead list.
func (s *Service) ListWithFilters(ctx context.Context, req transport.ListLeadsRequest) (transport.ListLeadsResponse, error) {
	params := repository.ListParams{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if params.Limit <= 0 || params.Limit > 200 {
		params.Limit = 50
	}
	if req.Status != "" {
		status := domain.Status(req.Status)
		if !status.IsValid() {
			return transport.ListLeadsResponse{}, apperr.Validation("unknown status filter")
		}
		params.Status = &status
	}
	if req.Industry != "" {
		params.Industry = &req.Industry
	}
	switch {
	case req.Rep == "unassigned":
		params.Unassigned = true
	case req.Rep != "":
		repID, err := uuid.Parse(req.Rep)
		if err != nil {
			return transport.ListLeadsResponse{}, apperr.Validation("rep filter must be a UUID or 'unassigned'")
		}
		params.AssignedTo = &repID
	}

	items, total, err := s.repo.ListWithFilters(ctx, params)
	if err != nil {
		return transport.ListLeadsResponse{}, err
	}

	return transport.ListLeadsResponse{Leads: items, Total: total}, nil
}

// AssignBulk assigns a set of leads to one rep.
func (s *Service) AssignBulk(ctx context.Context, leadIDs []uuid.UUID, repID uuid.UUID) (int, error) {
	if len(leadIDs) == 0 {
		return 0, apperr.Validation("no leads selected")
	}
	return s.repo.AssignBulk(ctx, leadIDs, repID)
}

// AssignRoundRobin spreads a set of leads across the given reps in order.
func (s *Service) AssignRoundRobin(ctx context.Context, leadIDs, repIDs []uuid.UUID) (int, error) {
	if len(leadIDs) == 0 {
		return 0, apperr.Validation("no leads selected")
	}
	if len(repIDs) == 0 {
		return 0, apperr.Validation("no reps selected")
	}

	assigned := 0
	for _, a := range DistributeRoundRobin(leadIDs, repIDs) {
		if err := s.repo.AssignOne(ctx, a.LeadID, a.RepID); err != nil {
			// Report what landed so far; the remainder can be re-run.
			return assigned, err
		}
		assigned++
	}

	s.log.Info("leads round-robin assigned", "leads", assigned, "reps", len(repIDs))
	return assigned, nil
}

// DeleteBulk removes leads (admin bulk action).
func (s *Service) DeleteBulk(ctx context.Context, leadIDs []uuid.UUID) (int, error) {
	if len(leadIDs) == 0 {
		return 0, apperr.Validation("no leads selected")
	}
	return s.repo.DeleteBulk(ctx, leadIDs)
}

// ListOptedIn returns export rows for leads whose contact opted into
// email updates.
func (s *Service) ListOptedIn(ctx context.Context) ([]transport.OptedInRow, error) {
	leads, err := s.repo.ListOptedIn(ctx)
	if err != nil {
		return nil, err
	}
	return toOptedInRows(leads), nil
}

// toOptedInRows shapes leads into export rows. Phones are stored E.164
// and exported in national display format.
func toOptedInRows(leads []repository.Lead) []transport.OptedInRow {
	rows := make([]transport.OptedInRow, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, transport.OptedInRow{
			LeadID:      l.ID.String(),
			CompanyName: l.CompanyName,
			ContactName: l.ContactName,
			Email:       l.Email,
			Phone:       phone.FormatNational(l.Phone),
		})
	}
	return rows
}

// Lists returns lead lists for the admin screen.
func (s *Service) Lists(ctx context.Context, includeArchived bool) ([]repository.LeadList, error) {
	return s.repo.ListLists(ctx, includeArchived)
}

// ArchiveList flips a lead list's archived flag.
func (s *Service) ArchiveList(ctx context.Context, id uuid.UUID, archived bool) error {
	return s.repo.SetListArchived(ctx, id, archived)
}

func applyOptional(params *repository.CreateParams, req transport.CreateLeadRequest) {
	params.ContactName = optional(req.ContactName)
	params.ContactTitle = optional(req.ContactTitle)
	params.Email = optional(req.Email)
	params.Website = optional(req.Website)
	params.Industry = optional(req.Industry)
	params.SubIndustry = optional(req.SubIndustry)
	params.City = optional(req.City)
	params.State = optional(req.State)
	params.Timezone = optional(req.Timezone)
	params.EmployeeCount = req.EmployeeCount
	params.RevenueRange = optional(req.RevenueRange)
	params.Notes = optional(req.Notes)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
