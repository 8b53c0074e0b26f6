package service

import "github.com/google/uuid"

// Assignment pairs one lead with the rep it should go to.
type Assignment struct {
	LeadID uuid.UUID
	RepID  uuid.UUID
}

// DistributeRoundRobin deals leads to reps in order: the first lead to the
// first rep, the second to the second, wrapping around until every lead is
// paired. The result preserves the lead order.
func DistributeRoundRobin(leadIDs, repIDs []uuid.UUID) []Assignment {
	if len(repIDs) == 0 {
		return nil
	}
	out := make([]Assignment, 0, len(leadIDs))
	for i, leadID := range leadIDs {
		out = append(out, Assignment{LeadID: leadID, RepID: repIDs[i%len(repIDs)]})
	}
	return out
}
