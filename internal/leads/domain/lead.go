// Package domain holds the lead lifecycle vocabulary shared by the leads,
// dialer and reporting modules.
package domain

// Status is a lead's position in the pipeline.
type Status string

const (
	StatusNew           Status = "NEW"
	StatusAssigned      Status = "ASSIGNED"
	StatusContacted     Status = "CONTACTED"
	StatusCallback      Status = "CALLBACK"
	StatusNotInterested Status = "NOT_INTERESTED"
	StatusDemoScheduled Status = "DEMO_SCHEDULED"
	StatusDemoCompleted Status = "DEMO_COMPLETED"
	StatusClosedWon     Status = "CLOSED_WON"
	StatusClosedLost    Status = "CLOSED_LOST"
	StatusDoNotContact  Status = "DO_NOT_CONTACT"
	StatusBadData       Status = "BAD_DATA"
)

// DialableStatuses are the statuses that keep a lead in a rep's call queue.
// ASSIGNED counts: a freshly assigned lead is exactly the one a rep should
// be dialing next.
var DialableStatuses = []Status{StatusNew, StatusAssigned, StatusContacted, StatusCallback}

// AllStatuses lists every valid lead status.
var AllStatuses = []Status{
	StatusNew, StatusAssigned, StatusContacted, StatusCallback,
	StatusNotInterested, StatusDemoScheduled, StatusDemoCompleted,
	StatusClosedWon, StatusClosedLost, StatusDoNotContact, StatusBadData,
}

// IsValid reports whether s is a known lead status.
func (s Status) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Priority ranks how warm a lead is.
type Priority string

const (
	PriorityHot  Priority = "HOT"
	PriorityWarm Priority = "WARM"
	PriorityCold Priority = "COLD"
)

// Rank orders priorities for queue sorting: HOT > WARM > COLD.
// Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHot:
		return 3
	case PriorityWarm:
		return 2
	case PriorityCold:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	return p == PriorityHot || p == PriorityWarm || p == PriorityCold
}

// Source records how a lead entered the system.
type Source string

const (
	SourceCSVImport Source = "CSV_IMPORT"
	SourceManual    Source = "MANUAL"
)

// Industry is the vertical a lead belongs to.
type Industry string

const (
	IndustryLegal       Industry = "LEGAL"
	IndustryRestoration Industry = "RESTORATION"
)
