// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"salesdial_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Dialer Domain Events
// =============================================================================

// CallLogged is published after a disposition is recorded.
type CallLogged struct {
	BaseEvent
	CallLogID uuid.UUID `json:"callLogId"`
	LeadID    uuid.UUID `json:"leadId"`
	RepID     uuid.UUID `json:"repId"`
	Outcome   string    `json:"outcome"`
}

func (e CallLogged) EventName() string { return "dialer.call.logged" }

// CallbackScheduled is published when a rep schedules a follow-up call.
type CallbackScheduled struct {
	BaseEvent
	CallbackID  uuid.UUID `json:"callbackId"`
	LeadID      uuid.UUID `json:"leadId"`
	RepID       uuid.UUID `json:"repId"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

func (e CallbackScheduled) EventName() string { return "dialer.callback.scheduled" }

// DemoBooked is published when a rep books a product demo on a lead.
type DemoBooked struct {
	BaseEvent
	DemoID      uuid.UUID `json:"demoId"`
	LeadID      uuid.UUID `json:"leadId"`
	RepID       uuid.UUID `json:"repId"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

func (e DemoBooked) EventName() string { return "dialer.demo.booked" }

// DemoCompleted is published when a demo is marked completed.
type DemoCompleted struct {
	BaseEvent
	DemoID uuid.UUID `json:"demoId"`
	LeadID uuid.UUID `json:"leadId"`
	RepID  uuid.UUID `json:"repId"`
}

func (e DemoCompleted) EventName() string { return "dialer.demo.completed" }

// DealClosed is published when a completed demo resolves to a closed-won deal.
type DealClosed struct {
	BaseEvent
	DemoID uuid.UUID `json:"demoId"`
	LeadID uuid.UUID `json:"leadId"`
	RepID  uuid.UUID `json:"repId"`
}

func (e DealClosed) EventName() string { return "dialer.deal.closed" }

// =============================================================================
// Import Domain Events
// =============================================================================

// LeadsImported is published when a CSV import job finishes processing.
type LeadsImported struct {
	BaseEvent
	JobID    uuid.UUID `json:"jobId"`
	ListID   uuid.UUID `json:"listId"`
	Imported int       `json:"imported"`
	Skipped  int       `json:"skipped"`
	Failed   int       `json:"failed"`
}

func (e LeadsImported) EventName() string { return "imports.leads.imported" }
