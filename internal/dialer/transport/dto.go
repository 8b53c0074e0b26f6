package transport

import (
	dialerrepo "salesdial_backend/internal/dialer/repository"
	leadrepo "salesdial_backend/internal/leads/repository"
)

// QueueResponse is the rep's dialing queue.
type QueueResponse struct {
	Leads []leadrepo.Lead `json:"leads"`
	Total int             `json:"total"`
}

// DispositionRequest records the result of one dial. Advance is a pointer
// because advancing the queue is the default; only an explicit false holds
// the dialer on the current lead.
type DispositionRequest struct {
	LeadID       string `json:"leadId" validate:"required,uuid"`
	Outcome      string `json:"outcome" validate:"required"`
	Notes        string `json:"notes" validate:"omitempty,max=5000"`
	ContactName  string `json:"contactName" validate:"omitempty,max=200"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	EmailOptIn   bool   `json:"emailOptIn"`
	Advance      *bool  `json:"advance"`
}

// DispositionResponse reports the recorded call and whether the dialer
// should move to the next lead.
type DispositionResponse struct {
	CallLog dialerrepo.CallLog `json:"callLog"`
	Advance bool               `json:"advance"`
}

// CallbackRequest schedules a follow-up call.
type CallbackRequest struct {
	LeadID string `json:"leadId" validate:"required,uuid"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required,datetime=15:04"`
	Notes  string `json:"notes" validate:"omitempty,max=5000"`
}

// DemoRequest books a product demo.
type DemoRequest struct {
	LeadID       string `json:"leadId" validate:"required,uuid"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required,datetime=15:04"`
	Link         string `json:"link" validate:"omitempty,url"`
	ContactName  string `json:"contactName" validate:"omitempty,max=200"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	Notes        string `json:"notes" validate:"omitempty,max=5000"`
	EmailOptIn   bool   `json:"emailOptIn"`
}

// DemoStatusRequest moves a demo through its lifecycle.
type DemoStatusRequest struct {
	Status  string `json:"status" validate:"required,oneof=COMPLETED NO_SHOW CANCELLED RESCHEDULED"`
	Outcome string `json:"outcome" validate:"omitempty,oneof=CLOSED_WON CLOSED_LOST FOLLOW_UP"`
}
