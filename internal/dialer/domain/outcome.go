// Package domain defines the dialer's call outcome model.
package domain

import (
	"fmt"
	"time"

	leaddomain "salesdial_backend/internal/leads/domain"
	"salesdial_backend/platform/apperr"
)

// Outcome is the result of one dial attempt. The set of outcomes is closed;
// each variant knows its call-log encoding and the lead status it moves the
// lead to, if any.
type Outcome interface {
	// Log returns the string persisted in the call_logs outcome column.
	Log() string
	// NextStatus returns the lead status this outcome transitions to.
	// ok is false for outcomes that leave the status untouched.
	NextStatus() (status leaddomain.Status, ok bool)

	isOutcome()
}

// NoAnswer means the call rang out.
type NoAnswer struct{}

// VoicemailLeft means the rep left a voicemail.
type VoicemailLeft struct{}

// ConnectedSendInfo means the contact asked for information by email.
type ConnectedSendInfo struct{}

// NotInterested means the contact declined.
type NotInterested struct{}

// WrongNumberBadData means the number does not reach the company.
type WrongNumberBadData struct{}

// CallbackScheduled means the contact asked to be called back at At.
type CallbackScheduled struct {
	At time.Time
}

// DemoBooked means a demo was booked for At.
type DemoBooked struct {
	At   time.Time
	Link string
}

func (NoAnswer) Log() string           { return "No Answer" }
func (VoicemailLeft) Log() string      { return "Voicemail Left" }
func (ConnectedSendInfo) Log() string  { return "Connected - Send Info" }
func (NotInterested) Log() string      { return "Not Interested" }
func (WrongNumberBadData) Log() string { return "Wrong Number / Bad Data" }

func (o CallbackScheduled) Log() string {
	return fmt.Sprintf("Callback Scheduled - %s %s",
		o.At.Format("2006-01-02"), o.At.Format("15:04"))
}

func (DemoBooked) Log() string { return "DEMO_BOOKED" }

func (NoAnswer) NextStatus() (leaddomain.Status, bool)          { return "", false }
func (VoicemailLeft) NextStatus() (leaddomain.Status, bool)     { return "", false }
func (ConnectedSendInfo) NextStatus() (leaddomain.Status, bool) { return "", false }

func (NotInterested) NextStatus() (leaddomain.Status, bool) {
	return leaddomain.StatusNotInterested, true
}

func (WrongNumberBadData) NextStatus() (leaddomain.Status, bool) {
	return leaddomain.StatusBadData, true
}

func (CallbackScheduled) NextStatus() (leaddomain.Status, bool) {
	return leaddomain.StatusCallback, true
}

func (DemoBooked) NextStatus() (leaddomain.Status, bool) {
	return leaddomain.StatusDemoScheduled, true
}

func (NoAnswer) isOutcome()           {}
func (VoicemailLeft) isOutcome()      {}
func (ConnectedSendInfo) isOutcome()  {}
func (NotInterested) isOutcome()      {}
func (WrongNumberBadData) isOutcome() {}
func (CallbackScheduled) isOutcome()  {}
func (DemoBooked) isOutcome()         {}

// Wire codes accepted on the disposition endpoint.
const (
	CodeNoAnswer           = "NO_ANSWER"
	CodeVoicemailLeft      = "VOICEMAIL_LEFT"
	CodeConnectedSendInfo  = "CONNECTED_SEND_INFO"
	CodeNotInterested      = "NOT_INTERESTED"
	CodeWrongNumberBadData = "WRONG_NUMBER_BAD_DATA"
)

// ParseCode maps a wire code to its outcome. Callback and demo outcomes
// carry extra fields and are built by their own endpoints, not parsed here.
func ParseCode(code string) (Outcome, error) {
	switch code {
	case CodeNoAnswer:
		return NoAnswer{}, nil
	case CodeVoicemailLeft:
		return VoicemailLeft{}, nil
	case CodeConnectedSendInfo:
		return ConnectedSendInfo{}, nil
	case CodeNotInterested:
		return NotInterested{}, nil
	case CodeWrongNumberBadData:
		return WrongNumberBadData{}, nil
	default:
		return nil, apperr.Validation(fmt.Sprintf("unknown outcome %q", code))
	}
}

// IsConnect reports whether the outcome counts as a connect for daily
// stats: a conversation that moved the lead forward.
func IsConnect(o Outcome) bool {
	switch o.(type) {
	case ConnectedSendInfo, CallbackScheduled, DemoBooked:
		return true
	default:
		return false
	}
}

// Outcomes returns one zero value of every outcome variant. The set is
// closed; consumers classifying call logs iterate this instead of keeping
// their own list.
func Outcomes() []Outcome {
	return []Outcome{
		NoAnswer{},
		VoicemailLeft{},
		ConnectedSendInfo{},
		NotInterested{},
		WrongNumberBadData{},
		CallbackScheduled{},
		DemoBooked{},
	}
}
