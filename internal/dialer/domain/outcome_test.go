package domain

import (
	"testing"
	"time"

	leaddomain "salesdial_backend/internal/leads/domain"
)

func TestOutcomeLogEncodings(t *testing.T) {
	at := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		outcome Outcome
		want    string
	}{
		{NoAnswer{}, "No Answer"},
		{VoicemailLeft{}, "Voicemail Left"},
		{ConnectedSendInfo{}, "Connected - Send Info"},
		{NotInterested{}, "Not Interested"},
		{WrongNumberBadData{}, "Wrong Number / Bad Data"},
		{CallbackScheduled{At: at}, "Callback Scheduled - 2024-01-15 14:30"},
		{DemoBooked{At: at}, "DEMO_BOOKED"},
	}

	for _, tt := range tests {
		if got := tt.outcome.Log(); got != tt.want {
			t.Errorf("Log() = %q, want %q", got, tt.want)
		}
	}
}

func TestOutcomeStatusTransitions(t *testing.T) {
	tests := []struct {
		name       string
		outcome    Outcome
		wantStatus leaddomain.Status
		wantOK     bool
	}{
		{"no answer keeps status", NoAnswer{}, "", false},
		{"voicemail keeps status", VoicemailLeft{}, "", false},
		{"send info keeps status", ConnectedSendInfo{}, "", false},
		{"not interested", NotInterested{}, leaddomain.StatusNotInterested, true},
		{"bad data", WrongNumberBadData{}, leaddomain.StatusBadData, true},
		{"callback", CallbackScheduled{At: time.Now()}, leaddomain.StatusCallback, true},
		{"demo booked", DemoBooked{At: time.Now()}, leaddomain.StatusDemoScheduled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := tt.outcome.NextStatus()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && status != tt.wantStatus {
				t.Errorf("status = %s, want %s", status, tt.wantStatus)
			}
		})
	}
}

func TestParseCode(t *testing.T) {
	for code, want := range map[string]string{
		CodeNoAnswer:           "No Answer",
		CodeVoicemailLeft:      "Voicemail Left",
		CodeConnectedSendInfo:  "Connected - Send Info",
		CodeNotInterested:      "Not Interested",
		CodeWrongNumberBadData: "Wrong Number / Bad Data",
	} {
		o, err := ParseCode(code)
		if err != nil {
			t.Fatalf("ParseCode(%s): %v", code, err)
		}
		if o.Log() != want {
			t.Errorf("ParseCode(%s).Log() = %q, want %q", code, o.Log(), want)
		}
	}

	if _, err := ParseCode("HUNG_UP"); err == nil {
		t.Error("expected error for unknown code")
	}
}

func TestIsConnect(t *testing.T) {
	if IsConnect(NoAnswer{}) || IsConnect(VoicemailLeft{}) ||
		IsConnect(WrongNumberBadData{}) || IsConnect(NotInterested{}) {
		t.Error("misses should not count as connects")
	}
	if !IsConnect(ConnectedSendInfo{}) || !IsConnect(CallbackScheduled{}) || !IsConnect(DemoBooked{}) {
		t.Error("forward-moving conversations should count as connects")
	}
}
