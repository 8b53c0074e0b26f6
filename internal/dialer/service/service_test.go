package service

import (
	"context"
	"testing"
	"time"
)

func boolPtr(v bool) *bool { return &v }

func TestAdvanceAfterDefaultsToTrue(t *testing.T) {
	tests := []struct {
		name     string
		explicit *bool
		want     bool
	}{
		{name: "omitted", explicit: nil, want: true},
		{name: "explicit true", explicit: boolPtr(true), want: true},
		{name: "explicit false", explicit: boolPtr(false), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := advanceAfter(tt.explicit); got != tt.want {
				t.Errorf("advanceAfter(%v) = %v, want %v", tt.explicit, got, tt.want)
			}
		})
	}
}

func TestParseInUsesGivenLocation(t *testing.T) {
	loc := time.FixedZone("ORG", -5*3600)

	got, err := parseIn("2026-03-10", "14:30", loc)
	if err != nil {
		t.Fatalf("parseIn: %v", err)
	}

	if got.Hour() != 14 || got.Minute() != 30 {
		t.Errorf("clock = %02d:%02d, want 14:30", got.Hour(), got.Minute())
	}
	if _, offset := got.Zone(); offset != -5*3600 {
		t.Errorf("zone offset = %d, want %d", offset, -5*3600)
	}
}

func TestParseInRejectsMalformedInput(t *testing.T) {
	if _, err := parseIn("2026-03-10", "25:99", time.UTC); err == nil {
		t.Error("expected error for out-of-range time")
	}
	if _, err := parseIn("not-a-date", "14:30", time.UTC); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestOrgLocationWithoutResolver(t *testing.T) {
	s := &Service{}
	if got := s.orgLocation(context.Background()); got != time.Local {
		t.Errorf("orgLocation = %v, want server zone", got)
	}
}
