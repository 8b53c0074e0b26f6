package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"salesdial_backend/internal/callbacks/repository"
)

func at(t time.Time) repository.Callback {
	return repository.Callback{ID: uuid.New(), ScheduledAt: t}
}

func TestBucketize(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	overdue := at(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))
	today := at(time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC))
	tomorrow := at(time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC))
	tomorrowLater := at(time.Date(2024, 1, 16, 15, 0, 0, 0, time.UTC))
	nextWeek := at(time.Date(2024, 1, 22, 11, 0, 0, 0, time.UTC))

	b := Bucketize([]repository.Callback{overdue, today, tomorrow, tomorrowLater, nextWeek}, now)

	if len(b.Overdue) != 1 || b.Overdue[0].ID != overdue.ID {
		t.Errorf("expected one overdue callback, got %d", len(b.Overdue))
	}
	if len(b.Today) != 1 || b.Today[0].ID != today.ID {
		t.Errorf("expected one today callback, got %d", len(b.Today))
	}
	if len(b.Upcoming) != 2 {
		t.Fatalf("expected 2 upcoming day groups, got %d", len(b.Upcoming))
	}
	if b.Upcoming[0].Label != "Tomorrow" {
		t.Errorf("first group label = %q, want Tomorrow", b.Upcoming[0].Label)
	}
	if len(b.Upcoming[0].Callbacks) != 2 {
		t.Errorf("expected both tomorrow callbacks grouped, got %d", len(b.Upcoming[0].Callbacks))
	}
	if b.Upcoming[1].Label != "Mon Jan 22" {
		t.Errorf("second group label = %q, want Mon Jan 22", b.Upcoming[1].Label)
	}
}

func TestBucketizeBoundaries(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	exactlyNow := at(now)
	endOfToday := at(time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC))
	secondBefore := at(now.Add(-time.Second))

	b := Bucketize([]repository.Callback{secondBefore, exactlyNow, endOfToday}, now)

	if len(b.Overdue) != 1 || b.Overdue[0].ID != secondBefore.ID {
		t.Errorf("a callback one second in the past should be overdue")
	}
	if len(b.Today) != 2 {
		t.Errorf("callbacks at now and at end of day belong in today, got %d", len(b.Today))
	}
}

func TestBucketizeEmpty(t *testing.T) {
	b := Bucketize(nil, time.Now())
	if b.Overdue == nil || b.Today == nil {
		t.Error("overdue and today should encode as empty arrays, not null")
	}
	if len(b.Overdue)+len(b.Today)+len(b.Upcoming) != 0 {
		t.Error("expected no callbacks")
	}
}

func TestDayLabel(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		t    time.Time
		want string
	}{
		{time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC), "Today"},
		{time.Date(2024, 1, 16, 0, 30, 0, 0, time.UTC), "Tomorrow"},
		{time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC), "Wed Jan 17"},
		{time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC), "Thu Feb 1"},
	}
	for _, tt := range tests {
		if got := DayLabel(now, tt.t); got != tt.want {
			t.Errorf("DayLabel(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}
