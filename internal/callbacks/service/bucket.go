// Package service implements callback listing and completion.
package service

import (
	"time"

	"salesdial_backend/internal/callbacks/repository"
)

// DayGroup is one day's upcoming callbacks under a display label.
type DayGroup struct {
	Label     string                `json:"label"`
	Callbacks []repository.Callback `json:"callbacks"`
}

// Buckets partitions a rep's open callbacks relative to a reference
// instant. Overdue is strictly before now; Today runs from now to the end
// of the calendar day; everything later lands in Upcoming, grouped by day.
type Buckets struct {
	Overdue  []repository.Callback `json:"overdue"`
	Today    []repository.Callback `json:"today"`
	Upcoming []DayGroup            `json:"upcoming"`
}

// Bucketize partitions callbacks around now. The input must be sorted by
// scheduled_at ascending; the order is preserved inside every bucket.
func Bucketize(callbacks []repository.Callback, now time.Time) Buckets {
	b := Buckets{
		Overdue: []repository.Callback{},
		Today:   []repository.Callback{},
	}
	todayEnd := endOfDay(now)

	for _, cb := range callbacks {
		switch {
		case cb.ScheduledAt.Before(now):
			b.Overdue = append(b.Overdue, cb)
		case !cb.ScheduledAt.After(todayEnd):
			b.Today = append(b.Today, cb)
		default:
			label := DayLabel(now, cb.ScheduledAt)
			if n := len(b.Upcoming); n > 0 && b.Upcoming[n-1].Label == label {
				b.Upcoming[n-1].Callbacks = append(b.Upcoming[n-1].Callbacks, cb)
			} else {
				b.Upcoming = append(b.Upcoming, DayGroup{Label: label, Callbacks: []repository.Callback{cb}})
			}
		}
	}
	return b
}

// DayLabel names the calendar day of t relative to now: Today, Tomorrow,
// or a short date like "Mon Jan 2".
func DayLabel(now, t time.Time) string {
	nowDay := startOfDay(now)
	tDay := startOfDay(t)

	switch {
	case tDay.Equal(nowDay):
		return "Today"
	case tDay.Equal(nowDay.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return t.Format("Mon Jan 2")
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
