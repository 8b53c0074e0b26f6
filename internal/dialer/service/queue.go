package service

import (
	"sort"

	"salesdial_backend/internal/leads/repository"
)

// OrderForDialing sorts leads the way reps work the queue: hottest
// priority first, then oldest first within a priority. The sort is
// stable so equal leads keep their fetch order.
func OrderForDialing(leads []repository.Lead) []repository.Lead {
	out := make([]repository.Lead, len(leads))
	copy(out, leads)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority.Rank() != out[j].Priority.Rank() {
			return out[i].Priority.Rank() > out[j].Priority.Rank()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Queue is a position over an ordered set of leads. The cursor saturates:
// moving past either end stays put instead of wrapping or overflowing.
type Queue struct {
	leads []repository.Lead
	pos   int
}

// NewQueue builds a queue positioned at the first lead.
func NewQueue(leads []repository.Lead) *Queue {
	return &Queue{leads: leads}
}

// Len returns the number of leads in the queue.
func (q *Queue) Len() int { return len(q.leads) }

// Pos returns the current zero-based position.
func (q *Queue) Pos() int { return q.pos }

// Current returns the lead at the cursor. ok is false when the queue
// is empty.
func (q *Queue) Current() (repository.Lead, bool) {
	if len(q.leads) == 0 {
		return repository.Lead{}, false
	}
	return q.leads[q.pos], true
}

// Next advances the cursor. At the last lead it stays put and reports
// false.
func (q *Queue) Next() bool {
	if q.pos >= len(q.leads)-1 {
		return false
	}
	q.pos++
	return true
}

// Prev moves the cursor back. At the first lead it stays put and
// reports false.
func (q *Queue) Prev() bool {
	if q.pos <= 0 {
		return false
	}
	q.pos--
	return true
}
