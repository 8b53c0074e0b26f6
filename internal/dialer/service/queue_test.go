package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	leaddomain "salesdial_backend/internal/leads/domain"
	"salesdial_backend/internal/leads/repository"
)

func makeLead(priority leaddomain.Priority, createdAt time.Time) repository.Lead {
	return repository.Lead{
		ID:        uuid.New(),
		Priority:  priority,
		CreatedAt: createdAt,
	}
}

func TestOrderForDialing(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	oldCold := makeLead(leaddomain.PriorityCold, base)
	newHot := makeLead(leaddomain.PriorityHot, base.Add(72*time.Hour))
	oldHot := makeLead(leaddomain.PriorityHot, base.Add(time.Hour))
	warm := makeLead(leaddomain.PriorityWarm, base.Add(2*time.Hour))

	got := OrderForDialing([]repository.Lead{oldCold, newHot, oldHot, warm})

	want := []uuid.UUID{oldHot.ID, newHot.ID, warm.ID, oldCold.ID}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: wrong lead order", i)
		}
	}
}

func TestOrderForDialingLeavesInputUntouched(t *testing.T) {
	base := time.Now()
	in := []repository.Lead{
		makeLead(leaddomain.PriorityCold, base),
		makeLead(leaddomain.PriorityHot, base),
	}
	first := in[0].ID

	OrderForDialing(in)
	if in[0].ID != first {
		t.Error("input slice was reordered")
	}
}

func TestQueueSaturatingCursor(t *testing.T) {
	base := time.Now()
	q := NewQueue([]repository.Lead{
		makeLead(leaddomain.PriorityHot, base),
		makeLead(leaddomain.PriorityHot, base),
		makeLead(leaddomain.PriorityHot, base),
	})

	if q.Prev() {
		t.Error("Prev at the start should not move")
	}
	if q.Pos() != 0 {
		t.Fatalf("pos = %d, want 0", q.Pos())
	}

	if !q.Next() || !q.Next() {
		t.Fatal("Next should advance through the queue")
	}
	if q.Next() {
		t.Error("Next at the end should not move")
	}
	if q.Pos() != 2 {
		t.Fatalf("pos = %d, want 2", q.Pos())
	}

	if !q.Prev() {
		t.Error("Prev mid-queue should move")
	}
	if q.Pos() != 1 {
		t.Fatalf("pos = %d, want 1", q.Pos())
	}
}

func TestQueueEmpty(t *testing.T) {
	q := NewQueue(nil)
	if _, ok := q.Current(); ok {
		t.Error("Current on empty queue should report ok=false")
	}
	if q.Next() || q.Prev() {
		t.Error("cursor should not move on an empty queue")
	}
}
