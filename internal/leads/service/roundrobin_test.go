package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestDistributeRoundRobin(t *testing.T) {
	leads := make([]uuid.UUID, 7)
	for i := range leads {
		leads[i] = uuid.New()
	}
	reps := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	got := DistributeRoundRobin(leads, reps)
	if len(got) != len(leads) {
		t.Fatalf("expected %d assignments, got %d", len(leads), len(got))
	}

	for i, a := range got {
		if a.LeadID != leads[i] {
			t.Errorf("assignment %d: lead order not preserved", i)
		}
		if a.RepID != reps[i%len(reps)] {
			t.Errorf("assignment %d: expected rep %d, got %s", i, i%len(reps), a.RepID)
		}
	}

	// 7 leads over 3 reps: 3, 2, 2.
	counts := map[uuid.UUID]int{}
	for _, a := range got {
		counts[a.RepID]++
	}
	if counts[reps[0]] != 3 || counts[reps[1]] != 2 || counts[reps[2]] != 2 {
		t.Errorf("uneven split: %v", counts)
	}
}

func TestDistributeRoundRobinNoReps(t *testing.T) {
	if got := DistributeRoundRobin([]uuid.UUID{uuid.New()}, nil); got != nil {
		t.Errorf("expected nil for empty rep set, got %v", got)
	}
}

func TestDistributeRoundRobinSingleRep(t *testing.T) {
	rep := uuid.New()
	leads := []uuid.UUID{uuid.New(), uuid.New()}
	for _, a := range DistributeRoundRobin(leads, []uuid.UUID{rep}) {
		if a.RepID != rep {
			t.Errorf("expected all leads on the only rep")
		}
	}
}
