package domain

import "testing"

func TestPriorityRank(t *testing.T) {
	if PriorityHot.Rank() <= PriorityWarm.Rank() {
		t.Error("HOT must rank above WARM")
	}
	if PriorityWarm.Rank() <= PriorityCold.Rank() {
		t.Error("WARM must rank above COLD")
	}
	if Priority("").Rank() >= PriorityCold.Rank() {
		t.Error("unknown priority must rank below COLD")
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.IsValid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	if Status("OPEN").IsValid() {
		t.Error("unknown status should be invalid")
	}
}

func TestDialableStatuses(t *testing.T) {
	want := map[Status]bool{StatusNew: true, StatusAssigned: true, StatusContacted: true, StatusCallback: true}
	if len(DialableStatuses) != len(want) {
		t.Fatalf("expected %d dialable statuses, got %d", len(want), len(DialableStatuses))
	}
	for _, s := range DialableStatuses {
		if !want[s] {
			t.Errorf("unexpected dialable status %q", s)
		}
	}
}
