package repository

import (
	"strings"
	"testing"
	"time"

	dialerdomain "salesdial_backend/internal/dialer/domain"
)

// matchesConnectPredicate mirrors the SQL predicate in Go: prefix match for
// the LIKE terms, equality otherwise.
func matchesConnectPredicate(outcome string) bool {
	return strings.HasPrefix(outcome, "Connected") ||
		strings.HasPrefix(outcome, "Callback Scheduled") ||
		outcome == "DEMO_BOOKED"
}

func TestConnectPredicateMatchesOutcomeClassification(t *testing.T) {
	want := `(outcome LIKE 'Connected%' OR outcome LIKE 'Callback Scheduled%' OR outcome = 'DEMO_BOOKED')`
	if connectPredicate != want {
		t.Errorf("connectPredicate = %q, want %q", connectPredicate, want)
	}

	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	outcomes := []dialerdomain.Outcome{
		dialerdomain.NoAnswer{},
		dialerdomain.VoicemailLeft{},
		dialerdomain.ConnectedSendInfo{},
		dialerdomain.NotInterested{},
		dialerdomain.WrongNumberBadData{},
		dialerdomain.CallbackScheduled{At: now},
		dialerdomain.DemoBooked{At: now},
	}
	for _, o := range outcomes {
		logged := o.Log()
		if got, want := matchesConnectPredicate(logged), dialerdomain.IsConnect(o); got != want {
			t.Errorf("outcome %q: predicate match = %v, IsConnect = %v", logged, got, want)
		}
	}
}
