package service

import (
	"testing"

	"salesdial_backend/internal/settings/repository"
)

func TestFindRule(t *testing.T) {
	rules := []repository.CommissionRule{
		{Type: RuleDemoBooked, Amount: 25, Enabled: true},
		{Type: RuleDemoCompleted, Amount: 50, Enabled: false},
		{Type: RuleClose, Amount: 500, Enabled: true},
	}

	rule, ok := FindRule(rules, RuleDemoBooked)
	if !ok || rule.Amount != 25 {
		t.Errorf("expected enabled DEMO_BOOKED rule with amount 25, got %+v ok=%v", rule, ok)
	}

	if _, ok := FindRule(rules, RuleDemoCompleted); ok {
		t.Error("disabled rules must not match")
	}

	if _, ok := FindRule(rules, RuleBonus); ok {
		t.Error("missing rule types must not match")
	}
}
