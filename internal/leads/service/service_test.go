package service

import (
	"testing"

	"github.com/google/uuid"

	"salesdial_backend/internal/leads/repository"
)

func strPtr(v string) *string { return &v }

func TestToOptedInRowsFormatsPhones(t *testing.T) {
	id := uuid.New()
	leads := []repository.Lead{
		{
			ID:          id,
			CompanyName: "Acme Restoration",
			ContactName: strPtr("Dana Smith"),
			Email:       strPtr("dana@acme.example"),
			Phone:       "+12125550123",
		},
		{
			ID:          uuid.New(),
			CompanyName: "No Contact LLC",
			Phone:       "garbled",
		},
	}

	rows := toOptedInRows(leads)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	if rows[0].LeadID != id.String() {
		t.Errorf("leadId = %q, want %q", rows[0].LeadID, id.String())
	}
	if want := "(212) 555-0123"; rows[0].Phone != want {
		t.Errorf("phone = %q, want %q", rows[0].Phone, want)
	}
	if rows[0].Email == nil || *rows[0].Email != "dana@acme.example" {
		t.Errorf("email = %v, want dana@acme.example", rows[0].Email)
	}

	// Unparseable numbers pass through unchanged.
	if rows[1].Phone != "garbled" {
		t.Errorf("phone = %q, want %q", rows[1].Phone, "garbled")
	}
	if rows[1].ContactName != nil {
		t.Errorf("contactName = %v, want nil", rows[1].ContactName)
	}

	if got := toOptedInRows(nil); len(got) != 0 {
		t.Errorf("rows for no leads = %d, want 0", len(got))
	}
}
