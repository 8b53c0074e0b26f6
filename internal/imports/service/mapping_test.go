package service

import "testing"

func TestAutoMap(t *testing.T) {
	headers := []string{"Business Name", "Owner", "Phone Number", "E-Mail", "Job Title", "Website URL", "City", "State/Region", "Revenue"}

	got := AutoMap(headers)

	want := map[string]int{
		FieldCompanyName:  0,
		FieldContactName:  1,
		FieldPhone:        2,
		FieldEmail:        3,
		FieldContactTitle: 4,
		FieldWebsite:      5,
		FieldCity:         6,
		FieldState:        7,
	}
	if len(got) != len(want) {
		t.Fatalf("mapped %d fields, want %d: %v", len(got), len(want), got)
	}
	for field, idx := range want {
		if got[field] != idx {
			t.Errorf("%s mapped to column %d, want %d", field, got[field], idx)
		}
	}
}

func TestAutoMapFirstMatchWins(t *testing.T) {
	headers := []string{"Company", "Company Legal Name"}

	got := AutoMap(headers)
	if got[FieldCompanyName] != 0 {
		t.Errorf("company_name mapped to column %d, want 0", got[FieldCompanyName])
	}
}

func TestAutoMapTitleBeforeContact(t *testing.T) {
	// "Contact Title" must land on contact_title, not contact_name.
	got := AutoMap([]string{"Contact Title", "Contact"})
	if got[FieldContactTitle] != 0 {
		t.Errorf("contact_title mapped to column %d, want 0", got[FieldContactTitle])
	}
	if got[FieldContactName] != 1 {
		t.Errorf("contact_name mapped to column %d, want 1", got[FieldContactName])
	}
}

func TestAutoMapUnknownHeaders(t *testing.T) {
	got := AutoMap([]string{"Revenue", "Employees", ""})
	if len(got) != 0 {
		t.Errorf("expected no mappings, got %v", got)
	}
}
