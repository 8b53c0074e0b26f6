package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ten digit", "5551234567", "5551234567"},
		{"formatted national", "(212) 555-0123", "+12125550123"},
		{"with country code", "+1 212 555 0123", "+12125550123"},
		{"eleven digit leading one", "12125550123", "+12125550123"},
		{"garbage passes through", "not-a-number", "not-a-number"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeE164(tt.input); got != tt.want {
				t.Errorf("NormalizeE164(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatNational(t *testing.T) {
	got := FormatNational("+12125550123")
	want := "(212) 555-0123"
	if got != want {
		t.Errorf("FormatNational(+12125550123) = %q, want %q", got, want)
	}

	if got := FormatNational("junk"); got != "junk" {
		t.Errorf("FormatNational(junk) = %q, want passthrough", got)
	}
}
