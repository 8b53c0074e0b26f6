package domain

import "testing"

func TestRoute(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		role          string
		path          string
		wantAllow     bool
		wantRedirect  string
	}{
		{"public root", false, "", "/", true, ""},
		{"public login", false, "", "/login", true, ""},
		{"public nested auth", false, "", "/auth/callback", true, ""},
		{"unauthenticated rep area", false, "", "/rep/dialer", false, "/login?redirect=/rep/dialer"},
		{"unauthenticated admin area", false, "", "/admin/leads", false, "/login?redirect=/admin/leads"},
		{"rep hits admin area", true, RoleRep, "/admin/reports", false, RepDashboardPath},
		{"admin hits admin area", true, RoleAdmin, "/admin/reports", true, ""},
		{"rep hits rep area", true, RoleRep, "/rep/dialer", true, ""},
		{"admin hits rep area", true, RoleAdmin, "/rep/dialer", true, ""},
		{"unknown role hits rep area", true, "viewer", "/rep/dialer", false, LoginPath},
		{"authenticated other path", true, RoleRep, "/settings", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Route(tt.authenticated, tt.role, tt.path)
			if got.Allow != tt.wantAllow {
				t.Errorf("Route(%v, %q, %q).Allow = %v, want %v",
					tt.authenticated, tt.role, tt.path, got.Allow, tt.wantAllow)
			}
			if got.RedirectTo != tt.wantRedirect {
				t.Errorf("Route(%v, %q, %q).RedirectTo = %q, want %q",
					tt.authenticated, tt.role, tt.path, got.RedirectTo, tt.wantRedirect)
			}
		})
	}
}
