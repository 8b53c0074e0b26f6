// Package domain holds the profile roles and the pure role-based routing
// decision table built on them.
package domain

import "strings"

// Role values stored on a profile.
const (
	RoleAdmin = "admin"
	RoleRep   = "rep"
)

// Portal paths used in routing decisions.
const (
	LoginPath        = "/login"
	RepDashboardPath = "/rep/dashboard"
)

// publicPrefixes are paths reachable without a session.
var publicPrefixes = []string{"/", "/login", "/signup", "/forgot-password", "/reset-password", "/auth"}

// Decision is the outcome of a routing check: either allow, or redirect the
// caller elsewhere. RedirectTo carries the login redirect-back query when the
// original path should be preserved.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Route decides whether a caller may reach the given portal path.
// It is a pure decision table: no state besides its inputs.
//
// Admin areas require the admin role; rep areas accept reps and admins.
// Unauthenticated access to any non-public path redirects to login with the
// requested path preserved for post-login redirect.
func Route(authenticated bool, role, path string) Decision {
	if isPublic(path) {
		return Decision{Allow: true}
	}

	if !authenticated {
		return Decision{RedirectTo: LoginPath + "?redirect=" + path}
	}

	if strings.HasPrefix(path, "/admin") && role != RoleAdmin {
		return Decision{RedirectTo: RepDashboardPath}
	}

	if strings.HasPrefix(path, "/rep") && role != RoleRep && role != RoleAdmin {
		return Decision{RedirectTo: LoginPath}
	}

	return Decision{Allow: true}
}

func isPublic(path string) bool {
	for _, prefix := range publicPrefixes {
		if path == prefix || (prefix != "/" && strings.HasPrefix(path, prefix+"/")) {
			return true
		}
	}
	return false
}
