// Package profiles manages rep/admin identities mirrored from the auth
// provider and the request gates built on them.
package profiles

import (
	"context"
	"net/http"
	"strings"

	"salesdial_backend/internal/profiles/domain"
	"salesdial_backend/platform/apperr"
	"salesdial_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextRoleKey is the gin context key for the caller's stored profile role.
// Unlike the token roles claim, this reflects the database at request time,
// so role changes and deactivation take effect without reissuing tokens.
const ContextRoleKey = "profileRole"

// RoleResolver looks up the stored role and active flag for a user.
type RoleResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (role string, active bool, err error)
}

// Gate returns middleware that resolves the caller's profile after token
// validation and applies the routing decision table to the request path.
func Gate(resolver RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		portalPath := portalPath(c.Request.URL.Path)

		identity := httpkit.GetIdentity(c)
		if !identity.IsAuthenticated() {
			decision := domain.Route(false, "", portalPath)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "unauthorized",
				"redirect": decision.RedirectTo,
			})
			return
		}

		role, active, err := resolver.Resolve(c.Request.Context(), identity.UserID())
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown profile"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "profile lookup failed"})
			return
		}

		if !active {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account is inactive"})
			return
		}

		if decision := domain.Route(true, role, portalPath); !decision.Allow {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"redirect": decision.RedirectTo,
			})
			return
		}

		c.Set(ContextRoleKey, role)
		c.Next()
	}
}

// RequireAdmin returns middleware restricting a group to admin profiles.
// It reads the role stored by Gate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRoleKey)
		if role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"redirect": domain.RepDashboardPath,
			})
			return
		}
		c.Next()
	}
}

// portalPath maps an API path onto the portal path space the decision table
// speaks, e.g. /api/v1/admin/leads -> /admin/leads.
func portalPath(apiPath string) string {
	trimmed := strings.TrimPrefix(apiPath, "/api/v1")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}
