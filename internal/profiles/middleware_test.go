package profiles

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"salesdial_backend/internal/profiles/domain"
	"salesdial_backend/platform/httpkit"
)

type staticResolver struct {
	role   string
	active bool
}

func (r staticResolver) Resolve(ctx context.Context, userID uuid.UUID) (string, bool, error) {
	return r.role, r.active, nil
}

type staticJWTConfig struct{ secret string }

func (c staticJWTConfig) GetJWTAccessSecret() string { return c.secret }

const gateTestSecret = "gate-test-secret"

// newGatedEngine wires token parsing and the profile gate the way the
// router assembles the protected group.
func newGatedEngine(resolver RoleResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	protected := engine.Group("/api/v1")
	protected.Use(httpkit.AuthOptional(staticJWTConfig{secret: gateTestSecret}))
	protected.Use(Gate(resolver))
	protected.GET("/rep/dialer", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return engine
}

func accessToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(gateTestSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestGateUnauthenticatedGetsLoginRedirect(t *testing.T) {
	engine := newGatedEngine(staticResolver{role: domain.RoleRep, active: true})

	tests := []struct {
		name   string
		header string
	}{
		{name: "no token", header: ""},
		{name: "garbage token", header: "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/rep/dialer", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}

			var body struct {
				Error    string `json:"error"`
				Redirect string `json:"redirect"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if want := "/login?redirect=/rep/dialer"; body.Redirect != want {
				t.Errorf("redirect = %q, want %q", body.Redirect, want)
			}
		})
	}
}

func TestGateAllowsActiveRep(t *testing.T) {
	engine := newGatedEngine(staticResolver{role: domain.RoleRep, active: true})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rep/dialer", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, uuid.New()))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestGateRejectsInactiveProfile(t *testing.T) {
	engine := newGatedEngine(staticResolver{role: domain.RoleRep, active: false})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rep/dialer", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, uuid.New()))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}
