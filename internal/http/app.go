// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"salesdial_backend/internal/events"
	"salesdial_backend/platform/config"
	"salesdial_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and JWT settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness/health checks (e.g., DB ping).
	Health HealthChecker
	// EventBus is the domain event bus for cross-module communication.
	EventBus events.Bus
	// RoleGate resolves the caller's profile after token validation,
	// rejecting inactive accounts and exposing the stored role.
	RoleGate gin.HandlerFunc
	// AdminGate restricts a group to admin-role profiles.
	AdminGate gin.HandlerFunc
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
