// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// SchedulerConfig provides settings for the asynq client and worker.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOMaxFileSize() int64
	GetMinioBucketImports() string
	IsMinIOEnabled() bool
}

// DialerConfig provides settings used by the dialer module.
type DialerConfig interface {
	GetMeetingLinkBase() string
}

// ImportConfig provides settings for the CSV import pipeline.
type ImportConfig interface {
	GetImportConcurrency() int
	GetImportRowLimit() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	DatabaseURL        string
	JWTAccessSecret    string
	CORSAllowAll       bool
	CORSOrigins        []string
	CORSAllowCreds     bool
	RedisURL           string
	RedisTLSInsecure   bool
	AsynqQueueName     string
	AsynqConcurrency   int
	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	MinIOMaxFileSize   int64
	MinioBucketImports string
	MeetingLinkBase    string
	ImportConcurrency  int
	ImportRowLimit     int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// MinIOConfig implementation
func (c *Config) GetMinIOEndpoint() string      { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string     { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string     { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool          { return c.MinIOUseSSL }
func (c *Config) GetMinIOMaxFileSize() int64    { return c.MinIOMaxFileSize }
func (c *Config) GetMinioBucketImports() string { return c.MinioBucketImports }
func (c *Config) IsMinIOEnabled() bool          { return c.MinIOEndpoint != "" }

// DialerConfig implementation
func (c *Config) GetMeetingLinkBase() string { return c.MeetingLinkBase }

// ImportConfig implementation
func (c *Config) GetImportConcurrency() int { return c.ImportConcurrency }
func (c *Config) GetImportRowLimit() int    { return c.ImportRowLimit }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTAccessSecret:    getEnv("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisTLSInsecure:   strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:     getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:   mustInt(getEnv("ASYNQ_CONCURRENCY", "10")),
		MinIOEndpoint:      getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:     getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:        strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinIOMaxFileSize:   mustInt64(getEnv("MINIO_MAX_FILE_SIZE", "10485760")),
		MinioBucketImports: getEnv("MINIO_BUCKET_IMPORTS", "lead-imports"),
		MeetingLinkBase:    getEnv("MEETING_LINK_BASE", "https://meet.brightautomations.org"),
		ImportConcurrency:  mustInt(getEnv("IMPORT_CONCURRENCY", "4")),
		ImportRowLimit:     mustInt(getEnv("IMPORT_ROW_LIMIT", "50000")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
