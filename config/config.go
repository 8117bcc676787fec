package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development; credential values have no
// defaults and must be supplied for production use.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Storage backend: "memory" (ephemeral) or "sheets" (Google Sheets)
	StorageBackend string

	// Google Sheets
	SheetID               string
	SheetsCredentialsJSON string // optional; if empty, SheetsAPIKey is used
	SheetsAPIKey          string
	SheetsWorksheet       string
	SheetsTimeout         time.Duration

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Session
	SessionBackend string // "redis" or "memory"
	SessionSecret  string
	SessionTTL     time.Duration

	// Admin operator credentials. When AdminPasswordHash (bcrypt) is set it
	// takes precedence over the plain AdminPassword.
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	// Cookies
	CookieDomain string
	CookieSecure bool

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Debug metrics (/api/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "seminar-registration-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		StorageBackend: getenv("STORAGE_BACKEND", "memory"),

		SheetID:               getenv("GOOGLE_SHEET_ID", ""),
		SheetsCredentialsJSON: getenv("GOOGLE_SHEETS_CREDENTIALS_JSON", ""),
		SheetsAPIKey:          getenv("GOOGLE_SHEETS_API_KEY", ""),
		SheetsWorksheet:       getenv("SHEETS_WORKSHEET", "Sheet1"),
		SheetsTimeout:         getdur("SHEETS_TIMEOUT", 10*time.Second),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		SessionBackend: getenv("SESSION_BACKEND", "redis"),
		SessionSecret:  getenv("SESSION_SECRET", ""),
		SessionTTL:     getdur("SESSION_TTL", 24*time.Hour),

		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getenv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),

		CookieDomain: getenv("COOKIE_DOMAIN", "localhost"),
		CookieSecure: getbool("COOKIE_SECURE", false),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
