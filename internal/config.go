package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	LogLevel    string
	Port        uint16
	BaseURL     string
	RedisURL    string
	CORSOrigins []string
	Catalog     CatalogConfig
	Cookie      CookieConfig
	Checkout    CheckoutConfig
	Rate        RateLimitConfig
	Sentry      SentryConfig
}

// CatalogConfig controls the upstream product feed.
// When UpstreamURL is empty the server runs on the built-in seed catalog
// and the refresh worker is not started.
type CatalogConfig struct {
	UpstreamURL     string
	UpstreamToken   string
	RefreshInterval time.Duration
	FetchLimit      int
}

// CookieConfig controls the attributes of the cookies the server issues.
type CookieConfig struct {
	Domain string
	Secure bool
}

// CheckoutConfig controls order placement behavior.
type CheckoutConfig struct {
	// ProcessingDelay simulates payment capture latency before an order
	// is confirmed. Zero disables the delay.
	ProcessingDelay time.Duration
}

// RateLimitConfig controls the per-client request rate limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// SentryConfig holds configuration for Sentry error tracking
type SentryConfig struct {
	DSN              string
	Enabled          bool
	Environment      string
	Release          string
	SampleRate       float64
	TracesSampleRate float64
	Debug            bool
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		// Walk up directories to find .env (max 2 parent directories)
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnvInt("PORT", 3000),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		RedisURL:    getEnv("REDIS_URL", ""),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		Catalog: CatalogConfig{
			UpstreamURL:     getEnv("CATALOG_UPSTREAM_URL", ""),
			UpstreamToken:   getEnv("CATALOG_UPSTREAM_TOKEN", ""),
			RefreshInterval: getEnvDuration("CATALOG_REFRESH_INTERVAL", 5*time.Minute),
			FetchLimit:      int(getEnvInt("CATALOG_FETCH_LIMIT", 500)),
		},
		Cookie: CookieConfig{
			Domain: getEnv("COOKIE_DOMAIN", ""),
			Secure: getEnvBool("COOKIE_SECURE", false),
		},
		Checkout: CheckoutConfig{
			ProcessingDelay: getEnvDuration("ORDER_PROCESSING_DELAY", 1500*time.Millisecond),
		},
		Rate: RateLimitConfig{
			RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 10),
			Burst:             int(getEnvInt("RATE_LIMIT_BURST", 20)),
		},
		Sentry: SentryConfig{
			DSN:              getEnv("SENTRY_DSN", ""),
			Enabled:          getEnvBool("SENTRY_ENABLED", false), // Disabled by default for development
			Environment:      getEnv("SENTRY_ENVIRONMENT", "development"),
			Release:          getEnv("SENTRY_RELEASE", ""),
			SampleRate:       getEnvFloat("SENTRY_SAMPLE_RATE", 1.0),
			TracesSampleRate: getEnvFloat("SENTRY_TRACES_SAMPLE_RATE", 0.0), // Disabled by default
			Debug:            getEnvBool("SENTRY_DEBUG", false),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	// A secure cookie without a domain still works, but an upstream token
	// without an upstream URL is a misconfiguration worth failing on.
	if cfg.Catalog.UpstreamToken != "" && cfg.Catalog.UpstreamURL == "" {
		return nil, fmt.Errorf("CATALOG_UPSTREAM_TOKEN set without CATALOG_UPSTREAM_URL")
	}

	if cfg.Catalog.RefreshInterval < time.Minute {
		slog.Default().Warn("Catalog refresh interval too low. Using minimum: 1m",
			slog.Duration("value", cfg.Catalog.RefreshInterval))
		cfg.Catalog.RefreshInterval = time.Minute
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var floatValue float64
		if _, err := fmt.Sscanf(value, "%f", &floatValue); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
