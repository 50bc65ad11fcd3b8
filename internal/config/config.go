package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Loan backend
	Backend BackendConfig

	// Background reload; zero disables it
	RefreshInterval time.Duration

	// Rate limiting per client IP
	RateLimit RateLimitConfig
}

// BackendConfig locates the loan backend service
type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

// RateLimitConfig holds the per-client token bucket settings
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	var errs []error
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Env:         getEnv("ENV", "development"),
		Backend: BackendConfig{
			URL:     strings.TrimSuffix(getEnv("BACKEND_URL", "http://localhost:5000"), "/"),
			Timeout: getDuration("BACKEND_TIMEOUT", 10*time.Second, &errs),
		},
		RefreshInterval: getDuration("REFRESH_INTERVAL", 0, &errs),
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 120, &errs),
			Burst:             getInt("RATE_LIMIT_BURST", 20, &errs),
		},
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.Backend.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("BACKEND_URL must be an http(s) URL, got %q", c.Backend.URL)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("REFRESH_INTERVAL must not be negative")
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be a number, got %q", c.Port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
