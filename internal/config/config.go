package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port            string
	UpstreamBaseURL string
	APIKeys         string
	HTTPTimeout     time.Duration
	LogLevel        string
	Environment     string
}

// LoadConfig loads configuration from .env file and environment variables
func LoadConfig() *Config {
	// Load .env file if it exists
	// This will not override existing environment variables
	err := godotenv.Load()
	if err != nil {
		slog.Warn("Could not load .env file, continuing with system environment variables only", "error", err)
	} else {
		slog.Info("Successfully loaded .env file")
	}

	config := &Config{
		Port:            getEnvWithDefault("PORT", "8090"),
		UpstreamBaseURL: getEnvWithDefault("UPSTREAM_BASE_URL", "http://localhost:8080"),
		APIKeys:         getEnvWithDefault("API_KEYS", "demo"),
		HTTPTimeout:     getDurationWithDefault("HTTP_TIMEOUT", 30*time.Second),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
	}

	SetupLogging(config.LogLevel)

	slog.Info("Configuration loaded",
		"port", config.Port,
		"upstreamBaseURL", config.UpstreamBaseURL,
		"httpTimeout", config.HTTPTimeout.String(),
		"environment", config.Environment,
		"logLevel", config.LogLevel)

	return config
}

// getEnvWithDefault gets an environment variable with a default fallback
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationWithDefault parses a duration env var, accepting either a Go
// duration string or a plain number of seconds
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	slog.Warn("Invalid duration value, using default", "key", key, "value", value, "default", defaultValue.String())
	return defaultValue
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
