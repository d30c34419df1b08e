package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("UPSTREAM_BASE_URL", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("API_KEYS", "")

	cfg := LoadConfig()

	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.UpstreamBaseURL)
	assert.Equal(t, "demo", cfg.APIKeys)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("UPSTREAM_BASE_URL", "http://commerce:8080")
	t.Setenv("ENVIRONMENT", "production")

	cfg := LoadConfig()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "http://commerce:8080", cfg.UpstreamBaseURL)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_TimeoutFormats(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "2m")
	assert.Equal(t, 2*time.Minute, LoadConfig().HTTPTimeout)

	t.Setenv("HTTP_TIMEOUT", "45")
	assert.Equal(t, 45*time.Second, LoadConfig().HTTPTimeout)

	t.Setenv("HTTP_TIMEOUT", "garbage")
	assert.Equal(t, 30*time.Second, LoadConfig().HTTPTimeout)
}
