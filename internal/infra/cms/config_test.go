package cms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STRAPI_URL", "NEXT_PUBLIC_STRAPI_URL", "STRAPI_API_KEY", "MEDIA_BASE_URL",
		"CMS_TIMEOUT", "CMS_MAX_BODY_SIZE", "CMS_HEALTH_PATH", "CMS_PROBE_SCHEDULE",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STRAPI_URL", "https://cms.example.com/")
	t.Setenv("STRAPI_API_KEY", " key ")
	t.Setenv("CMS_TIMEOUT", "0")
	t.Setenv("CMS_MAX_BODY_SIZE", "2048")
	t.Setenv("CMS_PROBE_SCHEDULE", "*/5 * * * *")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://cms.example.com", cfg.BaseURL)
	assert.Equal(t, "https://cms.example.com", cfg.MediaBaseURL)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, int64(2048), cfg.MaxBodySize)
	assert.Equal(t, "*/5 * * * *", cfg.ProbeSchedule)
}

func TestLoadConfigFromEnv_PublicURLFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEXT_PUBLIC_STRAPI_URL", "https://public.example.com")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://public.example.com", cfg.BaseURL)
	assert.Equal(t, "https://public.example.com", cfg.MediaBaseURL)
}

func TestLoadConfigFromEnv_SeparateMediaBase(t *testing.T) {
	clearEnv(t)
	t.Setenv("STRAPI_URL", "http://cms.internal:1337")
	t.Setenv("MEDIA_BASE_URL", "https://media.example.com/")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://cms.internal:1337", cfg.BaseURL)
	assert.Equal(t, "https://media.example.com", cfg.MediaBaseURL)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"relative base", func(c *Config) { c.BaseURL = "/cms" }, "base url"},
		{"ftp base", func(c *Config) { c.BaseURL = "ftp://cms" }, "scheme must be http or https"},
		{"bad media base", func(c *Config) { c.MediaBaseURL = "media" }, "media base url"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
		{"huge timeout", func(c *Config) { c.Timeout = time.Hour }, "timeout"},
		{"tiny body", func(c *Config) { c.MaxBodySize = 10 }, "max body size"},
		{"health path", func(c *Config) { c.HealthPath = "_health" }, "health path"},
		{"schedule", func(c *Config) { c.ProbeSchedule = "sometimes" }, "invalid cron schedule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
