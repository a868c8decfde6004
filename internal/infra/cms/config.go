package cms

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"propellus-site/internal/pkg/config"
	envconfig "propellus-site/pkg/config"
)

// DefaultBaseURL is used when neither STRAPI_URL nor NEXT_PUBLIC_STRAPI_URL is set.
const DefaultBaseURL = "http://127.0.0.1:1337"

// Config holds the settings of the content repository client.
// It is built once at start-up and passed to NewClient.
type Config struct {
	// BaseURL is the content repository origin, without a trailing slash.
	BaseURL string

	// APIKey is sent as a bearer credential when non-empty.
	// Absence is tolerated; requests then proceed unauthenticated.
	APIKey string

	// MediaBaseURL resolves root-relative media paths. Defaults to BaseURL.
	MediaBaseURL string

	// Timeout bounds one outbound read. Zero disables the bound.
	// Default: 10s
	Timeout time.Duration

	// MaxBodySize caps the bytes read from one response.
	// Default: 10485760 (10MB)
	MaxBodySize int64

	// HealthPath is requested by the reachability probe.
	// Default: /_health
	HealthPath string

	// ProbeSchedule is the cron schedule of the reachability probe.
	// Default: @every 30s
	ProbeSchedule string
}

// DefaultConfig returns the client defaults for a local content repository.
func DefaultConfig() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		MediaBaseURL:  DefaultBaseURL,
		Timeout:       10 * time.Second,
		MaxBodySize:   10 * 1024 * 1024,
		HealthPath:    "/_health",
		ProbeSchedule: "@every 30s",
	}
}

// Validate checks the configuration for values the client cannot work with.
//
// Validation rules:
//   - BaseURL and MediaBaseURL: absolute http(s) URLs
//   - Timeout: 0 (disabled) to 5m
//   - MaxBodySize: 1KB-100MB
//   - ProbeSchedule: a cron expression or descriptor
func (c *Config) Validate() error {
	if err := validateOrigin("base url", c.BaseURL); err != nil {
		return err
	}
	if err := validateOrigin("media base url", c.MediaBaseURL); err != nil {
		return err
	}
	if err := config.ValidateDuration(c.Timeout, 0, 5*time.Minute); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	if err := config.ValidateInt64Range(c.MaxBodySize, 1024, 100*1024*1024); err != nil {
		return fmt.Errorf("max body size: %w", err)
	}
	if !strings.HasPrefix(c.HealthPath, "/") {
		return fmt.Errorf("health path must start with '/', got %q", c.HealthPath)
	}
	return config.ValidateCronSchedule(c.ProbeSchedule)
}

func validateOrigin(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", field, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s %q: scheme must be http or https", field, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid %s %q: missing host", field, raw)
	}
	return nil
}

// LoadConfigFromEnv loads the client configuration from the environment and
// validates it.
//
// Environment variables:
//   - STRAPI_URL, falling back to NEXT_PUBLIC_STRAPI_URL (default: http://127.0.0.1:1337)
//   - STRAPI_API_KEY (optional)
//   - MEDIA_BASE_URL, falling back to NEXT_PUBLIC_STRAPI_URL, then the base URL
//   - CMS_TIMEOUT: duration string, "0" disables (default: 10s)
//   - CMS_MAX_BODY_SIZE: bytes (default: 10485760)
//   - CMS_HEALTH_PATH (default: /_health)
//   - CMS_PROBE_SCHEDULE (default: @every 30s)
func LoadConfigFromEnv() (Config, error) {
	def := DefaultConfig()

	cfg := Config{
		BaseURL:       strings.TrimRight(envconfig.GetEnvFirst([]string{"STRAPI_URL", "NEXT_PUBLIC_STRAPI_URL"}, def.BaseURL), "/"),
		APIKey:        strings.TrimSpace(envconfig.GetEnvString("STRAPI_API_KEY", "")),
		Timeout:       envconfig.GetEnvDuration("CMS_TIMEOUT", def.Timeout),
		MaxBodySize:   envconfig.GetEnvInt64("CMS_MAX_BODY_SIZE", def.MaxBodySize),
		HealthPath:    envconfig.GetEnvString("CMS_HEALTH_PATH", def.HealthPath),
		ProbeSchedule: envconfig.GetEnvString("CMS_PROBE_SCHEDULE", def.ProbeSchedule),
	}
	cfg.MediaBaseURL = strings.TrimRight(envconfig.GetEnvFirst([]string{"MEDIA_BASE_URL", "NEXT_PUBLIC_STRAPI_URL"}, cfg.BaseURL), "/")

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid content repository configuration: %w", err)
	}
	return cfg, nil
}
