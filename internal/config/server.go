package config

import (
	"fmt"
	"net/url"
	"time"

	validate "propellus-site/internal/pkg/config"
	envconfig "propellus-site/pkg/config"
)

// ServerConfig holds the listener and page rendering settings of cmd/api.
type ServerConfig struct {
	Addr string
	// SiteOrigin, when set, makes pages read sections over HTTP from a
	// separate proxy deployment instead of in-process.
	SiteOrigin     string
	RequestTimeout time.Duration
}

// DefaultServerConfig returns the production defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:           ":8080",
		RequestTimeout: 30 * time.Second,
	}
}

// LoadServerConfig reads ADDR, SITE_ORIGIN and REQUEST_TIMEOUT.
func LoadServerConfig() (ServerConfig, error) {
	d := DefaultServerConfig()
	cfg := ServerConfig{
		Addr:           envconfig.GetEnvString("ADDR", d.Addr),
		SiteOrigin:     envconfig.GetEnvString("SITE_ORIGIN", d.SiteOrigin),
		RequestTimeout: envconfig.GetEnvDuration("REQUEST_TIMEOUT", d.RequestTimeout),
	}
	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// Validate checks the request timeout range and the origin URL.
func (c ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR: must not be empty")
	}
	if err := validate.ValidateDuration(c.RequestTimeout, time.Second, 5*time.Minute); err != nil {
		return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
	}
	if c.SiteOrigin != "" {
		u, err := url.Parse(c.SiteOrigin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("SITE_ORIGIN: must be an absolute http(s) URL, got %q", c.SiteOrigin)
		}
	}
	return nil
}
