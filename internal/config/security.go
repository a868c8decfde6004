package config

import (
	"fmt"

	validate "propellus-site/internal/pkg/config"
	envconfig "propellus-site/pkg/config"
)

// SecurityConfig holds the request-facing protections of the server.
type SecurityConfig struct {
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
	TrustProxy       bool
	CSPEnabled       bool
	CSPReportOnly    bool
}

// DefaultSecurityConfig returns the production defaults.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		RateLimitEnabled: true,
		RateLimitRPS:     20,
		RateLimitBurst:   40,
		CSPEnabled:       true,
	}
}

// LoadSecurityConfig reads RATELIMIT_*, TRUST_PROXY and CSP_* variables.
func LoadSecurityConfig() (SecurityConfig, error) {
	d := DefaultSecurityConfig()
	cfg := SecurityConfig{
		RateLimitEnabled: envconfig.GetEnvBool("RATELIMIT_ENABLED", d.RateLimitEnabled),
		RateLimitRPS:     envconfig.GetEnvFloat("RATELIMIT_RPS", d.RateLimitRPS),
		RateLimitBurst:   envconfig.GetEnvInt("RATELIMIT_BURST", d.RateLimitBurst),
		TrustProxy:       envconfig.GetEnvBool("TRUST_PROXY", d.TrustProxy),
		CSPEnabled:       envconfig.GetEnvBool("CSP_ENABLED", d.CSPEnabled),
		CSPReportOnly:    envconfig.GetEnvBool("CSP_REPORT_ONLY", d.CSPReportOnly),
	}
	if err := cfg.Validate(); err != nil {
		return SecurityConfig{}, err
	}
	return cfg, nil
}

// Validate checks the rate limit settings when rate limiting is on.
func (c SecurityConfig) Validate() error {
	if !c.RateLimitEnabled {
		return nil
	}
	if err := validate.ValidatePositiveFloat(c.RateLimitRPS); err != nil {
		return fmt.Errorf("RATELIMIT_RPS: %w", err)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("RATELIMIT_BURST: must be at least 1, got %d", c.RateLimitBurst)
	}
	return nil
}
