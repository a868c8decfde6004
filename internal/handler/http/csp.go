package http

import (
	"log/slog"
	"net/http"
	"strings"

	"propellus-site/pkg/security/csp"
)

// CSPConfig selects the Content-Security-Policy per path prefix.
type CSPConfig struct {
	Enabled       bool
	ReportOnly    bool
	DefaultPolicy *csp.CSPBuilder
	// PathPolicies maps path prefixes to policies; the longest match wins.
	PathPolicies map[string]*csp.CSPBuilder
}

type cspRule struct {
	prefix string
	header string
	value  string
}

// CSP returns middleware that sets the Content-Security-Policy header.
// Policies are rendered once when the middleware is built.
func CSP(cfg CSPConfig) func(http.Handler) http.Handler {
	render := func(prefix string, p *csp.CSPBuilder) *cspRule {
		if p == nil {
			return nil
		}
		p = p.Clone()
		if cfg.ReportOnly {
			p.ReportOnly(true)
		}
		value := p.Build()
		if value == "" {
			return nil
		}
		return &cspRule{prefix: prefix, header: p.HeaderName(), value: value}
	}

	def := render("", cfg.DefaultPolicy)
	var rules []*cspRule
	for prefix, p := range cfg.PathPolicies {
		if r := render(prefix, p); r != nil {
			rules = append(rules, r)
		}
	}

	return func(next http.Handler) http.Handler {
		if !cfg.Enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rule := selectPolicy(rules, def, r.URL.Path); rule != nil {
				w.Header().Set(rule.header, rule.value)
				slog.Debug("CSP header applied",
					slog.String("path", r.URL.Path),
					slog.String("header", rule.header),
				)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func selectPolicy(rules []*cspRule, def *cspRule, path string) *cspRule {
	var matched *cspRule
	for _, rule := range rules {
		if strings.HasPrefix(path, rule.prefix) && (matched == nil || len(rule.prefix) > len(matched.prefix)) {
			matched = rule
		}
	}
	if matched != nil {
		return matched
	}
	return def
}
