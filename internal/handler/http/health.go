// Package http provides the HTTP middleware chain and operational endpoints
// of the site server: health checks, metrics, rate limiting and compression.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy", "degraded" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// CSPHealthInfo contains health information for CSP middleware.
type CSPHealthInfo struct {
	Enabled    bool `json:"enabled"`
	ReportOnly bool `json:"report_only"`
}

// Reachability reports the content repository probe result.
type Reachability interface {
	Healthy() bool
	Checked() bool
}

// BreakerStater reports the content repository circuit breaker state.
type BreakerStater interface {
	BreakerState() gobreaker.State
	CircuitOpen() bool
}

// HealthHandler reports the health of the content repository link, the
// circuit breaker and the request limiter.
type HealthHandler struct {
	Probe   Reachability
	Breaker BreakerStater
	Version string

	RateLimiter *RateLimiter // optional

	CSPEnabled    bool
	CSPReportOnly bool
}

// ServeHTTP returns 200 unless the content repository is known to be down,
// in which case it returns 503.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)
	allHealthy := true

	repo := h.checkRepository()
	checks["content_repository"] = repo
	if repo.Status == "unhealthy" {
		allHealthy = false
	}

	if h.Breaker != nil {
		checks["circuit_breaker"] = h.checkBreaker()
	}

	if h.RateLimiter != nil {
		checks["rate_limiter"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]interface{}{"active_keys": h.RateLimiter.ActiveKeys()},
		}
	}

	if h.CSPEnabled {
		checks["csp"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]interface{}{"config": CSPHealthInfo{Enabled: h.CSPEnabled, ReportOnly: h.CSPReportOnly}},
		}
	}

	status := "healthy"
	statusCode := http.StatusOK
	for _, c := range checks {
		if c.Status == "degraded" {
			status = "degraded"
		}
	}
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("health: failed to encode response", slog.Any("error", err))
	}
}

func (h *HealthHandler) checkRepository() CheckStatus {
	switch {
	case h.Probe == nil:
		return CheckStatus{Status: "degraded", Message: "probe not configured"}
	case !h.Probe.Checked():
		return CheckStatus{Status: "degraded", Message: "not checked yet"}
	case !h.Probe.Healthy():
		return CheckStatus{Status: "unhealthy", Message: "content repository unreachable"}
	default:
		return CheckStatus{Status: "healthy"}
	}
}

// checkBreaker reports an open circuit as degraded: sections fail fast but
// the server keeps serving.
func (h *HealthHandler) checkBreaker() CheckStatus {
	state := h.Breaker.BreakerState()
	c := CheckStatus{
		Status:  "healthy",
		Details: map[string]interface{}{"state": state.String()},
	}
	switch {
	case h.Breaker.CircuitOpen():
		c.Status = "degraded"
		c.Message = "circuit open, section reads fail fast"
	case state == gobreaker.StateHalfOpen:
		c.Status = "degraded"
		c.Message = "circuit half-open, trial reads only"
	}
	return c
}

// ReadyHandler answers readiness probes. The server is ready once the
// content repository has been reached at least once and is currently up.
type ReadyHandler struct {
	Probe Reachability
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Probe == nil || !h.Probe.Checked() {
		http.Error(w, "content repository not checked yet", http.StatusServiceUnavailable)
		return
	}
	if !h.Probe.Healthy() {
		http.Error(w, "content repository unreachable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		slog.Error("ready: failed to write response", slog.Any("error", err))
	}
}

// LiveHandler answers liveness probes and always returns 200.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		slog.Error("alive: failed to write response", slog.Any("error", err))
	}
}
