// Package metrics provides centralized Prometheus metrics for the site.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Content repository metrics track outbound reads against the CMS
var (
	// CMSRequestsTotal counts CMS reads by resource and outcome
	CMSRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_requests_total",
			Help: "Total number of content repository reads",
		},
		[]string{"resource", "outcome"}, // outcome: ok, status, transport, timeout, circuit_open
	)

	// CMSRequestDuration measures CMS read latency
	CMSRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_request_duration_seconds",
			Help:    "Content repository read duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"resource"},
	)

	// CMSResponseSize measures CMS response body size in bytes
	CMSResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_response_size_bytes",
			Help:    "Content repository response size in bytes",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8),
		},
		[]string{"resource"},
	)

	// CMSUp reports the last health probe result (1 reachable, 0 not)
	CMSUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cms_up",
			Help: "Whether the content repository answered the last health probe",
		},
	)

	// CircuitBreakerState reports breaker state (0 closed, 1 half-open, 2 open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open",
		},
		[]string{"name"},
	)
)

// Site metrics track what the proxy endpoints and pages serve
var (
	// SectionRequestsTotal counts section endpoint responses by outcome
	SectionRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "section_requests_total",
			Help: "Total number of section endpoint responses",
		},
		[]string{"section", "outcome"}, // outcome: ok, empty, error
	)

	// PageRenderDuration measures full page render time, including every
	// section load
	PageRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "page_render_duration_seconds",
			Help:    "Page render duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"page"},
	)

	// AdapterStatesTotal counts terminal display adapter states
	AdapterStatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "display_adapter_states_total",
			Help: "Total number of display adapters reaching a terminal state",
		},
		[]string{"section", "state"}, // state: ready, failed
	)
)
