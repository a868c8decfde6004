// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the site's domain metrics:
//   - Content repository reads (count, latency, size, health, circuit state)
//   - Section endpoint outcomes
//   - Page render latency and display adapter outcomes
//
// HTTP request metrics live with the HTTP middleware. All metrics are
// registered with the Prometheus default registry and exposed via the
// /metrics endpoint.
//
// Example usage:
//
//	import "propellus-site/internal/observability/metrics"
//
//	start := time.Now()
//	body, err := client.Get(ctx, "/api/about-us", query)
//	metrics.RecordCMSRequest("/api/about-us", outcome(err), time.Since(start), len(body))
package metrics
