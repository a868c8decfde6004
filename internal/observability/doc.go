// Package observability groups the site's logging, metrics and tracing.
//
// Subpackages:
//   - logging: slog constructors and request-scoped loggers
//   - metrics: Prometheus collectors for content repository traffic,
//     section endpoints, page renders and display adapter transitions
//   - tracing: OpenTelemetry provider setup and HTTP server middleware
package observability
