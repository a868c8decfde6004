// Package tracing provides OpenTelemetry tracing integration.
//
// Init installs the SDK tracer provider once at startup. Middleware opens a
// server span per inbound request, continuing any W3C trace context the
// caller sent, and StartClientSpan opens child spans around content
// repository reads.
//
// Example usage:
//
//	import "propellus-site/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.Init("propellus-site", version)
//	    defer shutdown(context.Background())
//	}
package tracing
