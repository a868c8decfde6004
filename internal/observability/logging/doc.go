// Package logging provides structured logging helpers built on log/slog.
//
// The site server logs JSON to stdout; command line tools log text to stderr.
// Request-scoped loggers carry the request ID assigned by the requestid
// middleware:
//
//	logger := logging.WithRequestID(r.Context(), slog.Default())
//	logger.Info("section served", slog.String("section", name))
package logging
