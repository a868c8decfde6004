package http

import (
	"context"
	"net/http"
	"time"
)

// Timeout returns middleware that bounds the request context. Handlers
// see the deadline through r.Context() and abort their upstream reads;
// unlike http.TimeoutHandler the response is still written by the handler
// so timed-out section reads keep the error envelope.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
