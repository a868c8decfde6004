package http

import (
	"net/http"

	"propellus-site/internal/handler/http/respond"
)

const (
	maxPathLength  = 2048
	maxQueryLength = 4096
)

// InputValidation rejects requests whose path or query string exceed
// reasonable bounds before they reach routing or the content repository.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > maxPathLength {
				respond.Failure(w, http.StatusRequestURITooLong, "URI too long", "")
				return
			}
			if len(r.URL.RawQuery) > maxQueryLength {
				respond.Failure(w, http.StatusRequestURITooLong, "query string too long", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
