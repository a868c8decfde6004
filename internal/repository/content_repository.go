package repository

import "context"

// ContentRepository reads raw documents from the content repository.
// Implementations return the response body of a successful read and an
// error otherwise; they never cache.
type ContentRepository interface {
	Get(ctx context.Context, resource, query string) ([]byte, error)
}
