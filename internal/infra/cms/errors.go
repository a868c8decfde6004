package cms

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport reports that no response was obtained from the repository.
	ErrTransport = errors.New("content repository unreachable")

	// ErrTimeout reports that a read deadline elapsed, either the client
	// timeout or one set by the caller. The wrapped cause names which.
	ErrTimeout = errors.New("content repository read timed out")

	// ErrCircuitOpen reports that the circuit breaker rejected the read.
	ErrCircuitOpen = errors.New("content repository circuit open")

	// ErrBodyTooLarge reports a response exceeding Config.MaxBodySize.
	ErrBodyTooLarge = errors.New("content repository response too large")
)

// maxExcerpt bounds the upstream body carried by a StatusError.
const maxExcerpt = 1024

// StatusError is returned for a non-2xx response.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func newStatusError(code int, status string, body []byte) *StatusError {
	if status == "" {
		status = fmt.Sprintf("%d %s", code, http.StatusText(code))
	}
	if len(body) > maxExcerpt {
		body = body[:maxExcerpt]
	}
	return &StatusError{Code: code, Status: status, Body: string(body)}
}

func (e *StatusError) Error() string {
	return "content repository responded " + e.Status
}

// HTTPStatus returns the upstream status code.
func (e *StatusError) HTTPStatus() int {
	return e.Code
}

// AsStatusError reports whether err carries an upstream status.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
