// Package respond provides utilities for sending HTTP responses in JSON format.
// Successful payloads are wrapped as {"data": ...}; failures are written as
// {"error": ..., "details": ...} with details sanitized before they leave the
// process.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the success body of every proxy endpoint. Data is encoded as
// null when there is no content.
type Envelope struct {
	Data any `json:"data"`
}

// ErrorBody is the failure body of every proxy endpoint.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Data writes a 200 response with v wrapped in the success envelope.
// Content is never cached: every response reflects the CMS at request time.
func Data(w http.ResponseWriter, v any) {
	w.Header().Set("Cache-Control", "no-store")
	JSON(w, http.StatusOK, Envelope{Data: v})
}

// Failure writes an error envelope. Details are sanitized and truncated;
// empty details are omitted.
func Failure(w http.ResponseWriter, code int, msg, details string) {
	w.Header().Set("Cache-Control", "no-store")
	JSON(w, code, ErrorBody{Error: msg, Details: SanitizeDetails(details)})
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Details string // Optional detail shown to users after sanitization
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// WithDetails returns a copy of e carrying details.
func (e *AppError) WithDetails(details string) *AppError {
	c := *e
	c.Details = details
	return &c
}

// Fail writes e as a failure envelope with its user message and details.
// The wrapped internal error is not written; callers log it.
func Fail(w http.ResponseWriter, e *AppError) {
	Failure(w, e.Code, e.UserMsg, e.Details)
}
