package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{
			name:         "catalog entry",
			code:         http.StatusOK,
			data:         map[string]string{"name": "mission"},
			expectedBody: `{"name":"mission"}`,
		},
		{
			name:         "struct payload",
			code:         http.StatusOK,
			data:         struct{ Route string }{Route: "/api/sections/terms"},
			expectedBody: `{"Route":"/api/sections/terms"}`,
		},
		{
			name: "no body",
			code: http.StatusNoContent,
			data: nil,
		},
		{
			name:         "error status",
			code:         http.StatusBadGateway,
			data:         ErrorBody{Error: "content repository responded 502 Bad Gateway"},
			expectedBody: `{"error":"content repository responded 502 Bad Gateway"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			if w.Code != tt.code {
				t.Errorf("Code = %v, want %v", w.Code, tt.code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %v, want application/json", ct)
			}
			if body := strings.TrimSpace(w.Body.String()); body != tt.expectedBody {
				t.Errorf("Body = %v, want %v", body, tt.expectedBody)
			}
		})
	}
}

func TestJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, make(chan int))

	if w.Code != http.StatusOK {
		t.Errorf("Code = %v, want %v", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %v, want application/json", ct)
	}
}

func TestData(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{name: "payload", data: map[string]string{"name": "vision"}, want: `{"data":{"name":"vision"}}`},
		{name: "no content", data: nil, want: `{"data":null}`},
		{name: "typed nil pointer", data: (*struct{ Name string })(nil), want: `{"data":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Data(w, tt.data)

			if w.Code != http.StatusOK {
				t.Errorf("Code = %v, want %v", w.Code, http.StatusOK)
			}
			if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
				t.Errorf("Cache-Control = %q, want no-store", cc)
			}
			if body := strings.TrimSpace(w.Body.String()); body != tt.want {
				t.Errorf("Body = %v, want %v", body, tt.want)
			}
		})
	}
}

func TestFailure(t *testing.T) {
	t.Run("with details", func(t *testing.T) {
		w := httptest.NewRecorder()
		Failure(w, http.StatusServiceUnavailable,
			"content repository responded 503 Service Unavailable",
			"upstream said: Bearer abc123")

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Code = %v, want %v", w.Code, http.StatusServiceUnavailable)
		}
		var body ErrorBody
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if !strings.Contains(body.Error, "503") {
			t.Errorf("Error = %q, want it to mention 503", body.Error)
		}
		if body.Details != "upstream said: Bearer ****" {
			t.Errorf("Details = %q, want sanitized token", body.Details)
		}
	})

	t.Run("without details", func(t *testing.T) {
		w := httptest.NewRecorder()
		Failure(w, http.StatusInternalServerError, "content repository unreachable", "")

		if body := strings.TrimSpace(w.Body.String()); body != `{"error":"content repository unreachable"}` {
			t.Errorf("Body = %v", body)
		}
	})
}

func TestAppError(t *testing.T) {
	upstream := errors.New("read section mission: status 503")

	t.Run("Error prefers the internal error", func(t *testing.T) {
		err := NewAppError(http.StatusServiceUnavailable, "content repository responded 503", upstream)
		if err.Error() != upstream.Error() {
			t.Errorf("Error() = %v, want %v", err.Error(), upstream.Error())
		}
	})

	t.Run("Error falls back to the user message", func(t *testing.T) {
		err := NewAppError(http.StatusNotFound, `unknown section "nope"`, nil)
		if err.Error() != `unknown section "nope"` {
			t.Errorf("Error() = %v", err.Error())
		}
	})

	t.Run("Unwrap exposes the internal error", func(t *testing.T) {
		err := fmt.Errorf("serve: %w", NewAppError(http.StatusInternalServerError, "failed to fetch content", upstream))
		if !errors.Is(err, upstream) {
			t.Errorf("errors.Is(%v, upstream) = false", err)
		}
		var appErr *AppError
		if !errors.As(err, &appErr) || appErr.Code != http.StatusInternalServerError {
			t.Errorf("errors.As did not find the AppError in %v", err)
		}
	})

	t.Run("WithDetails copies", func(t *testing.T) {
		base := NewAppError(http.StatusBadGateway, "content repository responded 502", upstream)
		withDetails := base.WithDetails("gateway down")
		if base.Details != "" {
			t.Errorf("base.Details = %q, want unchanged", base.Details)
		}
		if withDetails.Details != "gateway down" || withDetails.Code != http.StatusBadGateway {
			t.Errorf("WithDetails() = %+v", withDetails)
		}
	})
}

func TestFail(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		wantCode    int
		wantError   string
		wantDetails string
	}{
		{
			name: "upstream status with body excerpt",
			err: NewAppError(http.StatusNotFound, "content repository responded 404 Not Found", errors.New("status 404")).
				WithDetails(`{"data":null,"error":{"status":404,"name":"NotFoundError"}}`),
			wantCode:    http.StatusNotFound,
			wantError:   "content repository responded 404 Not Found",
			wantDetails: `{"data":null,"error":{"status":404,"name":"NotFoundError"}}`,
		},
		{
			name:      "internal error is not written",
			err:       NewAppError(http.StatusInternalServerError, "failed to fetch content", errors.New("dial tcp 10.0.0.7:1337: connection refused")),
			wantCode:  http.StatusInternalServerError,
			wantError: "failed to fetch content",
		},
		{
			name: "details are sanitized",
			err: NewAppError(http.StatusInternalServerError, "content repository unreachable", nil).
				WithDetails("Authorization: Bearer secret-token"),
			wantCode:    http.StatusInternalServerError,
			wantError:   "content repository unreachable",
			wantDetails: "Authorization: Bearer ****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Fail(w, tt.err)

			if w.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", w.Code, tt.wantCode)
			}
			var body ErrorBody
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if body.Error != tt.wantError {
				t.Errorf("Error = %q, want %q", body.Error, tt.wantError)
			}
			if body.Details != tt.wantDetails {
				t.Errorf("Details = %q, want %q", body.Details, tt.wantDetails)
			}
			if strings.Contains(w.Body.String(), "10.0.0.7") {
				t.Errorf("internal error leaked into body: %s", w.Body.String())
			}
		})
	}
}
