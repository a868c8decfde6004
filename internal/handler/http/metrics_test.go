package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestMetricsMiddleware_CardinalityReduction checks that every section name
// is recorded under a single label.
func TestMetricsMiddleware_CardinalityReduction(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, name := range []string{"vision", "terms", "ota-features", "nope"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/sections/"+name, nil))
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/sections/:name", "200"))
	if got != 4 {
		t.Errorf("expected 4 requests under /api/sections/:name, got %v", got)
	}
	if n := testutil.CollectAndCount(httpRequestsTotal); n != 1 {
		t.Errorf("expected one label set, got %d", n)
	}
}

func TestMetricsMiddleware_RecordsStatus(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"content repository responded 503 Service Unavailable"}`))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/otas/visaApi", nil))

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/otas/visaApi", "503"))
	if got != 1 {
		t.Errorf("expected one 503 request, got %v", got)
	}
}

func TestMetricsMiddleware_UnmatchedPaths(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.NotFoundHandler())
	for _, p := range []string{"/.env", "/wp-login.php", "/admin/config"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/:unmatched", "404"))
	if got != 3 {
		t.Errorf("expected 3 unmatched requests, got %v", got)
	}
}

func TestMetricsMiddleware_InFlightReturnsToZero(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if v := testutil.ToFloat64(httpRequestsInFlight); v < 1 {
			t.Errorf("expected in-flight gauge >= 1 while serving, got %v", v)
		}
	}))

	before := testutil.ToFloat64(httpRequestsInFlight)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if after := testutil.ToFloat64(httpRequestsInFlight); after != before {
		t.Errorf("in-flight gauge leaked: before %v after %v", before, after)
	}
}

func TestMetricsHandler_Exposition(t *testing.T) {
	httpRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200").Inc()

	rr := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	if !strings.Contains(string(body), "http_requests_total") {
		t.Error("expected http_requests_total in exposition")
	}
}
