// Package cms reads documents from the headless content repository.
//
// Every read is a single authenticated GET guarded by a circuit breaker,
// traced as a client span and recorded in the cms_* metrics. Nothing is
// cached and nothing is retried.
package cms

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"propellus-site/internal/handler/http/requestid"
	"propellus-site/internal/observability/metrics"
	"propellus-site/internal/observability/tracing"
	"propellus-site/internal/resilience/circuitbreaker"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
)

const userAgent = "propellus-site/1.0"

// Client performs reads against the content repository.
// It is safe for concurrent use.
type Client struct {
	cfg     Config
	http    *http.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewClient creates a client for cfg. A nil httpClient selects a pooled
// client enforcing TLS 1.2+.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
		}
	}

	cbConfig := circuitbreaker.ContentRepositoryConfig()
	cbConfig.IsSuccessful = isSuccessful
	cbConfig.OnStateChange = func(name string, _, to gobreaker.State) {
		metrics.RecordCircuitState(name, to)
	}

	return &Client{
		cfg:     cfg,
		http:    httpClient,
		breaker: circuitbreaker.New(cbConfig),
	}
}

// isSuccessful keeps client-side upstream statuses (4xx) and caller
// cancellation from tripping the circuit.
func isSuccessful(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	if se, ok := AsStatusError(err); ok {
		return se.Code < http.StatusInternalServerError
	}
	return false
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config {
	return c.cfg
}

// BreakerState returns the circuit breaker state.
func (c *Client) BreakerState() gobreaker.State {
	return c.breaker.State()
}

// CircuitOpen reports whether reads are currently rejected without reaching
// the repository.
func (c *Client) CircuitOpen() bool {
	return c.breaker.IsOpen()
}

// Get reads resource (e.g. "/api/about-us") with the given raw query string
// and returns the response body.
//
// Errors:
//   - *StatusError for a non-2xx response
//   - ErrTimeout when Config.Timeout elapsed
//   - ErrTransport when no response was obtained
//   - ErrBodyTooLarge when the body exceeds Config.MaxBodySize
//   - ErrCircuitOpen while the circuit rejects reads
func (c *Client) Get(ctx context.Context, resource, query string) ([]byte, error) {
	start := time.Now()

	ctx, span := tracing.StartClientSpan(ctx, "cms.get",
		attribute.String("cms.resource", resource),
	)
	defer span.End()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, resource, query)
	})
	if errors.Is(err, circuitbreaker.ErrOpen) {
		err = fmt.Errorf("%w: %w", ErrCircuitOpen, err)
	}

	outcome := outcomeOf(err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		metrics.RecordCMSRequest(resource, outcome, time.Since(start), 0)
		return nil, err
	}

	body := result.([]byte)
	span.SetAttributes(attribute.Int("cms.response_size", len(body)))
	metrics.RecordCMSRequest(resource, outcome, time.Since(start), len(body))
	return body, nil
}

func (c *Client) do(ctx context.Context, resource, query string) ([]byte, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, c.cfg.Timeout,
			fmt.Errorf("client timeout of %v elapsed", c.cfg.Timeout))
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(resource, query), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	requestid.Propagate(ctx, req)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, context.Cause(ctx))
		}
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	limit := c.cfg.MaxBodySize
	if limit <= 0 {
		limit = DefaultConfig().MaxBodySize
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: reading body: %w", ErrTimeout, context.Cause(ctx))
		}
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, resp.Status, body)
	}

	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrBodyTooLarge, limit)
	}

	return body, nil
}

func (c *Client) url(resource, query string) string {
	u := c.cfg.BaseURL + resource
	if query != "" {
		u += "?" + query
	}
	return u
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrCircuitOpen):
		return "circuit_open"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	}
	if _, ok := AsStatusError(err); ok {
		return "status"
	}
	return "transport"
}
