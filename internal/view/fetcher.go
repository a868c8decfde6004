package view

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"propellus-site/internal/handler/http/requestid"
)

// Response is a raw proxy endpoint reply.
type Response struct {
	Status int
	Body   []byte
}

// Fetcher reads one proxy endpoint by section name.
type Fetcher interface {
	Fetch(ctx context.Context, section string) (Response, error)
}

// ErrResponseTooLarge reports a proxy reply exceeding HTTPFetcher.MaxBodySize.
var ErrResponseTooLarge = errors.New("section response too large")

// SectionPath is the proxy route of a section.
func SectionPath(section string) string {
	return "/api/sections/" + url.PathEscape(section)
}

// HandlerFetcher calls the proxy handler in-process, without a network hop.
type HandlerFetcher struct {
	Handler http.Handler
}

// Fetch implements Fetcher.
func (f HandlerFetcher) Fetch(ctx context.Context, section string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, SectionPath(section), nil)
	if err != nil {
		return Response{}, fmt.Errorf("build section request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	requestid.Propagate(ctx, req)

	rec := &bufferedResponse{header: http.Header{}}
	f.Handler.ServeHTTP(rec, req)
	return Response{Status: rec.status(), Body: rec.body.Bytes()}, nil
}

// bufferedResponse collects a handler's reply in memory.
type bufferedResponse struct {
	header http.Header
	code   int
	body   bytes.Buffer
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(code int) {
	if b.code == 0 {
		b.code = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if b.code == 0 {
		b.code = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedResponse) status() int {
	if b.code == 0 {
		return http.StatusOK
	}
	return b.code
}

// HTTPFetcher reads proxy endpoints over HTTP from a same-origin base URL,
// for deployments where pages and proxy endpoints run in separate processes.
type HTTPFetcher struct {
	BaseURL     string
	Client      *http.Client
	MaxBodySize int64
}

// NewHTTPFetcher returns a fetcher for baseURL with a bounded client.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		Client:      &http.Client{Timeout: timeout},
		MaxBodySize: 10 << 20,
	}
}

// Fetch implements Fetcher. Non-200 statuses are returned, not treated as
// errors; only transport failures are.
func (f *HTTPFetcher) Fetch(ctx context.Context, section string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+SectionPath(section), nil)
	if err != nil {
		return Response{}, fmt.Errorf("build section request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	requestid.Propagate(ctx, req)

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("fetch section %s: %w", section, err)
	}
	defer func() { _ = resp.Body.Close() }()

	limit := f.MaxBodySize
	if limit <= 0 {
		limit = 10 << 20
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return Response{}, fmt.Errorf("read section %s: %w", section, err)
	}
	if int64(len(body)) > limit {
		return Response{}, fmt.Errorf("read section %s: %w: exceeds %d bytes", section, ErrResponseTooLarge, limit)
	}
	return Response{Status: resp.StatusCode, Body: body}, nil
}
