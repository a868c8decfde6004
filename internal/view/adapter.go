package view

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"propellus-site/internal/domain/entity"
	"propellus-site/internal/observability/metrics"
)

// State is the lifecycle position of an Adapter.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Status is a snapshot of an Adapter. Data is nil in every state except
// Ready, and may be nil in Ready when the section has no content.
type Status struct {
	State  State
	Data   *entity.Section
	Reason string
}

// Adapter binds one section of a page to its proxy endpoint. It fetches at
// most once; a fresh Adapter is needed to try again.
type Adapter struct {
	section string
	fetcher Fetcher

	mu     sync.Mutex
	status Status
	done   chan struct{}
}

// NewAdapter returns an idle adapter.
func NewAdapter(section string, f Fetcher) *Adapter {
	return &Adapter{
		section: section,
		fetcher: f,
		done:    make(chan struct{}),
	}
}

// Section returns the section name.
func (a *Adapter) Section() string { return a.section }

// Status returns the current snapshot.
func (a *Adapter) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Load performs the single fetch and returns the terminal status. Calls
// after the first wait for that fetch instead of issuing another; if ctx
// ends first they return the status as it stands.
func (a *Adapter) Load(ctx context.Context) Status {
	a.mu.Lock()
	if a.status.State != StateIdle {
		a.mu.Unlock()
		select {
		case <-a.done:
		case <-ctx.Done():
		}
		return a.Status()
	}
	a.status.State = StateLoading
	a.mu.Unlock()

	final := a.fetch(ctx)

	a.mu.Lock()
	a.status = final
	close(a.done)
	a.mu.Unlock()

	metrics.RecordAdapterState(a.section, final.State.String())
	return final
}

func (a *Adapter) fetch(ctx context.Context) Status {
	resp, err := a.fetcher.Fetch(ctx, a.section)
	if err != nil {
		return Status{State: StateFailed, Reason: err.Error()}
	}
	return decode(resp)
}

// envelope accepts both the success and the error shape.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

func decode(resp Response) Status {
	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil && resp.Status == http.StatusOK {
		return Status{State: StateFailed, Reason: "malformed response: " + err.Error()}
	}

	if resp.Status != http.StatusOK {
		reason := env.Error
		if reason == "" {
			reason = fmt.Sprintf("%d %s", resp.Status, http.StatusText(resp.Status))
		}
		return Status{State: StateFailed, Reason: reason}
	}

	// A missing key leaves Data nil; an explicit null is the literal "null".
	if env.Data == nil {
		return Status{State: StateFailed, Reason: "malformed response: missing data"}
	}
	if bytes.Equal(env.Data, []byte("null")) {
		return Status{State: StateReady}
	}

	var sec entity.Section
	if err := json.Unmarshal(env.Data, &sec); err != nil {
		return Status{State: StateFailed, Reason: "malformed response: " + err.Error()}
	}
	return Status{State: StateReady, Data: &sec}
}
