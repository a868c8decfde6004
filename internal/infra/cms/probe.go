package cms

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"propellus-site/internal/observability/metrics"
	"propellus-site/internal/resilience/retry"

	"github.com/robfig/cron/v3"
)

// Probe periodically checks that the content repository answers its health
// path. The last result backs /ready and the cms_up gauge.
type Probe struct {
	client  *Client
	retry   retry.Config
	timeout time.Duration
	cron    *cron.Cron
	healthy atomic.Bool
	checked atomic.Bool
}

// NewProbe creates a probe for client using client.Config().ProbeSchedule.
// The probe does not run until Start is called.
func NewProbe(client *Client) (*Probe, error) {
	p := &Probe{
		client:  client,
		retry:   retry.ProbeConfig(),
		timeout: 5 * time.Second,
		cron:    cron.New(),
	}

	if _, err := p.cron.AddFunc(client.Config().ProbeSchedule, p.run); err != nil {
		return nil, err
	}
	return p, nil
}

// Start runs one check immediately and then schedules the rest.
func (p *Probe) Start() {
	go p.run()
	p.cron.Start()
	slog.Info("content repository probe started",
		slog.String("schedule", p.client.Config().ProbeSchedule),
		slog.String("path", p.client.Config().HealthPath))
}

// Stop stops scheduling checks and waits for a running check to finish.
func (p *Probe) Stop() {
	<-p.cron.Stop().Done()
}

// Healthy reports the result of the most recent check. It is false until
// the first check completes.
func (p *Probe) Healthy() bool {
	return p.healthy.Load()
}

// Checked reports whether at least one check has completed.
func (p *Probe) Checked() bool {
	return p.checked.Load()
}

// Check requests the health path, retrying transient failures, and records
// the result.
func (p *Probe) Check(ctx context.Context) error {
	err := retry.WithBackoff(ctx, p.retry, func() error {
		_, err := p.client.Get(ctx, p.client.Config().HealthPath, "")
		return err
	})

	up := err == nil
	if prev := p.healthy.Swap(up); prev != up || !p.checked.Load() {
		level := slog.LevelInfo
		if !up {
			level = slog.LevelWarn
		}
		slog.Log(ctx, level, "content repository reachability changed",
			slog.Bool("up", up),
			slog.Any("error", err))
	}
	p.checked.Store(true)
	metrics.SetCMSUp(up)
	return err
}

func (p *Probe) run() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout+p.retry.MaxDelay*time.Duration(p.retry.MaxAttempts))
	defer cancel()
	_ = p.Check(ctx)
}
