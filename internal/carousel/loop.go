package carousel

import (
	"context"
	"sync"
	"time"
)

// Ticker delivers frame timestamps to a Loop.
type Ticker interface {
	Frames() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

// NewTicker returns a Ticker backed by time.Ticker.
func NewTicker(interval time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(interval)}
}

func (t timeTicker) Frames() <-chan time.Time { return t.t.C }

func (t timeTicker) Stop() { t.t.Stop() }

// State is the mutable position of one carousel.
type State struct {
	Offset float64
	// LastFrame is the time of the last advance, relative to the first frame.
	LastFrame time.Duration
}

// Frame is reported to the OnFrame observer after every advance.
type Frame struct {
	At      time.Duration
	Offset  float64
	Wrapped bool
}

// Loop drives one carousel from a Ticker. State is guarded by a mutex
// because ticks and resizes arrive on different goroutines.
type Loop struct {
	mu         sync.Mutex
	slides     int
	slideWidth float64
	viewport   float64
	speed      float64
	state      State
	origin     time.Time
	started    bool
	stopped    bool
	onFrame    func(Frame)

	stop     chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop over n slides of slideWidth inside a viewport of
// the given width. A non-positive speed selects DefaultSpeed.
func NewLoop(n int, slideWidth, viewport, speed float64) *Loop {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Loop{
		slides:     n,
		slideWidth: slideWidth,
		viewport:   viewport,
		speed:      speed,
		stop:       make(chan struct{}),
	}
}

// OnFrame registers fn to be called after every advance. It must be set
// before Run.
func (l *Loop) OnFrame(fn func(Frame)) {
	l.mu.Lock()
	l.onFrame = fn
	l.mu.Unlock()
}

// Speed returns the effective speed.
func (l *Loop) Speed() float64 { return l.speed }

// HalfWidth returns the wrap point of the track.
func (l *Loop) HalfWidth() float64 { return HalfWidth(l.slides, l.slideWidth) }

// Active reports whether there is anything to animate.
func (l *Loop) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.activeLocked()
}

func (l *Loop) activeLocked() bool {
	return !l.stopped && l.slides > 0 && l.slideWidth > 0 && l.viewport > 0
}

// State returns a snapshot of the current state.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Run consumes frames until ctx is cancelled or Stop is called. It returns
// immediately when the loop is inactive. After Run returns the state is
// never modified again.
func (l *Loop) Run(ctx context.Context, ticker Ticker) error {
	defer l.halt()
	if !l.Active() {
		return nil
	}
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		case ts := <-ticker.Frames():
			if frame, ok := l.advance(ts); ok && l.onFrame != nil {
				l.onFrame(frame)
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once and from any goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Loop) halt() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()
	l.Stop()
}

// Resize records a new viewport width and snaps the track back to zero.
// A zero width pauses the loop until the next non-zero resize.
func (l *Loop) Resize(width float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.viewport = width
	l.state.Offset = 0
}

func (l *Loop) advance(ts time.Time) (Frame, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.started {
		l.started = true
		l.origin = ts
		return Frame{}, false
	}
	if !l.activeLocked() {
		return Frame{}, false
	}

	at := ts.Sub(l.origin)
	elapsed := float64(at-l.state.LastFrame) / float64(time.Millisecond)
	if elapsed <= MinFrameMs {
		return Frame{}, false
	}

	prev := l.state.Offset
	l.state.Offset = NextOffset(prev, elapsed, l.speed, l.HalfWidth())
	l.state.LastFrame = at

	return Frame{At: at, Offset: l.state.Offset, Wrapped: l.state.Offset == 0}, true
}
