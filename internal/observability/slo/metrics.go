package slo

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Objectives for section reads.
const (
	// AvailabilityObjective is the target ratio of section reads that do
	// not fail upstream. Empty sections count as available.
	AvailabilityObjective = 0.999

	// PublishSchedule is the cron spec used to publish the current window.
	PublishSchedule = "@every 1m"
)

var (
	SectionAvailability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "site_section_availability_ratio",
			Help: "Ratio of section reads in the last window that did not fail, target: 0.999",
		},
	)

	SectionErrorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "site_section_error_ratio",
			Help: "Ratio of section reads in the last window that failed",
		},
	)

	SectionWindowReads = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "site_section_window_reads",
			Help: "Number of section reads in the last published window",
		},
	)
)

// Window counts section read outcomes between publishes.
type Window struct {
	mu     sync.Mutex
	total  int
	failed int
}

// Record counts one section read. failed marks an upstream failure.
func (w *Window) Record(failed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.total++
	if failed {
		w.failed++
	}
}

// Snapshot returns the availability and error ratios of the current window
// and the number of reads it holds. An empty window is fully available.
func (w *Window) Snapshot() (availability, errorRate float64, reads int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return ratios(w.total, w.failed)
}

// Publish sets the gauges from the current window and starts a new one.
func (w *Window) Publish() {
	w.mu.Lock()
	availability, errorRate, reads := ratios(w.total, w.failed)
	w.total, w.failed = 0, 0
	w.mu.Unlock()

	SectionAvailability.Set(availability)
	SectionErrorRate.Set(errorRate)
	SectionWindowReads.Set(float64(reads))
}

func ratios(total, failed int) (float64, float64, int) {
	if total == 0 {
		return 1, 0, 0
	}
	errorRate := float64(failed) / float64(total)
	return 1 - errorRate, errorRate, total
}

var defaultWindow Window

// Record counts one section read in the process-wide window.
func Record(failed bool) { defaultWindow.Record(failed) }

// Publish publishes and resets the process-wide window.
func Publish() { defaultWindow.Publish() }
