package metrics

import (
	"time"

	"github.com/sony/gobreaker"
)

// RecordCMSRequest records the outcome and latency of one content
// repository read. Size is only observed for successful reads.
func RecordCMSRequest(resource, outcome string, duration time.Duration, size int) {
	CMSRequestsTotal.WithLabelValues(resource, outcome).Inc()
	CMSRequestDuration.WithLabelValues(resource).Observe(duration.Seconds())
	if outcome == "ok" && size > 0 {
		CMSResponseSize.WithLabelValues(resource).Observe(float64(size))
	}
}

// SetCMSUp records the health probe result.
func SetCMSUp(up bool) {
	if up {
		CMSUp.Set(1)
		return
	}
	CMSUp.Set(0)
}

// RecordCircuitState records a circuit breaker transition.
func RecordCircuitState(name string, state gobreaker.State) {
	var v float64
	switch state {
	case gobreaker.StateHalfOpen:
		v = 1
	case gobreaker.StateOpen:
		v = 2
	}
	CircuitBreakerState.WithLabelValues(name).Set(v)
}

// RecordSectionRequest records how a section endpoint answered.
// Outcome should be one of "ok", "empty" or "error".
func RecordSectionRequest(section, outcome string) {
	SectionRequestsTotal.WithLabelValues(section, outcome).Inc()
}

// RecordPageRender records the time taken to render a page.
func RecordPageRender(page string, duration time.Duration) {
	PageRenderDuration.WithLabelValues(page).Observe(duration.Seconds())
}

// RecordAdapterState records a display adapter reaching ready or failed.
func RecordAdapterState(section, state string) {
	AdapterStatesTotal.WithLabelValues(section, state).Inc()
}
