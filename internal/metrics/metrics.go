package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the gateway's forwarding and event paths.
type Metrics struct {
	// Forward outcomes by operation
	ForwardOutcome *prometheus.CounterVec

	// Upstream round-trip latency by operation
	UpstreamLatency *prometheus.HistogramVec

	// Event ingestion outcomes by event type
	EventOutcome *prometheus.CounterVec
}

// New creates a Metrics instance with all gateway metrics registered.
func New() *Metrics {
	return &Metrics{
		ForwardOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "slidegate_forwards_total",
			Help: "Total forwarded requests by operation and outcome",
		}, []string{"operation", "outcome"}), // outcome: "ok", "upstream_error", "transport_error"

		UpstreamLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "slidegate_upstream_duration_seconds",
			Help:    "Duration of upstream round trips by operation",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}),

		EventOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "slidegate_events_total",
			Help: "Total ingested events by type and outcome",
		}, []string{"event_type", "outcome"}), // outcome: "published", "rejected", "replayed"
	}
}

// IncrementForward records the outcome of one forwarded request.
func (m *Metrics) IncrementForward(operation, outcome string) {
	if m != nil {
		m.ForwardOutcome.WithLabelValues(operation, outcome).Inc()
	}
}

// ObserveUpstreamLatency records the duration of one upstream round trip.
func (m *Metrics) ObserveUpstreamLatency(operation string, d time.Duration) {
	if m != nil {
		m.UpstreamLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// IncrementEvent records the outcome of one ingested event.
func (m *Metrics) IncrementEvent(eventType, outcome string) {
	if m != nil {
		m.EventOutcome.WithLabelValues(eventType, outcome).Inc()
	}
}
