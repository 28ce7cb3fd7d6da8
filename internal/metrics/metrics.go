package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for roster operations.
// A nil *Metrics is valid and records nothing, so tests can skip wiring.
type Metrics struct {
	registry *prometheus.Registry

	mutations    *prometheus.CounterVec
	snapshotSave prometheus.Histogram
}

// New creates Metrics registered on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courtlog",
			Name:      "roster_mutations_total",
			Help:      "Roster mutations by operation and outcome.",
		}, []string{"op", "outcome"}),
		snapshotSave: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "courtlog",
			Name:      "snapshot_save_seconds",
			Help:      "Duration of roster snapshot persistence.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Registry returns the underlying registry for serving /metrics
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// MutationApplied records a successful mutation and its persistence time
func (m *Metrics) MutationApplied(op string, saveDuration time.Duration) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op, "applied").Inc()
	m.snapshotSave.Observe(saveDuration.Seconds())
}

// MutationFailed records a mutation rejected at the persistence step
func (m *Metrics) MutationFailed(op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op, "failed").Inc()
}
