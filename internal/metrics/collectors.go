// Package metrics provides optional Prometheus instrumentation for a PC run:
// CI-test invocation counts, edges removed per adjacency depth, and phase
// timing. Grounded on the prometheus/client_golang usage pattern pulled in
// by the retrieved pack's dependency set; nothing in this package is
// required for correctness, only for observability.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder bundles the counters and histograms a PCDriver run reports to,
// all registered under a single prometheus.Registerer so callers can mount
// them on whatever /metrics endpoint they run.
type Recorder struct {
	CITestsTotal  *prometheus.CounterVec
	EdgesRemoved  *prometheus.HistogramVec
	PhaseDuration *prometheus.HistogramVec
}

// NewRecorder builds a Recorder and registers its collectors against reg.
// Passing prometheus.NewRegistry() keeps a run's metrics isolated; passing
// prometheus.DefaultRegisterer wires into the process-wide /metrics handler.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		CITestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pcalg",
			Name:      "ci_tests_total",
			Help:      "Number of conditional independence predicate invocations, by kind.",
		}, []string{"kind"}),
		EdgesRemoved: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pcalg",
			Name:      "edges_removed_per_depth",
			Help:      "Edges removed from the skeleton at each conditioning depth.",
			Buckets:   prometheus.LinearBuckets(0, 2, 10),
		}, []string{"depth"}),
		PhaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pcalg",
			Name:      "phase_duration_seconds",
			Help:      "Wall-clock duration of each PCDriver phase.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"phase"}),
	}

	reg.MustRegister(r.CITestsTotal, r.EdgesRemoved, r.PhaseDuration)

	return r
}

// ObservePhase times fn and records its duration under the given phase
// label, regardless of whether fn returns an error.
func (r *Recorder) ObservePhase(phase string, fn func() error) error {
	start := time.Now()
	err := fn()
	r.PhaseDuration.WithLabelValues(phase).Observe(time.Since(start).Seconds())

	return err
}
