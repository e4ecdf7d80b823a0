// Package timing: Prometheus-backed phase timer.
package timing

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prom observes phase durations into a Prometheus histogram labelled by
// phase name. Label cardinality stays bounded because the conserve package
// emits only the fixed Phase* names.
type Prom struct {
	durations *prometheus.HistogramVec
}

// NewProm returns a Prometheus phase timer registered on reg. Pass
// prometheus.DefaultRegisterer to use the process-global registry, or a
// private registry in tests.
func NewProm(reg prometheus.Registerer) *Prom {
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "demonet_phase_duration_seconds",
		Help:    "Wall-clock duration of demonet redistribution phases",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
	}, []string{"phase"})
	reg.MustRegister(durations)

	return &Prom{durations: durations}
}

// promHandle carries one open measurement of a Prom timer.
type promHandle struct {
	observer prometheus.Observer
	begin    time.Time
}

// Start begins measuring the named phase.
func (p *Prom) Start(name string) Handle {
	return &promHandle{
		observer: p.durations.WithLabelValues(name),
		begin:    time.Now(),
	}
}

// Stop ends the measurement and observes the elapsed seconds.
func (h *promHandle) Stop() {
	h.observer.Observe(time.Since(h.begin).Seconds())
}
