// Package metric provides Prometheus metrics for AuthMe.
//
// Metrics cover the session cache, the limbo registry, and the
// shutdown flush pass. The registry is private to the extension so
// embedding it never collides with host-level collectors.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/venus98/AuthMeReloaded/internal/core/domain"
)

// Metrics holds all extension collectors.
type Metrics struct {
	registry *prometheus.Registry

	// SessionsActive tracks the authenticated-session cache size.
	SessionsActive prometheus.GaugeFunc

	// LimboActive tracks the number of players currently in limbo.
	LimboActive prometheus.GaugeFunc

	// FlushOutcomes counts per-player shutdown flush results by status.
	FlushOutcomes *prometheus.CounterVec

	// LimboRestores counts limbo restorations performed during flush.
	LimboRestores prometheus.Counter

	// HostListFailures counts degraded online-player list reads.
	HostListFailures prometheus.Counter
}

// New creates the extension metrics backed by a private registry.
//
// sessionCount and limboCount are polled on scrape; pass nil to leave
// the corresponding gauge at zero.
func New(sessionCount, limboCount func() int) *Metrics {
	reg := prometheus.NewRegistry()

	gaugeFn := func(fn func() int) func() float64 {
		return func() float64 {
			if fn == nil {
				return 0
			}
			return float64(fn())
		}
	}

	m := &Metrics{
		registry: reg,
		SessionsActive: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "authme",
			Name:      "sessions_active",
			Help:      "Number of players with an authenticated session.",
		}, gaugeFn(sessionCount)),
		LimboActive: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "authme",
			Name:      "limbo_active",
			Help:      "Number of players currently in limbo.",
		}, gaugeFn(limboCount)),
		FlushOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "authme",
			Name:      "flush_outcomes_total",
			Help:      "Per-player outcomes of the shutdown flush pass.",
		}, []string{"status"}),
		LimboRestores: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "authme",
			Name:      "limbo_restores_total",
			Help:      "Limbo restorations performed during shutdown flush.",
		}),
		HostListFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "authme",
			Name:      "host_list_failures_total",
			Help:      "Online-player list reads degraded to an empty result.",
		}),
	}

	reg.MustRegister(
		m.SessionsActive,
		m.LimboActive,
		m.FlushOutcomes,
		m.LimboRestores,
		m.HostListFailures,
	)

	return m
}

// ObserveFlush records one per-player flush outcome.
func (m *Metrics) ObserveFlush(outcome domain.SaveOutcome) {
	m.FlushOutcomes.WithLabelValues(outcome.Status.String()).Inc()
	if outcome.Restored {
		m.LimboRestores.Inc()
	}
}

// Registry returns the underlying Prometheus registry for exposition.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
