// Package metrics exposes mutator activity as Prometheus collectors
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// Metrics holds the mutator collectors on their own registry
type Metrics struct {
	registry *prometheus.Registry

	transitions    *prometheus.CounterVec
	forcedDisables *prometheus.CounterVec
	configErrors   *prometheus.CounterVec
	sweepDuration  prometheus.Histogram
}

// New creates the collectors and registers them with a fresh registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mutator_transitions_total",
			Help: "Applied mutator state changes, cascade steps included",
		}, []string{"mutator", "state"}),
		forcedDisables: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mutator_forced_disables_total",
			Help: "Mutators switched off because they were no longer available",
		}, []string{"mutator"}),
		configErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mutator_config_errors_total",
			Help: "Reported mutator configuration and state errors by code",
		}, []string{"code"}),
		sweepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mutator_sweep_duration_seconds",
			Help:    "Duration of availability sweeps across sessions",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
	}
}

// Transition counts one applied state change
func (m *Metrics) Transition(mutator string, enabled bool) {
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	m.transitions.WithLabelValues(mutator, state).Inc()
}

// ForcedDisable counts a mutator switched off by an availability sweep
func (m *Metrics) ForcedDisable(mutator string) {
	m.forcedDisables.WithLabelValues(mutator).Inc()
}

// ConfigError counts a reported error under its code
func (m *Metrics) ConfigError(err error) {
	m.configErrors.WithLabelValues(string(dnderr.GetCode(err))).Inc()
}

// ObserveSweep records how long a sweep took
func (m *Metrics) ObserveSweep(d time.Duration) {
	m.sweepDuration.Observe(d.Seconds())
}

// Registry returns the registry holding the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collectors in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
