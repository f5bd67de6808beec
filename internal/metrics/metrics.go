// Package metrics - Prometheus instrumentation for benchmark runs.
//
// A Metrics value owns its own registry so that concurrent runs, tests and
// the optional HTTP endpoint never collide with the global default registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

// Metrics holds the Prometheus collectors shared by all runs of a process.
type Metrics struct {
	// Evaluation metrics
	Evaluations  *prometheus.CounterVec
	Improvements *prometheus.CounterVec

	// Run metrics
	BestLength *prometheus.GaugeVec
	RunsDone   *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tspsuite_evaluations_total",
				Help: "Total number of tour evaluations by algorithm",
			},
			[]string{"algorithm"},
		),
		Improvements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tspsuite_improvements_total",
				Help: "Total number of evaluations that improved the best tour",
			},
			[]string{"algorithm"},
		),
		BestLength: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tspsuite_best_length",
				Help: "Best tour length found so far by run",
			},
			[]string{"algorithm", "run"},
		),
		RunsDone: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tspsuite_runs_total",
				Help: "Total number of finished runs by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		registry: reg,
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Observer returns an objective.Observer that feeds the collectors for one
// run. Label children are resolved once so Evaluated stays allocation-free.
func (m *Metrics) Observer(algorithm, run string) objective.Observer {
	return &observer{
		evaluations:  m.Evaluations.WithLabelValues(algorithm),
		improvements: m.Improvements.WithLabelValues(algorithm),
		best:         m.BestLength.WithLabelValues(algorithm, run),
	}
}

// RunFinished counts a completed run; outcome is typically "ok" or "error".
func (m *Metrics) RunFinished(algorithm, outcome string) {
	m.RunsDone.WithLabelValues(algorithm, outcome).Inc()
}

type observer struct {
	evaluations  prometheus.Counter
	improvements prometheus.Counter
	best         prometheus.Gauge
}

// Evaluated implements objective.Observer.
func (o *observer) Evaluated(_ objective.LogPoint, length int64, improved bool) {
	o.evaluations.Inc()
	if improved {
		o.improvements.Inc()
		o.best.Set(float64(length))
	}
}
