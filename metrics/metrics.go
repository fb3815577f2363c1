// Package metrics collects prometheus metrics about simulations and optimizations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the simulator and optimizer metrics.
// A nil *Collector is valid and records nothing.
type Collector struct {
	simulations        *prometheus.CounterVec
	steps              *prometheus.CounterVec
	impacts            *prometheus.CounterVec
	simulationDuration *prometheus.HistogramVec
	optimizations      prometheus.Counter
	optimizerIters     prometheus.Counter
	optimizerError     prometheus.Gauge
}

// NewCollector returns a new Collector registered on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	m := &Collector{
		simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apollo_simulations_total",
				Help: "Total number of completed simulations",
			},
			[]string{"body"},
		),
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apollo_simulation_steps_total",
				Help: "Total number of integration steps",
			},
			[]string{"body"},
		),
		impacts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apollo_simulation_impacts_total",
				Help: "Total number of simulations which ended on a ground impact",
			},
			[]string{"body"},
		),
		simulationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "apollo_simulation_duration_seconds",
				Help:    "Wall clock time spent in a simulation",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"body"},
		),
		optimizations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "apollo_optimizations_total",
			Help: "Total number of completed optimizations",
		}),
		optimizerIters: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "apollo_optimizer_iterations_total",
			Help: "Total number of optimizer iterations",
		}),
		optimizerError: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "apollo_optimizer_error_meters",
			Help: "Landing error of the last completed optimization",
		}),
	}
	reg.MustRegister(
		m.simulations, m.steps, m.impacts, m.simulationDuration,
		m.optimizations, m.optimizerIters, m.optimizerError,
	)
	return m
}

// RecordSimulation records a completed simulation.
func (m *Collector) RecordSimulation(body string, steps int, impacted bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.simulations.WithLabelValues(body).Inc()
	m.steps.WithLabelValues(body).Add(float64(steps))
	if impacted {
		m.impacts.WithLabelValues(body).Inc()
	}
	m.simulationDuration.WithLabelValues(body).Observe(duration.Seconds())
}

// RecordOptimizerIteration records one optimizer iteration.
func (m *Collector) RecordOptimizerIteration() {
	if m == nil {
		return
	}
	m.optimizerIters.Inc()
}

// RecordOptimization records a completed optimization and its final error.
func (m *Collector) RecordOptimization(err float64) {
	if m == nil {
		return
	}
	m.optimizations.Inc()
	m.optimizerError.Set(err)
}
