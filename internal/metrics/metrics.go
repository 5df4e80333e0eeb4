// Package metrics exposes Prometheus counters for conversions served over gRPC.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// ResultOK labels successful conversions.
	ResultOK = "ok"
	// ResultError labels failed conversions.
	ResultError = "error"
)

// Metrics groups the converter collectors.
type Metrics struct {
	// gatherer is the registry the collectors live in.
	gatherer prometheus.Gatherer
	// conversions counts conversions by fixture and result.
	conversions *prometheus.CounterVec
	// transitions counts Mealy transitions produced.
	transitions prometheus.Counter
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		gatherer: registry,
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "moore2mealy",
				Name:      "conversions_total",
				Help:      "Total number of Moore to Mealy conversions.",
			},
			[]string{"fixture", "result"},
		),
		transitions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "moore2mealy",
				Name:      "transitions_converted_total",
				Help:      "Total number of Mealy transitions produced.",
			},
		),
	}

	registry.MustRegister(m.conversions, m.transitions)

	return m
}

// ObserveConversion records one conversion attempt.
func (m *Metrics) ObserveConversion(fixture string, transitions int, err error) {
	if m == nil {
		return
	}

	if err != nil {
		m.conversions.WithLabelValues(fixture, ResultError).Inc()

		return
	}

	m.conversions.WithLabelValues(fixture, ResultOK).Inc()
	m.transitions.Add(float64(transitions))
}

// Gatherer returns the registry holding the collectors.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.gatherer
}

// Handler serves the collectors in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
