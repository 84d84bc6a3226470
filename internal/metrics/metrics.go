// Package metrics defines the Prometheus collectors for the ingestion pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/joseph-ayodele/resume-site/constants"
)

// Metrics holds the pipeline collectors. A nil *Metrics is a no-op.
type Metrics struct {
	IngestionsTotal *prometheus.CounterVec
	StageDuration   *prometheus.HistogramVec
	RetrievalsTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// Passing nil registers nothing, which suits tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		IngestionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "resumesite",
				Name:      "ingestions_total",
				Help:      "Resume ingestions by outcome.",
			},
			[]string{"outcome"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "resumesite",
				Name:      "stage_duration_seconds",
				Help:      "Ingestion stage latency in seconds.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"stage"},
		),
		RetrievalsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "resumesite",
				Name:      "retrievals_total",
				Help:      "Resume lookups by outcome.",
			},
			[]string{"outcome"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.IngestionsTotal, m.StageDuration, m.RetrievalsTotal)
	}
	return m
}

// ObserveStage records how long a pipeline stage took.
func (m *Metrics) ObserveStage(stage constants.Stage, d time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(string(stage)).Observe(d.Seconds())
}

func (m *Metrics) Ingestion(outcome constants.Outcome) {
	if m == nil {
		return
	}
	m.IngestionsTotal.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) Retrieval(outcome constants.Outcome) {
	if m == nil {
		return
	}
	m.RetrievalsTotal.WithLabelValues(string(outcome)).Inc()
}
