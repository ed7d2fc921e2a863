// Package metrics holds the Prometheus collectors for the research pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so several instances can coexist in tests.
type Metrics struct {
	Registry *prometheus.Registry

	CompletionsTotal   *prometheus.CounterVec
	CompletionDuration *prometheus.HistogramVec

	SearchesTotal  *prometheus.CounterVec
	SearchDuration *prometheus.HistogramVec

	GapFlagsTotal        *prometheus.CounterVec
	DimensionFailures    *prometheus.CounterVec
	SavedQueryOperations *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		CompletionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "researchgap_completions_total",
				Help: "Total number of completion calls by model and outcome",
			},
			[]string{"model", "status"},
		),
		CompletionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "researchgap_completion_duration_seconds",
				Help:    "Duration of completion calls in seconds",
				Buckets: []float64{.25, .5, 1, 2, 4, 8, 16, 32, 64, 128},
			},
			[]string{"model"},
		),

		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "researchgap_searches_total",
				Help: "Total number of pipeline runs by endpoint and degraded flag",
			},
			[]string{"endpoint", "degraded"},
		),
		SearchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "researchgap_search_duration_seconds",
				Help:    "End-to-end pipeline duration in seconds",
				Buckets: []float64{1, 2.5, 5, 10, 20, 40, 80, 160},
			},
			[]string{"endpoint"},
		),

		GapFlagsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "researchgap_gap_flags_total",
				Help: "Heuristic gap rules that fired, by dimension and rule",
			},
			[]string{"dimension", "rule"},
		),
		DimensionFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "researchgap_dimension_failures_total",
				Help: "Dimension fetches whose completion call failed",
			},
			[]string{"dimension"},
		),
		SavedQueryOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "researchgap_saved_query_operations_total",
				Help: "Saved query store operations by kind and outcome",
			},
			[]string{"operation", "status"},
		),
	}
}

// ObserveCompletion records one completion call outcome.
func (m *Metrics) ObserveCompletion(model, status string, elapsed time.Duration) {
	m.CompletionsTotal.WithLabelValues(model, status).Inc()
	m.CompletionDuration.WithLabelValues(model).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordSearch(endpoint string, degraded bool, elapsed time.Duration) {
	m.SearchesTotal.WithLabelValues(endpoint, strconv.FormatBool(degraded)).Inc()
	m.SearchDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordGapFlag(dimension, rule string) {
	m.GapFlagsTotal.WithLabelValues(dimension, rule).Inc()
}

func (m *Metrics) RecordDimensionFailure(dimension string) {
	m.DimensionFailures.WithLabelValues(dimension).Inc()
}

func (m *Metrics) RecordSavedQuery(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.SavedQueryOperations.WithLabelValues(operation, status).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
