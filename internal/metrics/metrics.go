// Package metrics exposes Prometheus counters for the generation pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SpecRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sitegen_spec_requests_total",
			Help: "Total number of spec-only conversion requests",
		},
	)
	GenerateRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sitegen_generate_requests_total",
			Help: "Total number of full site generation requests",
		},
	)
	LLMRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitegen_llm_requests_total",
			Help: "Number of LLM calls by model",
		},
		[]string{"model"},
	)
	Errors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitegen_errors_total",
			Help: "Number of request failures by pipeline stage",
		},
		[]string{"stage"}, // stage: llm|validation|render|archive
	)
	GenerationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sitegen_generation_duration_seconds",
			Help:    "End-to-end duration of generation requests",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 8), // 0.5s..64s
		},
	)
)

func init() {
	prometheus.MustRegister(
		SpecRequests,
		GenerateRequests,
		LLMRequests,
		Errors,
		GenerationDurationSeconds,
	)
}

// IncLLMRequest records one outbound model call.
func IncLLMRequest(model string) {
	LLMRequests.WithLabelValues(model).Inc()
}

// IncError records a failure at the given pipeline stage.
func IncError(stage string) {
	Errors.WithLabelValues(stage).Inc()
}

// Handler returns the scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
