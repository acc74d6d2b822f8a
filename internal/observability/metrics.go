package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce             sync.Once
	pipelineRequestsTotal    *prometheus.CounterVec
	pipelineLatencySeconds   *prometheus.HistogramVec
	pipelineErrorsTotal      *prometheus.CounterVec
	pipelineMutationsTotal   *prometheus.CounterVec
	questionGenerationsTotal prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used across the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		pipelineRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_requests_total",
			Help: "Total number of pipeline API requests served.",
		}, []string{"method", "route", "status"})

		pipelineLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pipeline_latency_seconds",
			Help:    "Latency distribution for pipeline API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0},
		}, []string{"method", "route"})

		pipelineErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_errors_total",
			Help: "Total number of error responses returned by pipeline endpoints.",
		}, []string{"method", "route", "status"})

		pipelineMutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_mutations_total",
			Help: "Total number of position store mutations applied.",
		}, []string{"operation"})

		questionGenerationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "question_generations_total",
			Help: "Total number of interview question sets generated.",
		})

		prometheus.MustRegister(
			pipelineRequestsTotal,
			pipelineLatencySeconds,
			pipelineErrorsTotal,
			pipelineMutationsTotal,
			questionGenerationsTotal,
		)
	})
}

// PipelineRequests exposes the counter for pipeline requests.
func PipelineRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return pipelineRequestsTotal
}

// PipelineLatency exposes the latency histogram for pipeline requests.
func PipelineLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return pipelineLatencySeconds
}

// PipelineErrors exposes the counter for pipeline error responses.
func PipelineErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return pipelineErrorsTotal
}

// PipelineMutations exposes the counter for position store mutations.
func PipelineMutations() *prometheus.CounterVec {
	RegisterMetrics()
	return pipelineMutationsTotal
}

// QuestionGenerations exposes the counter for generated question sets.
func QuestionGenerations() prometheus.Counter {
	RegisterMetrics()
	return questionGenerationsTotal
}
