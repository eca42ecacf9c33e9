package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce           sync.Once
	apiRequestsTotal       *prometheus.CounterVec
	apiLatencySeconds      *prometheus.HistogramVec
	apiErrorsTotal         *prometheus.CounterVec
	reportGenerationsTotal *prometheus.CounterVec
	scoringDurationSeconds *prometheus.HistogramVec
	answerSubmissionsTotal *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used across the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "assessment_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "assessment_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "assessment_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		reportGenerationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "report_generations_total",
			Help: "Total number of report generation attempts by outcome.",
		}, []string{"assessment_type", "status"})

		scoringDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scoring_duration_seconds",
			Help:    "Time spent inside the scoring pipeline per report.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"assessment_type"})

		answerSubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "answer_submissions_total",
			Help: "Total number of answers stored, by section.",
		}, []string{"section"})

		prometheus.MustRegister(
			apiRequestsTotal,
			apiLatencySeconds,
			apiErrorsTotal,
			reportGenerationsTotal,
			scoringDurationSeconds,
			answerSubmissionsTotal,
		)
	})
}

// APIRequests exposes the counter for served requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the counter for error responses.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// ReportGenerations exposes the counter for report generation outcomes.
func ReportGenerations() *prometheus.CounterVec {
	RegisterMetrics()
	return reportGenerationsTotal
}

// ScoringDuration exposes the scoring pipeline histogram.
func ScoringDuration() *prometheus.HistogramVec {
	RegisterMetrics()
	return scoringDurationSeconds
}

// AnswerSubmissions exposes the counter for stored answers.
func AnswerSubmissions() *prometheus.CounterVec {
	RegisterMetrics()
	return answerSubmissionsTotal
}
