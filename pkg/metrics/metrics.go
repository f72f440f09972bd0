package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

var (
	// ItemsProcessed counts input items by outcome.
	ItemsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_items_processed_total",
			Help: "Total number of input items processed",
		},
		[]string{"status"}, // success, failed, skipped
	)

	TasksExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_tasks_extracted_total",
			Help: "Total number of tasks extracted",
		},
		[]string{"source"},
	)

	ProposalsEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planner_proposals_emitted_total",
			Help: "Total number of proposed calendar blocks",
		},
	)

	TasksOmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planner_tasks_omitted_total",
			Help: "Total number of tasks that found no slot within the lookahead",
		},
	)

	ExtractionLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planner_extraction_latency_ms",
			Help:    "LLM extraction latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"kind", "status"},
	)
)

// IncrementItemProcessed counts one item with the given status.
func IncrementItemProcessed(status string) {
	ItemsProcessed.WithLabelValues(status).Inc()
}

func AddTasksExtracted(source string, n int) {
	if n <= 0 {
		return
	}
	TasksExtracted.WithLabelValues(source).Add(float64(n))
}

func AddProposals(n int) {
	if n > 0 {
		ProposalsEmitted.Add(float64(n))
	}
}

func AddOmitted(n int) {
	if n > 0 {
		TasksOmitted.Add(float64(n))
	}
}

// RecordExtractionLatency records one extraction call. kind is "email" or "meeting".
func RecordExtractionLatency(kind string, err error, d time.Duration) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailed
	}
	ExtractionLatency.WithLabelValues(kind, status).Observe(float64(d.Milliseconds()))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
