// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasetsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "biaslab_datasets_generated_total",
		Help: "Total synthetic datasets generated",
	})

	Comparisons = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "biaslab_comparisons_total",
		Help: "Total group comparisons by outcome",
	}, []string{"significant"})

	LessonPlansSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "biaslab_lesson_plans_saved_total",
		Help: "Total lesson plans saved",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "biaslab_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// ObserveComparison counts one comparison
func ObserveComparison(significant bool) {
	Comparisons.WithLabelValues(strconv.FormatBool(significant)).Inc()
}
