package prometheus

import (
	"time"

	"consulting-site/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Admin session metrics
	LoginAttemptsCounter prometheus.Counter
	LoginSuccessCounter  prometheus.Counter
	LoginFailureCounter  prometheus.Counter

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Content metrics
	ContentOperationsCounter prometheus.CounterVec

	// Analytics metrics
	PageViewsTrackedCounter  prometheus.Counter
	StatsQueryFailureCounter prometheus.CounterVec

	// Masterclass metrics
	RegistrationsCounter prometheus.Counter

	// Upload metrics
	UploadsCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Admin session metrics
	LoginAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_admin_login_attempts_total",
			Help: "Total number of admin login attempts",
		},
	)

	LoginSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_admin_login_success_total",
			Help: "Total number of successful admin logins",
		},
	)

	LoginFailureCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_admin_login_failure_total",
			Help: "Total number of failed admin logins",
		},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Content operation metrics
	ContentOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_content_operations_total",
			Help: "Total number of content operations by resource",
		},
		[]string{"resource", "operation"},
	)

	// Analytics metrics
	PageViewsTrackedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_page_views_tracked_total",
			Help: "Total number of page view events ingested",
		},
	)

	StatsQueryFailureCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_stats_query_failures_total",
			Help: "Total number of analytics sub-queries that fell back to defaults",
		},
		[]string{"query"},
	)

	// Masterclass metrics
	RegistrationsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_masterclass_registrations_total",
			Help: "Total number of masterclass registrations",
		},
	)

	// Upload metrics
	UploadsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_uploads_total",
			Help: "Total number of media uploads by outcome",
		},
		[]string{"outcome"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordContentOperation increments the counter for content operations
func RecordContentOperation(resource, operation string) {
	ContentOperationsCounter.WithLabelValues(resource, operation).Inc()
}

// RecordStatsQueryFailure increments the fallback counter for an analytics sub-query
func RecordStatsQueryFailure(query string) {
	StatsQueryFailureCounter.WithLabelValues(query).Inc()
}

// RecordUpload increments the upload counter for an outcome
func RecordUpload(outcome string) {
	UploadsCounter.WithLabelValues(outcome).Inc()
}
