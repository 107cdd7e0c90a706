package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal - счетчик HTTP запросов
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration - длительность HTTP запросов
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ModerationActionsTotal - счетчик действий модерации
	ModerationActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_moderation_actions_total",
			Help: "Total number of moderation actions",
		},
		[]string{"action"},
	)

	// AuditWriteFailures - неудачные записи аудита (best-effort, но видимые)
	AuditWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_audit_write_failures_total",
			Help: "Total number of failed audit log writes",
		},
	)
)
