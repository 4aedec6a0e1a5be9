package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clinic_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_login_attempts_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	EntityMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_entity_mutations_total",
			Help: "Committed create, update and delete operations by entity",
		},
		[]string{"entity", "action"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clinic_rate_limited_requests_total",
			Help: "Requests rejected by the authentication rate limiter",
		},
	)
)

// Login attempt results
const (
	LoginSuccess  = "success"
	LoginFailure  = "failure"
	LoginInactive = "inactive"
)

// RecordMutation counts a committed mutation of entity ("client", "program", ...)
func RecordMutation(entity, action string) {
	EntityMutationsTotal.WithLabelValues(entity, action).Inc()
}
