package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RefreshRunsTotal     *prometheus.CounterVec
	RefreshFailuresTotal *prometheus.CounterVec
}

// New — регистрирует метрики в переданном реестре; в тестах это
// отдельный prometheus.NewRegistry, чтобы не конфликтовать по именам.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		RefreshRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduled_refresh_runs_total",
				Help: "Total number of scheduled refresh runs",
			},
			[]string{"job"},
		),

		RefreshFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduled_refresh_failures_total",
				Help: "Total number of failed scheduled refresh runs",
			},
			[]string{"job"},
		),
	}
}
