package httptransport

import (
	"strconv"
	"time"

	"crypto-tracker-backend/internal/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware — учёт запросов и их длительности; /metrics и
// /healthz не учитываются, чтобы не зашумлять статистику.
func MetricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "/metrics" || path == "/healthz" {
				return err
			}

			method := c.Request().Method
			m.HTTPRequestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
			m.HTTPRequestsTotal.WithLabelValues(path, method, strconv.Itoa(c.Response().Status)).Inc()
			return err
		}
	}
}
