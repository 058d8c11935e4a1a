package middleware

import (
	"strconv"
	"time"

	"shop-service/prometheus"

	"github.com/labstack/echo/v4"
	prom "github.com/prometheus/client_golang/prometheus"
)

// MetricsMiddleware adds prometheus metrics to track HTTP requests
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Start timer for request duration
		start := time.Now()

		// Process request
		err := next(c)

		// Calculate request duration
		duration := time.Since(start).Seconds()

		// Get request details
		method := c.Request().Method
		endpoint := c.Path()
		status := strconv.Itoa(c.Response().Status)

		// Record metrics
		prometheus.HTTPRequestCounter.With(prom.Labels{
			"endpoint": endpoint,
			"method":   method,
			"status":   status,
		}).Inc()

		prometheus.RequestDuration.With(prom.Labels{
			"endpoint": endpoint,
			"method":   method,
			"status":   status,
		}).Observe(duration)

		return err
	}
}
