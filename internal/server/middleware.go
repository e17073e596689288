package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Houeta/staff-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// requestLogger logs every handled request; server errors are logged at error level.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}

		if status >= http.StatusInternalServerError {
			log.ErrorContext(c.Request.Context(), "request failed", attrs...)
			return
		}
		log.InfoContext(c.Request.Context(), "request completed", attrs...)
	}
}

// prometheusMiddleware tracks request count, latency and in-flight requests per route.
func prometheusMiddleware(appMetrics *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		appMetrics.HTTPRequestsInFlight.Inc()
		defer appMetrics.HTTPRequestsInFlight.Dec()

		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		appMetrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		appMetrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
