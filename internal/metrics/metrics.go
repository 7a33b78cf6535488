// Package metrics provides Prometheus metrics collection for the coload service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuotesTotal tracks quote computations by validity of the input.
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotes_total",
			Help: "Total number of price quotes computed",
		},
		[]string{"status"},
	)

	// QuoteDuration tracks quote computation duration.
	QuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_duration_seconds",
			Help:    "Price quote computation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// CheckoutSessionsTotal tracks checkout session attempts by outcome.
	CheckoutSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Total number of checkout session attempts",
		},
		[]string{"status"},
	)

	// CheckoutSessionDuration tracks the collaborator round-trip duration.
	CheckoutSessionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkout_session_duration_seconds",
			Help:    "Checkout session creation duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records metrics for a quote computation.
func RecordQuote(duration time.Duration, status string) {
	QuoteDuration.Observe(duration.Seconds())
	QuotesTotal.WithLabelValues(status).Inc()
}

// RecordCheckoutSession records metrics for a checkout session attempt.
func RecordCheckoutSession(duration time.Duration, status string) {
	CheckoutSessionDuration.Observe(duration.Seconds())
	CheckoutSessionsTotal.WithLabelValues(status).Inc()
}
