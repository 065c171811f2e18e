package middleware

import (
	"strconv"

	"adminboard/internal/simulation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adminboard_http_requests_total",
		Help: "HTTP requests processed, labelled by method, route and status.",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adminboard_http_request_duration_seconds",
		Help:    "HTTP request latency, including simulated latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	simulatedFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adminboard_simulated_failures_total",
		Help: "Failures injected by the simulation layer, by mode.",
	}, []string{"mode"})
)

func observeSimulatedFailure(mode simulation.Mode) {
	simulatedFailures.WithLabelValues(string(mode)).Inc()
}

// Metrics records request counts and latencies per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		timer := prometheus.NewTimer(requestDuration.WithLabelValues(c.Request.Method, route))
		c.Next()
		timer.ObserveDuration()

		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
