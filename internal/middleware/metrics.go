package middleware

import (
	"strconv"
	"time"

	"github.com/Domenick1991/airline-tracking/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count, latency and in-flight gauge per route.
func Metrics(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := endpoint(c)

		inFlight := reg.HTTPRequestsInFlight.WithLabelValues(route)
		inFlight.Inc()
		defer inFlight.Dec()

		start := time.Now()
		c.Next()

		reg.HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		reg.HTTPRequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
