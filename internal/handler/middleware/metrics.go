package middleware

import (
	"strconv"
	"time"

	"care-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency labelled by route template, so ids in
// paths do not blow up cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status()/100) + "xx"
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, status).
			Observe(time.Since(start).Seconds())
	}
}
