package middleware

import (
	"strconv"
	"time"

	"github.com/gdugdh24/matchcore/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics observes request latency labelled by route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
