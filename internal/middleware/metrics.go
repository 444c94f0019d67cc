package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"dnfapi/internal/pkg/metrics"
)

// Metrics records request count and latency per matched route.
func Metrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
