package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/convodyn/observability"
)

// RequestMetrics returns a Gin middleware that records request count,
// duration, and in-flight gauge on the given instruments.
func RequestMetrics(m *observability.RequestMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		start := time.Now()
		m.RecordRequestStart(ctx)
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		m.RecordRequestEnd(ctx, c.Request.Method, route,
			strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
