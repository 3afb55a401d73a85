package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"artisthub-backend/pkg/metrics"
)

// Metrics ghi request count/latency theo route template (c.FullPath)
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		metrics.RequestStarted()

		c.Next()

		metrics.RequestFinished(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
