package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"file-wrangler/internal/metrics"
)

// Metrics records request counts and latencies per route. The route template
// is used as the path label so path parameters don't explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
