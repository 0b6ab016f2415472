package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"file-wrangler/internal/logging"
)

// RequestID adds a unique request ID to each request. The ID is stored in
// the gin context, the request context and the response headers so service
// and executor logs carry it end to end.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), requestID))
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
