package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the standard header name used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is the key used to store the request ID in the gin context.
	RequestIDContextKey = "request_id"
)

// RequestID ensures every request carries a request ID: reads X-Request-ID
// from the incoming request, generates a UUID when missing, and echoes the
// value on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDContextKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
