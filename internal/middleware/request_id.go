// Package middleware provides the HTTP middleware for the coload API.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id between the marketing site
// and this API.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key holding the correlation id.
const requestIDKey = "request_id"

// RequestID tags every request with a correlation id and echoes it in
// the response header. A client-supplied X-Request-ID is reused so the
// frontend can correlate its per-keystroke quote calls; otherwise a
// UUID v4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the correlation id set by RequestID, or an empty
// string when the middleware did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
