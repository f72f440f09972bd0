package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inbox-planner/pkg/log"
)

// RunIDHeader carries the run id back to the client.
const RunIDHeader = "X-Run-ID"

// RunID tags the request context with a fresh run id, or the one the client sent.
func (m Middleware) RunID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RunIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Request = c.Request.WithContext(log.WithRunID(c.Request.Context(), id))
		c.Header(RunIDHeader, id)
		c.Next()
	}
}
