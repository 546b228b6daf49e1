package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultRequestIdHeader = "X-Request-Id"
)

func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(defaultRequestIdHeader)
		if len(rid) == 0 {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(defaultRequestIdHeader, rid)
	}
}
