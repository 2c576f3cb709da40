package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appctx "grainpay/internal/core/context"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderTraceID   = "X-Trace-ID"
)

// maxIDLength bounds client-supplied ids echoed back in headers and logs.
const maxIDLength = 128

// Trace middleware adds request tracing context.
// Client-supplied ids are echoed back; missing or oversized ones are generated.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := headerOrNew(c, HeaderRequestID)
		traceID := headerOrNew(c, HeaderTraceID)

		c.Request = c.Request.WithContext(appctx.WithTrace(c.Request.Context(), appctx.NewTrace(traceID, requestID)))

		c.Set("trace_id", traceID)
		c.Set("request_id", requestID)

		c.Header(HeaderRequestID, requestID)
		c.Header(HeaderTraceID, traceID)

		c.Next()
	}
}

func headerOrNew(c *gin.Context, name string) string {
	if v := c.GetHeader(name); v != "" && len(v) <= maxIDLength {
		return v
	}
	return uuid.New().String()
}
