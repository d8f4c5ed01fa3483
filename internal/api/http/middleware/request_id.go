package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDCtxKey = "request_id"
	traceIDCtxKey   = "trace_id"
)

type requestIDKey struct{}

type traceIDKey struct{}

// RequestIDMiddleware ensures every request has a stable request ID.
// - Reads X-Request-ID header if present
// - Otherwise generates a new one
// - Extracts the trace ID from traceparent or X-B3-TraceId
// - Stores both in the Gin context and the request's context.Context
// - Echoes the request ID back in the X-Request-ID response header
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if rid == "" {
			rid = newRequestID()
		}
		traceID := ExtractTraceID(c.Request.Header)

		c.Set(requestIDCtxKey, rid)
		c.Set(traceIDCtxKey, traceID)

		ctx := context.WithValue(c.Request.Context(), requestIDKey{}, rid)
		ctx = context.WithValue(ctx, traceIDKey{}, traceID)
		c.Request = c.Request.WithContext(ctx)

		c.Writer.Header().Set(RequestIDHeader, rid)

		c.Next()
	}
}

// GetRequestID extracts the request ID from a standard context
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// GetTraceID extracts the trace ID from a standard context. Empty when the
// caller sent no valid propagation header.
func GetTraceID(ctx context.Context) string {
	if tid, ok := ctx.Value(traceIDKey{}).(string); ok {
		return tid
	}
	return ""
}

// newRequestID returns 32 lowercase hex characters.
func newRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
