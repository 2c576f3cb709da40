// Package context carries per-request trace identifiers through context.Context.
package context

import (
	"context"

	"github.com/google/uuid"
)

// TraceContext identifies one HTTP request across logs and response headers.
type TraceContext struct {
	TraceID   string
	SpanID    string
	RequestID string
}

// NewTrace builds a TraceContext for a request with a fresh span id.
func NewTrace(traceID, requestID string) *TraceContext {
	return &TraceContext{
		TraceID:   traceID,
		SpanID:    uuid.New().String()[:16],
		RequestID: requestID,
	}
}

// LogFields returns the ids as zap key/value pairs.
func (t *TraceContext) LogFields() []any {
	return []any{
		"trace_id", t.TraceID,
		"request_id", t.RequestID,
	}
}

type traceKey struct{}

// WithTrace stores trace in ctx.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceKey{}, trace)
}

// GetTrace returns the TraceContext of ctx, or nil outside a request.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}
