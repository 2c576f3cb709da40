package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_RoundTrip(t *testing.T) {
	assert.Nil(t, GetTrace(context.Background()))

	trace := NewTrace("trace-1", "req-1")
	assert.Len(t, trace.SpanID, 16)

	got := GetTrace(WithTrace(context.Background(), trace))
	require.NotNil(t, got)
	assert.Same(t, trace, got)
	assert.Equal(t, []any{"trace_id", "trace-1", "request_id", "req-1"}, got.LogFields())
}
