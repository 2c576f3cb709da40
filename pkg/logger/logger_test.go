package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appctx "grainpay/internal/core/context"
)

func TestFromContext_AddsTraceFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := WithLogger(context.Background(), FromZap(zap.New(core)))
	ctx = appctx.WithTrace(ctx, &appctx.TraceContext{TraceID: "trace-1", RequestID: "req-1"})

	Info(ctx, "expense saved", "id", int64(3))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "expense saved", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, int64(3), fields["id"])
}

func TestFromContext_WithoutTrace(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), FromZap(zap.New(core)).WithComponent("test"))

	Debug(ctx, "dropped below level")
	Warn(ctx, "kept")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "test", logs.All()[0].ContextMap()["component"])
	assert.NotContains(t, logs.All()[0].ContextMap(), "trace_id")
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	nop := Nop()
	SetDefault(nop)
	assert.Same(t, nop, Default())
}
