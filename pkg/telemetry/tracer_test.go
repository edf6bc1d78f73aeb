package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracer_DisabledWithoutEndpoint(t *testing.T) {
	tp, err := InitTracer(context.Background(), "", "development")
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestInitTracer_WithEndpoint(t *testing.T) {
	// The gRPC exporter connects lazily, so no collector is needed here.
	tp, err := InitTracer(context.Background(), "localhost:4317", "test")
	require.NoError(t, err)
	require.NotNil(t, tp)

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = tp.Shutdown(ctx)
}
