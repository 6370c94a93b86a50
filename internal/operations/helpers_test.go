package operations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/XwaeK/2024-assignment-pandas/internal/config"
	"github.com/XwaeK/2024-assignment-pandas/internal/infrastructure"
)

func noopTracer(t *testing.T) *OperationTracer {
	t.Helper()
	providers, err := infrastructure.InitializeTelemetry(context.Background(), config.TelemetryConfig{}, nil, nil)
	require.NoError(t, err)
	tracer, err := NewOperationTracer(providers)
	require.NoError(t, err)
	return tracer
}
