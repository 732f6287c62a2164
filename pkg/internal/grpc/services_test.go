package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	health "google.golang.org/grpc/health/grpc_health_v1"
)

func TestHealthCheck(t *testing.T) {
	app := NewGrpc()

	resp, err := app.Check(context.Background(), &health.HealthCheckRequest{})
	require.NoError(t, err)
	require.Equal(t, health.HealthCheckResponse_SERVING, resp.GetStatus())

	app.SetServing(false)
	resp, err = app.Check(context.Background(), &health.HealthCheckRequest{})
	require.NoError(t, err)
	require.Equal(t, health.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
