package grpc

import (
	"context"

	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	health "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func (v *App) Check(ctx context.Context, request *health.HealthCheckRequest) (*health.HealthCheckResponse, error) {
	return &health.HealthCheckResponse{
		Status: v.status(),
	}, nil
}

func (v *App) Watch(request *health.HealthCheckRequest, server health.Health_WatchServer) error {
	return status.Error(codes.Unimplemented, "watching health is not supported")
}

func (v *App) status() health.HealthCheckResponse_ServingStatus {
	if v.serving.Load() {
		return health.HealthCheckResponse_SERVING
	}
	return health.HealthCheckResponse_NOT_SERVING
}

// SetServing flips the reported health status.
func (v *App) SetServing(serving bool) {
	if v.serving.Swap(serving) != serving {
		log.Info().Bool("serving", serving).Msg("Health status changed.")
	}
}

// DoDatabaseProbe pings the database and reports the result as the health
// status of the service.
func (v *App) DoDatabaseProbe() {
	if err := database.Ping(); err != nil {
		log.Warn().Err(err).Msg("Database probe failed...")
		v.SetServing(false)
		return
	}
	v.SetServing(true)
}
