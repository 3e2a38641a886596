package facades

import (
	"context"

	"github.com/sbilibin2017/keuzekompas/internal/logger"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthGRPCFacade asks a running API server for its health over gRPC.
type HealthGRPCFacade struct {
	client healthpb.HealthClient
}

// NewHealthGRPCFacade creates a new facade with a gRPC health client.
func NewHealthGRPCFacade(client healthpb.HealthClient) *HealthGRPCFacade {
	return &HealthGRPCFacade{client: client}
}

// IsServing reports whether service is SERVING. An empty service asks for
// the overall status.
func (f *HealthGRPCFacade) IsServing(ctx context.Context, service string) (bool, error) {
	resp, err := f.client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		logger.Log.Errorw("failed to check health via gRPC", "service", service, "error", err)
		return false, err
	}

	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}

// Statuses checks several services and returns their status names.
func (f *HealthGRPCFacade) Statuses(ctx context.Context, services ...string) (map[string]string, error) {
	out := make(map[string]string, len(services))
	for _, service := range services {
		resp, err := f.client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		if err != nil {
			logger.Log.Errorw("failed to check health via gRPC", "service", service, "error", err)
			return nil, err
		}
		out[service] = resp.GetStatus().String()
	}
	return out, nil
}
