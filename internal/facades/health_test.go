package facades

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// --- Fake gRPC client ---
type fakeHealthClient struct {
	healthpb.HealthClient

	statuses map[string]healthpb.HealthCheckResponse_ServingStatus
	err      error
}

func (f *fakeHealthClient) Check(ctx context.Context, req *healthpb.HealthCheckRequest, opts ...grpc.CallOption) (*healthpb.HealthCheckResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &healthpb.HealthCheckResponse{Status: f.statuses[req.Service]}, nil
}

// --- Tests ---
func TestIsServing(t *testing.T) {
	client := &fakeHealthClient{
		statuses: map[string]healthpb.HealthCheckResponse_ServingStatus{
			"":      healthpb.HealthCheckResponse_SERVING,
			"redis": healthpb.HealthCheckResponse_NOT_SERVING,
		},
	}
	facade := NewHealthGRPCFacade(client)

	ok, err := facade.IsServing(context.Background(), "")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = facade.IsServing(context.Background(), "redis")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestIsServing_Error(t *testing.T) {
	facade := NewHealthGRPCFacade(&fakeHealthClient{err: errors.New("grpc error")})

	ok, err := facade.IsServing(context.Background(), "")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestStatuses(t *testing.T) {
	client := &fakeHealthClient{
		statuses: map[string]healthpb.HealthCheckResponse_ServingStatus{
			"postgres": healthpb.HealthCheckResponse_SERVING,
			"redis":    healthpb.HealthCheckResponse_NOT_SERVING,
		},
	}
	facade := NewHealthGRPCFacade(client)

	statuses, err := facade.Statuses(context.Background(), "postgres", "redis")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"postgres": "SERVING", "redis": "NOT_SERVING"}, statuses)
}

func TestStatuses_Error(t *testing.T) {
	facade := NewHealthGRPCFacade(&fakeHealthClient{err: errors.New("grpc error")})

	statuses, err := facade.Statuses(context.Background(), "postgres")
	assert.Error(t, err)
	assert.Nil(t, statuses)
}
