package health

import (
	"context"
	"time"

	"github.com/sbilibin2017/keuzekompas/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the gRPC health service name reported for the catalog API.
const ServiceName = "keuzekompas.Catalog"

// Probe checks one dependency of the service.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// Server publishes dependency health over the standard gRPC health protocol.
// The overall ("") and ServiceName statuses are SERVING only while every
// probe passes; each probe is also reported under its own name.
type Server struct {
	hs       *health.Server
	probes   []Probe
	interval time.Duration
	timeout  time.Duration
}

// NewServer creates a health server. Every status starts as NOT_SERVING
// until the first Refresh.
func NewServer(interval, timeout time.Duration, probes ...Probe) *Server {
	s := &Server{
		hs:       health.NewServer(),
		probes:   probes,
		interval: interval,
		timeout:  timeout,
	}

	s.hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	s.hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	for _, p := range probes {
		s.hs.SetServingStatus(p.Name, healthpb.HealthCheckResponse_NOT_SERVING)
	}

	return s
}

// Register attaches the health service to a gRPC server.
func (s *Server) Register(gs *grpc.Server) {
	healthpb.RegisterHealthServer(gs, s.hs)
}

// Refresh runs every probe once and updates the published statuses.
// It reports whether all probes passed.
func (s *Server) Refresh(ctx context.Context) bool {
	healthy := true

	for _, p := range s.probes {
		status := healthpb.HealthCheckResponse_SERVING

		probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := p.Check(probeCtx)
		cancel()

		if err != nil {
			logger.Log.Warnw("health probe failed", "probe", p.Name, "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
			healthy = false
		}
		s.hs.SetServingStatus(p.Name, status)
	}

	overall := healthpb.HealthCheckResponse_NOT_SERVING
	if healthy {
		overall = healthpb.HealthCheckResponse_SERVING
	}
	s.hs.SetServingStatus("", overall)
	s.hs.SetServingStatus(ServiceName, overall)

	return healthy
}

// Run refreshes the statuses every interval until ctx is done, then marks
// everything NOT_SERVING so watchers see the shutdown.
func (s *Server) Run(ctx context.Context) {
	s.Refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.hs.Shutdown()
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}
