package health

import (
	"context"
	"log"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported for the API.
const ServiceName = "optics.Storefront"

// DefaultInterval is how often the store is probed.
const DefaultInterval = 15 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is a gRPC server exposing the standard health service and
// reflection. Serving status follows the store's reachability.
type Server struct {
	grpc     *grpc.Server
	health   *grpchealth.Server
	pinger   Pinger
	interval time.Duration

	stopOnce sync.Once
	done     chan struct{}
}

// NewServer creates a health server probing pinger every interval.
func NewServer(pinger Pinger, interval time.Duration) *Server {
	if interval <= 0 {
		interval = DefaultInterval
	}

	s := &Server{
		grpc:     grpc.NewServer(),
		health:   grpchealth.NewServer(),
		pinger:   pinger,
		interval: interval,
		done:     make(chan struct{}),
	}

	healthpb.RegisterHealthServer(s.grpc, s.health)
	reflection.Register(s.grpc)
	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Probe pings the store once and updates the serving status.
func (s *Server) Probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if err := s.pinger.Ping(ctx); err != nil {
		log.Printf("health probe failed: %v", err)
		s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	s.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Serve probes the store, then serves on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.Probe(context.Background())
	go s.watch()
	return s.grpc.Serve(lis)
}

// Stop marks every service NOT_SERVING and drains in-flight RPCs.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.health.Shutdown()
		s.grpc.GracefulStop()
	})
}

func (s *Server) watch() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.Probe(context.Background())
		}
	}
}

func (s *Server) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
