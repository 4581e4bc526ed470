// Package health поднимает gRPC-сервер со стандартным health-сервисом.
package health

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Leganyst/wellness-catalog/internal/catalog"
)

const (
	// Имена сервисов для grpc_health_v1.Check.
	ServiceCatalog = "catalog"
	ServiceRemote  = "catalog.remote"
)

// Catalog: то, что health-сервер спрашивает у каталога.
type Catalog interface {
	Ready() bool
	Backend() string
}

type Server struct {
	grpc   *grpc.Server
	health *health.Server
}

// NewServer регистрирует health и reflection. До вызова Update все сервисы
// NOT_SERVING.
func NewServer(opts ...grpc.ServerOption) *Server {
	s := &Server{
		grpc:   grpc.NewServer(opts...),
		health: health.NewServer(),
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	reflection.Register(s.grpc)

	for _, name := range []string{"", ServiceCatalog, ServiceRemote} {
		s.health.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
	}
	return s
}

// GRPC отдаёт сервер для Serve/GracefulStop.
func (s *Server) GRPC() *grpc.Server {
	return s.grpc
}

// Update выставляет статусы по текущему состоянию каталога.
func (s *Server) Update(c Catalog) {
	ready := status(c.Ready())
	s.health.SetServingStatus("", ready)
	s.health.SetServingStatus(ServiceCatalog, ready)
	s.health.SetServingStatus(ServiceRemote, status(c.Ready() && c.Backend() == catalog.BackendRemote))
}

// Shutdown переводит все сервисы в NOT_SERVING и останавливает сервер.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

func status(ok bool) healthpb.HealthCheckResponse_ServingStatus {
	if ok {
		return healthpb.HealthCheckResponse_SERVING
	}
	return healthpb.HealthCheckResponse_NOT_SERVING
}
