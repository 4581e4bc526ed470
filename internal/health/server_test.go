package health

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/Leganyst/wellness-catalog/internal/catalog"
)

type fakeCatalog struct {
	ready   bool
	backend string
}

func (f fakeCatalog) Ready() bool     { return f.ready }
func (f fakeCatalog) Backend() string { return f.backend }

func dial(t *testing.T, s *Server) healthpb.HealthClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.GRPC().Serve(lis) }()
	t.Cleanup(s.GRPC().Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, c healthpb.HealthClient, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := c.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestServer_Statuses(t *testing.T) {
	s := NewServer()
	c := dial(t, s)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, c, ""))

	s.Update(fakeCatalog{ready: true, backend: catalog.BackendStatic})
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, c, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, c, ServiceCatalog))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, c, ServiceRemote))

	s.Update(fakeCatalog{ready: true, backend: catalog.BackendRemote})
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, c, ServiceRemote))
}

func TestServer_UnknownService(t *testing.T) {
	c := dial(t, NewServer())
	_, err := c.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "billing"})
	require.Error(t, err)
}
