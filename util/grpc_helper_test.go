package util

import (
	"context"
	"net"
	"testing"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

func startBufconnServer(t *testing.T, interceptor grpc.UnaryServerInterceptor) *bufconn.Listener {
	t.Helper()

	listener := bufconn.Listen(1024 * 1024)

	server := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
	grpc_health_v1.RegisterHealthServer(server, health.NewServer())

	go func() {
		_ = server.Serve(listener)
	}()

	t.Cleanup(server.Stop)

	return listener
}

func bufconnDialer(listener *bufconn.Listener) grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return listener.DialContext(ctx)
	})
}

func TestGetGRPCClient(t *testing.T) {
	tSettings := &settings.Settings{}

	t.Run("address is required", func(t *testing.T) {
		conn, err := GetGRPCClient(context.Background(), "", &ConnectionOptions{}, tSettings)
		require.Error(t, err)
		assert.Nil(t, conn)
		assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
	})

	t.Run("invalid security level", func(t *testing.T) {
		_, err := GetGRPCClient(context.Background(), "localhost:1", &ConnectionOptions{SecurityLevel: 7}, tSettings)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrConfiguration))
	})

	t.Run("missing ca cert", func(t *testing.T) {
		_, err := GetGRPCClient(context.Background(), "localhost:1", &ConnectionOptions{
			SecurityLevel: 2,
			CaCertFile:    "/does/not/exist.pem",
		}, tSettings)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrConfiguration))
	})

	t.Run("default message size", func(t *testing.T) {
		options := &ConnectionOptions{}

		conn, err := GetGRPCClient(context.Background(), "localhost:1", options, tSettings)
		require.NoError(t, err)

		defer conn.Close()

		assert.Equal(t, oneGigabyte, options.MaxMessageSize)
	})
}

func TestGetGRPCClientSendsAPIKeyAndCredentials(t *testing.T) {
	var received metadata.MD

	listener := startBufconnServer(t, func(ctx context.Context, req interface{}, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		received, _ = metadata.FromIncomingContext(ctx)
		return handler(ctx, req)
	})

	conn, err := GetGRPCClient(context.Background(), "passthrough:///bufnet", &ConnectionOptions{
		APIKey:      "secret",
		Credentials: NewPassCredentials(map[string]string{"user": "gsrest"}),
		DialOptions: []grpc.DialOption{bufconnDialer(listener)},
	}, &settings.Settings{UsePrometheusGRPCMetrics: true})
	require.NoError(t, err)

	defer conn.Close()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())

	assert.Equal(t, []string{"secret"}, received.Get(apiKeyHeader))
	assert.Equal(t, []string{"gsrest"}, received.Get("user"))
}
