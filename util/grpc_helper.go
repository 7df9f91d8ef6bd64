package util

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"os"
	"sync"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	prometheusgolang "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/resolver"
)

const (
	oneGigabyte = 1024 * 1024 * 1024

	apiKeyHeader = "x-api-key"
)

// PasswordCredentials -----------------------------------------------
// The PasswordCredentials type and the receivers it implements, allow
// us to use the grpc.WithPerRPCCredentials() dial option to pass
// credentials to downstream middleware
type PasswordCredentials map[string]string

// NewPassCredentials creates a new PasswordCredentials instance from a map of key-value pairs.
// These credentials are passed as metadata with each gRPC request for downstream authentication.
func NewPassCredentials(m map[string]string) PasswordCredentials {
	return m
}

// GetRequestMetadata retrieves the request metadata for the gRPC call.
func (pc PasswordCredentials) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return pc, nil
}

// RequireTransportSecurity indicates whether the credentials require transport security.
func (PasswordCredentials) RequireTransportSecurity() bool {
	return false
}

// ---------------------------------------------------------------------

// ConnectionOptions contains configuration parameters for establishing gRPC client connections,
// including security settings, authentication and message size limits. Calls are never retried.
type ConnectionOptions struct {
	MaxMessageSize int                 // Max message size in bytes
	SecurityLevel  int                 // 0 = insecure, 1 = secure, 2 = secure with client cert
	CertFile       string              // Client cert file if SecurityLevel > 1
	CaCertFile     string              // CA cert file if SecurityLevel > 1
	KeyFile        string              // Client key file if SecurityLevel > 1
	Credentials    PasswordCredentials // Credentials to pass to downstream middleware (optional)
	APIKey         string              // API key for authentication
	DialOptions    []grpc.DialOption   // Extra dial options, appended last
}

// ---------------------------------------------------------------------

func init() {
	// The secret sauce
	resolver.SetDefaultScheme("dns")
}

// GetGRPCClient creates a new gRPC client connection with the specified options.
// Handles TLS configuration, authentication, metrics, and tracing based on settings.
// Returns a connection that should be closed by the caller when no longer needed.
func GetGRPCClient(_ context.Context, address string, connectionOptions *ConnectionOptions, tSettings *settings.Settings) (*grpc.ClientConn, error) {
	if address == "" {
		return nil, errors.NewInvalidArgumentError("address is required")
	}

	if connectionOptions.MaxMessageSize == 0 {
		connectionOptions.MaxMessageSize = oneGigabyte
	}

	opts := []grpc.DialOption{
		// grpc.WithDefaultServiceConfig(`{"loadBalancingPolicy":"round_robin"}`),
		grpc.WithDefaultServiceConfig(`{"loadBalancingConfig": [{"round_robin":{}}]}`),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallSendMsgSize(connectionOptions.MaxMessageSize),
			grpc.MaxCallRecvMsgSize(connectionOptions.MaxMessageSize),
		),
		grpc.WithDisableServiceConfig(),
	}

	if connectionOptions.SecurityLevel == 0 {
		securityLevel := tSettings.SecurityLevelGRPC
		connectionOptions.SecurityLevel = securityLevel
	}

	tlsCredentials, err := loadTLSCredentials(connectionOptions)
	if err != nil {
		return nil, err
	}

	opts = append(opts, grpc.WithTransportCredentials(tlsCredentials))

	// Preallocate interceptor slices with reasonable capacity
	unaryClientInterceptors := make([]grpc.UnaryClientInterceptor, 0, 3)
	streamClientInterceptors := make([]grpc.StreamClientInterceptor, 0, 3)

	if connectionOptions.APIKey != "" {
		unaryClientInterceptors = append(unaryClientInterceptors,
			func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn,
				invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
				ctx = metadata.AppendToOutgoingContext(ctx, apiKeyHeader, connectionOptions.APIKey)
				return invoker(ctx, method, req, reply, cc, opts...)
			})

		streamClientInterceptors = append(streamClientInterceptors,
			func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn,
				method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
				ctx = metadata.AppendToOutgoingContext(ctx, apiKeyHeader, connectionOptions.APIKey)
				return streamer(ctx, desc, cc, method, opts...)
			})
	}

	// add tracing, which is configured and enabled in the config
	if tSettings.TracingEnabled {
		opts = append(opts, grpc.WithStatsHandler(otelgrpc.NewClientHandler()))
	}

	prometheusGRPCMetrics := tSettings.UsePrometheusGRPCMetrics
	if prometheusGRPCMetrics {
		prometheusClientMetrics := prometheus.NewClientMetrics(
			prometheus.WithClientStreamSendHistogram(),
			prometheus.WithClientStreamRecvHistogram(),
			prometheus.WithClientHandlingTimeHistogram(),
		)

		unaryClientInterceptors = append(unaryClientInterceptors, prometheusClientMetrics.UnaryClientInterceptor())
		streamClientInterceptors = append(streamClientInterceptors, prometheusClientMetrics.StreamClientInterceptor())

		prometheusRegisterClientOnce.Do(func() {
			prometheusgolang.MustRegister(prometheusClientMetrics)
		})
	}

	if len(unaryClientInterceptors) > 0 {
		opts = append(opts, grpc.WithChainUnaryInterceptor(unaryClientInterceptors...))
	}

	if len(streamClientInterceptors) > 0 {
		opts = append(opts, grpc.WithChainStreamInterceptor(streamClientInterceptors...))
	}

	if connectionOptions.Credentials != nil {
		opts = append(opts, grpc.WithPerRPCCredentials(connectionOptions.Credentials))
	}

	opts = append(opts, connectionOptions.DialOptions...)

	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, errors.NewServiceError("error dialing grpc service at %s", address, err)
	}

	return conn, nil
}

var prometheusRegisterClientOnce sync.Once

// loadTLSCredentials configures client TLS transport credentials based on the security level:
//   - Level 0: No security (insecure connection)
//   - Level 1: TLS, server certificate not verified
//   - Level 2 and 3: TLS presenting a client certificate, trusting the configured CA
func loadTLSCredentials(connectionData *ConnectionOptions) (credentials.TransportCredentials, error) {
	switch connectionData.SecurityLevel {
	case 0:
		// No security
		return insecure.NewCredentials(), nil

	case 1:
		return credentials.NewTLS(&tls.Config{
			//nolint:gosec // G402: TLS InsecureSkipVerify set true. (gosec)
			InsecureSkipVerify: true,
		}), nil

	case 2, 3:
		// Load the server's CA certificate from disk
		caCert, err := os.ReadFile(connectionData.CaCertFile)
		if err != nil {
			return nil, errors.NewConfigurationError("failed to read ca cert file", err)
		}

		caCertPool := x509.NewCertPool()
		caCertPool.AppendCertsFromPEM(caCert)

		cert, err := tls.LoadX509KeyPair(connectionData.CertFile, connectionData.KeyFile)
		if err != nil {
			return nil, errors.NewConfigurationError("failed to read key pair", err)
		}

		return credentials.NewTLS(&tls.Config{
			Certificates: []tls.Certificate{cert},
			//nolint:gosec //  G402: TLS InsecureSkipVerify set true. (gosec)
			InsecureSkipVerify: true,
			RootCAs:            caCertPool,
		}), nil
	}

	return nil, errors.NewConfigurationError("securityLevel must be 0, 1, 2 or 3")
}
