package settings

import (
	"fmt"
	"strings"

	"github.com/bsv-blockchain/go-chaincfg"
)

const (
	// MaxUtxoLimit is the most UTXOs a single address lookup may ask the backend for.
	MaxUtxoLimit = 10000

	oneGigabyte = 1024 * 1024 * 1024
)

func NewSettings() *Settings {
	params, err := chaincfg.GetChainParams(getString("network", "mainnet"))
	if err != nil {
		panic(err)
	}

	utxoLimit := getInt("graphsearch_utxo_limit", MaxUtxoLimit)
	if utxoLimit <= 0 || utxoLimit > MaxUtxoLimit {
		utxoLimit = MaxUtxoLimit
	}

	return &Settings{
		ServiceName:    getString("SERVICE_NAME", "gsrest"),
		ClientName:     getString("clientName", "gsrest"),
		ChainCfgParams: params,

		LogLevel:   getString("logLevel", "INFO"),
		LoggerType: getString("logger_type", "zerolog"),
		PrettyLogs: getBool("PRETTY_LOGS", true),

		SecurityLevelGRPC:        getInt("securityLevelGRPC", 0),
		UsePrometheusGRPCMetrics: getBool("use_prometheus_grpc_metrics", true),

		TracingEnabled:      getBool("tracing_enabled", false),
		TracingCollectorURL: getURL("tracing_collector_url", "http://localhost:4318"),
		TracingSampleRate:   getFloat64("tracing_sample_rate", 0.01),

		PrometheusEndpoint: getString("prometheusEndpoint", "/metrics"),
		StatsPrefix:        getString("stats_prefix", "/stats/"),
		HealthCheckPort:    getInt("health_check_port", 8000),

		GraphSearch: GraphSearchSettings{
			GRPCAddress:        getString("graphsearch_grpc_server_bind", "localhost:50051"),
			GRPCMaxMessageSize: getInt("graphsearch_grpc_max_message_size", oneGigabyte),
			GRPCAPIKey:         getString("graphsearch_grpc_api_key", ""),
			TLSCertFile:        getString("graphsearch_grpc_certFile", ""),
			TLSKeyFile:         getString("graphsearch_grpc_keyFile", ""),
			TLSCACertFile:      getString("graphsearch_grpc_caCertFile", ""),
			HTTPListenAddress:  httpListenAddress(),
			UtxoLimit:          utxoLimit,
			AddressFormat:      strings.ToLower(getString("graphsearch_address_format", "cashaddr")),
			EchoDebug:          getBool("graphsearch_echo_debug", false),
		},
	}
}

// httpListenAddress prefers graphsearch_httpListenAddress and falls back to the
// bare port in graphsearch_http_port.
func httpListenAddress() string {
	if addr := getString("graphsearch_httpListenAddress", ""); addr != "" {
		return addr
	}

	return fmt.Sprintf(":%d", getInt("graphsearch_http_port", 8080))
}
