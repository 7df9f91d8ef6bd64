package settings

import (
	"net/url"

	"github.com/bsv-blockchain/go-chaincfg"
)

type GraphSearchSettings struct {
	GRPCAddress        string
	GRPCMaxMessageSize int
	GRPCAPIKey         string
	TLSCertFile        string
	TLSKeyFile         string
	TLSCACertFile      string
	HTTPListenAddress  string
	UtxoLimit          int
	AddressFormat      string
	EchoDebug          bool
}

type Settings struct {
	ServiceName    string
	Version        string
	Commit         string
	ClientName     string
	ChainCfgParams *chaincfg.Params

	LogLevel   string
	LoggerType string
	PrettyLogs bool

	SecurityLevelGRPC        int
	UsePrometheusGRPCMetrics bool

	TracingEnabled      bool
	TracingCollectorURL *url.URL
	TracingSampleRate   float64

	PrometheusEndpoint string
	StatsPrefix        string
	HealthCheckPort    int

	GraphSearch GraphSearchSettings
}
