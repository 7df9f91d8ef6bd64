package daemon

import (
	"context"

	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
)

// Option is a functional option type for configuring the Daemon.
type Option func(*Daemon)

// WithLoggerFactory provides a custom logger factory for the Daemon and its services.
func WithLoggerFactory(factory func(serviceName string) ulogger.Logger) Option {
	return func(d *Daemon) {
		d.loggerFactory = factory
	}
}

// WithContext allows setting a custom context for the Daemon.
func WithContext(ctx context.Context) Option {
	return func(d *Daemon) {
		d.Ctx = ctx
	}
}

// WithGraphSearchClient replaces the gRPC backend client, used by tests to run
// the daemon against a mock.
func WithGraphSearchClient(client graphsearch.ClientI) Option {
	return func(d *Daemon) {
		d.clientFactory = func(context.Context, ulogger.Logger, *settings.Settings) (graphsearch.ClientI, error) {
			return client, nil
		}
	}
}
