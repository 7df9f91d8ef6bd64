// Package daemon wires the REST gateway, the graph search client and the
// health endpoint together and runs them under a ServiceManager.
package daemon

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/rest"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
	"github.com/blockparty-sh/cpp-slp-graph-search/util/servicemanager"
	"github.com/blockparty-sh/cpp-slp-graph-search/util/tracing"
)

const (
	serviceHelp       = "help"
	serviceRest       = "rest"
	serviceRestFormal = "Rest"

	loggerGraphSearchClient = "gsc"
)

type Daemon struct {
	Ctx           context.Context
	doneCh        chan struct{}
	closeDoneOnce sync.Once

	stopCh        chan struct{} // closed once every service has stopped
	closeStopOnce sync.Once
	mu            sync.Mutex
	started       bool

	ServiceManager *servicemanager.ServiceManager
	loggerFactory  func(serviceName string) ulogger.Logger
	clientFactory  func(ctx context.Context, logger ulogger.Logger, tSettings *settings.Settings) (graphsearch.ClientI, error)
}

func New(opts ...Option) *Daemon {
	d := &Daemon{
		Ctx:    context.Background(),
		doneCh: make(chan struct{}),
		stopCh: make(chan struct{}),
		loggerFactory: func(serviceName string) ulogger.Logger {
			return ulogger.New(serviceName)
		},
		clientFactory: func(ctx context.Context, logger ulogger.Logger, tSettings *settings.Settings) (graphsearch.ClientI, error) {
			return graphsearch.NewClient(ctx, logger, tSettings)
		},
	}

	for _, opt := range opts {
		opt(d)
	}

	d.ServiceManager = servicemanager.NewServiceManager(d.Ctx, d.loggerFactory("ServiceManager"))

	return d
}

// Stop asks a running daemon to shut down and waits up to timeout (default 10s)
// for its services to finish.
func (d *Daemon) Stop(timeout ...time.Duration) error {
	d.closeDoneOnce.Do(func() { close(d.doneCh) })

	d.mu.Lock()
	started := d.started
	d.mu.Unlock()

	if !started {
		d.closeStopOnce.Do(func() { close(d.stopCh) })
		return nil
	}

	shutdownTimeout := 10 * time.Second
	if len(timeout) > 0 {
		shutdownTimeout = timeout[0]
	}

	select {
	case <-d.stopCh:
		return nil
	case <-time.After(shutdownTimeout):
		return errors.NewProcessingError("timeout waiting for services to stop after %v", shutdownTimeout)
	}
}

// Start blocks until the services exit or Stop is called. readyCh, when given,
// is closed once every service accepts work.
func (d *Daemon) Start(logger ulogger.Logger, args []string, tSettings *settings.Settings, readyCh ...chan struct{}) {
	if shouldStart(serviceHelp, args) {
		printUsage()
		d.closeStopOnce.Do(func() { close(d.stopCh) })

		return
	}

	d.mu.Lock()
	d.started = true
	d.mu.Unlock()

	sm := d.ServiceManager

	if tSettings.TracingEnabled {
		logger.Infof("Starting tracer")

		if err := tracing.InitTracer(tSettings); err != nil {
			logger.Warnf("failed to initialize tracer: %v", err)
		}
	}

	var readyChInternal chan struct{}
	if len(readyCh) > 0 {
		readyChInternal = readyCh[0]
	}

	if err := d.startServices(sm.Ctx, logger, tSettings, sm, readyChInternal); err != nil {
		logger.Errorf("error starting services: %v", err)
		sm.ForceShutdown()
		d.closeDoneOnce.Do(func() { close(d.doneCh) })
	}

	server := d.startHealthServer(logger, sm, tSettings.HealthCheckPort)

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- sm.Wait()
	}()

	select {
	case err := <-waitErr:
		if err != nil {
			logger.Errorf("services failed: %v", err)
		}
	case <-d.doneCh:
		logger.Infof("daemon shutdown requested")

		sm.ForceShutdown()

		if err := <-waitErr; err != nil {
			logger.Errorf("error during service shutdown: %v", err)
		}

		logger.Infof("daemon shutdown completed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("Error shutting down health check server: %v", err)
	}
	cancel()

	if tSettings.TracingEnabled {
		if err := tracing.ShutdownTracer(context.Background()); err != nil {
			logger.Warnf("failed to shut down tracer: %v", err)
		}
	}

	d.closeStopOnce.Do(func() { close(d.stopCh) })
}

func (d *Daemon) startServices(ctx context.Context, logger ulogger.Logger, tSettings *settings.Settings,
	sm *servicemanager.ServiceManager, readyCh chan<- struct{}) error {
	client, err := d.clientFactory(ctx, d.loggerFactory(loggerGraphSearchClient), tSettings)
	if err != nil {
		return err
	}

	// the REST service owns the client from here on and closes it on Stop
	if err = sm.AddService(serviceRestFormal, rest.NewServer(d.loggerFactory(serviceRest), tSettings, client)); err != nil {
		return err
	}

	if readyCh != nil {
		go func() {
			if err := sm.WaitForServiceToBeReady(); err != nil {
				logger.Warnf("services never became ready: %v", err)
				return
			}

			logger.Infof("all services ready")
			close(readyCh)
		}()
	}

	return nil
}

func (d *Daemon) startHealthServer(logger ulogger.Logger, sm *servicemanager.ServiceManager, port int) *http.Server {
	healthFunc := func(liveness bool) func(http.ResponseWriter, *http.Request) {
		return func(w http.ResponseWriter, r *http.Request) {
			status, details, err := sm.HealthHandler(r.Context(), liveness)
			if err != nil {
				status = http.StatusServiceUnavailable
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(details))
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthFunc(false))
	mux.HandleFunc("/health/readiness", healthFunc(false))
	mux.HandleFunc("/health/liveness", healthFunc(true))
	mux.HandleFunc("/listeners", servicemanager.ListenerInfoHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 20 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("Error starting health check server: %v", err)
		}
	}()

	logger.Infof("Health check endpoint listening on http://localhost:%d/health", port)

	return server
}

// shouldStart reports whether -name=1 (or a bare -name) is present in args.
func shouldStart(name string, args []string) bool {
	for _, arg := range args {
		arg = strings.ToLower(strings.TrimLeft(arg, "-"))

		if arg == name || arg == name+"=1" || arg == name+"=true" {
			return true
		}
	}

	return false
}

func printUsage() {
	fmt.Println("usage: gsrest [options]")
	fmt.Println("where options are:")
	fmt.Println("")
	fmt.Println("    -help=<1|0>")
	fmt.Println("          show this help")
	fmt.Println("")
	fmt.Println("settings are read from settings.conf, settings_local.conf and the environment:")
	fmt.Println("    graphsearch_grpc_server_bind   backend address (default localhost:50051)")
	fmt.Println("    graphsearch_http_port          REST port (default 8080)")
	fmt.Println("    graphsearch_utxo_limit         UTXO cap for address lookups (max 10000)")
	fmt.Println("    graphsearch_address_format     cashaddr or legacy")
	fmt.Println("    health_check_port              health endpoint port (default 8000)")
}
