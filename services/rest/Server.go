// Package rest runs the REST gateway in front of the graph search backend.
package rest

import (
	"context"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/rest/httpimpl"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
	"github.com/blockparty-sh/cpp-slp-graph-search/util/health"
)

type Server struct {
	logger     ulogger.Logger
	settings   *settings.Settings
	client     graphsearch.ClientI
	httpAddr   string
	httpServer *httpimpl.HTTP
}

// NewServer creates the REST service. client is shared by every request and
// must be safe for concurrent use.
func NewServer(logger ulogger.Logger, tSettings *settings.Settings, client graphsearch.ClientI) *Server {
	return &Server{
		logger:   logger,
		settings: tSettings,
		client:   client,
	}
}

func (s *Server) Health(ctx context.Context, checkLiveness bool) (int, string, error) {
	if checkLiveness {
		return health.CheckAll(ctx, checkLiveness, nil)
	}

	checks := []health.Check{
		{Name: health.CheckGraphSearch, Check: s.client.Health},
	}

	if s.httpServer != nil {
		checks = append(checks, health.Check{Name: health.CheckRESTListener, Check: health.CheckHTTPListener(s.httpAddr, "/alive")})
	}

	return health.CheckAll(ctx, checkLiveness, checks)
}

func (s *Server) Init(ctx context.Context) (err error) {
	s.httpAddr = s.settings.GraphSearch.HTTPListenAddress
	if s.httpAddr == "" {
		return errors.NewConfigurationError("no graphsearch_httpListenAddress setting found")
	}

	s.httpServer, err = httpimpl.New(s.logger, s.settings, s.client)
	if err != nil {
		return errors.NewServiceError("error creating http server", err)
	}

	if err = s.httpServer.Init(ctx); err != nil {
		return errors.NewServiceError("error initializing http server", err)
	}

	return nil
}

// Start serves HTTP until ctx is cancelled. readyCh is closed just before the
// listener starts.
func (s *Server) Start(ctx context.Context, readyCh chan<- struct{}) error {
	if s.httpServer == nil {
		return errors.NewServiceNotStartedError("[REST] Init must be called before Start")
	}

	close(readyCh)

	if err := s.httpServer.Start(ctx, s.httpAddr); err != nil {
		s.logger.Errorf("[REST] error in http server: %v", err)
		return errors.NewServiceError("[REST] http server ended with error", err)
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer != nil {
		s.logger.Infof("[REST] Stopping http server")

		if err := s.httpServer.Stop(ctx); err != nil {
			s.logger.Errorf("[REST] error stopping http server: %v", err)
		}
	}

	if err := s.client.Close(); err != nil {
		s.logger.Warnf("[REST] error closing graph search connection: %v", err)
	}

	return nil
}
