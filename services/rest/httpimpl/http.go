// Package httpimpl serves the REST surface of the gateway and translates each
// request into a single call on the graph search backend.
package httpimpl

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
	"github.com/blockparty-sh/cpp-slp-graph-search/util/servicemanager"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ordishs/gocore"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var RestStat = gocore.NewStat("REST")

// HTTP holds the echo server and the backend client shared by every handler.
type HTTP struct {
	logger    ulogger.Logger
	settings  *settings.Settings
	client    graphsearch.ClientI
	e         *echo.Echo
	startTime time.Time
}

// New creates the echo server and registers all routes.
//
// API Endpoints:
//
//	Graph search:
//	- GET /graphsearch/{txid}: raw transactions of the graph of txid, base64
//
//	UTXOs:
//	- GET /utxo/{txid}/{vout}: single outpoint
//	- GET /utxo/{txid:vout,txid:vout,...}: list of outpoints
//	- GET /utxo_scriptpubkey/{hex}: by raw output script
//	- GET /address/utxos/{address}: by address, capped at graphsearch_utxo_limit
//
//	Balances:
//	- GET /address/balance/{address}
//	- GET /scriptpubkey/balance/{hex}
//
//	Health and status:
//	- GET /alive
//	- GET /health
//
// Every endpoint answers {"success":true,"data":...} or {"success":false,"error":"..."}.
func New(logger ulogger.Logger, tSettings *settings.Settings, client graphsearch.ClientI) (*HTTP, error) {
	if client == nil {
		return nil, errors.NewInvalidArgumentError("[REST_http] graph search client is required")
	}

	initPrometheusMetrics()

	e := echo.New()
	e.Debug = tSettings.GraphSearch.EchoDebug
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.Gzip())

	if e.Debug {
		e.Use(customLoggerMiddleware(logger))
	}

	h := &HTTP{
		logger:    logger,
		settings:  tSettings,
		client:    client,
		e:         e,
		startTime: time.Now(),
	}

	e.GET("/alive", func(c echo.Context) error {
		return c.String(http.StatusOK, fmt.Sprintf("REST service is alive. Uptime: %s\n", time.Since(h.startTime)))
	})

	e.GET("/health", func(c echo.Context) error {
		status, details, err := client.Health(c.Request().Context(), false)
		if err != nil || status != http.StatusOK {
			return c.String(http.StatusServiceUnavailable, details)
		}

		return c.String(http.StatusOK, details)
	})

	e.GET("/graphsearch/:txid", h.GraphSearch())

	e.GET("/utxo/:txid/:vout", h.GetUtxo())
	e.GET("/utxo/:outpoints", h.GetUtxos())
	e.GET("/utxo_scriptpubkey/:scriptpubkey", h.GetUtxosByScriptPubKey())

	e.GET("/address/utxos/:address", h.GetAddressUtxos())
	e.GET("/address/balance/:address", h.GetAddressBalance())

	e.GET("/scriptpubkey/balance/:scriptpubkey", h.GetScriptPubKeyBalance())

	if tSettings.StatsPrefix != "" {
		e.GET(tSettings.StatsPrefix+"stats", AdaptStdHandler(gocore.HandleStats))
		e.GET(tSettings.StatsPrefix+"reset", AdaptStdHandler(gocore.ResetStats))
		e.GET(tSettings.StatsPrefix+"*", AdaptStdHandler(gocore.HandleOther))
	}

	if tSettings.PrometheusEndpoint != "" {
		e.GET(tSettings.PrometheusEndpoint, echo.WrapHandler(promhttp.Handler()))
	}

	return h, nil
}

func AdaptStdHandler(handler func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return func(c echo.Context) error {
		handler(c.Response().Writer, c.Request())
		return nil
	}
}

func (h *HTTP) Init(_ context.Context) error {
	return nil
}

// Start serves on addr until ctx is cancelled.
func (h *HTTP) Start(ctx context.Context, addr string) error {
	go func() {
		<-ctx.Done()

		h.logger.Infof("[REST] HTTP (impl) service shutting down")

		if err := h.e.Shutdown(context.Background()); err != nil {
			h.logger.Errorf("[REST] HTTP (impl) service shutdown error: %s", err)
		}
	}()

	servicemanager.AddListenerInfo(fmt.Sprintf("REST HTTP listening on %s", addr))

	err := h.e.Start(addr)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (h *HTTP) Stop(ctx context.Context) error {
	return h.e.Shutdown(ctx)
}

// ServeHTTP lets the router be driven directly, mainly from tests.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.e.ServeHTTP(w, r)
}

// Middleware to log HTTP requests using the custom logger
func customLoggerMiddleware(logger ulogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			logger.Infof("http request: Method=%s, URI=%s, RemoteAddr=%s Status=%d, Duration=%v, err=%v", c.Request().Method, c.Request().RequestURI, c.Request().RemoteAddr, status, duration, err)

			return err
		}
	}
}
