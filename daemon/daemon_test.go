package daemon

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
	"github.com/bsv-blockchain/go-chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	return port
}

func testSettings(t *testing.T) *settings.Settings {
	return &settings.Settings{
		ServiceName:     "gsrest",
		ChainCfgParams:  &chaincfg.MainNetParams,
		HealthCheckPort: freePort(t),
		GraphSearch: settings.GraphSearchSettings{
			GRPCAddress:       "localhost:50051",
			HTTPListenAddress: fmt.Sprintf(":%d", freePort(t)),
			UtxoLimit:         settings.MaxUtxoLimit,
			AddressFormat:     "cashaddr",
		},
	}
}

func TestNew(t *testing.T) {
	d := New()
	require.NotNil(t, d)
	require.NotNil(t, d.doneCh)
	require.NotNil(t, d.stopCh)
	require.NotNil(t, d.ServiceManager)
}

func TestNew_WithOptions(t *testing.T) {
	t.Run("WithLoggerFactory", func(t *testing.T) {
		var loggerFactoryUsed bool

		d := New(WithLoggerFactory(func(serviceName string) ulogger.Logger {
			loggerFactoryUsed = true
			return ulogger.New(serviceName, ulogger.WithWriter(io.Discard))
		}))
		require.NotNil(t, d)

		// the service manager logger is created in New
		assert.True(t, loggerFactoryUsed)
	})

	t.Run("WithContext", func(t *testing.T) {
		customCtx, cancel := context.WithCancel(context.Background())

		d := New(WithContext(customCtx))
		assert.Equal(t, customCtx, d.Ctx)

		cancel()

		select {
		case <-d.ServiceManager.Ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for service manager context to be cancelled")
		}
	})

	t.Run("WithGraphSearchClient", func(t *testing.T) {
		mockClient := graphsearch.NewMock()

		d := New(WithGraphSearchClient(mockClient))

		client, err := d.clientFactory(context.Background(), ulogger.TestLogger{}, &settings.Settings{})
		require.NoError(t, err)
		assert.Same(t, mockClient, client)
	})
}

func TestShouldStart(t *testing.T) {
	assert.True(t, shouldStart("help", []string{"-help"}))
	assert.True(t, shouldStart("help", []string{"--help=1"}))
	assert.True(t, shouldStart("help", []string{"-HELP=true"}))
	assert.False(t, shouldStart("help", []string{"-help=0"}))
	assert.False(t, shouldStart("help", nil))
}

func TestStartHelp(t *testing.T) {
	d := New(WithLoggerFactory(func(string) ulogger.Logger { return ulogger.TestLogger{} }))

	d.Start(ulogger.TestLogger{}, []string{"-help"}, testSettings(t))

	require.NoError(t, d.Stop(time.Second))
}

func TestStopBeforeStart(t *testing.T) {
	d := New(WithLoggerFactory(func(string) ulogger.Logger { return ulogger.TestLogger{} }))

	require.NoError(t, d.Stop())
	require.NoError(t, d.Stop())
}

func TestStartAndStop(t *testing.T) {
	tSettings := testSettings(t)

	mockClient := graphsearch.NewMock()
	mockClient.On("Health", mock.Anything, false).Return(http.StatusOK, "graphsearch connection is READY", nil)
	mockClient.On("Close").Return(nil)

	d := New(
		WithLoggerFactory(func(string) ulogger.Logger { return ulogger.TestLogger{} }),
		WithGraphSearchClient(mockClient),
	)

	readyCh := make(chan struct{})
	doneCh := make(chan struct{})

	go func() {
		d.Start(ulogger.TestLogger{}, nil, tSettings, readyCh)
		close(doneCh)
	}()

	select {
	case <-readyCh:
	case <-time.After(5 * time.Second):
		t.Fatal("daemon did not become ready")
	}

	healthURL := fmt.Sprintf("http://localhost:%d/health", tSettings.HealthCheckPort)

	require.Eventually(t, func() bool {
		resp, err := http.Get(healthURL + "/liveness") //nolint:gosec // test URL
		if err != nil {
			return false
		}

		defer resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	require.Eventually(t, func() bool {
		resp, err := http.Get(healthURL + "/readiness") //nolint:gosec // test URL
		if err != nil {
			return false
		}

		defer resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	require.NoError(t, d.Stop(5*time.Second))

	select {
	case <-doneCh:
	case <-time.After(5 * time.Second):
		t.Fatal("daemon did not stop")
	}

	mockClient.AssertCalled(t, "Close")
}
