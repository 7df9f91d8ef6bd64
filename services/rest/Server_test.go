package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
	"github.com/blockparty-sh/cpp-slp-graph-search/util/health"
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

func testSettings(addr string) *settings.Settings {
	return &settings.Settings{
		ChainCfgParams: &chaincfg.MainNetParams,
		GraphSearch: settings.GraphSearchSettings{
			HTTPListenAddress: addr,
			UtxoLimit:         settings.MaxUtxoLimit,
			AddressFormat:     "cashaddr",
		},
	}
}

func TestServerInitRequiresAddress(t *testing.T) {
	server := NewServer(ulogger.TestLogger{}, testSettings(""), graphsearch.NewMock())

	err := server.Init(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestServerStartBeforeInit(t *testing.T) {
	server := NewServer(ulogger.TestLogger{}, testSettings(":0"), graphsearch.NewMock())

	err := server.Start(context.Background(), make(chan struct{}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrServiceNotStarted))
}

func TestServerLifecycle(t *testing.T) {
	port := freePort(t)

	mockClient := graphsearch.NewMock()
	mockClient.On("Health", mock.Anything, false).Return(http.StatusOK, "graphsearch connection is READY", nil)
	mockClient.On("Close").Return(nil)

	server := NewServer(ulogger.NewVerboseTestLogger(t), testSettings(fmt.Sprintf(":%d", port)), mockClient)
	require.NoError(t, server.Init(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	readyCh := make(chan struct{})
	errCh := make(chan error, 1)

	go func() {
		errCh <- server.Start(ctx, readyCh)
	}()

	<-readyCh

	require.Eventually(t, func() bool {
		status, _, _ := server.Health(ctx, false)
		return status == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	status, _, err := server.Health(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	require.NoError(t, server.Stop(context.Background()))
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	mockClient.AssertCalled(t, "Close")
}

func TestServerHealthReportsBackend(t *testing.T) {
	mockClient := graphsearch.NewMock()
	mockClient.On("Health", mock.Anything, false).Return(http.StatusServiceUnavailable, "graphsearch connection is TRANSIENT_FAILURE", nil)

	server := NewServer(ulogger.TestLogger{}, testSettings(":0"), mockClient)

	status, details, err := server.Health(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, status)

	var report health.Report
	require.NoError(t, json.Unmarshal([]byte(details), &report))

	require.Len(t, report.Checks, 1)
	assert.Equal(t, health.CheckGraphSearch, report.Checks[0].Name)
	assert.Contains(t, report.Checks[0].Message, "TRANSIENT_FAILURE")
}
