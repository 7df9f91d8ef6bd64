package httpimpl

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
	"github.com/bsv-blockchain/go-chaincfg"
	"github.com/labstack/echo/v4"
)

// GetMockHTTP returns a handler set backed by a mock client, plus an echo context
// and recorder for a GET / request that tests can point at any route.
func GetMockHTTP(t *testing.T, body io.Reader) (*HTTP, *graphsearch.Mock, echo.Context, *httptest.ResponseRecorder) {
	initPrometheusMetrics()

	mockClient := graphsearch.NewMock()

	req, err := http.NewRequest("GET", "/", body)
	if err != nil {
		t.Fatal(err)
	}

	req.RemoteAddr = "example.com"

	rec := httptest.NewRecorder()

	e := echo.New()
	c := e.NewContext(req, rec)

	httpServer := &HTTP{
		logger: ulogger.NewVerboseTestLogger(t),
		settings: &settings.Settings{
			ChainCfgParams: &chaincfg.MainNetParams,
			GraphSearch: settings.GraphSearchSettings{
				UtxoLimit:     settings.MaxUtxoLimit,
				AddressFormat: "cashaddr",
			},
		},
		client:    mockClient,
		e:         e,
		startTime: time.Now(),
	}

	return httpServer, mockClient, c, rec
}
