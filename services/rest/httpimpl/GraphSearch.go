package httpimpl

import (
	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/model"
	"github.com/blockparty-sh/cpp-slp-graph-search/util/tracing"
	"github.com/labstack/echo/v4"
)

// GraphSearch returns the raw transactions that make up the graph of a txid.
//
// URL Parameters:
//   - txid: transaction id, 64 hex characters in display order
//
// HTTP Response:
//
//	{"success": true, "data": ["<base64 raw tx>", ...]}
//
// The txid is checked locally and then handed to the backend exactly as typed,
// the backend expects display order for this call.
func (h *HTTP) GraphSearch() func(c echo.Context) error {
	return func(c echo.Context) error {
		txid, err := pathParam(c, "txid", errors.NewMalformedHexError)
		if err != nil {
			return h.fail(c, prometheusRestHttpGraphSearch, err)
		}

		ctx, _, deferFn := tracing.Tracer("rest").Start(c.Request().Context(), "GraphSearch_http",
			tracing.WithParentStat(RestStat),
			tracing.WithDebugLogMessage(h.logger, "[REST_http] GraphSearch for %s: %s", c.Request().RemoteAddr, txid),
		)
		defer deferFn()

		if _, err = model.NewTxIDFromHex(txid); err != nil {
			return h.fail(c, prometheusRestHttpGraphSearch, err)
		}

		txdata, err := h.client.GraphSearch(ctx, txid)
		if err != nil {
			h.logger.Errorf("[REST_http][%s] GraphSearch error: %v", txid, err)
			return h.fail(c, prometheusRestHttpGraphSearch, err)
		}

		if txdata == nil {
			txdata = [][]byte{}
		}

		return h.ok(c, prometheusRestHttpGraphSearch, txdata)
	}
}
