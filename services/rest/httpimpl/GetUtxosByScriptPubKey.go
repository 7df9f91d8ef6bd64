package httpimpl

import (
	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/util/tracing"
	"github.com/labstack/echo/v4"
)

// GetUtxosByScriptPubKey returns the unspent outputs locked by a raw script.
//
// URL Parameters:
//   - scriptpubkey: locking script as hex, in script order
//
// Query Parameters:
//   - limit: optional, can only lower the configured limit
//
// HTTP Response:
//
//	{"success": true, "data": [{"prevTxId", "prevOutIdx", "height", "value"}]}
func (h *HTTP) GetUtxosByScriptPubKey() func(c echo.Context) error {
	return func(c echo.Context) error {
		scriptHex, err := pathParam(c, "scriptpubkey", errors.NewMalformedHexError)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetUtxosByScriptPubKey, err)
		}

		ctx, _, deferFn := tracing.Tracer("rest").Start(c.Request().Context(), "GetUtxosByScriptPubKey_http",
			tracing.WithParentStat(RestStat),
			tracing.WithDebugLogMessage(h.logger, "[REST_http] GetUtxosByScriptPubKey for %s: %s", c.Request().RemoteAddr, scriptHex),
		)
		defer deferFn()

		script, err := scriptFromHex(scriptHex)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetUtxosByScriptPubKey, err)
		}

		limit, err := h.utxoLimit(c)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetUtxosByScriptPubKey, err)
		}

		outputs, err := h.client.UtxoSearchByScriptPubKey(ctx, script, limit)
		if err != nil {
			h.logger.Errorf("[REST_http][%s] GetUtxosByScriptPubKey error: %v", scriptHex, err)
			return h.fail(c, prometheusRestHttpGetUtxosByScriptPubKey, err)
		}

		return h.ok(c, prometheusRestHttpGetUtxosByScriptPubKey, toScriptUtxos(outputs))
	}
}
