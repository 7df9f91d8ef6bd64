package httpimpl

import (
	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/model"
	"github.com/blockparty-sh/cpp-slp-graph-search/util/tracing"
	"github.com/labstack/echo/v4"
)

// GetUtxo looks up a single outpoint given as /utxo/{txid}/{vout}.
//
// HTTP Response:
//
//	{"success": true, "data": [{"prevTxId", "prevOutIdx", "height", "value", "pkScript", "address"}]}
//
// An empty list means the output is spent or unknown.
func (h *HTTP) GetUtxo() func(c echo.Context) error {
	return func(c echo.Context) error {
		txid, err := pathParam(c, "txid", errors.NewMalformedOutpointError)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetUtxos, err)
		}

		vout, err := pathParam(c, "vout", errors.NewMalformedOutpointError)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetUtxos, err)
		}

		token := txid + ":" + vout

		ctx, _, deferFn := tracing.Tracer("rest").Start(c.Request().Context(), "GetUtxo_http",
			tracing.WithParentStat(RestStat),
			tracing.WithDebugLogMessage(h.logger, "[REST_http] GetUtxo for %s: %s", c.Request().RemoteAddr, token),
		)
		defer deferFn()

		outpoint, err := model.ParseOutpoint(token)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetUtxos, err)
		}

		outputs, err := h.client.UtxoSearchByOutpoints(ctx, []model.Outpoint{outpoint})
		if err != nil {
			h.logger.Errorf("[REST_http][%s] GetUtxo error: %v", outpoint, err)
			return h.fail(c, prometheusRestHttpGetUtxos, err)
		}

		return h.ok(c, prometheusRestHttpGetUtxos, h.toUtxoRecords(outputs))
	}
}

// GetUtxos looks up a comma separated list of txid:vout outpoints. One malformed
// outpoint fails the whole request before the backend is called.
func (h *HTTP) GetUtxos() func(c echo.Context) error {
	return func(c echo.Context) error {
		list, err := pathParam(c, "outpoints", errors.NewMalformedOutpointError)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetUtxos, err)
		}

		ctx, _, deferFn := tracing.Tracer("rest").Start(c.Request().Context(), "GetUtxos_http",
			tracing.WithParentStat(RestStat),
			tracing.WithDebugLogMessage(h.logger, "[REST_http] GetUtxos for %s: %s", c.Request().RemoteAddr, list),
		)
		defer deferFn()

		outpoints, err := model.ParseOutpoints(list)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetUtxos, err)
		}

		outputs, err := h.client.UtxoSearchByOutpoints(ctx, outpoints)
		if err != nil {
			h.logger.Errorf("[REST_http] GetUtxos error for %d outpoints: %v", len(outpoints), err)
			return h.fail(c, prometheusRestHttpGetUtxos, err)
		}

		return h.ok(c, prometheusRestHttpGetUtxos, h.toUtxoRecords(outputs))
	}
}
