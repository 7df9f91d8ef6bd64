package httpimpl

import (
	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/util/tracing"
	"github.com/labstack/echo/v4"
)

// GetAddressUtxos returns the unspent outputs paying to an address, cash address
// or legacy format, at most graphsearch_utxo_limit of them.
//
// HTTP Response:
//
//	{"success": true, "data": [{"prevTxId", "prevOutIdx", "height", "value", "pkScript", "address"}]}
func (h *HTTP) GetAddressUtxos() func(c echo.Context) error {
	return func(c echo.Context) error {
		address, err := pathParam(c, "address", errors.NewInvalidAddressError)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetAddressUtxos, err)
		}

		ctx, _, deferFn := tracing.Tracer("rest").Start(c.Request().Context(), "GetAddressUtxos_http",
			tracing.WithParentStat(RestStat),
			tracing.WithDebugLogMessage(h.logger, "[REST_http] GetAddressUtxos for %s: %s", c.Request().RemoteAddr, address),
		)
		defer deferFn()

		script, err := h.addressScript(address)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetAddressUtxos, err)
		}

		limit, err := h.utxoLimit(c)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetAddressUtxos, err)
		}

		outputs, err := h.client.UtxoSearchByScriptPubKey(ctx, script, limit)
		if err != nil {
			h.logger.Errorf("[REST_http][%s] GetAddressUtxos error: %v", address, err)
			return h.fail(c, prometheusRestHttpGetAddressUtxos, err)
		}

		return h.ok(c, prometheusRestHttpGetAddressUtxos, h.toUtxoRecords(outputs))
	}
}

// GetAddressBalance returns the sum in satoshis of the unspent outputs paying to an address.
//
// HTTP Response:
//
//	{"success": true, "data": 1234}
func (h *HTTP) GetAddressBalance() func(c echo.Context) error {
	return func(c echo.Context) error {
		address, err := pathParam(c, "address", errors.NewInvalidAddressError)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetAddressBalance, err)
		}

		ctx, _, deferFn := tracing.Tracer("rest").Start(c.Request().Context(), "GetAddressBalance_http",
			tracing.WithParentStat(RestStat),
			tracing.WithDebugLogMessage(h.logger, "[REST_http] GetAddressBalance for %s: %s", c.Request().RemoteAddr, address),
		)
		defer deferFn()

		script, err := h.addressScript(address)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetAddressBalance, err)
		}

		balance, err := h.client.BalanceByScriptPubKey(ctx, script)
		if err != nil {
			h.logger.Errorf("[REST_http][%s] GetAddressBalance error: %v", address, err)
			return h.fail(c, prometheusRestHttpGetAddressBalance, err)
		}

		return h.ok(c, prometheusRestHttpGetAddressBalance, balance)
	}
}

// GetScriptPubKeyBalance returns the balance locked by a raw hex script.
func (h *HTTP) GetScriptPubKeyBalance() func(c echo.Context) error {
	return func(c echo.Context) error {
		scriptHex, err := pathParam(c, "scriptpubkey", errors.NewMalformedHexError)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetScriptPubKeyBalance, err)
		}

		ctx, _, deferFn := tracing.Tracer("rest").Start(c.Request().Context(), "GetScriptPubKeyBalance_http",
			tracing.WithParentStat(RestStat),
			tracing.WithDebugLogMessage(h.logger, "[REST_http] GetScriptPubKeyBalance for %s: %s", c.Request().RemoteAddr, scriptHex),
		)
		defer deferFn()

		script, err := scriptFromHex(scriptHex)
		if err != nil {
			return h.fail(c, prometheusRestHttpGetScriptPubKeyBalance, err)
		}

		balance, err := h.client.BalanceByScriptPubKey(ctx, script)
		if err != nil {
			h.logger.Errorf("[REST_http][%s] GetScriptPubKeyBalance error: %v", scriptHex, err)
			return h.fail(c, prometheusRestHttpGetScriptPubKeyBalance, err)
		}

		return h.ok(c, prometheusRestHttpGetScriptPubKeyBalance, balance)
	}
}
