package httpimpl

import (
	"encoding/hex"
	"net/url"
	"strconv"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/model"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch/graphsearch_api"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/bsv-blockchain/go-bt/v2/bscript"
	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

func (h *HTTP) ok(c echo.Context, counter *prometheus.CounterVec, data interface{}) error {
	counter.WithLabelValues("OK", "200").Inc()

	return sendSuccess(c, data)
}

func (h *HTTP) fail(c echo.Context, counter *prometheus.CounterVec, err error) error {
	function := "ERROR"

	var tErr *errors.Error
	if errors.As(err, &tErr) {
		function = tErr.Code().String()
	}

	counter.WithLabelValues(function, strconv.Itoa(errorStatus(err))).Inc()

	return sendError(c, err)
}

// pathParam returns the named path parameter with its percent escapes decoded,
// echo hands parameters over still escaped. newErr builds the error returned
// for a broken escape so it carries the code of the value being parsed.
func pathParam(c echo.Context, name string, newErr func(message string, params ...interface{}) error) (string, error) {
	raw := c.Param(name)

	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", newErr("[REST_http] %s %q is not correctly escaped", name, raw, err)
	}

	return value, nil
}

// addressScript decodes address and returns the output script paying to it.
// Addresses of an unknown type are given a P2SH script; that is deliberate and
// logged so it does not go unnoticed.
func (h *HTTP) addressScript(address string) (*bscript.Script, error) {
	addr, err := model.DecodeAddress(address, h.settings.ChainCfgParams)
	if err != nil {
		return nil, err
	}

	if addr.Type == model.AddressTypeUnknown {
		h.logger.Warnf("[REST_http] address %s has an unknown type, searching by its P2SH script", address)
	}

	return addr.LockingScript(), nil
}

// displayAddress renders the address a locking script pays to, or nil when the
// script is not a standard template or cannot be rendered.
func (h *HTTP) displayAddress(script []byte) *string {
	addr := model.ResolveScript(bscript.NewFromBytes(script))
	if addr == nil {
		return nil
	}

	s, err := addr.Encode(h.settings.ChainCfgParams, h.settings.GraphSearch.AddressFormat)
	if err != nil {
		h.logger.Debugf("[REST_http] could not render %s address: %v", addr.Type, err)
		return nil
	}

	return &s
}

func (h *HTTP) toUtxoRecords(outputs []*graphsearch_api.Output) []model.UtxoRecord {
	records := make([]model.UtxoRecord, 0, len(outputs))

	for _, output := range outputs {
		records = append(records, model.UtxoRecord{
			PrevTxID:   model.WireToHex(output.GetPrevTxId()),
			PrevOutIdx: output.GetPrevOutIdx(),
			Height:     output.GetHeight(),
			Value:      output.GetValue(),
			PkScript:   output.GetScriptpubkey(),
			Address:    h.displayAddress(output.GetScriptpubkey()),
		})
	}

	return records
}

func toScriptUtxos(outputs []*graphsearch_api.Output) []model.ScriptUtxo {
	utxos := make([]model.ScriptUtxo, 0, len(outputs))

	for _, output := range outputs {
		utxos = append(utxos, model.ScriptUtxo{
			PrevTxID:   model.WireToHex(output.GetPrevTxId()),
			PrevOutIdx: output.GetPrevOutIdx(),
			Height:     output.GetHeight(),
			Value:      output.GetValue(),
		})
	}

	return utxos
}

// utxoLimit is the configured limit, lowered by an optional ?limit= query parameter.
func (h *HTTP) utxoLimit(c echo.Context) (uint32, error) {
	limit, err := safeconversion.IntToUint32(h.settings.GraphSearch.UtxoLimit)
	if err != nil || limit == 0 || limit > settings.MaxUtxoLimit {
		limit = settings.MaxUtxoLimit
	}

	param := c.QueryParam("limit")
	if param == "" {
		return limit, nil
	}

	requested, err := strconv.ParseUint(param, 10, 32)
	if err != nil || requested == 0 {
		return 0, errors.NewInvalidArgumentError("[REST_http] limit must be a positive integer, got %q", param)
	}

	requested32, err := safeconversion.Uint64ToUint32(requested)
	if err != nil {
		return 0, errors.NewInvalidArgumentError("[REST_http] limit %q is out of range", param, err)
	}

	if requested32 < limit {
		limit = requested32
	}

	return limit, nil
}

// scriptFromHex decodes a script given as hex. Scripts are not byte reversed.
func scriptFromHex(s string) (*bscript.Script, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.NewMalformedHexError("[REST_http] %q is not a valid hex script", s, err)
	}

	return bscript.NewFromBytes(b), nil
}
