// Package graphsearch holds the client for the gs++ graph search backend.
package graphsearch

import (
	"context"

	"github.com/blockparty-sh/cpp-slp-graph-search/model"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch/graphsearch_api"
	"github.com/bsv-blockchain/go-bt/v2/bscript"
)

// ClientI is the set of backend calls the REST gateway and the CLI make.
type ClientI interface {
	// Health reports whether the backend connection is usable.
	Health(ctx context.Context, checkLiveness bool) (int, string, error)

	// GraphSearch returns the raw transactions making up the graph of txid.
	// txid is passed to the backend in display form.
	GraphSearch(ctx context.Context, txid string) ([][]byte, error)

	// UtxoSearchByOutpoints returns the outputs still unspent among outpoints.
	UtxoSearchByOutpoints(ctx context.Context, outpoints []model.Outpoint) ([]*graphsearch_api.Output, error)

	// UtxoSearchByScriptPubKey returns up to limit unspent outputs locked by script.
	UtxoSearchByScriptPubKey(ctx context.Context, script *bscript.Script, limit uint32) ([]*graphsearch_api.Output, error)

	// BalanceByScriptPubKey returns the sum of unspent outputs locked by script.
	BalanceByScriptPubKey(ctx context.Context, script *bscript.Script) (uint64, error)

	Close() error
}
