package graphsearch

import (
	"context"

	"github.com/blockparty-sh/cpp-slp-graph-search/model"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch/graphsearch_api"
	"github.com/bsv-blockchain/go-bt/v2/bscript"
	"github.com/stretchr/testify/mock"
)

var _ ClientI = (*Mock)(nil)

// Mock is a testify mock of the backend client.
type Mock struct {
	mock.Mock
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Health(ctx context.Context, checkLiveness bool) (int, string, error) {
	args := m.Called(ctx, checkLiveness)

	return args.Int(0), args.String(1), args.Error(2)
}

func (m *Mock) GraphSearch(ctx context.Context, txid string) ([][]byte, error) {
	args := m.Called(ctx, txid)

	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([][]byte), nil
}

func (m *Mock) UtxoSearchByOutpoints(ctx context.Context, outpoints []model.Outpoint) ([]*graphsearch_api.Output, error) {
	args := m.Called(ctx, outpoints)

	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*graphsearch_api.Output), nil
}

func (m *Mock) UtxoSearchByScriptPubKey(ctx context.Context, script *bscript.Script, limit uint32) ([]*graphsearch_api.Output, error) {
	args := m.Called(ctx, script, limit)

	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*graphsearch_api.Output), nil
}

func (m *Mock) BalanceByScriptPubKey(ctx context.Context, script *bscript.Script) (uint64, error) {
	args := m.Called(ctx, script)

	if args.Error(1) != nil {
		return 0, args.Error(1)
	}

	return args.Get(0).(uint64), nil
}

func (m *Mock) Close() error {
	return m.Called().Error(0)
}
