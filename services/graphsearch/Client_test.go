package graphsearch

import (
	"context"
	"net"
	"net/http"
	"testing"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/model"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch/graphsearch_api"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
	"github.com/bsv-blockchain/go-bt/v2/bscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const testTxID = "0e3e2357e806b6cdb1f70b54c3a3a17b6714ee1f0e68bebb44a74b1efd512098"

// fakeBackend records the last request of each kind and answers from its fields.
type fakeBackend struct {
	graphsearch_api.UnimplementedGraphSearchServiceServer

	err error

	graphSearchReq  *graphsearch_api.GraphSearchRequest
	outpointsReq    *graphsearch_api.UtxoSearchByOutpointsRequest
	scriptPubKeyReq *graphsearch_api.UtxoSearchByScriptPubKeyRequest
	balanceReq      *graphsearch_api.BalanceByScriptPubKeyRequest
	txdata          [][]byte
	outputs         []*graphsearch_api.Output
	balance         uint64
}

func (f *fakeBackend) GraphSearch(_ context.Context, req *graphsearch_api.GraphSearchRequest) (*graphsearch_api.GraphSearchReply, error) {
	f.graphSearchReq = req
	if f.err != nil {
		return nil, f.err
	}

	return &graphsearch_api.GraphSearchReply{Txdata: f.txdata}, nil
}

func (f *fakeBackend) UtxoSearchByOutpoints(_ context.Context, req *graphsearch_api.UtxoSearchByOutpointsRequest) (*graphsearch_api.UtxoSearchReply, error) {
	f.outpointsReq = req
	if f.err != nil {
		return nil, f.err
	}

	return &graphsearch_api.UtxoSearchReply{Outputs: f.outputs}, nil
}

func (f *fakeBackend) UtxoSearchByScriptPubKey(_ context.Context, req *graphsearch_api.UtxoSearchByScriptPubKeyRequest) (*graphsearch_api.UtxoSearchReply, error) {
	f.scriptPubKeyReq = req
	if f.err != nil {
		return nil, f.err
	}

	return &graphsearch_api.UtxoSearchReply{Outputs: f.outputs}, nil
}

func (f *fakeBackend) BalanceByScriptPubKey(_ context.Context, req *graphsearch_api.BalanceByScriptPubKeyRequest) (*graphsearch_api.BalanceByScriptPubKeyReply, error) {
	f.balanceReq = req
	if f.err != nil {
		return nil, f.err
	}

	return &graphsearch_api.BalanceByScriptPubKeyReply{Balance: f.balance}, nil
}

func newTestClient(t *testing.T, backend *fakeBackend) *Client {
	t.Helper()

	listener := bufconn.Listen(1024 * 1024)

	server := grpc.NewServer()
	graphsearch_api.RegisterGraphSearchServiceServer(server, backend)

	go func() {
		_ = server.Serve(listener)
	}()

	t.Cleanup(server.Stop)

	tSettings := &settings.Settings{
		GraphSearch: settings.GraphSearchSettings{
			GRPCAddress: "passthrough:///bufnet",
		},
	}

	client, err := NewClient(context.Background(), ulogger.NewVerboseTestLogger(t), tSettings,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestNewClientRequiresAddress(t *testing.T) {
	_, err := NewClient(context.Background(), ulogger.TestLogger{}, &settings.Settings{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestNewClientLogsBackendAddress(t *testing.T) {
	client := newTestClient(t, &fakeBackend{})

	logger, ok := client.logger.(*ulogger.VerboseTestLogger)
	require.True(t, ok)
	assert.True(t, logger.Contains("using backend at passthrough:///bufnet"))
}

func TestClientGraphSearch(t *testing.T) {
	backend := &fakeBackend{txdata: [][]byte{{0x01, 0x02}, {0x03}}}
	client := newTestClient(t, backend)

	txdata, err := client.GraphSearch(context.Background(), testTxID)
	require.NoError(t, err)

	assert.Equal(t, [][]byte{{0x01, 0x02}, {0x03}}, txdata)
	assert.Equal(t, testTxID, backend.graphSearchReq.GetTxid())
}

func TestClientUtxoSearchByOutpoints(t *testing.T) {
	backend := &fakeBackend{outputs: []*graphsearch_api.Output{{PrevOutIdx: 1, Value: 546}}}
	client := newTestClient(t, backend)

	outpoints, err := model.ParseOutpoints(testTxID + ":1," + testTxID + ":7")
	require.NoError(t, err)

	outputs, err := client.UtxoSearchByOutpoints(context.Background(), outpoints)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, uint64(546), outputs[0].GetValue())

	sent := backend.outpointsReq.GetOutpoints()
	require.Len(t, sent, 2)
	assert.Equal(t, outpoints[0].TxID[:], sent[0].GetTxid())
	assert.Equal(t, byte(0x98), sent[0].GetTxid()[0])
	assert.Equal(t, uint32(1), sent[0].GetVout())
	assert.Equal(t, uint32(7), sent[1].GetVout())
}

func TestClientScriptPubKeyCalls(t *testing.T) {
	backend := &fakeBackend{
		outputs: []*graphsearch_api.Output{{Height: 100}},
		balance: 123456,
	}
	client := newTestClient(t, backend)

	script, err := bscript.NewFromHexString("76a91476a04053bda0a88bda5177b86a15c3b29f55987388ac")
	require.NoError(t, err)

	outputs, err := client.UtxoSearchByScriptPubKey(context.Background(), script, 10)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, []byte(*script), backend.scriptPubKeyReq.GetScriptpubkey())
	assert.Equal(t, uint32(10), backend.scriptPubKeyReq.GetLimit())

	balance, err := client.BalanceByScriptPubKey(context.Background(), script)
	require.NoError(t, err)
	assert.Equal(t, uint64(123456), balance)
	assert.Equal(t, []byte(*script), backend.balanceReq.GetScriptpubkey())
}

func TestClientBackendErrors(t *testing.T) {
	t.Run("not found keeps its code", func(t *testing.T) {
		client := newTestClient(t, &fakeBackend{err: status.Error(codes.NotFound, "txid not found")})

		_, err := client.GraphSearch(context.Background(), testTxID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrBackend))
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "txid not found")
	})

	t.Run("invalid argument", func(t *testing.T) {
		client := newTestClient(t, &fakeBackend{err: status.Error(codes.InvalidArgument, "bad script")})

		_, err := client.BalanceByScriptPubKey(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		client := newTestClient(t, &fakeBackend{err: errors.WrapGRPC(errors.NewThresholdExceededError("too many outputs"))})

		_, err := client.UtxoSearchByScriptPubKey(context.Background(), nil, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrThresholdExceeded))
	})
}

func TestClientHealth(t *testing.T) {
	client := newTestClient(t, &fakeBackend{})

	code, _, err := client.Health(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)

	code, details, err := client.Health(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, details, "graphsearch connection")
}
