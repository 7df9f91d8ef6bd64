package graphsearch

import (
	"context"
	"net/http"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/model"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch/graphsearch_api"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
	"github.com/blockparty-sh/cpp-slp-graph-search/util"
	"github.com/blockparty-sh/cpp-slp-graph-search/util/health"
	"github.com/bsv-blockchain/go-bt/v2/bscript"
	"google.golang.org/grpc"
)

var _ ClientI = (*Client)(nil)

// Client talks to the gs++ backend over a single long-lived gRPC connection.
// It is safe for concurrent use and holds no per-request state.
type Client struct {
	conn      *grpc.ClientConn
	apiClient graphsearch_api.GraphSearchServiceClient
	logger    ulogger.Logger
	settings  *settings.Settings
}

// NewClient dials the backend configured in tSettings. The connection is lazy,
// an unreachable backend surfaces on the first call rather than here.
func NewClient(ctx context.Context, logger ulogger.Logger, tSettings *settings.Settings, dialOptions ...grpc.DialOption) (*Client, error) {
	address := tSettings.GraphSearch.GRPCAddress
	if address == "" {
		return nil, errors.NewConfigurationError("no graphsearch_grpc_server_bind setting found")
	}

	conn, err := util.GetGRPCClient(ctx, address, &util.ConnectionOptions{
		MaxMessageSize: tSettings.GraphSearch.GRPCMaxMessageSize,
		SecurityLevel:  tSettings.SecurityLevelGRPC,
		CertFile:       tSettings.GraphSearch.TLSCertFile,
		KeyFile:        tSettings.GraphSearch.TLSKeyFile,
		CaCertFile:     tSettings.GraphSearch.TLSCACertFile,
		APIKey:         tSettings.GraphSearch.GRPCAPIKey,
		DialOptions:    dialOptions,
	}, tSettings)
	if err != nil {
		return nil, errors.NewServiceError("[GraphSearch] failed to init connection to %s", address, err)
	}

	logger.Infof("[GraphSearch] using backend at %s", address)

	return &Client{
		conn:      conn,
		apiClient: graphsearch_api.NewGraphSearchServiceClient(conn),
		logger:    logger,
		settings:  tSettings,
	}, nil
}

func (c *Client) Health(ctx context.Context, checkLiveness bool) (int, string, error) {
	if checkLiveness {
		return http.StatusOK, "OK", nil
	}

	return health.CheckGRPCConnection("graphsearch", c.conn)(ctx, checkLiveness)
}

func (c *Client) GraphSearch(ctx context.Context, txid string) ([][]byte, error) {
	reply, err := c.apiClient.GraphSearch(ctx, &graphsearch_api.GraphSearchRequest{
		Txid: txid,
	})
	if err != nil {
		return nil, errors.NewBackendError("[GraphSearch][%s] graph search failed", txid, errors.UnwrapGRPC(err))
	}

	return reply.GetTxdata(), nil
}

func (c *Client) UtxoSearchByOutpoints(ctx context.Context, outpoints []model.Outpoint) ([]*graphsearch_api.Output, error) {
	req := &graphsearch_api.UtxoSearchByOutpointsRequest{
		Outpoints: make([]*graphsearch_api.Outpoint, 0, len(outpoints)),
	}

	for _, outpoint := range outpoints {
		req.Outpoints = append(req.Outpoints, &graphsearch_api.Outpoint{
			Txid: outpoint.TxID.CloneBytes(),
			Vout: outpoint.Vout,
		})
	}

	reply, err := c.apiClient.UtxoSearchByOutpoints(ctx, req)
	if err != nil {
		return nil, errors.NewBackendError("[UtxoSearchByOutpoints] utxo search for %d outpoints failed", len(outpoints), errors.UnwrapGRPC(err))
	}

	return reply.GetOutputs(), nil
}

func (c *Client) UtxoSearchByScriptPubKey(ctx context.Context, script *bscript.Script, limit uint32) ([]*graphsearch_api.Output, error) {
	reply, err := c.apiClient.UtxoSearchByScriptPubKey(ctx, &graphsearch_api.UtxoSearchByScriptPubKeyRequest{
		Scriptpubkey: scriptBytes(script),
		Limit:        limit,
	})
	if err != nil {
		return nil, errors.NewBackendError("[UtxoSearchByScriptPubKey] utxo search failed", errors.UnwrapGRPC(err))
	}

	return reply.GetOutputs(), nil
}

func (c *Client) BalanceByScriptPubKey(ctx context.Context, script *bscript.Script) (uint64, error) {
	reply, err := c.apiClient.BalanceByScriptPubKey(ctx, &graphsearch_api.BalanceByScriptPubKeyRequest{
		Scriptpubkey: scriptBytes(script),
	})
	if err != nil {
		return 0, errors.NewBackendError("[BalanceByScriptPubKey] balance lookup failed", errors.UnwrapGRPC(err))
	}

	return reply.GetBalance(), nil
}

// Close tears down the backend connection, in-flight calls fail with Canceled.
func (c *Client) Close() error {
	return c.conn.Close()
}

func scriptBytes(script *bscript.Script) []byte {
	if script == nil {
		return nil
	}

	return []byte(*script)
}
