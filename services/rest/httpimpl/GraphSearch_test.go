package httpimpl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const testTxID = "0e3e2357e806b6cdb1f70b54c3a3a17b6714ee1f0e68bebb44a74b1efd512098"

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	return response
}

func TestGraphSearch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		httpServer, mockClient, echoContext, responseRecorder := GetMockHTTP(t, nil)

		mockClient.On("GraphSearch", mock.Anything, testTxID).Return([][]byte{{0x01, 0x02, 0x03}, {0xff}}, nil)

		echoContext.SetPath("/graphsearch/:txid")
		echoContext.SetParamNames("txid")
		echoContext.SetParamValues(testTxID)

		err := httpServer.GraphSearch()(echoContext)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, responseRecorder.Code)

		response := decodeEnvelope(t, responseRecorder)
		assert.Equal(t, true, response["success"])
		assert.Equal(t, []interface{}{"AQID", "/w=="}, response["data"])
		assert.NotContains(t, response, "error")
	})

	t.Run("empty graph is an empty list", func(t *testing.T) {
		httpServer, mockClient, echoContext, responseRecorder := GetMockHTTP(t, nil)

		mockClient.On("GraphSearch", mock.Anything, testTxID).Return([][]byte(nil), nil)

		echoContext.SetParamNames("txid")
		echoContext.SetParamValues(testTxID)

		require.NoError(t, httpServer.GraphSearch()(echoContext))

		response := decodeEnvelope(t, responseRecorder)
		assert.Equal(t, []interface{}{}, response["data"])
	})

	t.Run("malformed txid", func(t *testing.T) {
		httpServer, mockClient, echoContext, responseRecorder := GetMockHTTP(t, nil)

		echoContext.SetParamNames("txid")
		echoContext.SetParamValues("xyz")

		require.NoError(t, httpServer.GraphSearch()(echoContext))

		assert.Equal(t, http.StatusBadRequest, responseRecorder.Code)

		response := decodeEnvelope(t, responseRecorder)
		assert.Equal(t, false, response["success"])
		assert.Contains(t, response["error"], "not valid hex")
		assert.NotContains(t, response, "data")

		mockClient.AssertNotCalled(t, "GraphSearch", mock.Anything, mock.Anything)
	})

	t.Run("broken escape", func(t *testing.T) {
		httpServer, mockClient, echoContext, responseRecorder := GetMockHTTP(t, nil)

		echoContext.SetParamNames("txid")
		echoContext.SetParamValues("%g0")

		require.NoError(t, httpServer.GraphSearch()(echoContext))

		assert.Equal(t, http.StatusBadRequest, responseRecorder.Code)
		assert.Contains(t, decodeEnvelope(t, responseRecorder)["error"], "not correctly escaped")
		mockClient.AssertNotCalled(t, "GraphSearch", mock.Anything, mock.Anything)
	})

	t.Run("backend not found", func(t *testing.T) {
		httpServer, mockClient, echoContext, responseRecorder := GetMockHTTP(t, nil)

		backendErr := errors.NewBackendError("graph search failed", errors.UnwrapGRPC(status.Error(codes.NotFound, "txid not found")))
		mockClient.On("GraphSearch", mock.Anything, testTxID).Return(nil, backendErr)

		echoContext.SetParamNames("txid")
		echoContext.SetParamValues(testTxID)

		require.NoError(t, httpServer.GraphSearch()(echoContext))

		assert.Equal(t, http.StatusNotFound, responseRecorder.Code)

		response := decodeEnvelope(t, responseRecorder)
		assert.Equal(t, false, response["success"])
		assert.Equal(t, "graph search failed: txid not found", response["error"])
	})

	t.Run("backend unavailable", func(t *testing.T) {
		httpServer, mockClient, echoContext, responseRecorder := GetMockHTTP(t, nil)

		backendErr := errors.NewBackendError("graph search failed", errors.UnwrapGRPC(status.Error(codes.Unavailable, "connection refused")))
		mockClient.On("GraphSearch", mock.Anything, testTxID).Return(nil, backendErr)

		echoContext.SetParamNames("txid")
		echoContext.SetParamValues(testTxID)

		require.NoError(t, httpServer.GraphSearch()(echoContext))

		assert.Equal(t, http.StatusServiceUnavailable, responseRecorder.Code)
		assert.Equal(t, false, decodeEnvelope(t, responseRecorder)["success"])
	})

	t.Run("client went away", func(t *testing.T) {
		httpServer, mockClient, echoContext, responseRecorder := GetMockHTTP(t, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		echoContext.SetRequest(echoContext.Request().WithContext(ctx))
		echoContext.SetParamNames("txid")
		echoContext.SetParamValues(testTxID)

		mockClient.On("GraphSearch", mock.Anything, testTxID).Return(nil, errors.NewBackendError("graph search failed", errors.UnwrapGRPC(status.Error(codes.Canceled, "context canceled"))))

		require.NoError(t, httpServer.GraphSearch()(echoContext))
		assert.Empty(t, responseRecorder.Body.Bytes())
	})
}
