package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func Test_NewCustomError(t *testing.T) {
	err := New(ERR_NOT_FOUND, "resource not found")
	require.NotNil(t, err)
	require.Equal(t, ERR_NOT_FOUND, err.Code())
	require.Equal(t, "resource not found", err.Message())

	secondErr := New(ERR_MALFORMED_OUTPOINT, "[ParseOutpoints][%s] bad token", "abc:1", err)
	thirdErr := New(ERR_BACKEND, "backend failed", secondErr)

	require.Equal(t, "[ParseOutpoints][abc:1] bad token", secondErr.Message())
	require.True(t, thirdErr.Is(ErrNotFound))
	require.True(t, thirdErr.Is(ErrMalformedOutpoint))
	require.True(t, thirdErr.Is(ErrBackend))
	require.False(t, thirdErr.Is(ErrInvalidAddress))
	require.False(t, err.Is(thirdErr))
}

func Test_NewWrapsStdError(t *testing.T) {
	cause := fmt.Errorf("encoding/hex: odd length hex string")
	err := New(ERR_MALFORMED_HEX, "could not decode %q", "abc", cause)

	require.Equal(t, `could not decode "abc"`, err.Message())
	require.NotNil(t, err.WrappedErr())
	assert.Contains(t, err.Error(), "odd length hex string")
	assert.Contains(t, err.Error(), "MALFORMED_HEX")
}

func Test_InvalidCode(t *testing.T) {
	err := New(ERR(12345), "whatever")
	assert.Equal(t, "invalid error code", err.Message())
}

func Test_NilError(t *testing.T) {
	var err *Error

	assert.Equal(t, "<nil>", err.Error())
	assert.Equal(t, ERR_UNKNOWN, err.Code())
	assert.Equal(t, "", err.Message())
	assert.Nil(t, err.Unwrap())
	assert.False(t, err.Is(ErrNotFound))
}

func Test_FmtWrappedError(t *testing.T) {
	err := NewNotFoundError("txid not found")
	fmtErr := fmt.Errorf("lookup: %w", err)

	require.True(t, Is(fmtErr, ErrNotFound))

	var tErr *Error
	require.True(t, As(fmtErr, &tErr))
	assert.Equal(t, ERR_NOT_FOUND, tErr.Code())
}

func Test_WrapGRPC(t *testing.T) {
	t.Run("code mapping", func(t *testing.T) {
		wrappedErr := WrapGRPC(New(ERR_NOT_FOUND, "not found"))

		s, ok := status.FromError(wrappedErr)
		require.True(t, ok)
		assert.Equal(t, codes.NotFound, s.Code())
		assert.Equal(t, "not found", s.Message())
		assert.Len(t, s.Details(), 1)
	})

	t.Run("chain becomes details", func(t *testing.T) {
		chain := New(ERR_BACKEND, "outer", New(ERR_INVALID_ADDRESS, "inner"))

		s, ok := status.FromError(WrapGRPC(chain))
		require.True(t, ok)
		assert.Equal(t, codes.Internal, s.Code())
		assert.Len(t, s.Details(), 2)
	})

	t.Run("plain error", func(t *testing.T) {
		s, ok := status.FromError(WrapGRPC(errors.New("boom")))
		require.True(t, ok)
		assert.Equal(t, codes.Internal, s.Code())
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, WrapGRPC(nil))
	})
}

func Test_UnwrapGRPC(t *testing.T) {
	t.Run("round trip keeps chain", func(t *testing.T) {
		original := New(ERR_BACKEND, "outer", New(ERR_NOT_FOUND, "txid not found"))

		unwrapped := UnwrapGRPC(WrapGRPC(original))
		require.NotNil(t, unwrapped)
		assert.Equal(t, ERR_BACKEND, unwrapped.Code())
		assert.Equal(t, "outer", unwrapped.Message())
		assert.True(t, unwrapped.Is(ErrNotFound))
	})

	t.Run("bare status", func(t *testing.T) {
		tests := []struct {
			code     codes.Code
			expected ERR
		}{
			{codes.NotFound, ERR_NOT_FOUND},
			{codes.InvalidArgument, ERR_INVALID_ARGUMENT},
			{codes.Unavailable, ERR_SERVICE_UNAVAILABLE},
			{codes.Internal, ERR_ERROR},
			{codes.DeadlineExceeded, ERR_CONTEXT},
		}

		for _, tt := range tests {
			t.Run(tt.code.String(), func(t *testing.T) {
				unwrapped := UnwrapGRPC(status.Error(tt.code, "txid not found"))
				require.NotNil(t, unwrapped)
				assert.Equal(t, tt.expected, unwrapped.Code())
				assert.Equal(t, "txid not found", unwrapped.Message())
			})
		}
	})

	t.Run("already unwrapped", func(t *testing.T) {
		err := New(ERR_INVALID_ADDRESS, "bad")
		assert.Same(t, err, UnwrapGRPC(err))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, UnwrapGRPC(nil))
	})
}

func Test_IsOnGRPCStatus(t *testing.T) {
	err := status.Error(codes.NotFound, "txid not found")

	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrInvalidArgument))
}

func Test_Join(t *testing.T) {
	assert.Nil(t, Join(nil, nil))
	assert.Equal(t, "a, b", Join(errors.New("a"), nil, errors.New("b")).Error())
}
