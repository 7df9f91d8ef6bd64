package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "malformed hex", err: NewMalformedHexError("odd length"), expected: true},
		{name: "malformed outpoint", err: NewMalformedOutpointError("missing vout"), expected: true},
		{name: "invalid address", err: NewInvalidAddressError("bad checksum"), expected: true},
		{name: "wrapped by fmt", err: fmt.Errorf("ctx: %w", NewInvalidAddressError("bad")), expected: true},
		{name: "backend failure", err: NewBackendError("boom", NewNotFoundError("txid not found")), expected: false},
		{name: "plain error", err: fmt.Errorf("plain"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidationError(tt.err))
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.True(t, IsNotFoundError(NewNotFoundError("txid not found")))
	assert.True(t, IsNotFoundError(NewBackendError("graph search failed", UnwrapGRPC(status.Error(codes.NotFound, "txid not found")))))
	assert.False(t, IsNotFoundError(NewBackendError("graph search failed", NewError("internal"))))
}

func TestIsUnavailableError(t *testing.T) {
	assert.False(t, IsUnavailableError(nil))
	assert.True(t, IsUnavailableError(NewBackendError("call failed", UnwrapGRPC(status.Error(codes.Unavailable, "connection refused")))))
	assert.False(t, IsUnavailableError(NewError("x")))
}

func TestIsContextError(t *testing.T) {
	assert.False(t, IsContextError(nil))
	assert.True(t, IsContextError(context.Canceled))
	assert.True(t, IsContextError(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.True(t, IsContextError(NewContextCanceledError("request aborted")))
	assert.False(t, IsContextError(NewError("x")))
}
