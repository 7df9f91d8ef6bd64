package model

import (
	"testing"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToWire(t *testing.T) {
	t.Run("reverses bytes", func(t *testing.T) {
		b, err := HexToWire("0102030a")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x0a, 0x03, 0x02, 0x01}, b)
	})

	t.Run("empty", func(t *testing.T) {
		b, err := HexToWire("")
		require.NoError(t, err)
		assert.Empty(t, b)
	})

	t.Run("odd length", func(t *testing.T) {
		_, err := HexToWire("abc")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrMalformedHex))
	})

	t.Run("non hex", func(t *testing.T) {
		_, err := HexToWire("zz")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrMalformedHex))
	})
}

func TestHexRoundTrip(t *testing.T) {
	for _, h := range []string{
		"",
		"00",
		"deadbeef",
		"0e3e2357e806b6cdb1f70b54c3a3a17b6714ee1f0e68bebb44a74b1efd512098",
	} {
		b, err := HexToWire(h)
		require.NoError(t, err)
		assert.Equal(t, h, WireToHex(b))
	}
}

func TestWireToHexLowercase(t *testing.T) {
	b, err := HexToWire("DEADBEEF")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", WireToHex(b))
}

func TestNewTxIDFromHex(t *testing.T) {
	display := "0e3e2357e806b6cdb1f70b54c3a3a17b6714ee1f0e68bebb44a74b1efd512098"

	txid, err := NewTxIDFromHex(display)
	require.NoError(t, err)
	assert.Equal(t, display, txid.String())
	assert.Equal(t, byte(0x98), txid[0])

	_, err = NewTxIDFromHex("deadbeef")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedHex))
}
