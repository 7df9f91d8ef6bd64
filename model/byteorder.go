package model

import (
	"encoding/hex"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

// HexToWire decodes display hex and reverses it into the byte order the backend uses.
func HexToWire(hexStr string) ([]byte, error) {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, errors.NewMalformedHexError("[HexToWire] %q is not valid hex", hexStr, err)
	}

	return bt.ReverseBytes(b), nil
}

// WireToHex is the inverse of HexToWire, it always renders lowercase hex.
func WireToHex(b []byte) string {
	return hex.EncodeToString(bt.ReverseBytes(b))
}

// NewTxIDFromHex parses a display form txid into a hash holding the wire form.
func NewTxIDFromHex(hexStr string) (*chainhash.Hash, error) {
	b, err := HexToWire(hexStr)
	if err != nil {
		return nil, err
	}

	if len(b) != chainhash.HashSize {
		return nil, errors.NewMalformedHexError("[NewTxIDFromHex] txid must be %d bytes, got %d", chainhash.HashSize, len(b))
	}

	return chainhash.NewHash(b)
}
