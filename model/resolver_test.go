package model

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/bscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scriptFromHex(t *testing.T, s string) *bscript.Script {
	t.Helper()

	script, err := bscript.NewFromHexString(s)
	require.NoError(t, err)

	return script
}

func TestResolveScript(t *testing.T) {
	hash := testHash(t)
	compressed := append([]byte{0x02}, bytes.Repeat([]byte{0xab}, 32)...)
	uncompressed := append([]byte{0x04}, bytes.Repeat([]byte{0xcd}, 64)...)
	hash32 := bytes.Repeat([]byte{0x07}, 32)

	tests := []struct {
		name         string
		script       *bscript.Script
		expectedType AddressType
		expectedHash []byte
	}{
		{"p2pkh", scriptFromHex(t, "76a914"+testHash160+"88ac"), AddressTypeP2PKH, hash},
		{"p2sh", scriptFromHex(t, "a914"+testHash160+"87"), AddressTypeP2SH, hash},
		{"p2sh 32 byte", EncodeScript(AddressTypeP2SH, hash32), AddressTypeP2SH, hash32},
		{"p2pk compressed", EncodeScript(AddressTypeP2PK, compressed), AddressTypeP2PK, compressed},
		{"p2pk uncompressed", EncodeScript(AddressTypeP2PK, uncompressed), AddressTypeP2PK, uncompressed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := ResolveScript(tt.script)
			require.NotNil(t, addr)
			assert.Equal(t, tt.expectedType, addr.Type)
			assert.Equal(t, tt.expectedHash, addr.Hash)
		})
	}
}

func TestResolveScriptMiss(t *testing.T) {
	tests := map[string]*bscript.Script{
		"nil":             nil,
		"empty":           bscript.NewFromBytes([]byte{}),
		"op_return":       scriptFromHex(t, "6a0b68656c6c6f20776f726c64"),
		"bad p2pkh len":   scriptFromHex(t, "76a913"+testHash160[:38]+"88ac"),
		"p2pkh wrong end": scriptFromHex(t, "76a914"+testHash160+"88ad"),
		"p2sh wrong push": scriptFromHex(t, "a915"+testHash160+"87"),
		"p2pk bad prefix": EncodeScript(AddressTypeP2PK, append([]byte{0x05}, bytes.Repeat([]byte{0x01}, 32)...)),
		"bare multisig":   scriptFromHex(t, "5121"+hex.EncodeToString(append([]byte{0x02}, bytes.Repeat([]byte{0x01}, 32)...))+"51ae"),
	}

	for name, script := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, ResolveScript(script))
		})
	}
}

func TestResolveScriptCopiesHash(t *testing.T) {
	script := scriptFromHex(t, "76a914"+testHash160+"88ac")

	addr := ResolveScript(script)
	require.NotNil(t, addr)

	(*script)[3] = 0xff
	assert.Equal(t, testHash(t), addr.Hash)
}

func TestResolveScriptP2PKPushData(t *testing.T) {
	key := append([]byte{0x03}, bytes.Repeat([]byte{0x11}, 32)...)

	// the key behind OP_PUSHDATA1 instead of a direct push
	script := bscript.NewFromBytes(append(append([]byte{bscript.OpPUSHDATA1, 33}, key...), bscript.OpCHECKSIG))

	addr := ResolveScript(script)
	require.NotNil(t, addr)
	assert.Equal(t, AddressTypeP2PK, addr.Type)
	assert.Equal(t, key, addr.Hash)
}
