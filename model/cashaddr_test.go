package model

import (
	"testing"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/bsv-blockchain/go-chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCashAddr(t *testing.T) {
	hash := testHash(t)

	s, err := encodeCashAddr("bitcoincash", cashAddrTypeP2PKH, hash)
	require.NoError(t, err)
	assert.Equal(t, "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a", s)

	s, err = encodeCashAddr("bsvtest", cashAddrTypeP2PKH, hash)
	require.NoError(t, err)
	assert.Equal(t, "bsvtest:qpm2qsznhks23z7629mms6s4cwef74vcwvx5vyg82x", s)

	_, err = encodeCashAddr("bitcoincash", cashAddrTypeP2PKH, hash[:19])
	assert.True(t, errors.Is(err, errors.ErrInvalidAddress))
}

func TestDecodeCashAddr(t *testing.T) {
	t.Run("unknown type bits", func(t *testing.T) {
		addrType, hash, err := decodeCashAddr("bitcoincash:zpm2qsznhks23z7629mms6s4cwef74vcwvrqekrq9w", defaultCashAddrPrefix)
		require.NoError(t, err)
		assert.Equal(t, byte(2), addrType)
		assert.Equal(t, testHash(t), hash)

		addr, err := DecodeAddress("bitcoincash:zpm2qsznhks23z7629mms6s4cwef74vcwvrqekrq9w", &chaincfg.MainNetParams)
		require.NoError(t, err)
		assert.Equal(t, AddressTypeUnknown, addr.Type)
	})

	t.Run("prefix from params", func(t *testing.T) {
		addr, err := DecodeAddress("qpm2qsznhks23z7629mms6s4cwef74vcwvx5vyg82x", &chaincfg.TestNetParams)
		require.NoError(t, err)
		assert.Equal(t, AddressTypeP2PKH, addr.Type)

		_, err = DecodeAddress("qpm2qsznhks23z7629mms6s4cwef74vcwvx5vyg82x", &chaincfg.MainNetParams)
		assert.Error(t, err)
	})

	tests := map[string]string{
		"reserved bit":    "bitcoincash:spm2qsznhks23z7629mms6s4cwef74vcwv4glwxl5g",
		"size mismatch":   "bitcoincash:q9m2qsznhks23z7629mms6s4cwef74vcwvtn0d2s8a",
		"wrong prefix":    "bchtest:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
		"too short":       "bitcoincash:qpzry9x8",
		"empty prefix":    ":qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
		"invalid charset": "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6i",
	}

	for name, address := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := decodeCashAddr(address, defaultCashAddrPrefix)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidAddress))
		})
	}
}

func TestCashAddrPolymodOfValidAddressIsZero(t *testing.T) {
	values := cashAddrPrefixValues("bitcoincash")

	for _, c := range "qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a" {
		values = append(values, byte(cashAddrCharsetRev[c]))
	}

	assert.Equal(t, uint64(0), cashAddrPolymod(values))
}
