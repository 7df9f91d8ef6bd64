package model

import (
	"strings"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/btcsuite/btcutil/bech32"
)

const (
	cashAddrCharset       = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	cashAddrChecksumLen   = 8
	defaultCashAddrPrefix = "bitcoincash"

	cashAddrTypeP2PKH = 0
	cashAddrTypeP2SH  = 1
)

var (
	cashAddrGenerators = [5]uint64{0x98f2bc8e61, 0x79b76d99e2, 0xf33e5fb3c4, 0xae2eabe2a8, 0x1e4f43e470}

	// hash length in bytes for each size code of the version byte
	cashAddrHashSizes = [8]int{20, 24, 28, 32, 40, 48, 56, 64}

	cashAddrCharsetRev = func() [128]int8 {
		var rev [128]int8

		for i := range rev {
			rev[i] = -1
		}

		for i, c := range cashAddrCharset {
			rev[c] = int8(i)
		}

		return rev
	}()
)

func cashAddrPolymod(values []byte) uint64 {
	c := uint64(1)

	for _, d := range values {
		c0 := byte(c >> 35)
		c = ((c & 0x07ffffffff) << 5) ^ uint64(d)

		for i, g := range cashAddrGenerators {
			if (c0>>uint(i))&1 == 1 {
				c ^= g
			}
		}
	}

	return c ^ 1
}

func cashAddrPrefixValues(prefix string) []byte {
	values := make([]byte, 0, len(prefix)+1)

	for i := 0; i < len(prefix); i++ {
		values = append(values, prefix[i]&0x1f)
	}

	return append(values, 0)
}

func cashAddrChecksum(prefix string, payload []byte) []byte {
	values := cashAddrPrefixValues(prefix)
	values = append(values, payload...)
	values = append(values, make([]byte, cashAddrChecksumLen)...)

	mod := cashAddrPolymod(values)

	checksum := make([]byte, cashAddrChecksumLen)
	for i := range checksum {
		checksum[i] = byte((mod >> (5 * uint(7-i))) & 0x1f)
	}

	return checksum
}

// encodeCashAddr renders prefix:payload for the given cashaddr type and hash.
func encodeCashAddr(prefix string, addrType byte, hash []byte) (string, error) {
	sizeCode := -1

	for i, size := range cashAddrHashSizes {
		if size == len(hash) {
			sizeCode = i
			break
		}
	}

	if sizeCode < 0 {
		return "", errors.NewInvalidAddressError("[encodeCashAddr] unsupported hash length %d", len(hash))
	}

	data := make([]byte, 0, len(hash)+1)
	data = append(data, addrType<<3|byte(sizeCode))
	data = append(data, hash...)

	payload, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", errors.NewInvalidAddressError("[encodeCashAddr] could not regroup payload", err)
	}

	payload = append(payload, cashAddrChecksum(prefix, payload)...)

	var sb strings.Builder

	sb.Grow(len(prefix) + 1 + len(payload))
	sb.WriteString(prefix)
	sb.WriteByte(':')

	for _, v := range payload {
		sb.WriteByte(cashAddrCharset[v])
	}

	return sb.String(), nil
}

// decodeCashAddr validates the checksum and returns the cashaddr type and hash.
// A missing prefix is taken to be defaultPrefix.
func decodeCashAddr(address, defaultPrefix string) (byte, []byte, error) {
	if strings.ToLower(address) != address && strings.ToUpper(address) != address {
		return 0, nil, errors.NewInvalidAddressError("[decodeCashAddr] mixed case address")
	}

	address = strings.ToLower(address)

	prefix := defaultPrefix
	body := address

	if idx := strings.LastIndexByte(address, ':'); idx >= 0 {
		prefix = address[:idx]
		body = address[idx+1:]
	}

	if prefix == "" || len(body) <= cashAddrChecksumLen {
		return 0, nil, errors.NewInvalidAddressError("[decodeCashAddr] address too short")
	}

	values := make([]byte, len(body))

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c >= 128 || cashAddrCharsetRev[c] < 0 {
			return 0, nil, errors.NewInvalidAddressError("[decodeCashAddr] invalid character %q", c)
		}

		values[i] = byte(cashAddrCharsetRev[c])
	}

	if cashAddrPolymod(append(cashAddrPrefixValues(prefix), values...)) != 0 {
		return 0, nil, errors.NewInvalidAddressError("[decodeCashAddr] checksum mismatch")
	}

	data, err := bech32.ConvertBits(values[:len(values)-cashAddrChecksumLen], 5, 8, false)
	if err != nil {
		return 0, nil, errors.NewInvalidAddressError("[decodeCashAddr] invalid padding", err)
	}

	if len(data) < 2 {
		return 0, nil, errors.NewInvalidAddressError("[decodeCashAddr] empty payload")
	}

	version := data[0]
	hash := data[1:]

	if version&0x80 != 0 {
		return 0, nil, errors.NewInvalidAddressError("[decodeCashAddr] reserved version bit set")
	}

	if cashAddrHashSizes[version&0x07] != len(hash) {
		return 0, nil, errors.NewInvalidAddressError("[decodeCashAddr] hash length %d does not match version byte", len(hash))
	}

	return (version >> 3) & 0x0f, hash, nil
}
