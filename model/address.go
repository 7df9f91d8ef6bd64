package model

import (
	"strings"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/bsv-blockchain/go-bt/v2/bscript"
	"github.com/bsv-blockchain/go-chaincfg"
	crypto "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"github.com/btcsuite/btcutil/base58"
)

type AddressType byte

const (
	AddressTypeUnknown AddressType = iota
	AddressTypeP2PKH
	AddressTypeP2PK
	AddressTypeP2SH
)

const (
	AddressFormatCashAddr = "cashaddr"
	AddressFormatLegacy   = "legacy"
)

func (t AddressType) String() string {
	switch t {
	case AddressTypeP2PKH:
		return "P2PKH"
	case AddressTypeP2PK:
		return "P2PK"
	case AddressTypeP2SH:
		return "P2SH"
	default:
		return "Unknown"
	}
}

// Address is a decoded address. For P2PK the Hash field holds the raw public key.
type Address struct {
	Type AddressType
	Hash []byte
}

// DecodeAddress accepts a cash address, with or without its prefix, or a legacy
// base58check address. A cash address whose type bits are neither P2PKH nor
// P2SH decodes to AddressTypeUnknown.
func DecodeAddress(address string, params *chaincfg.Params) (*Address, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.NewInvalidAddressError("[DecodeAddress] empty address")
	}

	cashType, hash, cashErr := decodeCashAddr(address, cashAddrPrefix(params))
	if cashErr == nil {
		addr := &Address{Type: AddressTypeUnknown, Hash: hash}

		switch cashType {
		case cashAddrTypeP2PKH:
			addr.Type = AddressTypeP2PKH
		case cashAddrTypeP2SH:
			addr.Type = AddressTypeP2SH
		}

		return addr, nil
	}

	payload, version, legacyErr := base58.CheckDecode(address)
	if legacyErr != nil {
		// report the cashaddr failure, it is the preferred format
		return nil, errors.NewInvalidAddressError("[DecodeAddress] could not decode %q", address, cashErr)
	}

	if len(payload) != 20 {
		return nil, errors.NewInvalidAddressError("[DecodeAddress] legacy address %q has a %d byte payload", address, len(payload))
	}

	switch version {
	case legacyPubKeyHashID(params):
		return &Address{Type: AddressTypeP2PKH, Hash: payload}, nil
	case legacyScriptHashID(params):
		return &Address{Type: AddressTypeP2SH, Hash: payload}, nil
	default:
		return nil, errors.NewInvalidAddressError("[DecodeAddress] legacy address %q has unknown version byte 0x%02x", address, version)
	}
}

// EncodeScript substitutes hash into the output script template for t.
// Unrecognised types fall back to the P2SH template; callers that care should
// check the type first.
func EncodeScript(t AddressType, hash []byte) *bscript.Script {
	pushLen := byte(len(hash))

	var b []byte

	switch t {
	case AddressTypeP2PKH:
		b = make([]byte, 0, len(hash)+5)
		b = append(b, bscript.OpDUP, bscript.OpHASH160, pushLen)
		b = append(b, hash...)
		b = append(b, bscript.OpEQUALVERIFY, bscript.OpCHECKSIG)
	case AddressTypeP2PK:
		b = make([]byte, 0, len(hash)+2)
		b = append(b, pushLen)
		b = append(b, hash...)
		b = append(b, bscript.OpCHECKSIG)
	default:
		b = make([]byte, 0, len(hash)+3)
		b = append(b, bscript.OpHASH160, pushLen)
		b = append(b, hash...)
		b = append(b, bscript.OpEQUAL)
	}

	return bscript.NewFromBytes(b)
}

// LockingScript returns the output script paying to a.
func (a *Address) LockingScript() *bscript.Script {
	return EncodeScript(a.Type, a.Hash)
}

// Encode renders a for display in the given format, cashaddr or legacy.
// P2PK addresses are shown as the P2PKH address of their public key.
func (a *Address) Encode(params *chaincfg.Params, format string) (string, error) {
	var (
		cashType byte
		hash     = a.Hash
	)

	switch a.Type {
	case AddressTypeP2PKH:
		cashType = cashAddrTypeP2PKH
	case AddressTypeP2PK:
		cashType = cashAddrTypeP2PKH
		hash = crypto.Hash160(a.Hash)
	case AddressTypeP2SH:
		cashType = cashAddrTypeP2SH
	default:
		return "", errors.NewInvalidAddressError("[Address.Encode] cannot encode address of type %s", a.Type)
	}

	switch format {
	case "", AddressFormatCashAddr:
		return encodeCashAddr(cashAddrPrefix(params), cashType, hash)
	case AddressFormatLegacy:
		if len(hash) != 20 {
			return "", errors.NewInvalidAddressError("[Address.Encode] legacy format needs a 20 byte hash, got %d", len(hash))
		}

		version := legacyPubKeyHashID(params)
		if cashType == cashAddrTypeP2SH {
			version = legacyScriptHashID(params)
		}

		return base58.CheckEncode(hash, version), nil
	default:
		return "", errors.NewInvalidArgumentError("[Address.Encode] unknown address format %q", format)
	}
}

func cashAddrPrefix(params *chaincfg.Params) string {
	if params == nil || params.CashAddressPrefix == "" {
		return defaultCashAddrPrefix
	}

	return params.CashAddressPrefix
}

func legacyPubKeyHashID(params *chaincfg.Params) byte {
	if params == nil {
		return chaincfg.MainNetParams.LegacyPubKeyHashAddrID
	}

	return params.LegacyPubKeyHashAddrID
}

func legacyScriptHashID(params *chaincfg.Params) byte {
	if params == nil {
		return chaincfg.MainNetParams.LegacyScriptHashAddrID
	}

	return params.LegacyScriptHashAddrID
}
