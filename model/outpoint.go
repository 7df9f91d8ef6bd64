package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

// Outpoint references output Vout of transaction TxID. TxID is held in wire order.
type Outpoint struct {
	TxID chainhash.Hash
	Vout uint32
}

// String renders the outpoint as display txid:vout.
func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID.String(), o.Vout)
}

// ParseOutpoint parses a single "txid:vout" token.
func ParseOutpoint(token string) (Outpoint, error) {
	parts := strings.Split(strings.TrimSpace(token), ":")
	if len(parts) != 2 {
		return Outpoint{}, errors.NewMalformedOutpointError("[ParseOutpoint] %q is not of the form txid:vout", token)
	}

	txid, err := NewTxIDFromHex(parts[0])
	if err != nil {
		return Outpoint{}, errors.NewMalformedOutpointError("[ParseOutpoint] %q has an invalid txid", token, err)
	}

	vout, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Outpoint{}, errors.NewMalformedOutpointError("[ParseOutpoint] %q has an invalid vout", token, err)
	}

	return Outpoint{TxID: *txid, Vout: uint32(vout)}, nil
}

// ParseOutpoints parses a comma separated list of outpoints. The first bad
// token fails the whole list and no outpoints are returned.
func ParseOutpoints(list string) ([]Outpoint, error) {
	if strings.TrimSpace(list) == "" {
		return nil, errors.NewMalformedOutpointError("[ParseOutpoints] empty outpoint list")
	}

	tokens := strings.Split(list, ",")
	outpoints := make([]Outpoint, 0, len(tokens))

	for _, token := range tokens {
		outpoint, err := ParseOutpoint(token)
		if err != nil {
			return nil, err
		}

		outpoints = append(outpoints, outpoint)
	}

	return outpoints, nil
}
