package model

import (
	"github.com/bsv-blockchain/go-bt/v2/bscript"
)

const p2sh32ScriptLen = 35

// ResolveScript matches script against the standard output templates and returns
// the address it pays to, or nil when the script is not one of them.
func ResolveScript(script *bscript.Script) *Address {
	if script == nil {
		return nil
	}

	s := []byte(*script)

	switch {
	case script.IsP2PKH():
		return &Address{Type: AddressTypeP2PKH, Hash: clone(s[3:23])}

	case script.IsP2SH(), isP2SH32(s):
		return &Address{Type: AddressTypeP2SH, Hash: clone(s[2 : len(s)-1])}

	case script.IsP2PK():
		parts, err := bscript.DecodeParts(s)
		if err != nil {
			return nil
		}

		return &Address{Type: AddressTypeP2PK, Hash: clone(parts[0])}
	}

	return nil
}

// isP2SH32 matches OP_HASH160 <32 bytes> OP_EQUAL, which go-bt does not know.
func isP2SH32(s []byte) bool {
	return len(s) == p2sh32ScriptLen &&
		s[0] == bscript.OpHASH160 &&
		s[1] == bscript.OpDATA32 &&
		s[p2sh32ScriptLen-1] == bscript.OpEQUAL
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)

	return out
}
