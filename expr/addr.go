package expr

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// LitAddr returns a, zero-extended, as a word literal — the address-typed
// EVM opcodes (ADDRESS, CALLER, ORIGIN, ...) all land here before any
// further word arithmetic is built on top of them.
func LitAddr(a common.Address) EWord {
	var v uint256.Int
	v.SetBytes(a.Bytes())
	return Lit{Val: v}
}
