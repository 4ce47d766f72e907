package expr

import "github.com/holiman/uint256"

// Byte is an 8-bit term. Grounded the same way as EWord: a closed set of
// node shapes, no generic escape hatch.
type Byte interface {
	isByte()
}

func (LitByte) isByte()       {}
func (ReadByteExpr) isByte()  {}
func (IndexWordByte) isByte() {}

// LitByte is a concrete byte literal.
type LitByte struct {
	Val byte
}

// ReadByteExpr is a residual single-byte buffer read.
type ReadByteExpr struct {
	Idx EWord
	Buf Buf
}

// IndexWordByte extracts byte index Idx (0 = most significant) out of Word.
// idx >= 32 always yields LitByte(0). spec.md §3 lists "IndexWord" once
// under EWord (the BYTE-opcode result, a zero-extended word — modeled here
// as IndexWordWord in word.go) and once under Byte (the single extracted
// byte used while walking a WriteWord overlay in readByte). They are two
// different node shapes sharing a name in the prose; kept as two distinct
// Go types here rather than one ambiguous node, per DESIGN.md.
type IndexWordByte struct {
	Idx, Word EWord
}

const wordSizeBytes = 32

// IndexWordS extracts byte Idx (big-endian, 0 = most significant) from a
// 32-byte word, returning a Byte. idx >= 32 is always LitByte(0), even when
// the word is symbolic — the byte position is out of range regardless of
// the word's value.
func IndexWordS(idx, word EWord) Byte {
	ilit, iok := asLit(idx)
	if iok && !(ilit.IsUint64() && ilit.Uint64() < wordSizeBytes) {
		// Literal and out of [0,32) — out of range regardless of word.
		return LitByte{0}
	}
	if jb, ok := word.(JoinBytesExpr); ok {
		if iok {
			return jb.Bytes[ilit.Uint64()]
		}
		// idx is symbolic: which byte of a JoinBytes this picks out can't
		// be determined, so this must stay a residual, not fold to 0.
		return IndexWordByte{idx, word}
	}
	if wlit, wok := asLit(word); iok && wok {
		b32 := wlit.Bytes32()
		return LitByte{b32[ilit.Uint64()]}
	}
	return IndexWordByte{idx, word}
}

// PadByteS left-pads a single byte into a 32-byte word via joinBytes.
func PadByteS(b Byte) EWord {
	return JoinBytesS([]Byte{b})
}

// JoinBytesS joins up to 32 big-endian byte terms into one word,
// left-padding with LitByte(0). Folds to a literal when every byte is
// literal.
func JoinBytesS(bs []Byte) EWord {
	if len(bs) > wordSizeBytes {
		panic("expr: joinBytes given more than 32 bytes")
	}
	var padded [wordSizeBytes]Byte
	pad := wordSizeBytes - len(bs)
	for i := 0; i < pad; i++ {
		padded[i] = LitByte{0}
	}
	copy(padded[pad:], bs)

	var b32 [wordSizeBytes]byte
	allLit := true
	for i, b := range padded {
		lb, ok := b.(LitByte)
		if !ok {
			allLit = false
			break
		}
		b32[i] = lb.Val
	}
	if allLit {
		var v [32]byte
		copy(v[:], b32[:])
		lit := new(uint256.Int).SetBytes(v[:])
		return litFromUint256(lit)
	}
	return JoinBytesExpr{padded}
}

// EqByteS compares two byte terms, folding to a 0/1 word when both are
// literal.
func EqByteS(x, y Byte) EWord {
	lx, okx := x.(LitByte)
	ly, oky := y.(LitByte)
	if okx && oky {
		if lx.Val == ly.Val {
			return LitU64(1)
		}
		return LitU64(0)
	}
	return EqByteExpr{x, y}
}
