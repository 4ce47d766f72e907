// Package expr is the symbolic expression algebra for 256-bit EVM words,
// bytes, byte buffers and word-keyed storage. Every constructor here is a
// smart constructor: concrete operands fold to a literal result, symbolic
// operands produce the matching residual node for the solver to consume.
package expr

import (
	"github.com/holiman/uint256"
)

// WordOp tags the arithmetic/logic node shapes that share an (X [,Y [,Z]])
// child layout. Grounded on the aj3423/edb symbolic node model, which tags
// UnaryOp/BinaryOp/TernaryOp with a vm.OpCode rather than giving every
// opcode its own Go type.
type WordOp int

const (
	OpAdd WordOp = iota
	OpSub
	OpMul
	OpDiv
	OpSDiv
	OpMod
	OpSMod
	OpExp
	OpSEx
	OpLt
	OpGt
	OpLEq
	OpGEq
	OpSLt
	OpSGt
	OpEq
	OpAnd
	OpOr
	OpXor
	OpShl
	OpShr
	OpSar
	OpMin
	OpIsZero
	OpNot
	OpAddMod
	OpMulMod
)

var wordOpNames = map[WordOp]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpSDiv: "sdiv",
	OpMod: "%", OpSMod: "smod", OpExp: "**", OpSEx: "signextend",
	OpLt: "<", OpGt: ">", OpLEq: "<=", OpGEq: ">=", OpSLt: "s<", OpSGt: "s>",
	OpEq: "==", OpAnd: "&", OpOr: "|", OpXor: "^", OpShl: "<<", OpShr: ">>",
	OpSar: "sar", OpMin: "min", OpIsZero: "iszero", OpNot: "~",
	OpAddMod: "addmod", OpMulMod: "mulmod",
}

// EWord is a 256-bit word term: a concrete literal, a free variable, or one
// of the arithmetic/buffer/storage-derived node shapes. Only the types in
// this file implement it; there is no escape hatch for ad-hoc node shapes.
type EWord interface {
	isEWord()
}

func (Lit) isEWord()         {}
func (Var) isEWord()         {}
func (UnaryWord) isEWord()   {}
func (BinaryWord) isEWord()  {}
func (TernaryWord) isEWord() {}
func (ReadWordExpr) isEWord()  {}
func (BufLengthExpr) isEWord() {}
func (IndexWordWord) isEWord() {}
func (JoinBytesExpr) isEWord()  {}
func (SLoadExpr) isEWord()      {}
func (EqByteExpr) isEWord()     {}

// Lit is a concrete 256-bit literal.
type Lit struct {
	Val uint256.Int
}

// Var is a free symbolic word, named the way the solver will see it.
type Var struct {
	Name string
}

// UnaryWord is IsZero/Not: one word child, one word result.
type UnaryWord struct {
	Op WordOp
	X  EWord
}

// BinaryWord covers the bulk of the arithmetic/comparison/bitwise opcodes.
type BinaryWord struct {
	Op   WordOp
	X, Y EWord
}

// TernaryWord is AddMod/MulMod.
type TernaryWord struct {
	Op      WordOp
	X, Y, Z EWord
}

// ReadWordExpr is a residual 32-byte buffer read that could not be folded
// to a literal.
type ReadWordExpr struct {
	Idx EWord
	Buf Buf
}

// BufLengthExpr is a residual buffer-length query.
type BufLengthExpr struct {
	Buf Buf
}

// IndexWordWord is the EVM BYTE opcode: the extracted byte, zero-extended
// back out to a full word. Residual form only — the concrete and
// buffer-overlay paths fold through indexWord's Byte-sorted twin in byte.go
// (see DESIGN.md on the two IndexWord tags spec.md names).
type IndexWordWord struct {
	Idx, Word EWord
}

// JoinBytesExpr recomposes up to 32 Byte terms into one big-endian word.
type JoinBytesExpr struct {
	Bytes [32]Byte
}

// SLoadExpr is a residual storage read that could not be resolved to a
// literal or proven disjoint from every write in the log.
type SLoadExpr struct {
	Key   EWord
	Store Storage
}

// EqByteExpr is the 0/1 word produced by comparing two Byte terms that
// are not both literal.
type EqByteExpr struct {
	X, Y Byte
}

// litFromUint256 wraps a uint256.Int (by value) into a literal EWord.
func litFromUint256(v *uint256.Int) EWord {
	return Lit{Val: *v}
}

// LitU64 is a convenience literal constructor for small concrete words.
func LitU64(v uint64) EWord {
	return Lit{Val: *uint256.NewInt(v)}
}

// asLit returns the underlying literal value of w, if w is a Lit.
func asLit(w EWord) (*uint256.Int, bool) {
	if l, ok := w.(Lit); ok {
		v := l.Val
		return &v, true
	}
	return nil, false
}

// asUint64 reports whether w is a literal that fits in a machine word —
// used only where the value must index an actual Go slice (ConcreteBuf
// bytes); anything that doesn't fit is, by construction, farther out than
// any buffer we will ever materialize.
func asUint64(w EWord) (uint64, bool) {
	l, ok := asLit(w)
	if !ok || !l.IsUint64() {
		return 0, false
	}
	return l.Uint64(), true
}
