package expr

import (
	"github.com/golang/glog"
	"github.com/holiman/uint256"
)

// Buf is a byte-indexed, infinite-on-the-right sequence: everything past
// its explicit bytes reads as zero. Closed node set, same convention as
// EWord/Byte.
type Buf interface {
	isBuf()
}

func (EmptyBuf) isBuf()      {}
func (ConcreteBuf) isBuf()   {}
func (AbstractBuf) isBuf()   {}
func (WriteByteExpr) isBuf() {}
func (WriteWordExpr) isBuf() {}
func (CopySliceExpr) isBuf() {}

// EmptyBuf reads as all zeroes everywhere.
type EmptyBuf struct{}

// ConcreteBuf is an explicit byte prefix; indices past it read as zero.
type ConcreteBuf struct {
	Bytes []byte
}

// AbstractBuf is a fully unknown named buffer.
type AbstractBuf struct {
	Name string
}

// WriteByteExpr overlays one byte at Idx on top of Base.
type WriteByteExpr struct {
	Idx  EWord
	Val  Byte
	Base Buf
}

// WriteWordExpr overlays a 32-byte big-endian word at Idx..Idx+31 on top
// of Base.
type WriteWordExpr struct {
	Idx  EWord
	Val  EWord
	Base Buf
}

// CopySliceExpr copies Size bytes from Src[SrcOffset..] into
// Dst[DstOffset..], leaving the rest of Dst unchanged.
type CopySliceExpr struct {
	DstOffset, SrcOffset, Size EWord
	Src, Dst                  Buf
}

// maxConcreteSplice bounds how large a concrete byte allocation the
// concrete-folding paths (writeByte/writeWord/copySlice) will attempt
// before giving up and emitting a residual node instead. Any offset or
// size literal that doesn't fit here could never back a real EVM memory
// region anyway, so folding it would just allocate without ever being
// useful.
const maxConcreteSplice = 1 << 32

// ReadByte walks buf from the top down, resolving the minimum information
// needed to tell whether idx falls inside each overlay's write region.
// Implemented as an explicit loop rather than language-level recursion
// (spec.md §5/§9): an overlay chain of depth d costs O(d) iterations, not
// O(d) stack frames.
func ReadByte(idx EWord, buf Buf) Byte {
	depth := 0
	for {
		depth++
		if glog.V(2) {
			glog.Infof("expr: readByte depth=%d node=%T", depth, buf)
		}
		switch b := buf.(type) {
		case EmptyBuf:
			return LitByte{0}

		case ConcreteBuf:
			if _, iok := asLit(idx); !iok {
				return ReadByteExpr{idx, buf}
			}
			off, fits := asUint64(idx)
			if !fits || off >= uint64(len(b.Bytes)) {
				return LitByte{0}
			}
			return LitByte{b.Bytes[off]}

		case WriteByteExpr:
			i, iok := asLit(idx)
			j, jok := asLit(b.Idx)
			if iok && jok {
				if i.Eq(j) {
					return b.Val
				}
				buf = b.Base
				continue
			}
			return ReadByteExpr{idx, buf}

		case WriteWordExpr:
			i, iok := asLit(idx)
			j, jok := asLit(b.Idx)
			if iok && jok {
				upper := new(uint256.Int).Add(j, uint256.NewInt(wordSizeBytes))
				if !i.Lt(j) && i.Lt(upper) {
					rel := new(uint256.Int).Sub(i, j)
					return IndexWordS(litFromUint256(rel), b.Val)
				}
				buf = b.Base
				continue
			}
			return ReadByteExpr{idx, buf}

		case CopySliceExpr:
			i, iok := asLit(idx)
			dOff, dOk := asLit(b.DstOffset)
			if !iok || !dOk {
				return ReadByteExpr{idx, buf}
			}
			sOff, sOk := asLit(b.SrcOffset)
			sz, szOk := asLit(b.Size)
			switch {
			case sOk && szOk:
				// Case 5: offsets and size literal; Src may be anything.
				upper := new(uint256.Int).Add(dOff, sz)
				if !i.Lt(dOff) && i.Lt(upper) {
					rel := new(uint256.Int).Sub(i, dOff)
					srcIdx := new(uint256.Int).Add(rel, sOff)
					idx = litFromUint256(srcIdx)
					buf = b.Src
					continue
				}
				idx = litFromUint256(i)
				buf = b.Dst
				continue
			case szOk:
				// Case 6: symbolic SrcOffset, size known.
				upper := new(uint256.Int).Add(dOff, sz)
				if i.Lt(dOff) || !i.Lt(upper) {
					buf = b.Dst
					continue
				}
				return ReadByteExpr{idx, buf}
			default:
				// Case 7: symbolic Size.
				if i.Lt(dOff) {
					buf = b.Dst
					continue
				}
				return ReadByteExpr{idx, buf}
			}

		case AbstractBuf:
			return ReadByteExpr{idx, buf}

		default:
			return ReadByteExpr{idx, buf}
		}
	}
}

// ReadBytes reads n (<=32) consecutive bytes starting at idx, returning a
// left-zero-padded word. Collapses to a literal when every byte resolves
// literally, otherwise returns a JoinBytes node over the residual bytes.
func ReadBytes(n int, idx EWord, buf Buf) EWord {
	if n > wordSizeBytes {
		panic("expr: readBytes given n > 32")
	}
	bs := make([]Byte, n)
	for k := 0; k < n; k++ {
		bs[k] = ReadByte(AddS(idx, LitU64(uint64(k))), buf)
	}
	return JoinBytesS(bs)
}

// ReadWord reads the 32-byte big-endian word at idx. A literal idx equal
// to the literal offset of a WriteWord on top of buf returns that write's
// word as is, symbolic or not. Otherwise a literal idx with every
// underlying byte literal collapses to Lit, and anything else is a
// residual ReadWord node over the whole buffer (not a JoinBytes of
// residual bytes — matching spec.md §4.3's own description of the
// fallback shape).
func ReadWord(idx EWord, buf Buf) EWord {
	i, iok := asLit(idx)
	if !iok {
		return ReadWordExpr{idx, buf}
	}
	if ww, ok := buf.(WriteWordExpr); ok {
		if j, jok := asLit(ww.Idx); jok && i.Eq(j) {
			return ww.Val
		}
	}
	bs := make([]Byte, wordSizeBytes)
	allLit := true
	for k := 0; k < wordSizeBytes; k++ {
		bs[k] = ReadByte(AddS(idx, LitU64(uint64(k))), buf)
		if _, ok := bs[k].(LitByte); !ok {
			allLit = false
		}
	}
	if allLit {
		return JoinBytesS(bs)
	}
	return ReadWordExpr{idx, buf}
}

// spliceConcrete overwrites dst (zero-extended as needed) at off with
// data, returning the new backing slice.
func spliceConcrete(dst []byte, off uint64, data []byte) []byte {
	need := off + uint64(len(data))
	out := dst
	if uint64(len(out)) < need {
		grown := make([]byte, need)
		copy(grown, out)
		out = grown
	} else {
		out = append([]byte(nil), out...)
	}
	copy(out[off:need], data)
	return out
}

// WriteByte overlays a single byte at off on top of buf, folding to a new
// ConcreteBuf when off, byte and buf are all concrete.
func WriteByte(off EWord, b Byte, buf Buf) Buf {
	o, ook := asLit(off)
	lb, lok := b.(LitByte)
	cb, cok := buf.(ConcreteBuf)
	if ook && lok && cok {
		if ofs, fits := o.Uint64(), o.IsUint64(); fits && ofs < maxConcreteSplice {
			return ConcreteBuf{spliceConcrete(cb.Bytes, ofs, []byte{lb.Val})}
		}
	}
	return WriteByteExpr{off, b, buf}
}

// WriteWord overlays a 32-byte big-endian word at off on top of buf,
// folding to a new ConcreteBuf when off, word and buf are all concrete.
func WriteWord(off, w EWord, buf Buf) Buf {
	o, ook := asLit(off)
	lw, lok := asLit(w)
	cb, cok := buf.(ConcreteBuf)
	if ook && lok && cok {
		if ofs := o.Uint64(); o.IsUint64() && ofs < maxConcreteSplice {
			b32 := lw.Bytes32()
			return ConcreteBuf{spliceConcrete(cb.Bytes, ofs, b32[:])}
		}
	}
	return WriteWordExpr{off, w, buf}
}

func zeros(n uint64) []byte {
	return make([]byte, n)
}

func takeRightPad(s []byte, off, n uint64) []byte {
	out := make([]byte, n)
	if off < uint64(len(s)) {
		copy(out, s[off:])
	}
	return out
}

// CopySlice copies size bytes from src[srcOff..] into dst[dstOff..],
// leaving the rest of dst unchanged. Parameter order is (srcOff, dstOff,
// size, src, dst), matching spec.md §4.3's copySlice signature — note this
// differs from the CopySliceExpr node's own field order (DstOffset listed
// first), which spec.md §3's data model states separately; see DESIGN.md.
// An EmptyBuf src onto an EmptyBuf or ConcreteBuf dst returns dst
// unchanged, whatever the offsets and size.
func CopySlice(srcOff, dstOff, size EWord, src, dst Buf) Buf {
	// Case 1/2: EmptyBuf source makes the copy a no-op against dst.
	if _, ok := src.(EmptyBuf); ok {
		switch d := dst.(type) {
		case EmptyBuf:
			return EmptyBuf{}
		case ConcreteBuf:
			return ConcreteBuf{append([]byte(nil), d.Bytes...)}
		}
	}

	dO, dOk := asLit(dstOff)
	sO, sOk := asLit(srcOff)
	sz, szOk := asLit(size)
	if dOk && sOk && szOk {
		dOff, dFits := dO.Uint64(), dO.IsUint64()
		sOff, sFits := sO.Uint64(), sO.IsUint64()
		n, nFits := sz.Uint64(), sz.IsUint64()
		if dFits && sFits && nFits && dOff < maxConcreteSplice && n < maxConcreteSplice {
			if sb, ok := src.(ConcreteBuf); ok {
				slice := takeRightPad(sb.Bytes, sOff, n)
				switch d := dst.(type) {
				case EmptyBuf:
					return ConcreteBuf{spliceConcrete(zeros(dOff), dOff, slice)}
				case ConcreteBuf:
					return ConcreteBuf{spliceConcrete(d.Bytes, dOff, slice)}
				}
			}
			if db, ok := dst.(ConcreteBuf); ok {
				// Case 5: concrete dst, symbolic/abstract src — try a
				// byte-wise literal read before giving up.
				out := append([]byte(nil), db.Bytes...)
				if uint64(len(out)) < dOff+n {
					grown := make([]byte, dOff+n)
					copy(grown, out)
					out = grown
				}
				allLit := true
				for k := uint64(0); k < n; k++ {
					rb := ReadByte(AddS(srcOff, LitU64(k)), src)
					lb, ok := rb.(LitByte)
					if !ok {
						allLit = false
						break
					}
					out[dOff+k] = lb.Val
				}
				if allLit {
					return ConcreteBuf{out}
				}
			}
		}
	}
	return CopySliceExpr{dstOff, srcOff, size, src, dst}
}

// BufLength returns the buffer's explicit length; EmptyBuf is 0.
func BufLength(buf Buf) EWord {
	switch b := buf.(type) {
	case EmptyBuf:
		return LitU64(0)
	case ConcreteBuf:
		return LitU64(uint64(len(b.Bytes)))
	default:
		return BufLengthExpr{buf}
	}
}

// Base peels off every WriteByte/WriteWord overlay and follows the Dst
// branch through CopySlice, exposing the underlying EmptyBuf/ConcreteBuf/
// AbstractBuf — a lower bound on the buffer's length.
func Base(buf Buf) Buf {
	for {
		switch b := buf.(type) {
		case WriteByteExpr:
			buf = b.Base
		case WriteWordExpr:
			buf = b.Base
		case CopySliceExpr:
			buf = b.Dst
		default:
			return buf
		}
	}
}
