package expr

import "testing"

func TestReadByteEmptyBufIsZero(t *testing.T) {
	b := ReadByte(LitU64(1_000_000), EmptyBuf{})
	lb, ok := b.(LitByte)
	if !ok || lb.Val != 0 {
		t.Errorf("expected LitByte(0), got %v", b)
	}
}

func TestReadByteConcreteBufPastEndIsZero(t *testing.T) {
	buf := ConcreteBuf{Bytes: []byte{0xAA, 0xBB}}
	b := ReadByte(LitU64(5), buf)
	lb, ok := b.(LitByte)
	if !ok || lb.Val != 0 {
		t.Errorf("expected LitByte(0) past end, got %v", b)
	}
	in := ReadByte(LitU64(1), buf)
	lb2, ok := in.(LitByte)
	if !ok || lb2.Val != 0xBB {
		t.Errorf("expected LitByte(0xBB), got %v", in)
	}
}

func TestWriteByteFoldsConcrete(t *testing.T) {
	buf := WriteByte(LitU64(0), LitByte{0xFF}, ConcreteBuf{Bytes: []byte{0, 0, 0}})
	cb, ok := buf.(ConcreteBuf)
	if !ok {
		t.Fatalf("expected folded ConcreteBuf, got %T", buf)
	}
	if cb.Bytes[0] != 0xFF {
		t.Errorf("got %v want [0xFF 0 0]", cb.Bytes)
	}
}

func TestWriteByteSymbolicOffsetStaysSymbolic(t *testing.T) {
	buf := WriteByte(Var{"off"}, LitByte{0xFF}, ConcreteBuf{Bytes: []byte{0, 0}})
	if _, ok := buf.(WriteByteExpr); !ok {
		t.Fatalf("expected WriteByteExpr, got %T", buf)
	}
}

func TestWriteWordThenReadByteOverlay(t *testing.T) {
	word := LitU64(0x1122334455667788)
	buf := WriteWord(LitU64(0), word, ConcreteBuf{Bytes: make([]byte, 32)})
	// byte 31 (last, LSB) of the written word should read back as 0x88.
	b := ReadByte(LitU64(31), buf)
	lb, ok := b.(LitByte)
	if !ok || lb.Val != 0x88 {
		t.Errorf("got %v want LitByte(0x88)", b)
	}
}

func TestReadWordRoundTrip(t *testing.T) {
	word := LitU64(0xDEADBEEF)
	buf := WriteWord(LitU64(4), word, ConcreteBuf{Bytes: make([]byte, 40)})
	got := ReadWord(LitU64(4), buf)
	if !Equal(got, word) {
		t.Errorf("got %v want %v", got, word)
	}
}

// TestCopySliceScenario mirrors the worked example: copySlice(srcOff=1,
// dstOff=4, size=2, src=[0xAA,0xBB,0xCC,0xDD], dst) onto a zero dst should
// produce [0,0,0,0,0xBB,0xCC].
func TestCopySliceScenario(t *testing.T) {
	src := ConcreteBuf{Bytes: []byte{0xAA, 0xBB, 0xCC, 0xDD}}
	dst := EmptyBuf{}
	got := CopySlice(LitU64(1), LitU64(4), LitU64(2), src, dst)
	want := ConcreteBuf{Bytes: []byte{0, 0, 0, 0, 0xBB, 0xCC}}
	if !EqualBuf(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestCopySliceEmptySrcIsNoop(t *testing.T) {
	dst := ConcreteBuf{Bytes: []byte{1, 2, 3}}
	got := CopySlice(LitU64(0), LitU64(0), LitU64(3), EmptyBuf{}, dst)
	if !EqualBuf(got, dst) {
		t.Errorf("copying from EmptyBuf must be a no-op on dst, got %v", got)
	}
}

func TestCopySliceSymbolicSizeStaysSymbolic(t *testing.T) {
	got := CopySlice(LitU64(0), LitU64(0), Var{"n"}, ConcreteBuf{Bytes: []byte{1}}, EmptyBuf{})
	if _, ok := got.(CopySliceExpr); !ok {
		t.Fatalf("expected CopySliceExpr for a symbolic size, got %T", got)
	}
}

func TestBufLength(t *testing.T) {
	if l := BufLength(EmptyBuf{}); !Equal(l, LitU64(0)) {
		t.Errorf("EmptyBuf length = %v, want 0", l)
	}
	if l := BufLength(ConcreteBuf{Bytes: []byte{1, 2, 3}}); !Equal(l, LitU64(3)) {
		t.Errorf("ConcreteBuf length = %v, want 3", l)
	}
	if l := BufLength(AbstractBuf{"m"}); !Equal(l, BufLengthExpr{AbstractBuf{"m"}}) {
		t.Errorf("AbstractBuf length should be a residual BufLengthExpr, got %v", l)
	}
}

func TestBasePeelsOverlays(t *testing.T) {
	buf := WriteByte(LitU64(0), LitByte{1}, AbstractBuf{"m"})
	buf = WriteWord(Var{"off"}, Var{"w"}, buf)
	if base := Base(buf); !EqualBuf(base, AbstractBuf{"m"}) {
		t.Errorf("Base should peel every overlay down to the AbstractBuf, got %v", base)
	}
}
