package expr

import (
	"github.com/holiman/uint256"
	"testing"
)

// TestScenarioS1ByteIndexing covers spec scenario S1.
func TestScenarioS1ByteIndexing(t *testing.T) {
	hi := new(uint256.Int).Lsh(uint256.NewInt(0x11), 248)
	lit := litFromUint256(new(uint256.Int).Or(hi, uint256.NewInt(0xFF)))

	got31 := IndexWordS(LitU64(31), lit)
	if lb, ok := got31.(LitByte); !ok || lb.Val != 0xFF {
		t.Errorf("indexWord(31, ...FF) = %v, want LitByte(0xFF)", got31)
	}
	got0 := IndexWordS(LitU64(0), lit)
	if lb, ok := got0.(LitByte); !ok || lb.Val != 0x11 {
		t.Errorf("indexWord(0, 0x11...) = %v, want LitByte(0x11)", got0)
	}
}

// TestScenarioS3WriteThenReadWord covers spec scenario S3.
func TestScenarioS3WriteThenReadWord(t *testing.T) {
	buf := WriteWord(LitU64(0), LitU64(0x42), EmptyBuf{})
	if got := ReadWord(LitU64(0), buf); !Equal(got, LitU64(0x42)) {
		t.Errorf("readWord = %v, want Lit(0x42)", got)
	}
	if got := ReadByte(LitU64(31), buf); !equalByteVal(got, 0x42) {
		t.Errorf("readByte(31) = %v, want LitByte(0x42)", got)
	}
	if got := ReadByte(LitU64(0), buf); !equalByteVal(got, 0x00) {
		t.Errorf("readByte(0) = %v, want LitByte(0x00)", got)
	}
}

func equalByteVal(b Byte, want byte) bool {
	lb, ok := b.(LitByte)
	return ok && lb.Val == want
}

// TestScenarioS4SignedDiv covers spec scenario S4.
func TestScenarioS4SignedDiv(t *testing.T) {
	negFour := new(uint256.Int).Sub(uint256.NewInt(0), uint256.NewInt(4))
	negTwo := new(uint256.Int).Sub(uint256.NewInt(0), uint256.NewInt(2))
	got := SDivS(litFromUint256(negFour), LitU64(2))
	if !Equal(got, litFromUint256(negTwo)) {
		t.Errorf("sdiv(-4,2) = %v, want -2", got)
	}
	gotZero := SDivS(LitU64(9), LitU64(0))
	if !Equal(gotZero, LitU64(0)) {
		t.Errorf("sdiv(x,0) = %v, want 0", gotZero)
	}
}

// TestScenarioS5StorageChain covers spec scenario S5.
func TestScenarioS5StorageChain(t *testing.T) {
	s := WriteStorage(LitU64(3), LitU64(5), EmptyStore{})
	s = WriteStorage(LitU64(7), LitU64(9), s)
	v, ok := ReadStorage(s, LitU64(3))
	if !ok || !Equal(v, LitU64(5)) {
		t.Errorf("readStorage(..., 3) = (%v, %v), want (Lit 5, true)", v, ok)
	}
	_, ok2 := ReadStorage(EmptyStore{}, LitU64(3))
	if ok2 {
		t.Errorf("readStorage(EmptyStore, 3) should miss")
	}
}

// TestScenarioS6SymbolicCarryThrough covers spec scenario S6.
func TestScenarioS6SymbolicCarryThrough(t *testing.T) {
	v := Var{"x"}
	buf := WriteWord(LitU64(0), v, EmptyBuf{})
	got := ReadWord(LitU64(0), buf)
	if !Equal(got, v) {
		t.Errorf("readWord(0, writeWord(0, x, EmptyBuf)) = %v, want x", got)
	}
}

// TestPropertyDisjointWrite covers universal property 3.
func TestPropertyDisjointWrite(t *testing.T) {
	base := ConcreteBuf{Bytes: make([]byte, 64)}
	buf := WriteWord(LitU64(32), LitU64(0xFF), base)
	got := ReadWord(LitU64(0), buf)
	want := ReadWord(LitU64(0), base)
	if !Equal(got, want) {
		t.Errorf("a write 32 bytes away must not affect an unrelated word read: got %v want %v", got, want)
	}
}

// TestPropertyCopySliceIdentity covers universal property 4.
func TestPropertyCopySliceIdentity(t *testing.T) {
	b := ConcreteBuf{Bytes: []byte{1, 2, 3, 4, 5}}
	got := CopySlice(LitU64(0), LitU64(0), BufLength(b), b, EmptyBuf{})
	if !EqualBuf(got, b) {
		t.Errorf("copySlice(0,0,len(b),b,EmptyBuf) = %v, want %v", got, b)
	}
}

// TestPropertyCopySlicePointAndOutside covers universal properties 5 and 6.
func TestPropertyCopySlicePointAndOutside(t *testing.T) {
	src := ConcreteBuf{Bytes: []byte{10, 20, 30, 40, 50}}
	dst := ConcreteBuf{Bytes: []byte{100, 101, 102, 103, 104, 105, 106}}
	// copySlice(sOff=1, dOff=2, sz=3, src, dst)
	copied := CopySlice(LitU64(1), LitU64(2), LitU64(3), src, dst)

	for k := uint64(2); k < 5; k++ {
		got := ReadByte(LitU64(k), copied)
		want := ReadByte(LitU64(k-2+1), src)
		if !EqualByte(got, want) {
			t.Errorf("point property failed at k=%d: got %v want %v", k, got, want)
		}
	}
	for _, k := range []uint64{0, 1, 5, 6} {
		got := ReadByte(LitU64(k), copied)
		want := ReadByte(LitU64(k), dst)
		if !EqualByte(got, want) {
			t.Errorf("outside property failed at k=%d: got %v want %v", k, got, want)
		}
	}
}

// TestPropertyStorageOverwriteAndDisjoint covers universal properties 7 and 8.
func TestPropertyStorageOverwriteAndDisjoint(t *testing.T) {
	s := WriteStorage(LitU64(1), LitU64(2), EmptyStore{})
	v, ok := ReadStorage(s, LitU64(1))
	if !ok || !Equal(v, LitU64(2)) {
		t.Errorf("overwrite property failed: got (%v,%v)", v, ok)
	}
	s2 := WriteStorage(LitU64(5), LitU64(99), s)
	v2, ok2 := ReadStorage(s2, LitU64(1))
	v3, ok3 := ReadStorage(s, LitU64(1))
	if ok2 != ok3 || !Equal(v2, v3) {
		t.Errorf("disjoint storage write changed an unrelated key: (%v,%v) vs (%v,%v)", v2, ok2, v3, ok3)
	}
}

// TestPropertyZeroOutsideConcreteBuf covers universal property 9.
func TestPropertyZeroOutsideConcreteBuf(t *testing.T) {
	b := ConcreteBuf{Bytes: []byte{1, 2, 3}}
	got := ReadByte(LitU64(10), b)
	if !equalByteVal(got, 0) {
		t.Errorf("readByte past ConcreteBuf end = %v, want LitByte(0)", got)
	}
}

// TestPropertyLength covers universal property 10.
func TestPropertyLength(t *testing.T) {
	if got := BufLength(ConcreteBuf{Bytes: []byte{1, 2, 3, 4}}); !Equal(got, LitU64(4)) {
		t.Errorf("bufLength = %v, want 4", got)
	}
	if got := BufLength(EmptyBuf{}); !Equal(got, LitU64(0)) {
		t.Errorf("bufLength(EmptyBuf) = %v, want 0", got)
	}
}

// TestPropertyConcreteFoldPreservation covers universal property 11: any
// expression built entirely from concrete leaves must fold its read* result
// all the way down to a literal, never a residual node.
func TestPropertyConcreteFoldPreservation(t *testing.T) {
	buf := WriteWord(LitU64(0), LitU64(1), ConcreteBuf{Bytes: make([]byte, 32)})
	buf = WriteByte(LitU64(5), LitByte{9}, buf)
	store := WriteStorage(LitU64(1), LitU64(2), ConcreteStore{Data: map[uint256.Int]uint256.Int{}})

	word := ReadWord(LitU64(0), buf)
	if _, ok := word.(Lit); !ok {
		t.Errorf("readWord over an all-concrete buffer chain must fold to Lit, got %T", word)
	}
	b := ReadByte(LitU64(5), buf)
	if _, ok := b.(LitByte); !ok {
		t.Errorf("readByte over an all-concrete buffer chain must fold to LitByte, got %T", b)
	}
	v, ok := ReadStorage(store, LitU64(1))
	if !ok {
		t.Fatalf("expected a hit")
	}
	if _, ok := v.(Lit); !ok {
		t.Errorf("readStorage over an all-concrete chain must fold to Lit, got %T", v)
	}
	arith := AddS(MulS(LitU64(2), LitU64(3)), LitU64(1))
	if _, ok := arith.(Lit); !ok {
		t.Errorf("a fully concrete arithmetic expression must fold to Lit, got %T", arith)
	}
}
