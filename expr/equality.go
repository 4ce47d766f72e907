package expr

// Equal reports structural equality between two EWord terms. Per spec.md
// §5, two terms are equal iff structurally equal regardless of sharing —
// this module never relies on Go's == on these interfaces, since
// ConcreteBuf/ConcreteStore carry slices/maps that aren't comparable that
// way.
func Equal(a, b EWord) bool {
	switch x := a.(type) {
	case Lit:
		y, ok := b.(Lit)
		return ok && x.Val.Eq(&y.Val)
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case UnaryWord:
		y, ok := b.(UnaryWord)
		return ok && x.Op == y.Op && Equal(x.X, y.X)
	case BinaryWord:
		y, ok := b.(BinaryWord)
		return ok && x.Op == y.Op && Equal(x.X, y.X) && Equal(x.Y, y.Y)
	case TernaryWord:
		y, ok := b.(TernaryWord)
		return ok && x.Op == y.Op && Equal(x.X, y.X) && Equal(x.Y, y.Y) && Equal(x.Z, y.Z)
	case ReadWordExpr:
		y, ok := b.(ReadWordExpr)
		return ok && Equal(x.Idx, y.Idx) && EqualBuf(x.Buf, y.Buf)
	case BufLengthExpr:
		y, ok := b.(BufLengthExpr)
		return ok && EqualBuf(x.Buf, y.Buf)
	case IndexWordWord:
		y, ok := b.(IndexWordWord)
		return ok && Equal(x.Idx, y.Idx) && Equal(x.Word, y.Word)
	case JoinBytesExpr:
		y, ok := b.(JoinBytesExpr)
		if !ok {
			return false
		}
		for i := range x.Bytes {
			if !EqualByte(x.Bytes[i], y.Bytes[i]) {
				return false
			}
		}
		return true
	case SLoadExpr:
		y, ok := b.(SLoadExpr)
		return ok && Equal(x.Key, y.Key) && EqualStorage(x.Store, y.Store)
	case EqByteExpr:
		y, ok := b.(EqByteExpr)
		return ok && EqualByte(x.X, y.X) && EqualByte(x.Y, y.Y)
	default:
		return false
	}
}

// EqualByte reports structural equality between two Byte terms.
func EqualByte(a, b Byte) bool {
	switch x := a.(type) {
	case LitByte:
		y, ok := b.(LitByte)
		return ok && x.Val == y.Val
	case ReadByteExpr:
		y, ok := b.(ReadByteExpr)
		return ok && Equal(x.Idx, y.Idx) && EqualBuf(x.Buf, y.Buf)
	case IndexWordByte:
		y, ok := b.(IndexWordByte)
		return ok && Equal(x.Idx, y.Idx) && Equal(x.Word, y.Word)
	default:
		return false
	}
}

// EqualBuf reports structural equality between two Buf terms.
func EqualBuf(a, b Buf) bool {
	switch x := a.(type) {
	case EmptyBuf:
		_, ok := b.(EmptyBuf)
		return ok
	case ConcreteBuf:
		y, ok := b.(ConcreteBuf)
		if !ok || len(x.Bytes) != len(y.Bytes) {
			return false
		}
		for i := range x.Bytes {
			if x.Bytes[i] != y.Bytes[i] {
				return false
			}
		}
		return true
	case AbstractBuf:
		y, ok := b.(AbstractBuf)
		return ok && x.Name == y.Name
	case WriteByteExpr:
		y, ok := b.(WriteByteExpr)
		return ok && Equal(x.Idx, y.Idx) && EqualByte(x.Val, y.Val) && EqualBuf(x.Base, y.Base)
	case WriteWordExpr:
		y, ok := b.(WriteWordExpr)
		return ok && Equal(x.Idx, y.Idx) && Equal(x.Val, y.Val) && EqualBuf(x.Base, y.Base)
	case CopySliceExpr:
		y, ok := b.(CopySliceExpr)
		return ok && Equal(x.DstOffset, y.DstOffset) && Equal(x.SrcOffset, y.SrcOffset) &&
			Equal(x.Size, y.Size) && EqualBuf(x.Src, y.Src) && EqualBuf(x.Dst, y.Dst)
	default:
		return false
	}
}

// EqualStorage reports structural equality between two Storage terms.
func EqualStorage(a, b Storage) bool {
	switch x := a.(type) {
	case EmptyStore:
		_, ok := b.(EmptyStore)
		return ok
	case ConcreteStore:
		y, ok := b.(ConcreteStore)
		if !ok || len(x.Data) != len(y.Data) {
			return false
		}
		for k, v := range x.Data {
			yv, found := y.Data[k]
			if !found || !v.Eq(&yv) {
				return false
			}
		}
		return true
	case AbstractStore:
		y, ok := b.(AbstractStore)
		return ok && x.Name == y.Name
	case SStoreExpr:
		y, ok := b.(SStoreExpr)
		return ok && Equal(x.Key, y.Key) && Equal(x.Val, y.Val) && EqualStorage(x.Base, y.Base)
	default:
		return false
	}
}
