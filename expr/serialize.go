package expr

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// Tag is the canonical per-variant discriminator written ahead of a node's
// children, in the child order given by spec.md §3. Consumers (solver,
// printer) are expected to switch on Tag, never on Go's own dynamic type
// name, so the wire format doesn't shift under a refactor.
type Tag byte

const (
	TagLit Tag = iota
	TagVar
	TagUnaryWord
	TagBinaryWord
	TagTernaryWord
	TagReadWord
	TagBufLength
	TagIndexWordWord
	TagJoinBytes
	TagSLoad
	TagEqByte
	TagLitByte
	TagReadByte
	TagIndexWordByte
	TagEmptyBuf
	TagConcreteBuf
	TagAbstractBuf
	TagWriteByte
	TagWriteWord
	TagCopySlice
	TagEmptyStore
	TagConcreteStore
	TagAbstractStore
	TagSStore
)

func putUint32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

func putString(buf []byte, s string) []byte {
	buf = putUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

// Serialize encodes w as tag bytes followed by its children, recursively.
// Literals are big-endian 32-byte words, per spec.md §6.
func Serialize(w EWord) []byte {
	switch x := w.(type) {
	case Lit:
		b32 := x.Val.Bytes32()
		return append([]byte{byte(TagLit)}, b32[:]...)
	case Var:
		return putString([]byte{byte(TagVar)}, x.Name)
	case UnaryWord:
		out := []byte{byte(TagUnaryWord), byte(x.Op)}
		return append(out, Serialize(x.X)...)
	case BinaryWord:
		out := []byte{byte(TagBinaryWord), byte(x.Op)}
		out = append(out, Serialize(x.X)...)
		return append(out, Serialize(x.Y)...)
	case TernaryWord:
		out := []byte{byte(TagTernaryWord), byte(x.Op)}
		out = append(out, Serialize(x.X)...)
		out = append(out, Serialize(x.Y)...)
		return append(out, Serialize(x.Z)...)
	case ReadWordExpr:
		out := append([]byte{byte(TagReadWord)}, Serialize(x.Idx)...)
		return append(out, SerializeBuf(x.Buf)...)
	case BufLengthExpr:
		return append([]byte{byte(TagBufLength)}, SerializeBuf(x.Buf)...)
	case IndexWordWord:
		out := append([]byte{byte(TagIndexWordWord)}, Serialize(x.Idx)...)
		return append(out, Serialize(x.Word)...)
	case JoinBytesExpr:
		out := []byte{byte(TagJoinBytes)}
		for _, b := range x.Bytes {
			out = append(out, SerializeByte(b)...)
		}
		return out
	case SLoadExpr:
		out := append([]byte{byte(TagSLoad)}, Serialize(x.Key)...)
		return append(out, SerializeStorage(x.Store)...)
	case EqByteExpr:
		out := append([]byte{byte(TagEqByte)}, SerializeByte(x.X)...)
		return append(out, SerializeByte(x.Y)...)
	default:
		panic("expr: Serialize given an unknown EWord node")
	}
}

// SerializeByte encodes a Byte term.
func SerializeByte(b Byte) []byte {
	switch x := b.(type) {
	case LitByte:
		return []byte{byte(TagLitByte), x.Val}
	case ReadByteExpr:
		out := append([]byte{byte(TagReadByte)}, Serialize(x.Idx)...)
		return append(out, SerializeBuf(x.Buf)...)
	case IndexWordByte:
		out := append([]byte{byte(TagIndexWordByte)}, Serialize(x.Idx)...)
		return append(out, Serialize(x.Word)...)
	default:
		panic("expr: SerializeByte given an unknown Byte node")
	}
}

// SerializeBuf encodes a Buf term. ConcreteBuf is length-prefixed per
// spec.md §6.
func SerializeBuf(buf Buf) []byte {
	switch x := buf.(type) {
	case EmptyBuf:
		return []byte{byte(TagEmptyBuf)}
	case ConcreteBuf:
		out := putUint32([]byte{byte(TagConcreteBuf)}, uint32(len(x.Bytes)))
		return append(out, x.Bytes...)
	case AbstractBuf:
		return putString([]byte{byte(TagAbstractBuf)}, x.Name)
	case WriteByteExpr:
		out := append([]byte{byte(TagWriteByte)}, Serialize(x.Idx)...)
		out = append(out, SerializeByte(x.Val)...)
		return append(out, SerializeBuf(x.Base)...)
	case WriteWordExpr:
		out := append([]byte{byte(TagWriteWord)}, Serialize(x.Idx)...)
		out = append(out, Serialize(x.Val)...)
		return append(out, SerializeBuf(x.Base)...)
	case CopySliceExpr:
		out := []byte{byte(TagCopySlice)}
		out = append(out, Serialize(x.DstOffset)...)
		out = append(out, Serialize(x.SrcOffset)...)
		out = append(out, Serialize(x.Size)...)
		out = append(out, SerializeBuf(x.Src)...)
		return append(out, SerializeBuf(x.Dst)...)
	default:
		panic("expr: SerializeBuf given an unknown Buf node")
	}
}

// SerializeStorage encodes a Storage term. ConcreteStore is a
// length-prefixed list of (key, value) pairs in arbitrary order;
// consumers must not depend on the order they come out in.
func SerializeStorage(s Storage) []byte {
	switch x := s.(type) {
	case EmptyStore:
		return []byte{byte(TagEmptyStore)}
	case ConcreteStore:
		out := putUint32([]byte{byte(TagConcreteStore)}, uint32(len(x.Data)))
		for k, v := range x.Data {
			kb := k.Bytes32()
			vb := v.Bytes32()
			out = append(out, kb[:]...)
			out = append(out, vb[:]...)
		}
		return out
	case AbstractStore:
		return putString([]byte{byte(TagAbstractStore)}, x.Name)
	case SStoreExpr:
		out := append([]byte{byte(TagSStore)}, Serialize(x.Key)...)
		out = append(out, Serialize(x.Val)...)
		return append(out, SerializeStorage(x.Base)...)
	default:
		panic("expr: SerializeStorage given an unknown Storage node")
	}
}

// Batch is a set of serialized terms sharing one solver session, tagged
// with a correlation id the way a multi-query solver round needs. Solver
// dispatch itself is out of scope (spec.md §1); this just gives a session
// of queries a stable id to correlate by.
type Batch struct {
	SessionID uuid.UUID
	Terms     [][]byte
}

// SerializeBatch serializes each term and stamps the batch with a fresh
// session id.
func SerializeBatch(terms []EWord) Batch {
	out := make([][]byte, len(terms))
	for i, t := range terms {
		out[i] = Serialize(t)
	}
	return Batch{SessionID: uuid.New(), Terms: out}
}
