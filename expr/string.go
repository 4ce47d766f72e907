package expr

import "fmt"

// String implementations below exist for test failure output and %v
// formatting, not as a disassembler (out of scope per spec.md §1) —
// infix-style grounded on aj3423/edb's Node.String() (UnaryOp/BinaryOp
// render as "op(x)" / "(x op y)").

func (l Lit) String() string { return l.Val.Hex() }
func (v Var) String() string { return v.Name }

func (u UnaryWord) String() string {
	return fmt.Sprintf("%s(%s)", wordOpNames[u.Op], str(u.X))
}

func (bw BinaryWord) String() string {
	return fmt.Sprintf("(%s %s %s)", str(bw.X), wordOpNames[bw.Op], str(bw.Y))
}

func (tw TernaryWord) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", wordOpNames[tw.Op], str(tw.X), str(tw.Y), str(tw.Z))
}

func (r ReadWordExpr) String() string { return fmt.Sprintf("readWord(%s, %s)", str(r.Idx), strBuf(r.Buf)) }
func (b BufLengthExpr) String() string { return fmt.Sprintf("bufLength(%s)", strBuf(b.Buf)) }
func (i IndexWordWord) String() string {
	return fmt.Sprintf("indexWord(%s, %s)", str(i.Idx), str(i.Word))
}
func (j JoinBytesExpr) String() string {
	out := "joinBytes("
	for i, b := range j.Bytes {
		if i > 0 {
			out += ", "
		}
		out += strByte(b)
	}
	return out + ")"
}
func (s SLoadExpr) String() string {
	return fmt.Sprintf("SLoad(%s, %s)", str(s.Key), strStorage(s.Store))
}
func (e EqByteExpr) String() string {
	return fmt.Sprintf("eqByte(%s, %s)", strByte(e.X), strByte(e.Y))
}

func (l LitByte) String() string      { return fmt.Sprintf("0x%02x", l.Val) }
func (r ReadByteExpr) String() string { return fmt.Sprintf("readByte(%s, %s)", str(r.Idx), strBuf(r.Buf)) }
func (i IndexWordByte) String() string {
	return fmt.Sprintf("indexWord(%s, %s)", str(i.Idx), str(i.Word))
}

func (EmptyBuf) String() string    { return "EmptyBuf" }
func (c ConcreteBuf) String() string { return fmt.Sprintf("ConcreteBuf(%d bytes)", len(c.Bytes)) }
func (a AbstractBuf) String() string { return fmt.Sprintf("AbstractBuf(%s)", a.Name) }
func (w WriteByteExpr) String() string {
	return fmt.Sprintf("WriteByte(%s, %s, %s)", str(w.Idx), strByte(w.Val), strBuf(w.Base))
}
func (w WriteWordExpr) String() string {
	return fmt.Sprintf("WriteWord(%s, %s, %s)", str(w.Idx), str(w.Val), strBuf(w.Base))
}
func (c CopySliceExpr) String() string {
	return fmt.Sprintf("CopySlice(%s, %s, %s, %s, %s)",
		str(c.DstOffset), str(c.SrcOffset), str(c.Size), strBuf(c.Src), strBuf(c.Dst))
}

func (EmptyStore) String() string      { return "EmptyStore" }
func (c ConcreteStore) String() string { return fmt.Sprintf("ConcreteStore(%d entries)", len(c.Data)) }
func (a AbstractStore) String() string { return fmt.Sprintf("AbstractStore(%s)", a.Name) }
func (s SStoreExpr) String() string {
	return fmt.Sprintf("SStore(%s, %s, %s)", str(s.Key), str(s.Val), strStorage(s.Base))
}

func str(w EWord) string {
	if s, ok := w.(fmt.Stringer); ok {
		return s.String()
	}
	return "<EWord>"
}

func strByte(b Byte) string {
	if s, ok := b.(fmt.Stringer); ok {
		return s.String()
	}
	return "<Byte>"
}

func strBuf(b Buf) string {
	if s, ok := b.(fmt.Stringer); ok {
		return s.String()
	}
	return "<Buf>"
}

func strStorage(s Storage) string {
	if v, ok := s.(fmt.Stringer); ok {
		return v.String()
	}
	return "<Storage>"
}
