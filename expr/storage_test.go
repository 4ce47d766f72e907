package expr

import "testing"

func TestStorageReadOwnWrite(t *testing.T) {
	s := WriteStorage(LitU64(1), LitU64(42), EmptyStore{})
	v, ok := ReadStorage(s, LitU64(1))
	if !ok {
		t.Fatalf("expected a hit")
	}
	if !Equal(v, LitU64(42)) {
		t.Errorf("got %v want 42", v)
	}
}

func TestStorageReadMiss(t *testing.T) {
	s := WriteStorage(LitU64(1), LitU64(42), EmptyStore{})
	_, ok := ReadStorage(s, LitU64(2))
	if ok {
		t.Fatalf("expected a miss for an untouched concrete key")
	}
	_, ok2 := ReadStorage(EmptyStore{}, LitU64(99))
	if ok2 {
		t.Fatalf("expected a miss against EmptyStore")
	}
}

func TestStorageOverwrite(t *testing.T) {
	s := WriteStorage(LitU64(1), LitU64(1), EmptyStore{})
	s = WriteStorage(LitU64(1), LitU64(2), s)
	v, ok := ReadStorage(s, LitU64(1))
	if !ok || !Equal(v, LitU64(2)) {
		t.Errorf("overwrite lost: got %v, ok=%v", v, ok)
	}
	if cs, ok := s.(ConcreteStore); !ok || len(cs.Data) != 1 {
		t.Errorf("expected folded ConcreteStore with 1 entry, got %T", s)
	}
}

func TestStorageSymbolicKeyStaysSymbolic(t *testing.T) {
	s := WriteStorage(Var{"k"}, LitU64(1), EmptyStore{})
	if _, ok := s.(SStoreExpr); !ok {
		t.Fatalf("expected SStoreExpr for a symbolic key, got %T", s)
	}
	v, ok := ReadStorage(s, LitU64(5))
	if !ok {
		t.Fatalf("a symbolic write ahead of the read must not be skipped")
	}
	if _, ok := v.(SLoadExpr); !ok {
		t.Errorf("expected a residual SLoadExpr, got %T", v)
	}
}

func TestStorageSymbolicWriteAheadOfConcreteReadIsNotAMiss(t *testing.T) {
	base := WriteStorage(LitU64(7), LitU64(100), EmptyStore{})
	sym := WriteStorage(Var{"other"}, LitU64(1), base)
	_, ok := ReadStorage(sym, LitU64(7))
	if !ok {
		t.Fatalf("a symbolic write ahead of an unrelated concrete read must still yield a residual, not a miss")
	}
}
