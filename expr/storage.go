package expr

import "github.com/holiman/uint256"

// Storage is a word-keyed, word-valued map with a distinguished "no prior
// write" state. Closed node set, same convention as the other three sorts.
type Storage interface {
	isStorage()
}

func (EmptyStore) isStorage()    {}
func (ConcreteStore) isStorage() {}
func (AbstractStore) isStorage() {}
func (SStoreExpr) isStorage()    {}

// EmptyStore has no prior writes anywhere.
type EmptyStore struct{}

// ConcreteStore is an explicit key->value map; keys absent from Data are
// "no prior write", indistinguishable from EmptyStore for reads.
type ConcreteStore struct {
	Data map[uint256.Int]uint256.Int
}

// AbstractStore is a fully unknown named store.
type AbstractStore struct {
	Name string
}

// SStoreExpr overlays one key/value write on top of Base.
type SStoreExpr struct {
	Key, Val EWord
	Base     Storage
}

// ReadStorage resolves a point lookup, returning (value, true) when a
// write (or an abstract/symbolic fallback) applies, and (nil, false) only
// when the lookup reaches EmptyStore (for any key) or a concrete store has
// no entry for a concrete key — the signal callers use to fall back to an
// out-of-band RPC fetch.
func ReadStorage(store Storage, key EWord) (EWord, bool) {
	for {
		switch s := store.(type) {
		case EmptyStore:
			return nil, false

		case ConcreteStore:
			k, kok := asLit(key)
			if !kok {
				return SLoadExpr{key, store}, true
			}
			if v, found := s.Data[*k]; found {
				return litFromUint256(&v), true
			}
			return nil, false

		case AbstractStore:
			return SLoadExpr{key, store}, true

		case SStoreExpr:
			sk, skok := asLit(s.Key)
			k, kok := asLit(key)
			if skok && kok {
				if sk.Eq(k) {
					return s.Val, true
				}
				store = s.Base
				continue
			}
			return SLoadExpr{key, store}, true

		default:
			return SLoadExpr{key, store}, true
		}
	}
}

// WriteStorage records a write. Concrete key/value writes onto an already
// concrete (or empty) store fold into an updated ConcreteStore; anything
// symbolic is appended to the SStore log instead — writes are never
// dropped for symbolic keys or values, since that would lose information
// the solver needs.
func WriteStorage(key, val EWord, store Storage) Storage {
	k, kok := asLit(key)
	v, vok := asLit(val)
	if kok && vok {
		switch s := store.(type) {
		case EmptyStore:
			m := map[uint256.Int]uint256.Int{*k: *v}
			return ConcreteStore{m}
		case ConcreteStore:
			m := make(map[uint256.Int]uint256.Int, len(s.Data)+1)
			for sk, sv := range s.Data {
				m[sk] = sv
			}
			m[*k] = *v
			return ConcreteStore{m}
		}
	}
	return SStoreExpr{key, val, store}
}
