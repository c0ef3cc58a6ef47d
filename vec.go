package cairo

import (
	"errors"
	"fmt"

	"github.com/comfsrt/cairo/addr"
)

// ErrOutOfRange is returned by vector accessors for indices at or past the
// stored length.
var ErrOutOfRange = errors.New("vector index out of range")

// Vec is a bounds-checked accessor for a vector variable with scalar
// elements. The element count lives in a word at the vector's own derived
// address; elements live at per-index addresses.
type Vec struct {
	s *Store
	r addr.MutRef
}

// Vec returns an accessor for a vector variable. Panics if the variable is
// not vector-shaped.
func (s *Store) Vec(v *Var) Vec {
	if v.typ.Kind() != addr.KindVector {
		panic(fmt.Sprintf("variable %s is not a vector", v.name))
	}
	return Vec{s: s, r: s.MutRef(v)}
}

// Len returns the stored element count.
func (vec Vec) Len() (uint64, error) {
	n, err := vec.r.VecLen().ReadWord(vec.s)
	return uint64(n), err
}

// At reads element i, checking it against the stored length.
func (vec Vec) At(i uint64) (addr.Word, error) {
	if err := vec.checkBounds(i); err != nil {
		return 0, err
	}
	return vec.r.Index(i).Base().ReadWord(vec.s)
}

// Set overwrites element i, checking it against the stored length.
func (vec Vec) Set(i uint64, w addr.Word) error {
	if err := vec.checkBounds(i); err != nil {
		return err
	}
	return vec.r.Index(i).Base().WriteWord(vec.s, w)
}

// Append stores a new element past the current end and bumps the length.
// Returns the new element's index.
func (vec Vec) Append(w addr.Word) (uint64, error) {
	n, err := vec.Len()
	if err != nil {
		return 0, err
	}
	if err := vec.r.Index(n).Base().WriteWord(vec.s, w); err != nil {
		return 0, err
	}
	if err := vec.r.VecLen().WriteWord(vec.s, addr.Word(n+1)); err != nil {
		return 0, err
	}
	return n, nil
}

func (vec Vec) checkBounds(i uint64) error {
	n, err := vec.Len()
	if err != nil {
		return err
	}
	if i >= n {
		return fmt.Errorf("%w: %d >= %d", ErrOutOfRange, i, n)
	}
	return nil
}
