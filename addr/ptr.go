package addr

import "fmt"

// BasePtr is a finalized path: the hash work is done and only the address
// remains. The zero offset is implied by the type: holding a BasePtr proves
// "first word of the record". It retains the value's type descriptor to know
// the record's width and field layout.
type BasePtr struct {
	typ  *Type
	addr Address
}

func (p BasePtr) Addr() Address { return p.addr }
func (p BasePtr) Type() *Type   { return p.typ }

// Words returns the record width in backend words.
func (p BasePtr) Words() int { return p.typ.Words() }

// Ptr widens to a general pointer at offset 0.
func (p BasePtr) Ptr() Ptr {
	return Ptr{addr: p.addr, off: 0, words: p.typ.Words()}
}

// Field projects to the single-word pointer of a composite field.
func (p BasePtr) Field(name string) (Ptr, bool) {
	off, ok := p.typ.FieldOffset(name)
	if !ok {
		return Ptr{}, false
	}
	return Ptr{addr: p.addr, off: off, words: 1}, true
}

// Ptr is an address plus a word offset, ready for I/O. It no longer carries
// the type descriptor, only the width of the remaining window; it is the
// cheapest form a path can be reduced to.
type Ptr struct {
	addr  Address
	off   int
	words int
}

func (p Ptr) Addr() Address { return p.addr }
func (p Ptr) Offset() int   { return p.off }
func (p Ptr) Words() int    { return p.words }

// At projects to the k-th word of the window as a single-word pointer.
func (p Ptr) At(k int) Ptr {
	if k < 0 || k >= p.words {
		panic(fmt.Sprintf("word offset %d out of range for %d-word pointer", k, p.words))
	}
	return Ptr{addr: p.addr, off: p.off + k, words: 1}
}

// MutBasePtr is the write-capable twin of BasePtr, obtainable only through
// MutRef.Base.
type MutBasePtr struct {
	ro BasePtr
}

// BasePtr demotes to read-only.
func (p MutBasePtr) BasePtr() BasePtr { return p.ro }

func (p MutBasePtr) Addr() Address { return p.ro.addr }
func (p MutBasePtr) Type() *Type   { return p.ro.typ }
func (p MutBasePtr) Words() int    { return p.ro.Words() }

func (p MutBasePtr) Ptr() MutPtr {
	return MutPtr{ro: p.ro.Ptr()}
}

func (p MutBasePtr) Field(name string) (MutPtr, bool) {
	ptr, ok := p.ro.Field(name)
	return MutPtr{ro: ptr}, ok
}

// MutPtr is the write-capable twin of Ptr.
type MutPtr struct {
	ro Ptr
}

// Ptr demotes to read-only.
func (p MutPtr) Ptr() Ptr { return p.ro }

func (p MutPtr) Addr() Address { return p.ro.addr }
func (p MutPtr) Offset() int   { return p.ro.off }
func (p MutPtr) Words() int    { return p.ro.words }

func (p MutPtr) At(k int) MutPtr {
	return MutPtr{ro: p.ro.At(k)}
}
