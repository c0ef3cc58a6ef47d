package addr

import "fmt"

// Ref is a read-only typed path from a root seed towards a value. It pairs
// a hash chain with the logical type the path currently addresses; every
// traversal step folds one component into the chain and switches the type
// per the container's declaration, so a Ref to a container can only ever
// yield Refs to its elements, never a raw address of the container itself.
//
// Refs are plain values. Copying one and continuing both copies is the
// intended way to fan out from a shared prefix.
type Ref struct {
	typ   *Type
	chain Chain
}

// NewRef roots a read-only path at the given seed.
func NewRef(typ *Type, seed Word) Ref {
	return Ref{typ: typ, chain: NewChain(seed)}
}

func (r Ref) Type() *Type { return r.typ }

// Key steps into a map entry. Panics unless the current type is a map.
func (r Ref) Key(key any) Ref {
	return Ref{typ: r.typ.keyTarget(), chain: r.chain.Update(key)}
}

// Index steps into a vector element. Panics unless the current type is a
// vector. No bounds check happens here; the address of element i is defined
// whether or not the vector is that long (the bounds-checked accessors live
// in the parent package, next to the length cell).
func (r Ref) Index(i uint64) Ref {
	return Ref{typ: r.typ.indexTarget(), chain: r.chain.Update(i)}
}

// Child steps into a named sub-value of a node. Panics unless the current
// type is a node declaring that child.
func (r Ref) Child(name string) Ref {
	return Ref{typ: r.typ.childTarget(name), chain: r.chain.Update(name)}
}

// DeferKey is Key without the hashing cost: the component is recorded but
// not folded until the Deferred is resolved.
func (r Ref) DeferKey(key any) Deferred {
	return Deferred{typ: r.typ.keyTarget(), snap: r.chain, pending: encodeComponent(nil, key)}
}

// DeferChild is Child without the hashing cost.
func (r Ref) DeferChild(name string) Deferred {
	return Deferred{typ: r.typ.childTarget(name), snap: r.chain, pending: encodeComponent(nil, name)}
}

// Base finalizes the path into a zero-offset pointer. Panics if the current
// type is a container; containers must be traversed into first.
func (r Ref) Base() BasePtr {
	if !r.typ.Storable() {
		panic(fmt.Sprintf("cannot finalize a path to container type %s", r.typ.name))
	}
	return BasePtr{typ: r.typ, addr: r.chain.Sum()}
}

// VecLen returns a pointer to the vector's length cell, which lives at the
// vector's own derived address (elements live at per-index addresses, so
// the base slot is free). Panics unless the current type is a vector.
func (r Ref) VecLen() BasePtr {
	if r.typ.kind != KindVector {
		panic(fmt.Sprintf("type %s has no length cell", r.typ.name))
	}
	return BasePtr{typ: vecLenType, addr: r.chain.Sum()}
}

var vecLenType = Scalar("vec.len")

// MutRef is the write-capable twin of Ref. It exists as a separate concrete
// type, not a flag: a MutRef can only be created by rooting one explicitly,
// and it is the only source of writable pointers. Demoting to a Ref is
// always allowed; there is no way back.
type MutRef struct {
	ro Ref
}

// NewMutRef roots a writable path at the given seed.
func NewMutRef(typ *Type, seed Word) MutRef {
	return MutRef{ro: NewRef(typ, seed)}
}

// Ref demotes the path to read-only.
func (r MutRef) Ref() Ref { return r.ro }

func (r MutRef) Type() *Type { return r.ro.typ }

func (r MutRef) Key(key any) MutRef {
	return MutRef{ro: r.ro.Key(key)}
}

func (r MutRef) Index(i uint64) MutRef {
	return MutRef{ro: r.ro.Index(i)}
}

func (r MutRef) Child(name string) MutRef {
	return MutRef{ro: r.ro.Child(name)}
}

func (r MutRef) DeferKey(key any) MutDeferred {
	return MutDeferred{ro: r.ro.DeferKey(key)}
}

func (r MutRef) DeferChild(name string) MutDeferred {
	return MutDeferred{ro: r.ro.DeferChild(name)}
}

func (r MutRef) Base() MutBasePtr {
	return MutBasePtr{ro: r.ro.Base()}
}

func (r MutRef) VecLen() MutBasePtr {
	return MutBasePtr{ro: r.ro.VecLen()}
}
