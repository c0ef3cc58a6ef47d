package addr

// Resolver is anything that can produce a concrete read-only path: a Ref
// returns itself, a Deferred resolves its pending component. Implementing
// it is all it takes to gain the read protocol; the hashing and I/O logic
// are never re-implemented per shape.
type Resolver interface {
	AsRef() Ref
}

func (r Ref) AsRef() Ref      { return r }
func (d Deferred) AsRef() Ref { return d.Resolve() }

// MutResolver is the writable counterpart. Only the writable path types
// implement it, so the write protocol below stays statically unreachable
// from read-only roots.
type MutResolver interface {
	AsMutRef() MutRef
}

func (r MutRef) AsMutRef() MutRef      { return r }
func (d MutDeferred) AsMutRef() MutRef { return d.Resolve() }

// ReadValue resolves the path, finalizes it and reads the value whole.
func ReadValue(r Reader, p Resolver) ([]Word, error) {
	return p.AsRef().Base().Read(r)
}

// WriteValue resolves the writable path, finalizes it and writes the value
// whole.
func WriteValue(w Writer, p MutResolver, vals []Word) error {
	return p.AsMutRef().Base().Write(w, vals)
}
