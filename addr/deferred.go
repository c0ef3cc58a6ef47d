package addr

// Deferred is a path with one component recorded but not yet folded into
// the chain. Fanning out from a node materializes one of these per child;
// the hash work is only paid for the children that actually get resolved.
//
// Resolve is a pure function of the snapshot and the pending component:
// resolving twice recomputes the same path (no memoization).
type Deferred struct {
	typ     *Type
	snap    Chain
	pending []byte
}

func (d Deferred) Type() *Type { return d.typ }

// Resolve applies the pending component and returns the concrete path.
func (d Deferred) Resolve() Ref {
	return Ref{typ: d.typ, chain: d.snap.fold(d.pending)}
}

// MutDeferred is the write-capable twin of Deferred.
type MutDeferred struct {
	ro Deferred
}

func (d MutDeferred) Type() *Type { return d.ro.typ }

// Deferred demotes to read-only.
func (d MutDeferred) Deferred() Deferred { return d.ro }

func (d MutDeferred) Resolve() MutRef {
	return MutRef{ro: d.ro.Resolve()}
}
