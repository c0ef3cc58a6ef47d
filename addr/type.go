package addr

import "fmt"

// Kind is the closed set of logical value shapes the engine understands.
// Scalar and Composite values are storable (they occupy a fixed number of
// contiguous words at one address); Map, Vector and Node are containers,
// which only exist to be traversed into, never read or written whole.
type Kind uint8

const (
	KindScalar Kind = iota
	KindComposite
	KindMap
	KindVector
	KindNode
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindComposite:
		return "composite"
	case KindMap:
		return "map"
	case KindVector:
		return "vector"
	case KindNode:
		return "node"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

type kindProps struct {
	storable bool // Base/Read/Write allowed
	keyed    bool // Key traversal allowed
	indexed  bool // Index traversal allowed
	nested   bool // Child traversal allowed
}

// One dispatch table decides what each shape supports; everything else in
// the engine consults it instead of switching on kinds ad hoc.
var kindTable = [...]kindProps{
	KindScalar:    {storable: true},
	KindComposite: {storable: true},
	KindMap:       {keyed: true},
	KindVector:    {indexed: true},
	KindNode:      {nested: true},
}

// Type describes the logical shape of the value a path addresses. Types are
// built once, up front, and shared; they carry no per-value data.
type Type struct {
	kind   Kind
	name   string
	fields []string // composite: one word per field, layout order
	key    *Type    // map key
	elem   *Type    // map value / vector element
	kids   []Child  // node children
}

// Child declares a named sub-value of a Node type.
type Child struct {
	Name string
	Type *Type
}

// Scalar declares a single-word value type.
func Scalar(name string) *Type {
	return &Type{kind: KindScalar, name: name}
}

// Composite declares a multi-word value type whose fields are packed into
// consecutive words, one word per field, in declaration order.
func Composite(name string, fields ...string) *Type {
	if len(fields) == 0 {
		panic(fmt.Sprintf("composite type %s must have at least one field", name))
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f] {
			panic(fmt.Sprintf("composite type %s repeats field %s", name, f))
		}
		seen[f] = true
	}
	return &Type{kind: KindComposite, name: name, fields: fields}
}

// MapOf declares a map container type. Keys must be scalar-shaped; the value
// type can be anything, including another container.
func MapOf(key, elem *Type) *Type {
	if key.kind != KindScalar {
		panic(fmt.Sprintf("map key type %s must be scalar", key.name))
	}
	return &Type{
		kind: KindMap,
		name: fmt.Sprintf("map[%s]%s", key.name, elem.name),
		key:  key,
		elem: elem,
	}
}

// VectorOf declares a vector container type.
func VectorOf(elem *Type) *Type {
	return &Type{
		kind: KindVector,
		name: fmt.Sprintf("vec[%s]", elem.name),
		elem: elem,
	}
}

// Node declares a container of named sub-values, each of which gets its own
// derived address (as opposed to Composite, whose fields share one address).
func Node(name string, children ...Child) *Type {
	seen := make(map[string]bool, len(children))
	for _, c := range children {
		if seen[c.Name] {
			panic(fmt.Sprintf("node type %s repeats child %s", name, c.Name))
		}
		seen[c.Name] = true
	}
	return &Type{kind: KindNode, name: name, kids: children}
}

func (typ *Type) Kind() Kind     { return typ.kind }
func (typ *Type) Name() string   { return typ.name }
func (typ *Type) String() string { return typ.name }

// Storable reports whether values of this type can be read or written whole.
func (typ *Type) Storable() bool {
	return kindTable[typ.kind].storable
}

// Words returns the number of contiguous backend words a value occupies.
// Only meaningful for storable types.
func (typ *Type) Words() int {
	switch typ.kind {
	case KindScalar:
		return 1
	case KindComposite:
		return len(typ.fields)
	default:
		panic(fmt.Sprintf("type %s is not storable", typ.name))
	}
}

// FieldOffset returns the word offset of a composite field.
func (typ *Type) FieldOffset(name string) (int, bool) {
	for i, f := range typ.fields {
		if f == name {
			return i, true
		}
	}
	return 0, false
}

func (typ *Type) keyTarget() *Type {
	if !kindTable[typ.kind].keyed {
		panic(fmt.Sprintf("type %s does not support key traversal", typ.name))
	}
	return typ.elem
}

func (typ *Type) indexTarget() *Type {
	if !kindTable[typ.kind].indexed {
		panic(fmt.Sprintf("type %s does not support index traversal", typ.name))
	}
	return typ.elem
}

func (typ *Type) childTarget(name string) *Type {
	if !kindTable[typ.kind].nested {
		panic(fmt.Sprintf("type %s does not support child traversal", typ.name))
	}
	for _, c := range typ.kids {
		if c.Name == name {
			return c.Type
		}
	}
	panic(fmt.Sprintf("type %s has no child %s", typ.name, name))
}
