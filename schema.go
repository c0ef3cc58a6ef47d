package cairo

import (
	"fmt"

	"github.com/comfsrt/cairo/addr"
)

// Schema is the set of storage variables a store works with. Declare all
// variables up front, then open stores against the schema.
type Schema struct {
	vars map[string]*Var
	list []*Var
}

func NewSchema() *Schema {
	return &Schema{vars: make(map[string]*Var)}
}

// Var is a named storage variable: a stable root seed plus the logical type
// rooted there.
type Var struct {
	name string
	seed addr.Word
	typ  *addr.Type
}

// Define declares a variable. Redeclaring a name is a programming error and
// panics.
func (sc *Schema) Define(name string, typ *addr.Type) *Var {
	if sc.vars[name] != nil {
		panic(fmt.Errorf("variable %s already defined", name))
	}
	v := &Var{name: name, seed: SeedForName(name), typ: typ}
	sc.vars[name] = v
	sc.list = append(sc.list, v)
	return v
}

// VarByName returns a declared variable, or nil.
func (sc *Schema) VarByName(name string) *Var {
	return sc.vars[name]
}

// Vars returns all declared variables in declaration order.
func (sc *Schema) Vars() []*Var {
	return sc.list
}

func (v *Var) Name() string     { return v.name }
func (v *Var) Seed() addr.Word  { return v.seed }
func (v *Var) Type() *addr.Type { return v.typ }

func (v *Var) String() string {
	return fmt.Sprintf("%s %s", v.name, v.typ)
}
