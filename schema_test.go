package cairo

import (
	"testing"

	"github.com/comfsrt/cairo/addr"
)

func TestSeedForName_stable(t *testing.T) {
	eq(t, SeedForName("balance"), SeedForName("balance"))
	neq(t, SeedForName("balance"), SeedForName("allowances"))
	// pin the mapping: changing it would silently relocate all stored data
	eq(t, SeedForName(""), addr.Word(0xef46db3751d8e999))
}

func TestSchema_define(t *testing.T) {
	sc := NewSchema()
	balance := sc.Define("balance", tFelt)
	eq(t, balance.Name(), "balance")
	eq(t, balance.Seed(), SeedForName("balance"))
	eq(t, balance.Type(), tFelt)
	eq(t, sc.VarByName("balance"), balance)
	eq(t, sc.VarByName("missing"), (*Var)(nil))
	eq(t, len(sc.Vars()), 1)
}

func TestSchema_duplicate_define_panics(t *testing.T) {
	sc := NewSchema()
	sc.Define("balance", tFelt)
	defer expectPanic(t)
	sc.Define("balance", tFelt)
}
