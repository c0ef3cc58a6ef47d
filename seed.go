package cairo

import (
	"github.com/cespare/xxhash/v2"

	"github.com/comfsrt/cairo/addr"
)

// SeedForName maps a declared variable name to its root seed word. The
// mapping is stable across processes and releases; renaming a variable
// moves all of its data.
func SeedForName(name string) addr.Word {
	return addr.Word(xxhash.Sum64String(name))
}
