package cairo

import (
	"errors"

	"github.com/comfsrt/cairo/addr"
)

// ErrClosed is returned by backend operations after Close.
var ErrClosed = errors.New("storage closed")

// ErrNegativeOffset is returned for reads and writes below the record base.
var ErrNegativeOffset = errors.New("negative word offset")

// wordStore represents a word-addressable storage backend (Bolt, in-memory,
// etc.). Offsets are zero-based word indices within the record based at the
// address. Cells that have never been written read as zero.
type wordStore interface {
	addr.Writer

	// Close closes the storage.
	Close() error
}
