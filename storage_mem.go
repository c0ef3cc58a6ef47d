package cairo

import (
	"sync"

	"github.com/comfsrt/cairo/addr"
)

type memCell struct {
	addr addr.Address
	off  int
}

type memWords struct {
	mu     sync.Mutex
	cells  map[memCell]addr.Word
	closed bool
}

// newMemWords returns a transient in-memory backend intended for tests.
func newMemWords() wordStore {
	return &memWords{cells: make(map[memCell]addr.Word)}
}

func (s *memWords) ReadWord(a addr.Address, off int) (addr.Word, error) {
	if off < 0 {
		return 0, ErrNegativeOffset
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	return s.cells[memCell{a, off}], nil
}

func (s *memWords) WriteWord(a addr.Address, off int, w addr.Word) error {
	if off < 0 {
		return ErrNegativeOffset
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.cells[memCell{a, off}] = w
	return nil
}

func (s *memWords) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.cells = nil
	return nil
}
