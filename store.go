package cairo

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.etcd.io/bbolt"

	"github.com/comfsrt/cairo/addr"
)

type Store struct {
	words   wordStore
	schema  *Schema
	logf    func(format string, args ...any)
	verbose bool

	ReadCount  atomic.Uint64
	WriteCount atomic.Uint64
}

type Options struct {
	Logf      func(format string, args ...any)
	Verbose   bool
	IsTesting bool
	MmapSize  int
}

// Open opens a Bolt-backed store at the given path.
func Open(path string, schema *Schema, opt Options) (*Store, error) {
	bopt := *bbolt.DefaultOptions
	bopt.Timeout = 10 * time.Second
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
		bopt.InitialMmapSize = 1024 * 1024 * 5
	} else {
		bopt.InitialMmapSize = 1024 * 1024 * 1024
		bopt.FreelistType = bbolt.FreelistMapType
	}
	if opt.MmapSize != 0 {
		bopt.InitialMmapSize = opt.MmapSize
	}

	bdb, err := bbolt.Open(path, 0666, &bopt)
	if err != nil {
		return nil, fmt.Errorf("cairo: %w", err)
	}
	words, err := newBoltWords(bdb)
	if err != nil {
		bdb.Close()
		return nil, fmt.Errorf("cairo: %w", err)
	}
	return newStore(words, schema, opt), nil
}

// OpenMem opens a transient in-memory store, mainly for tests.
func OpenMem(schema *Schema, opt Options) *Store {
	return newStore(newMemWords(), schema, opt)
}

func newStore(words wordStore, schema *Schema, opt Options) *Store {
	return &Store{
		words:   words,
		schema:  schema,
		logf:    opt.Logf,
		verbose: opt.Verbose,
	}
}

func (s *Store) Schema() *Schema {
	return s.schema
}

func (s *Store) Close() {
	err := s.words.Close()
	if err != nil {
		panic(fmt.Errorf("cairo: closing: %w", err))
	}
}

// ReadWord implements addr.Reader, so finalized pointers can read through
// the store directly.
func (s *Store) ReadWord(a addr.Address, off int) (addr.Word, error) {
	w, err := s.words.ReadWord(a, off)
	s.ReadCount.Add(1)
	if s.verbose && s.logf != nil {
		s.logf("cairo: read %v+%d = %d (%v)", a, off, w, err)
	}
	return w, err
}

// WriteWord implements addr.Writer.
func (s *Store) WriteWord(a addr.Address, off int, w addr.Word) error {
	err := s.words.WriteWord(a, off, w)
	s.WriteCount.Add(1)
	if s.verbose && s.logf != nil {
		s.logf("cairo: write %v+%d = %d (%v)", a, off, w, err)
	}
	return err
}

// Ref roots a read-only path at the variable.
func (s *Store) Ref(v *Var) addr.Ref {
	return addr.NewRef(v.typ, v.seed)
}

// MutRef roots a writable path at the variable.
func (s *Store) MutRef(v *Var) addr.MutRef {
	return addr.NewMutRef(v.typ, v.seed)
}

// ReadOnly returns a view of the store that can only root read-only paths.
func (s *Store) ReadOnly() View {
	return View{s: s}
}

// GetFelt reads a scalar variable.
func (s *Store) GetFelt(v *Var) (addr.Word, error) {
	return s.Ref(v).Base().ReadWord(s)
}

// SetFelt writes a scalar variable.
func (s *Store) SetFelt(v *Var, w addr.Word) error {
	return s.MutRef(v).Base().WriteWord(s, w)
}

// MapGet reads one entry of a map variable with a scalar value type.
func (s *Store) MapGet(v *Var, key any) (addr.Word, error) {
	return s.Ref(v).Key(key).Base().ReadWord(s)
}

// MapSet writes one entry of a map variable with a scalar value type.
func (s *Store) MapSet(v *Var, key any, w addr.Word) error {
	return s.MutRef(v).Key(key).Base().WriteWord(s, w)
}

// GetRecord reads a composite variable whole, in field declaration order.
func (s *Store) GetRecord(v *Var) ([]addr.Word, error) {
	return s.Ref(v).Base().Read(s)
}

// PutRecord writes a composite variable whole.
func (s *Store) PutRecord(v *Var, vals []addr.Word) error {
	return s.MutRef(v).Base().Write(s, vals)
}

// GetField reads a single field of a composite variable. Panics on an
// unknown field name.
func (s *Store) GetField(v *Var, field string) (addr.Word, error) {
	p, ok := s.Ref(v).Base().Field(field)
	if !ok {
		panic(fmt.Sprintf("type %s has no field %s", v.typ, field))
	}
	return p.ReadWord(s)
}

// View is the read-only face of a store. It cannot produce writable paths,
// so nothing reachable from it can write.
type View struct {
	s *Store
}

// ReadWord implements addr.Reader.
func (vw View) ReadWord(a addr.Address, off int) (addr.Word, error) {
	return vw.s.ReadWord(a, off)
}

// Ref roots a read-only path at the variable.
func (vw View) Ref(v *Var) addr.Ref {
	return vw.s.Ref(v)
}

// GetFelt reads a scalar variable.
func (vw View) GetFelt(v *Var) (addr.Word, error) {
	return vw.s.GetFelt(v)
}

// MapGet reads one entry of a map variable with a scalar value type.
func (vw View) MapGet(v *Var, key any) (addr.Word, error) {
	return vw.s.MapGet(v, key)
}
