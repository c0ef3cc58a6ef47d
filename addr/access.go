package addr

import "errors"

// ErrWordCount is returned by Write when the value's word count does not
// match the pointer's width.
var ErrWordCount = errors.New("value word count does not match pointer width")

// Reader is the read side of a word-addressable backend. Offsets are
// zero-based word indices within the record based at the address.
type Reader interface {
	ReadWord(a Address, off int) (Word, error)
}

// Writer is a backend that also accepts writes.
type Writer interface {
	Reader
	WriteWord(a Address, off int, w Word) error
}

// Read reads the pointer's whole window, one backend read per word, in
// order. A backend failure aborts the read; no partial value is returned
// and the error is passed through verbatim.
func (p Ptr) Read(r Reader) ([]Word, error) {
	out := make([]Word, p.words)
	for i := range out {
		w, err := r.ReadWord(p.addr, p.off+i)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

// ReadWord reads a single-word pointer. Panics if the pointer is wider than
// one word; use Read or At first.
func (p Ptr) ReadWord(r Reader) (Word, error) {
	if p.words != 1 {
		panic("ReadWord on a multi-word pointer")
	}
	return r.ReadWord(p.addr, p.off)
}

func (p BasePtr) Read(r Reader) ([]Word, error) {
	return p.Ptr().Read(r)
}

func (p BasePtr) ReadWord(r Reader) (Word, error) {
	return p.Ptr().ReadWord(r)
}

func (p MutPtr) Read(r Reader) ([]Word, error) {
	return p.ro.Read(r)
}

func (p MutPtr) ReadWord(r Reader) (Word, error) {
	return p.ro.ReadWord(r)
}

// Write stores the value words at the pointer's window, one backend write
// per word, in order. A backend failure aborts the write with the backend's
// error; words already written stay written (the backend defines atomicity,
// not this layer).
func (p MutPtr) Write(w Writer, vals []Word) error {
	if len(vals) != p.ro.words {
		return ErrWordCount
	}
	for i, v := range vals {
		if err := w.WriteWord(p.ro.addr, p.ro.off+i, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteWord writes a single-word pointer. Panics if the pointer is wider
// than one word.
func (p MutPtr) WriteWord(w Writer, v Word) error {
	if p.ro.words != 1 {
		panic("WriteWord on a multi-word pointer")
	}
	return w.WriteWord(p.ro.addr, p.ro.off, v)
}

func (p MutBasePtr) Read(r Reader) ([]Word, error) {
	return p.ro.Read(r)
}

func (p MutBasePtr) ReadWord(r Reader) (Word, error) {
	return p.ro.ReadWord(r)
}

func (p MutBasePtr) Write(w Writer, vals []Word) error {
	return p.Ptr().Write(w, vals)
}

func (p MutBasePtr) WriteWord(w Writer, v Word) error {
	return p.Ptr().WriteWord(w, v)
}
