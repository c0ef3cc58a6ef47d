package cairo

import (
	"encoding/binary"

	"go.etcd.io/bbolt"

	"github.com/comfsrt/cairo/addr"
)

var cellsBucket = []byte("cells")

// boltWords persists words in a single Bolt bucket, keyed by record address
// followed by the big-endian word offset so a record's words sort together.
type boltWords struct {
	bdb *bbolt.DB
}

func newBoltWords(bdb *bbolt.DB) (wordStore, error) {
	err := bdb.Update(func(btx *bbolt.Tx) error {
		_, err := btx.CreateBucketIfNotExists(cellsBucket)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &boltWords{bdb: bdb}, nil
}

func (s *boltWords) Bolt() *bbolt.DB {
	return s.bdb
}

func (s *boltWords) ReadWord(a addr.Address, off int) (addr.Word, error) {
	if off < 0 {
		return 0, ErrNegativeOffset
	}
	var w addr.Word
	err := s.bdb.View(func(btx *bbolt.Tx) error {
		raw := btx.Bucket(cellsBucket).Get(cellKey(a, off))
		if len(raw) == 8 {
			w = addr.Word(binary.BigEndian.Uint64(raw))
		}
		return nil
	})
	return w, err
}

func (s *boltWords) WriteWord(a addr.Address, off int, w addr.Word) error {
	if off < 0 {
		return ErrNegativeOffset
	}
	var val [8]byte
	binary.BigEndian.PutUint64(val[:], uint64(w))
	return s.bdb.Update(func(btx *bbolt.Tx) error {
		return btx.Bucket(cellsBucket).Put(cellKey(a, off), val[:])
	})
}

func (s *boltWords) Close() error {
	return s.bdb.Close()
}

func cellKey(a addr.Address, off int) []byte {
	key := make([]byte, len(a)+8)
	copy(key, a[:])
	binary.BigEndian.PutUint64(key[len(a):], uint64(off))
	return key
}
