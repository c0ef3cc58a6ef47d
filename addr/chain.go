package addr

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Word is a single backend storage cell.
type Word uint64

// Address identifies the base location of a record in the backend.
type Address [32]byte

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// Chain is an immutable hash accumulator for path components. A Chain is a
// plain value: copying it snapshots the path built so far, and the copies
// evolve independently afterwards. Update never mutates in place.
//
// Two chains built from the same seed via the same ordered component
// sequence always produce the same Sum; any difference in components or
// their order produces a different Sum (up to hash collisions).
type Chain struct {
	sum [sha256.Size]byte
}

// NewChain starts a chain from a root seed, typically obtained from a stable
// identifier of the root variable (see the parent package's SeedForName).
func NewChain(seed Word) Chain {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(seed))
	return Chain{sum: sha256.Sum256(b[:])}
}

// Update folds one path component into the chain and returns the new state.
// The receiver is unchanged. Components with no canonical encoding panic;
// see encodeComponent for the supported set.
func (c Chain) Update(component any) Chain {
	return c.fold(encodeComponent(nil, component))
}

func (c Chain) fold(encoded []byte) Chain {
	h := sha256.New()
	h.Write(c.sum[:])
	h.Write(encoded)
	var next Chain
	h.Sum(next.sum[:0])
	return next
}

// Sum returns the address of the path built so far. Sum is read-only over
// the chain state: calling it repeatedly, or continuing to Update a copy
// afterwards, is fine.
func (c Chain) Sum() Address {
	return Address(c.sum)
}

// encodeComponent appends the canonical encoding of a path component to buf.
// We piggyback on msgpack here because its encoding of the shapes we accept
// (integers, strings, byte blobs) is compact and deterministic. Position
// sensitivity comes from the chaining itself, so the encoding only has to be
// injective per component.
func encodeComponent(buf []byte, component any) []byte {
	bb := bytesBuilder{buf}
	enc := msgpack.GetEncoder()
	enc.Reset(&bb)
	var err error
	switch v := component.(type) {
	case Word:
		err = enc.EncodeUint64(uint64(v))
	case uint64:
		err = enc.EncodeUint64(v)
	case uint:
		err = enc.EncodeUint64(uint64(v))
	case uint32:
		err = enc.EncodeUint64(uint64(v))
	case int:
		err = enc.EncodeInt64(int64(v))
	case int64:
		err = enc.EncodeInt64(v)
	case string:
		err = enc.EncodeString(v)
	case []byte:
		err = enc.EncodeBytes(v)
	case Address:
		err = enc.EncodeBytes(v[:])
	default:
		msgpack.PutEncoder(enc)
		panic(fmt.Errorf("path component %T has no canonical encoding", component))
	}
	msgpack.PutEncoder(enc)
	if err != nil {
		panic(fmt.Errorf("failed to encode path component %T: %w", component, err))
	}
	return bb.Buf
}

type bytesBuilder struct {
	Buf []byte
}

func (bb *bytesBuilder) Write(p []byte) (int, error) {
	bb.Buf = append(bb.Buf, p...)
	return len(p), nil
}
