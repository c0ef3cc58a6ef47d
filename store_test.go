package cairo

import (
	"errors"
	"testing"

	"github.com/comfsrt/cairo/addr"
)

var tFelt = addr.Scalar("felt")

func testStore(t *testing.T) *Store {
	sc := NewSchema()
	sc.Define("balance", tFelt)
	sc.Define("allowances", addr.MapOf(tFelt, tFelt))
	sc.Define("position", addr.Composite("point", "x", "y"))
	sc.Define("log", addr.VectorOf(tFelt))
	sc.Define("owner", addr.Node("owner",
		addr.Child{Name: "addr", Type: tFelt},
		addr.Child{Name: "nonce", Type: tFelt},
	))
	s := OpenMem(sc, Options{Logf: t.Logf, IsTesting: true})
	t.Cleanup(s.Close)
	return s
}

func TestStore_scalar_round_trip(t *testing.T) {
	s := testStore(t)
	balance := s.Schema().VarByName("balance")

	ensure(t, s.SetFelt(balance, 100))
	eq(t, must(s.GetFelt(balance)), addr.Word(100))
}

func TestStore_map_entries_have_distinct_addresses(t *testing.T) {
	s := testStore(t)
	balance := s.Schema().VarByName("balance")
	allowances := s.Schema().VarByName("allowances")

	a := s.Ref(balance).Base().Addr()
	b := s.Ref(allowances).Key(uint64(7)).Base().Addr()
	c := s.Ref(allowances).Key(uint64(8)).Base().Addr()
	neq(t, a, b)
	neq(t, b, c)
}

func TestStore_map_round_trip(t *testing.T) {
	s := testStore(t)
	allowances := s.Schema().VarByName("allowances")

	ensure(t, s.MapSet(allowances, uint64(7), 500))
	ensure(t, s.MapSet(allowances, uint64(8), 900))
	eq(t, must(s.MapGet(allowances, uint64(7))), addr.Word(500))
	eq(t, must(s.MapGet(allowances, uint64(8))), addr.Word(900))
	eq(t, must(s.MapGet(allowances, uint64(9))), addr.Word(0))
}

func TestStore_composite_fields_share_one_address(t *testing.T) {
	s := testStore(t)
	position := s.Schema().VarByName("position")

	ensure(t, s.PutRecord(position, []addr.Word{3, 4}))
	eq(t, must(s.GetField(position, "x")), addr.Word(3))
	eq(t, must(s.GetField(position, "y")), addr.Word(4))

	// field i is exactly the backend cell (base address, i)
	base := s.Ref(position).Base().Addr()
	eq(t, must(s.words.ReadWord(base, 0)), addr.Word(3))
	eq(t, must(s.words.ReadWord(base, 1)), addr.Word(4))
}

func TestStore_node_children(t *testing.T) {
	s := testStore(t)
	owner := s.Schema().VarByName("owner")

	r := s.MutRef(owner)
	ensure(t, r.Child("addr").Base().WriteWord(s, 0xCAFE))
	ensure(t, r.Child("nonce").Base().WriteWord(s, 1))

	eq(t, must(s.Ref(owner).Child("addr").Base().ReadWord(s)), addr.Word(0xCAFE))
	eq(t, must(s.Ref(owner).Child("nonce").Base().ReadWord(s)), addr.Word(1))
}

func TestStore_vector(t *testing.T) {
	s := testStore(t)
	vec := s.Vec(s.Schema().VarByName("log"))

	eq(t, must(vec.Len()), uint64(0))
	eq(t, must(vec.Append(10)), uint64(0))
	eq(t, must(vec.Append(20)), uint64(1))
	eq(t, must(vec.Len()), uint64(2))
	eq(t, must(vec.At(0)), addr.Word(10))
	eq(t, must(vec.At(1)), addr.Word(20))

	ensure(t, vec.Set(1, 25))
	eq(t, must(vec.At(1)), addr.Word(25))

	_, err := vec.At(2)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("** got %v, wanted ErrOutOfRange", err)
	}
	if err := vec.Set(2, 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("** got %v, wanted ErrOutOfRange", err)
	}
}

func TestStore_view_reads_live_data(t *testing.T) {
	s := testStore(t)
	balance := s.Schema().VarByName("balance")
	allowances := s.Schema().VarByName("allowances")

	ensure(t, s.SetFelt(balance, 42))
	ensure(t, s.MapSet(allowances, uint64(7), 7000))

	vw := s.ReadOnly()
	eq(t, must(vw.GetFelt(balance)), addr.Word(42))
	eq(t, must(vw.MapGet(allowances, uint64(7))), addr.Word(7000))
	eq(t, must(vw.Ref(balance).Base().ReadWord(vw)), addr.Word(42))
}

func TestStore_counts_backend_operations(t *testing.T) {
	s := testStore(t)
	balance := s.Schema().VarByName("balance")

	ensure(t, s.SetFelt(balance, 1))
	_ = must(s.GetFelt(balance))
	eq(t, s.WriteCount.Load(), uint64(1))
	eq(t, s.ReadCount.Load(), uint64(1))
}

func TestStore_vec_accessor_requires_vector(t *testing.T) {
	s := testStore(t)
	defer expectPanic(t)
	s.Vec(s.Schema().VarByName("balance"))
}

func eq[T comparable](t testing.TB, a, e T) {
	if a != e {
		t.Helper()
		t.Fatalf("** got %v, wanted %v", a, e)
	}
}

func neq[T comparable](t testing.TB, a, b T) {
	if a == b {
		t.Helper()
		t.Fatalf("** got equal values %v, wanted distinct", a)
	}
}

func ensure(t testing.TB, err error) {
	if err != nil {
		t.Helper()
		t.Fatalf("** %v", err)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func expectPanic(t testing.TB) {
	t.Helper()
	if recover() == nil {
		t.Fatalf("** expected panic")
	}
}
