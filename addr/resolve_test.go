package addr

import "testing"

func TestReadValue_over_refs_and_deferreds(t *testing.T) {
	words := newFakeWords()
	root := NewMutRef(tAccount, 8)

	ensure(t, WriteValue(words, root.Child("position"), []Word{7, 9}))

	// the same algorithm serves an eager path and a deferred one
	got, err := ReadValue(words, root.Ref().Child("position"))
	ensure(t, err)
	eq(t, got[0], Word(7))
	eq(t, got[1], Word(9))

	got, err = ReadValue(words, root.Ref().DeferChild("position"))
	ensure(t, err)
	eq(t, got[0], Word(7))
	eq(t, got[1], Word(9))
}

func TestWriteValue_over_deferred(t *testing.T) {
	words := newFakeWords()
	root := NewMutRef(tBalance, 9)

	ensure(t, WriteValue(words, root.DeferKey(uint64(7)), []Word{500}))
	v, err := root.Ref().Key(uint64(7)).Base().ReadWord(words)
	ensure(t, err)
	eq(t, v, Word(500))
}
