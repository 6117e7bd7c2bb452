package zerocopy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAll(t *testing.T) {
	o := NewOwnedBuf()
	var refs []Ref[uint16, uint32]
	for _, v := range []uint16{10, 20, 30} {
		r, err := Store[uint16, uint32](o, v)
		require.NoError(t, err)
		refs = append(refs, r)
	}
	buf := o.Buf()

	values, err := LoadAll[*uint16](buf, refs)
	require.NoError(t, err)
	require.Len(t, values, 3)
	for i, v := range values {
		require.Equal(t, uint16(10*(i+1)), *v)
	}

	// Pointers to references are loaders too.
	ptrs := []*Ref[uint16, uint32]{&refs[2], &refs[0]}
	values, err = LoadAll[*uint16](buf, ptrs)
	require.NoError(t, err)
	require.Equal(t, uint16(30), *values[0])

	refs = append(refs, NewRef[uint16, uint32](100))
	_, err = LoadAll[*uint16](buf, refs)
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.ErrorContains(t, err, "ref 3")
}

func TestSlice_At(t *testing.T) {
	s := NewSlice[uint32, uint16](8, 3)

	r, ok := s.At(0)
	require.True(t, ok)
	require.Equal(t, NewRef[uint32, uint16](8), r)

	r, ok = s.At(2)
	require.True(t, ok)
	require.Equal(t, NewRef[uint32, uint16](16), r)

	_, ok = s.At(3)
	require.False(t, ok)
	_, ok = NewSlice[uint32, uint16](8, 0).At(0)
	require.False(t, ok)

	// Element offset is not representable.
	_, ok = NewSlice[uint32, uint16](math.MaxUint16-4, 10).At(5)
	require.False(t, ok)
	require.False(t, s.IsEmpty())
}

// loadAny resolves any loader, checking that sealed interface is usable
// generically.
func loadAny[V any](b *Buf, l Loader[V]) (V, error) {
	return l.Load(b)
}

func TestLoader(t *testing.T) {
	o := NewOwnedBuf()
	text, err := StoreUnsized[Str, uint64](o, "text")
	require.NoError(t, err)
	nums, err := StoreSlice[int64, uint64](o, []int64{-1, 1})
	require.NoError(t, err)
	buf := o.Buf()

	s, err := loadAny[Str](buf, text)
	require.NoError(t, err)
	require.Equal(t, Str("text"), s)

	n, err := loadAny[[]int64](buf, &nums)
	require.NoError(t, err)
	require.Equal(t, []int64{-1, 1}, n)
}

// namedRef embeds Ref without shadowing Load.
type namedRef struct {
	Ref[uint16, uint32]
	Name string
}

func TestLoadAll_Embedded(t *testing.T) {
	o := NewOwnedBuf()
	r, err := Store[uint16, uint32](o, 7)
	require.NoError(t, err)
	_, err = Store[uint16, uint32](o, 8)
	require.NoError(t, err)
	buf := o.Buf()

	refs := []namedRef{{Ref: r, Name: "ok"}, {Ref: NewRef[uint16, uint32](1), Name: "unaligned"}}
	_, err = LoadAll[*uint16](buf, refs[:1])
	require.NoError(t, err)
	_, err = LoadAll[*uint16](buf, refs)
	require.ErrorIs(t, err, ErrUnaligned)
}
