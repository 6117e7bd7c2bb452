package zerocopy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-faster/zerocopy/internal/gold"
)

func TestOwnedBuf(t *testing.T) {
	o := NewOwnedBuf()

	num, err := Store[uint32, uint32](o, 42)
	require.NoError(t, err)
	text, err := StoreUnsized[Str, uint32](o, "hi")
	require.NoError(t, err)
	big, err := Store[uint64, uint32](o, 7)
	require.NoError(t, err)

	require.Equal(t, NewRef[uint32, uint32](0), num)
	require.Equal(t, NewUnsized[Str, uint32](4, 2), text)
	require.Equal(t, NewRef[uint64, uint32](8), big)
	require.Equal(t, 16, o.Len())

	gold.Bytes(t, o.Bytes(), "owned_buf")

	t.Run("Reset", func(t *testing.T) {
		o.Reset()
		require.Zero(t, o.Len())
		require.Empty(t, o.Bytes())
		o.Align(8)
		require.Zero(t, o.Len())
	})
}

func TestOwnedBuf_Grow(t *testing.T) {
	o := NewOwnedBufSize(4)
	var refs []Ref[uint64, uint32]
	for i := 0; i < 1000; i++ {
		o.StoreRaw([]byte{byte(i)})
		r, err := Store[uint64, uint32](o, uint64(i))
		require.NoError(t, err)
		refs = append(refs, r)
	}
	buf := o.Buf()
	for i, r := range refs {
		require.Zero(t, r.Offset%8)
		v, err := r.Load(buf)
		require.NoError(t, err)
		require.Equal(t, uint64(i), *v)
	}
}

func TestOwnedBuf_Reserve(t *testing.T) {
	type Node struct {
		Value uint32
		Name  Unsized[Str, uint32]
	}
	o := NewOwnedBuf()
	node, err := Reserve[Node, uint32](o)
	require.NoError(t, err)
	name, err := StoreUnsized[Str, uint32](o, "root")
	require.NoError(t, err)

	p, err := node.LoadMut(o.BufMut())
	require.NoError(t, err)
	*p = Node{Value: 1, Name: name}

	buf := o.Buf()
	n, err := node.Load(buf)
	require.NoError(t, err)
	s, err := n.Name.Load(buf)
	require.NoError(t, err)
	require.Equal(t, Str("root"), s)
}

func TestOwnedBuf_Errors(t *testing.T) {
	t.Run("Layout", func(t *testing.T) {
		_, err := Store[bool, uint32](NewOwnedBuf(), true)
		require.ErrorIs(t, err, ErrLayout)
	})
	t.Run("InvalidText", func(t *testing.T) {
		o := NewOwnedBuf()
		_, err := StoreUnsized[Str, uint32](o, Str([]byte{0xFF}))
		require.ErrorIs(t, err, ErrValidation)
		require.Zero(t, o.Len())
	})
	t.Run("SizeOverflow", func(t *testing.T) {
		o := NewOwnedBuf()
		o.StoreRaw(make([]byte, math.MaxUint16))
		_, err := Store[uint8, uint16](o, 1)
		require.ErrorIs(t, err, ErrOverflow)
		_, err = Store[uint8, uint32](o, 1)
		require.NoError(t, err)
	})
	t.Run("SliceOverflow", func(t *testing.T) {
		_, err := StoreSlice[uint8, uint16](NewOwnedBuf(), make([]uint8, math.MaxUint16+1))
		require.ErrorIs(t, err, ErrOverflow)
	})
}
