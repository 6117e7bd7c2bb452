package zerocopy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-faster/zerocopy/le"
)

func TestCheckZeroCopy(t *testing.T) {
	type Header struct {
		Magic   [4]byte
		Version le.U16
		_       [2]byte
		Count   uint32
		Items   Slice[uint64, uint32]
		Name    Unsized[Str, uint32]
		ID      uuid.UUID
		_       [4]byte
		Next    Ref[uint32, uint64]
	}
	type Padded struct {
		A uint8
		B uint32
	}
	type Trailing struct {
		A uint64
		B uint8
	}
	type Nested struct {
		A [2]Padded
	}
	type WithBool struct {
		Ok bool
	}
	type WithPointer struct {
		P *uint64
	}

	require.NoError(t, CheckZeroCopy[Header]())
	require.NoError(t, CheckZeroCopy[[3]le.F64]())
	require.NoError(t, CheckZeroCopy[complex128]())
	require.Equal(t, 56, SizeOf[Header]())

	for _, tc := range []struct {
		Name   string
		Err    error
		Reason string
	}{
		{Name: "Padded", Err: CheckZeroCopy[Padded](), Reason: "3 bytes of padding before field B"},
		{Name: "Trailing", Err: CheckZeroCopy[Trailing](), Reason: "7 bytes of trailing padding"},
		{Name: "Nested", Err: CheckZeroCopy[Nested](), Reason: "field A: element: 3 bytes of padding before field B"},
		{Name: "Bool", Err: CheckZeroCopy[WithBool](), Reason: "field Ok: bool is not valid for every bit pattern"},
		{Name: "Pointer", Err: CheckZeroCopy[WithPointer](), Reason: "field P: ptr kind can't be reinterpreted from bytes"},
		{Name: "Int", Err: CheckZeroCopy[int](), Reason: "int has host-dependent width"},
		{Name: "String", Err: CheckZeroCopy[string](), Reason: "string kind can't be reinterpreted from bytes"},
		{Name: "Slice", Err: CheckZeroCopy[[]byte](), Reason: "slice kind can't be reinterpreted from bytes"},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			require.ErrorIs(t, tc.Err, ErrLayout)
			var lErr *LayoutError
			require.ErrorAs(t, tc.Err, &lErr)
			require.Equal(t, tc.Reason, lErr.Reason)
		})
	}
}

func TestCheckZeroCopy_Cached(t *testing.T) {
	require.Same(t, layoutOf[le.U64](), layoutOf[le.U64]())
}
