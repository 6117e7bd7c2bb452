package zerocopy

import (
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/segmentio/asm/ascii"
)

// UnsizedZeroCopy is implemented by variable-length types that can be
// viewed in place after validation.
//
// ValidateUnsized must be pure and deterministic, and must certify that
// b is a legal instance of the type. It is called on zero value of the
// type.
type UnsizedZeroCopy interface {
	~string | ~[]byte
	ValidateUnsized(b []byte) error
}

// Str is UTF-8 text.
type Str string

// ValidateUnsized checks that b is well-formed UTF-8.
func (Str) ValidateUnsized(b []byte) error {
	if ascii.Valid(b) || utf8.Valid(b) {
		return nil
	}
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n <= 1 {
			return errors.Errorf("invalid utf-8 at byte %d", i)
		}
		i += n
	}
	return errors.New("invalid utf-8")
}

// ASCII is 7-bit ASCII text.
type ASCII string

// ValidateUnsized checks that every byte of b is ASCII.
func (ASCII) ValidateUnsized(b []byte) error {
	if ascii.Valid(b) {
		return nil
	}
	for i, c := range b {
		if c >= utf8.RuneSelf {
			return errors.Errorf("non-ascii byte 0x%02x at %d", c, i)
		}
	}
	return nil
}

// Bytes is an opaque byte string, every byte sequence is valid.
type Bytes []byte

// ValidateUnsized accepts any b.
func (Bytes) ValidateUnsized([]byte) error { return nil }

// Unsized is a position-independent reference to a single
// UnsizedZeroCopy value of Size bytes at Offset.
type Unsized[T UnsizedZeroCopy, O Size] struct {
	Offset O
	Size   O
}

// NewUnsized returns reference to size bytes of T at offset.
func NewUnsized[T UnsizedZeroCopy, O Size](offset, size O) Unsized[T, O] {
	return Unsized[T, O]{Offset: offset, Size: size}
}

// Load resolves and validates value against b.
func (u Unsized[T, O]) Load(b *Buf) (T, error) {
	return LoadUnsized(b, u)
}

// LoadMut resolves and validates value against b, returning its bytes
// for in-place modification.
func (u Unsized[T, O]) LoadMut(b *BufMut) ([]byte, error) {
	return LoadUnsizedMut(b, u)
}

func (Unsized[T, O]) sealed() {}
