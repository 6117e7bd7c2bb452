package zerocopy

import (
	"fmt"
	"strings"
)

// Kind of resolution failure.
//
// Kind implements error, so it can be used as errors.Is target:
//
//	if errors.Is(err, zerocopy.ErrOutOfBounds) { ... }
type Kind byte

// Resolution failures.
const (
	// ErrOutOfBounds means that computed span exceeds buffer length.
	ErrOutOfBounds Kind = iota + 1
	// ErrOverflow means that offset/count/length arithmetic overflows
	// either reference Size width or native index width.
	ErrOverflow
	// ErrValidation means that unsized value failed its legality check.
	ErrValidation
	// ErrUnaligned means that target address is not aligned for the
	// sized type being loaded.
	ErrUnaligned
	// ErrLayout means that type can't be reinterpreted from raw bytes.
	ErrLayout
)

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Err -output kind_enum.go

func (k Kind) Error() string {
	return k.String()
}

// Error describes failed span resolution.
type Error struct {
	Kind Kind
	Type string // name of target type

	Offset uint64 // requested offset
	Size   uint64 // requested span size or element count
	Len    int    // buffer length
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Type != "" {
		b.WriteString(" ")
		b.WriteString(e.Type)
	}
	switch e.Kind {
	case ErrOutOfBounds:
		_, _ = fmt.Fprintf(&b, ": range [%d, %d+%d) exceeds buffer length %d", e.Offset, e.Offset, e.Size, e.Len)
	case ErrOverflow:
		_, _ = fmt.Fprintf(&b, ": offset %d with size %d", e.Offset, e.Size)
	case ErrUnaligned:
		_, _ = fmt.Fprintf(&b, ": offset %d requires alignment %d", e.Offset, e.Size)
	}
	return b.String()
}

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// ValidationError is returned when bytes are not a legal instance of
// unsized type.
type ValidationError struct {
	Type   string
	Offset int // absolute offset of value in buffer
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validate %s at %d: %v", e.Type, e.Offset, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == ErrValidation
}

// LayoutError is returned when type is not certified as ZeroCopy.
type LayoutError struct {
	Type   string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout %s: %s", e.Type, e.Reason)
}

// Is reports whether target is ErrLayout.
func (e *LayoutError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == ErrLayout
}
