package zerocopy

import (
	"fmt"
	"reflect"
	"sync"
)

// layout is the certified memory layout of a sized type.
type layout struct {
	name  string
	size  int
	align int
	err   error // non-nil if type is not ZeroCopy
}

// layouts caches certification results, map[reflect.Type]*layout.
var layouts sync.Map

// layoutOf returns cached layout of T, certifying it on first use.
func layoutOf[T any]() *layout {
	t := reflect.TypeFor[T]()
	if v, ok := layouts.Load(t); ok {
		return v.(*layout)
	}
	l := &layout{
		name:  t.String(),
		size:  int(t.Size()),
		align: t.Align(),
	}
	if reason := certify(t); reason != "" {
		l.err = &LayoutError{Type: l.name, Reason: reason}
	}
	v, _ := layouts.LoadOrStore(t, l)
	return v.(*layout)
}

// CheckZeroCopy reports whether T is ZeroCopy, i.e. every bit pattern of
// sizeof(T) bytes is a legal T and T can be reinterpreted from buffer
// bytes without validation.
//
// ZeroCopy types are:
//   - fixed-width integers, floats and complex numbers;
//   - arrays of ZeroCopy types;
//   - structs of ZeroCopy fields without implicit padding, i.e. every
//     field starts exactly where previous one ends and there is no
//     trailing padding. Explicit padding can be declared as blank
//     byte array fields.
//
// The bool, int, uint and uintptr types, pointers and any reference-like
// types are never ZeroCopy. On big-endian hosts native multi-byte scalars
// are rejected as well, because buffer format is little-endian; use
// types from the le package for portable layouts.
//
// Result is computed once per type.
func CheckZeroCopy[T any]() error {
	return layoutOf[T]().err
}

// SizeOf returns size of T in buffer.
func SizeOf[T any]() int {
	return layoutOf[T]().size
}

func certify(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int8, reflect.Uint8:
		return ""
	case reflect.Int16, reflect.Uint16,
		reflect.Int32, reflect.Uint32,
		reflect.Int64, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		if !nativeLittleEndian {
			return fmt.Sprintf("%s uses host byte order", t)
		}
		return ""
	case reflect.Array:
		if reason := certify(t.Elem()); reason != "" {
			return fmt.Sprintf("element: %s", reason)
		}
		return ""
	case reflect.Struct:
		var end uintptr
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Offset != end {
				return fmt.Sprintf("%d bytes of padding before field %s", f.Offset-end, f.Name)
			}
			if reason := certify(f.Type); reason != "" {
				return fmt.Sprintf("field %s: %s", f.Name, reason)
			}
			end = f.Offset + f.Type.Size()
		}
		if end != t.Size() {
			return fmt.Sprintf("%d bytes of trailing padding", t.Size()-end)
		}
		return ""
	case reflect.Bool:
		return "bool is not valid for every bit pattern"
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return fmt.Sprintf("%s has host-dependent width", t)
	default:
		return fmt.Sprintf("%s kind can't be reinterpreted from bytes", t.Kind())
	}
}
