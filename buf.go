package zerocopy

import (
	"reflect"
	"unsafe"
)

// Buf is a bounds-checked shared view over a byte region.
//
// Buf never copies or owns its bytes: backing storage (heap slice,
// memory-mapped file, shared memory) must be kept alive by caller for as
// long as Buf and every value loaded from it are used.
//
// Loads from Buf are read-only and safe for concurrent use, provided no
// BufMut over the same bytes is used at the same time.
type Buf struct {
	data []byte
}

// NewBuf returns Buf over data.
func NewBuf(data []byte) *Buf {
	return &Buf{data: data}
}

// Len returns buffer length in bytes.
func (b *Buf) Len() int { return len(b.data) }

// Bytes returns whole underlying region.
//
// Do not modify returned slice, use BufMut instead.
func (b *Buf) Bytes() []byte { return b.data }

// Range returns bytes [offset, offset+size).
//
// Returned slice capacity is limited to the range, so appending to it
// never touches bytes outside of range.
func (b *Buf) Range(offset, size int) ([]byte, error) {
	if err := b.check(offset, size); err != nil {
		return nil, err
	}
	end := offset + size
	return b.data[offset:end:end], nil
}

func (b *Buf) check(offset, size int) error {
	if offset < 0 || size < 0 || size > len(b.data) || offset > len(b.data)-size {
		return &Error{
			Kind:   ErrOutOfBounds,
			Offset: uint64(offset),
			Size:   uint64(size),
			Len:    len(b.data),
		}
	}
	return nil
}

// span resolves [offset, offset+size) to native indexes.
//
// Sum is computed in O width first: span that is not addressable by O
// is an overflow even if host could represent it.
func span[O Size](b *Buf, name string, offset, size O) (start, end int, err error) {
	sum, ok := addSize(offset, size)
	if !ok {
		return 0, 0, &Error{Kind: ErrOverflow, Type: name, Offset: uint64(offset), Size: uint64(size), Len: len(b.data)}
	}
	start, okStart := sizeToInt(offset)
	end, okEnd := sizeToInt(sum)
	if !okStart || !okEnd {
		return 0, 0, &Error{Kind: ErrOverflow, Type: name, Offset: uint64(offset), Size: uint64(size), Len: len(b.data)}
	}
	if end > len(b.data) {
		return 0, 0, &Error{Kind: ErrOutOfBounds, Type: name, Offset: uint64(offset), Size: uint64(size), Len: len(b.data)}
	}
	return start, end, nil
}

// sizedSpan resolves count values of sized type l at offset, checking
// alignment of resulting address.
func sizedSpan[O Size](b *Buf, l *layout, offset, count O) (start, end int, err error) {
	if l.err != nil {
		return 0, 0, l.err
	}
	elem, ok := intToSize[O](l.size)
	if !ok {
		return 0, 0, &Error{Kind: ErrOverflow, Type: l.name, Offset: uint64(offset), Size: uint64(l.size), Len: len(b.data)}
	}
	size, ok := mulSize(count, elem)
	if !ok {
		return 0, 0, &Error{Kind: ErrOverflow, Type: l.name, Offset: uint64(offset), Size: uint64(count), Len: len(b.data)}
	}
	if start, end, err = span(b, l.name, offset, size); err != nil {
		return 0, 0, err
	}
	if end > start && l.align > 1 && uintptr(b.at(start))%uintptr(l.align) != 0 {
		return 0, 0, &Error{Kind: ErrUnaligned, Type: l.name, Offset: uint64(offset), Size: uint64(l.align), Len: len(b.data)}
	}
	return start, end, nil
}

// at returns pointer to data[i]. Caller guarantees i < len(data).
func (b *Buf) at(i int) unsafe.Pointer {
	return unsafe.Pointer(&b.data[i])
}

// LoadSized resolves r to pointer into b.
//
// No copy is performed: returned pointer aliases buffer bytes and is valid
// only while backing storage is alive.
func LoadSized[T any, O Size](b *Buf, r Ref[T, O]) (*T, error) {
	l := layoutOf[T]()
	start, end, err := sizedSpan(b, l, r.Offset, 1)
	if err != nil {
		return nil, err
	}
	if start == end {
		// Zero-sized target.
		return new(T), nil
	}
	return (*T)(b.at(start)), nil
}

// LoadSlice resolves r to slice of r.Len values aliasing b.
func LoadSlice[T any, O Size](b *Buf, r Slice[T, O]) ([]T, error) {
	l := layoutOf[T]()
	start, end, err := sizedSpan(b, l, r.Offset, r.Len)
	if err != nil {
		return nil, err
	}
	n, ok := sizeToInt(r.Len)
	if !ok {
		// Only reachable for zero-sized T.
		return nil, &Error{Kind: ErrOverflow, Type: l.name, Offset: uint64(r.Offset), Size: uint64(r.Len), Len: len(b.data)}
	}
	if start == end {
		return make([]T, n), nil
	}
	return unsafe.Slice((*T)(b.at(start)), n), nil
}

// LoadUnsized validates bytes referenced by r and returns them as T.
//
// Bytes are never exposed if validation fails.
func LoadUnsized[T UnsizedZeroCopy, O Size](b *Buf, r Unsized[T, O]) (T, error) {
	var v T
	p, err := unsizedSpan(b, r)
	if err != nil {
		return v, err
	}
	if err := v.ValidateUnsized(p); err != nil {
		return v, &ValidationError{
			Type:   reflect.TypeFor[T]().String(),
			Offset: int(r.Offset),
			Err:    err,
		}
	}
	return unsizedView[T](p), nil
}

func unsizedSpan[T UnsizedZeroCopy, O Size](b *Buf, r Unsized[T, O]) ([]byte, error) {
	start, end, err := span(b, "", r.Offset, r.Size)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Type = reflect.TypeFor[T]().String()
		}
		return nil, err
	}
	return b.data[start:end:end], nil
}

// unsizedView reinterprets p as T without copy.
//
// Both string and slice headers start with data pointer and length, so
// slice header can be read as either of them.
func unsizedView[T UnsizedZeroCopy](p []byte) T {
	return *(*T)(unsafe.Pointer(&p))
}

// BufMut is an exclusive view over a byte region.
//
// Holder of BufMut is responsible for ensuring that nothing else reads or
// writes the same bytes while BufMut or any mutable value loaded from it
// is in use.
type BufMut struct {
	Buf
}

// NewBufMut returns BufMut over data.
func NewBufMut(data []byte) *BufMut {
	return &BufMut{Buf: Buf{data: data}}
}

// RangeMut returns mutable bytes [offset, offset+size).
func (b *BufMut) RangeMut(offset, size int) ([]byte, error) {
	return b.Range(offset, size)
}

// LoadSizedMut is mutable counterpart of LoadSized.
//
// Writes through returned pointer can't break ZeroCopy invariants, so
// nothing is validated again.
func LoadSizedMut[T any, O Size](b *BufMut, r Ref[T, O]) (*T, error) {
	return LoadSized(&b.Buf, r)
}

// LoadSliceMut is mutable counterpart of LoadSlice.
func LoadSliceMut[T any, O Size](b *BufMut, r Slice[T, O]) ([]T, error) {
	return LoadSlice(&b.Buf, r)
}

// LoadUnsizedMut validates bytes referenced by r and returns them for
// in-place modification.
//
// Returned slice has fixed length and capacity. Caller must only write
// bytes that are still a valid T, they are not validated again.
func LoadUnsizedMut[T UnsizedZeroCopy, O Size](b *BufMut, r Unsized[T, O]) ([]byte, error) {
	if _, err := LoadUnsized(&b.Buf, r); err != nil {
		return nil, err
	}
	return unsizedSpan(&b.Buf, r)
}
