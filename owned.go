package zerocopy

import (
	"reflect"
	"unsafe"

	"github.com/go-faster/errors"
)

// maxAlign is alignment guaranteed for OwnedBuf storage.
const maxAlign = 8

// OwnedBuf is a growable buffer for writing values and obtaining
// references to them.
//
// Backing storage is always aligned to 8 bytes, so any value stored with
// Store can be loaded back from Buf or BufMut in place. Growing the buffer
// moves bytes: views returned by Buf, BufMut, Bytes and loads from them
// must not be retained across writes.
//
// OwnedBuf is not safe for concurrent use.
type OwnedBuf struct {
	words []uint64
	len   int
}

// NewOwnedBuf returns empty OwnedBuf.
func NewOwnedBuf() *OwnedBuf {
	return &OwnedBuf{}
}

// NewOwnedBufSize returns OwnedBuf with capacity for n bytes.
func NewOwnedBufSize(n int) *OwnedBuf {
	return &OwnedBuf{words: make([]uint64, words(n))}
}

// OwnedBufFrom copies data into new aligned OwnedBuf.
func OwnedBufFrom(data []byte) *OwnedBuf {
	o := NewOwnedBufSize(len(data))
	copy(o.Extend(len(data)), data)
	return o
}

func words(n int) int {
	return (n + maxAlign - 1) / maxAlign
}

// Len returns number of written bytes.
func (o *OwnedBuf) Len() int { return o.len }

// Bytes returns written bytes.
func (o *OwnedBuf) Bytes() []byte {
	if len(o.words) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&o.words[0])), len(o.words)*maxAlign)[:o.len:o.len]
}

// Buf returns shared view over written bytes.
func (o *OwnedBuf) Buf() *Buf { return NewBuf(o.Bytes()) }

// BufMut returns exclusive view over written bytes.
func (o *OwnedBuf) BufMut() *BufMut { return NewBufMut(o.Bytes()) }

// Reset buffer to zero length, keeping allocated storage.
func (o *OwnedBuf) Reset() {
	clear(o.words)
	o.len = 0
}

// grow ensures capacity for n more bytes.
func (o *OwnedBuf) grow(n int) {
	need := words(o.len + n)
	if need <= len(o.words) {
		return
	}
	next := make([]uint64, max(need, 2*len(o.words)))
	copy(next, o.words)
	o.words = next
}

// Extend appends n zero bytes and returns them for writing.
func (o *OwnedBuf) Extend(n int) []byte {
	o.grow(n)
	start := o.len
	o.len += n
	return o.Bytes()[start:o.len]
}

// Align pads buffer with zero bytes until its length is multiple of n.
//
// The n must be a power of two not greater than 8.
func (o *OwnedBuf) Align(n int) {
	if n <= 1 {
		return
	}
	if pad := o.len % n; pad != 0 {
		o.Extend(n - pad)
	}
}

// StoreRaw appends p as is and returns its offset.
func (o *OwnedBuf) StoreRaw(p []byte) int {
	offset := o.len
	copy(o.Extend(len(p)), p)
	return offset
}

// reserve aligns buffer and appends size zero bytes, checking that
// resulting span is addressable by O.
func reserve[O Size](o *OwnedBuf, name string, align, size int) (O, []byte, error) {
	if align > maxAlign {
		return 0, nil, &LayoutError{Type: name, Reason: "alignment exceeds 8"}
	}
	pad := 0
	if align > 1 {
		if r := o.len % align; r != 0 {
			pad = align - r
		}
	}
	offset, ok := intToSize[O](o.len + pad)
	if !ok {
		return 0, nil, &Error{Kind: ErrOverflow, Type: name, Offset: uint64(o.len + pad), Size: uint64(size), Len: o.len}
	}
	if _, ok := intToSize[O](o.len + pad + size); !ok || size < 0 {
		return 0, nil, &Error{Kind: ErrOverflow, Type: name, Offset: uint64(offset), Size: uint64(size), Len: o.len}
	}
	o.Align(align)
	return offset, o.Extend(size), nil
}

// Reserve appends zeroed space for T and returns reference to it.
//
// Value can be filled later with LoadMut, e.g. after storing values it
// refers to.
func Reserve[T any, O Size](o *OwnedBuf) (Ref[T, O], error) {
	l := layoutOf[T]()
	if l.err != nil {
		return Ref[T, O]{}, l.err
	}
	offset, _, err := reserve[O](o, l.name, l.align, l.size)
	if err != nil {
		return Ref[T, O]{}, err
	}
	return Ref[T, O]{Offset: offset}, nil
}

// Store appends v to buffer and returns reference to it.
func Store[T any, O Size](o *OwnedBuf, v T) (Ref[T, O], error) {
	l := layoutOf[T]()
	if l.err != nil {
		return Ref[T, O]{}, l.err
	}
	offset, dst, err := reserve[O](o, l.name, l.align, l.size)
	if err != nil {
		return Ref[T, O]{}, err
	}
	if l.size > 0 {
		*(*T)(unsafe.Pointer(&dst[0])) = v
	}
	return Ref[T, O]{Offset: offset}, nil
}

// StoreSlice appends values to buffer and returns reference to them.
func StoreSlice[T any, O Size](o *OwnedBuf, values []T) (Slice[T, O], error) {
	l := layoutOf[T]()
	if l.err != nil {
		return Slice[T, O]{}, l.err
	}
	n, ok := intToSize[O](len(values))
	if !ok {
		return Slice[T, O]{}, &Error{Kind: ErrOverflow, Type: l.name, Offset: uint64(o.len), Size: uint64(len(values)), Len: o.len}
	}
	offset, dst, err := reserve[O](o, l.name, l.align, l.size*len(values))
	if err != nil {
		return Slice[T, O]{}, err
	}
	if len(dst) > 0 {
		copy(dst, unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(dst)))
	}
	return Slice[T, O]{Offset: offset, Len: n}, nil
}

// StoreUnsized validates v, appends its bytes to buffer and returns
// reference to them.
func StoreUnsized[T UnsizedZeroCopy, O Size](o *OwnedBuf, v T) (Unsized[T, O], error) {
	name := reflect.TypeFor[T]().String()
	if err := v.ValidateUnsized(unsizedBytes(v)); err != nil {
		return Unsized[T, O]{}, errors.Wrap(&ValidationError{Type: name, Offset: o.len, Err: err}, "store")
	}
	size, ok := intToSize[O](len(v))
	if !ok {
		return Unsized[T, O]{}, &Error{Kind: ErrOverflow, Type: name, Offset: uint64(o.len), Size: uint64(len(v)), Len: o.len}
	}
	offset, dst, err := reserve[O](o, name, 1, len(v))
	if err != nil {
		return Unsized[T, O]{}, err
	}
	copy(dst, v)
	return Unsized[T, O]{Offset: offset, Size: size}, nil
}

// unsizedBytes views v as bytes without copy. Result must not be modified.
func unsizedBytes[T UnsizedZeroCopy](v T) []byte {
	// Reading string header as slice header would read garbage capacity,
	// so build slice from data pointer and length.
	if len(v) == 0 {
		return nil
	}
	p := *(*unsafe.Pointer)(unsafe.Pointer(&v))
	return unsafe.Slice((*byte)(p), len(v))
}
