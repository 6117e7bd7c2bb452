package zerocopy

// Slice is a position-independent reference to Len contiguous ZeroCopy
// values of type T starting at Offset.
type Slice[T any, O Size] struct {
	Offset O
	Len    O
}

// NewSlice returns reference to n values of T at offset.
func NewSlice[T any, O Size](offset, n O) Slice[T, O] {
	return Slice[T, O]{Offset: offset, Len: n}
}

// IsEmpty reports whether slice references no elements.
func (s Slice[T, O]) IsEmpty() bool { return s.Len == 0 }

// At returns reference to i-th element of slice.
//
// Reports false if i is out of range or element offset is not
// representable by O. Resulting reference is not checked against any
// buffer.
func (s Slice[T, O]) At(i O) (Ref[T, O], bool) {
	if i >= s.Len {
		return Ref[T, O]{}, false
	}
	elem, ok := intToSize[O](SizeOf[T]())
	if !ok {
		return Ref[T, O]{}, false
	}
	delta, ok := mulSize(i, elem)
	if !ok {
		return Ref[T, O]{}, false
	}
	offset, ok := addSize(s.Offset, delta)
	if !ok {
		return Ref[T, O]{}, false
	}
	return Ref[T, O]{Offset: offset}, true
}

// Load resolves slice against b.
func (s Slice[T, O]) Load(b *Buf) ([]T, error) {
	return LoadSlice(b, s)
}

// LoadMut resolves slice against b for modification.
func (s Slice[T, O]) LoadMut(b *BufMut) ([]T, error) {
	return LoadSliceMut(b, s)
}

func (Slice[T, O]) sealed() {}
