package zerocopy

// Ref is a position-independent reference to a single ZeroCopy value of
// type T stored at Offset bytes from the start of the buffer.
//
// Ref stores no pointers, so it stays meaningful after buffer is copied,
// relocated or mapped at different address. Ref is ZeroCopy itself and
// can be embedded into other values stored in buffer.
type Ref[T any, O Size] struct {
	Offset O
}

// NewRef returns reference to T at offset.
func NewRef[T any, O Size](offset O) Ref[T, O] {
	return Ref[T, O]{Offset: offset}
}

// Load resolves reference against b.
func (r Ref[T, O]) Load(b *Buf) (*T, error) {
	return LoadSized(b, r)
}

// LoadMut resolves reference against b for modification.
func (r Ref[T, O]) LoadMut(b *BufMut) (*T, error) {
	return LoadSizedMut(b, r)
}

func (Ref[T, O]) sealed() {}
