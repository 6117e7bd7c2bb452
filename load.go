package zerocopy

import "github.com/go-faster/errors"

// Loader is implemented by reference types that can be resolved against
// Buf into V.
//
// The set of implementations is closed: only Ref, Slice and Unsized (and
// pointers to them) are Loaders, so every value obtained through Loader
// went through bounds, overflow and validation checks.
//
// Go promotes unexported methods through embedding, so a struct embedding
// Ref, Slice or Unsized is a Loader too and may shadow Load with its own
// method. Code that must rely on the checks should accept the reference
// types themselves rather than Loader.
type Loader[V any] interface {
	Load(b *Buf) (V, error)
	sealed()
}

// MutLoader is Loader that can also be resolved against exclusive BufMut
// into mutable M.
type MutLoader[V, M any] interface {
	Loader[V]
	LoadMut(b *BufMut) (M, error)
}

var (
	_ MutLoader[*uint32, *uint32]   = Ref[uint32, uint32]{}
	_ MutLoader[[]uint32, []uint32] = Slice[uint32, uint32]{}
	_ MutLoader[Str, []byte]        = Unsized[Str, uint32]{}
	_ MutLoader[*uint32, *uint32]   = (*Ref[uint32, uint32])(nil)
)

// LoadAll resolves every reference against b, stopping on first error.
//
// V can't be inferred from L and should be provided explicitly:
//
//	values, err := zerocopy.LoadAll[*Point](buf, refs)
func LoadAll[V any, L Loader[V]](b *Buf, refs []L) ([]V, error) {
	out := make([]V, 0, len(refs))
	for i, r := range refs {
		v, err := r.Load(b)
		if err != nil {
			return nil, errors.Wrapf(err, "ref %d", i)
		}
		out = append(out, v)
	}
	return out, nil
}
