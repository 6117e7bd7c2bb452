package zerocopy

import "math"

// Size is the integer width used to encode offsets and lengths inside
// reference values.
//
// The width is a property of the buffer format, not of the host: a
// Ref[T, uint32] has the same encoding on 32-bit and 64-bit machines.
type Size interface {
	~uint16 | ~uint32 | ~uint64
}

// maxSize returns the largest value representable by O.
func maxSize[O Size]() uint64 {
	var v O
	v--
	return uint64(v)
}

// sizeToInt converts v to native index, reporting whether it fits.
func sizeToInt[O Size](v O) (int, bool) {
	if uint64(v) > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

// intToSize converts native index to O, reporting whether it fits.
func intToSize[O Size](v int) (O, bool) {
	if v < 0 || uint64(v) > maxSize[O]() {
		return 0, false
	}
	return O(v), true
}

// addSize returns a + b in the O width, reporting whether it did not wrap.
func addSize[O Size](a, b O) (O, bool) {
	s := a + b
	return s, s >= a
}

// mulSize returns a * b in the O width, reporting whether it did not wrap.
func mulSize[O Size](a, b O) (O, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	return p, p/b == a
}
