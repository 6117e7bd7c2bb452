// Package le implements portable little-endian scalar types.
//
// Types are byte arrays, so they have alignment 1 and are valid ZeroCopy
// values on any host regardless of its byte order.
package le

import (
	"encoding/binary"
	"math"
)

var bin = binary.LittleEndian

// U16 is little-endian uint16.
type U16 [2]byte

// NewU16 encodes x.
func NewU16(x uint16) (v U16) {
	v.Set(x)
	return v
}

// Get decodes value.
func (v U16) Get() uint16 { return bin.Uint16(v[:]) }

// Set encodes x.
func (v *U16) Set(x uint16) { bin.PutUint16(v[:], x) }

// U32 is little-endian uint32.
type U32 [4]byte

// NewU32 encodes x.
func NewU32(x uint32) (v U32) {
	v.Set(x)
	return v
}

// Get decodes value.
func (v U32) Get() uint32 { return bin.Uint32(v[:]) }

// Set encodes x.
func (v *U32) Set(x uint32) { bin.PutUint32(v[:], x) }

// U64 is little-endian uint64.
type U64 [8]byte

// NewU64 encodes x.
func NewU64(x uint64) (v U64) {
	v.Set(x)
	return v
}

// Get decodes value.
func (v U64) Get() uint64 { return bin.Uint64(v[:]) }

// Set encodes x.
func (v *U64) Set(x uint64) { bin.PutUint64(v[:], x) }

// I16 is little-endian int16.
type I16 [2]byte

// NewI16 encodes x.
func NewI16(x int16) (v I16) {
	v.Set(x)
	return v
}

// Get decodes value.
func (v I16) Get() int16 { return int16(bin.Uint16(v[:])) }

// Set encodes x.
func (v *I16) Set(x int16) { bin.PutUint16(v[:], uint16(x)) }

// I32 is little-endian int32.
type I32 [4]byte

// NewI32 encodes x.
func NewI32(x int32) (v I32) {
	v.Set(x)
	return v
}

// Get decodes value.
func (v I32) Get() int32 { return int32(bin.Uint32(v[:])) }

// Set encodes x.
func (v *I32) Set(x int32) { bin.PutUint32(v[:], uint32(x)) }

// I64 is little-endian int64.
type I64 [8]byte

// NewI64 encodes x.
func NewI64(x int64) (v I64) {
	v.Set(x)
	return v
}

// Get decodes value.
func (v I64) Get() int64 { return int64(bin.Uint64(v[:])) }

// Set encodes x.
func (v *I64) Set(x int64) { bin.PutUint64(v[:], uint64(x)) }

// F32 is little-endian IEEE 754 float32.
type F32 [4]byte

// NewF32 encodes x.
func NewF32(x float32) (v F32) {
	v.Set(x)
	return v
}

// Get decodes value.
func (v F32) Get() float32 { return math.Float32frombits(bin.Uint32(v[:])) }

// Set encodes x.
func (v *F32) Set(x float32) { bin.PutUint32(v[:], math.Float32bits(x)) }

// F64 is little-endian IEEE 754 float64.
type F64 [8]byte

// NewF64 encodes x.
func NewF64(x float64) (v F64) {
	v.Set(x)
	return v
}

// Get decodes value.
func (v F64) Get() float64 { return math.Float64frombits(bin.Uint64(v[:])) }

// Set encodes x.
func (v *F64) Set(x float64) { bin.PutUint64(v[:], math.Float64bits(x)) }
