// Package zcfile implements persisted zerocopy buffers.
//
// File is a fixed-size Header followed by payload, optionally compressed.
// Uncompressed files are memory-mapped on open, so values are loaded
// directly from page cache without reading or copying the file.
package zcfile

import (
	"github.com/go-faster/city"
	"github.com/google/uuid"

	"github.com/go-faster/zerocopy/compress"
	"github.com/go-faster/zerocopy/le"
)

// HeaderSize is size of encoded Header. Payload starts right after it, at
// 8-byte aligned file offset.
const HeaderSize = 80

// Magic is the first bytes of every file.
var Magic = [4]byte{'Z', 'C', 'B', 'F'}

// Header of persisted buffer.
//
// Header is ZeroCopy and is itself loaded from file bytes with
// zerocopy.Ref.
type Header struct {
	Magic  [4]byte
	Major  le.U16 // format version
	Minor  le.U16
	Method compress.Method
	_      [3]byte
	Writer [3]le.U16 // major, minor and patch version of writer module
	_      [2]byte
	ID     uuid.UUID
	// RawSize is payload size after decompression.
	RawSize le.U64
	// DataSize is size of payload stored in file.
	DataSize le.U64
	// Root is offset of root value in payload.
	Root le.U64
	// Checksum is CityHash128 of stored payload, low and high halves.
	Checksum [2]le.U64
	_        [4]byte
}

// checksum computes CityHash128 of data.
func checksum(data []byte) [2]le.U64 {
	h := city.CH128(data)
	return [2]le.U64{le.NewU64(h.Low), le.NewU64(h.High)}
}
