//go:build !unix

package mmap

import (
	"io"
	"os"
	"unsafe"

	"github.com/go-faster/errors"
)

// mapFile reads file into memory on platforms without mmap support.
func mapFile(f *os.File, size int, writable bool) (*Map, error) {
	if writable {
		return nil, errors.New("writable mapping is not supported")
	}
	// Read into 8-byte aligned storage, as mmap would provide.
	words := make([]uint64, (size+7)/8)
	data := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return &Map{data: data}, nil
}
