// Package mmap implements read-only and shared read-write file mappings.
package mmap

import (
	"os"

	"github.com/go-faster/errors"
)

// Map is a memory-mapped file region.
type Map struct {
	data     []byte
	writable bool
	unmap    func() error
}

// Data returns mapped bytes.
//
// Data is invalid after Close.
func (m *Map) Data() []byte { return m.data }

// Writable reports whether mapping is shared read-write.
func (m *Map) Writable() bool { return m.writable }

// Close unmaps region.
func (m *Map) Close() error {
	if m.unmap == nil {
		return nil
	}
	unmap := m.unmap
	m.unmap = nil
	m.data = nil
	return unmap()
}

// ErrEmpty is returned when mapping empty file.
var ErrEmpty = errors.New("empty file")

// Open maps whole file at path. If writable, changes to mapped bytes are
// written back to file.
func Open(path string, writable bool) (*Map, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat")
	}
	if st.Size() == 0 {
		return nil, ErrEmpty
	}
	if st.Size() != int64(int(st.Size())) {
		return nil, errors.Errorf("file size %d overflows int", st.Size())
	}

	m, err := mapFile(f, int(st.Size()), writable)
	if err != nil {
		return nil, errors.Wrap(err, "map")
	}
	return m, nil
}
