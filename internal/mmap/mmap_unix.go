//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func mapFile(f *os.File, size int, writable bool) (*Map, error) {
	prot := unix.PROT_READ
	if writable {
		prot |= unix.PROT_WRITE
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, prot, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &Map{
		data:     data,
		writable: writable,
		unmap: func() error {
			if writable {
				if err := unix.Msync(data, unix.MS_SYNC); err != nil {
					_ = unix.Munmap(data)
					return err
				}
			}
			return unix.Munmap(data)
		},
	}, nil
}
