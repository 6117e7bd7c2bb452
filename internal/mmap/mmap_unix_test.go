//go:build unix

package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_Writable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(p, []byte{1, 2, 3, 4}, 0o600))

	m, err := Open(p, true)
	require.NoError(t, err)
	require.True(t, m.Writable())
	m.Data()[0] = 10
	require.NoError(t, m.Close())

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, []byte{10, 2, 3, 4}, data)
}
