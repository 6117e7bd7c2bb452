package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	p := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(p, []byte{1, 2, 3, 4}, 0o600))

	m, err := Open(p, false)
	require.NoError(t, err)
	require.False(t, m.Writable())
	require.Equal(t, []byte{1, 2, 3, 4}, m.Data())
	require.NoError(t, m.Close())
	require.Nil(t, m.Data())
	require.NoError(t, m.Close())
}

func TestOpen_Empty(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(p, nil, 0o600))

	_, err := Open(p, false)
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Open(filepath.Join(t.TempDir(), "missing"), false)
	require.Error(t, err)
}
