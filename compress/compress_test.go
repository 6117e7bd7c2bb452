package compress

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randData(n int) []byte {
	s := rand.NewSource(10)
	r := rand.New(s) // #nosec: G404
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		panic(err)
	}
	return buf
}

func TestCompress(t *testing.T) {
	// Highly compressible data.
	data := bytes.Repeat([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, 1800)

	w := NewWriter()
	r := NewReader()
	for _, m := range MethodValues() {
		t.Run(m.String(), func(t *testing.T) {
			used, err := w.Compress(m, data)
			require.NoError(t, err)
			require.Equal(t, m, used)
			if m != None {
				require.Less(t, len(w.Data), len(data))
			}

			out := make([]byte, len(data))
			require.NoError(t, r.Decompress(used, out, w.Data))
			require.Equal(t, data, out)

			require.Error(t, r.Decompress(used, make([]byte, len(data)+1), w.Data))
		})
	}
}

func TestCompress_Incompressible(t *testing.T) {
	data := randData(1024)

	w := NewWriter()
	used, err := w.Compress(LZ4, data)
	require.NoError(t, err)

	out := make([]byte, len(data))
	require.NoError(t, NewReader().Decompress(used, out, w.Data))
	require.Equal(t, data, out)
}

func TestWriter_NotConfigured(t *testing.T) {
	w := NewWriterWithMethods(0, None)
	_, err := w.Compress(ZSTD, []byte{1})
	require.Error(t, err)
	_, err = w.Compress(Method(100), []byte{1})
	require.Error(t, err)

	require.Error(t, NewReader().Decompress(Method(100), nil, nil))
}

func TestMethod_String(t *testing.T) {
	require.Equal(t, "LZ4HC", LZ4HC.String())
	m, err := MethodString("zstd")
	require.NoError(t, err)
	require.Equal(t, ZSTD, m)
	require.Equal(t, "Method(10)", Method(10).String())
}

func BenchmarkWriter_Compress(b *testing.B) {
	data := bytes.Repeat([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, 1800)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	w := NewWriter()

	for i := 0; i < b.N; i++ {
		if _, err := w.Compress(LZ4, data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReader_Decompress(b *testing.B) {
	data := randData(1024 * 20)

	w := NewWriter()
	if _, err := w.Compress(ZSTD, data); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	out := make([]byte, len(data))
	r := NewReader()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.Decompress(ZSTD, out, w.Data); err != nil {
			b.Fatal(err)
		}
	}
}

func TestMaxRatio(t *testing.T) {
	data := make([]byte, 1<<20)
	w := NewWriter()
	for _, m := range MethodValues() {
		t.Run(m.String(), func(t *testing.T) {
			got, err := w.Compress(m, data)
			require.NoError(t, err)
			require.Equal(t, m, got)
			require.LessOrEqual(t, uint64(len(data)), uint64(len(w.Data))*MaxRatio(m))
		})
	}
	require.Zero(t, MaxRatio(Method(100)))
}
