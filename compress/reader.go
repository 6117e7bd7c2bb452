package compress

import (
	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Reader decompresses payloads.
//
// Reader is not safe for concurrent use.
type Reader struct {
	zstd *zstd.Decoder
}

// NewReader initializes new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Decompress src compressed with m into dst.
//
// The dst length must be exactly equal to decompressed size, so caller can
// provide aligned storage that will be used as is.
func (r *Reader) Decompress(m Method, dst, src []byte) error {
	if len(dst) > maxDataSize {
		return errors.Errorf("data size %d > %d", len(dst), maxDataSize)
	}
	switch m {
	case None:
		if len(src) != len(dst) {
			return errors.Errorf("raw size %d != %d", len(src), len(dst))
		}
		copy(dst, src)
	case LZ4, LZ4HC:
		n, err := lz4.UncompressBlock(src, dst)
		if err != nil {
			return errors.Wrap(err, "lz4")
		}
		if n != len(dst) {
			return errors.Errorf("lz4: decompressed %d bytes, expected %d", n, len(dst))
		}
	case ZSTD:
		if r.zstd == nil {
			d, err := zstd.NewReader(nil,
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecoderLowmem(true),
			)
			if err != nil {
				return errors.Wrap(err, "zstd")
			}
			r.zstd = d
		}
		out, err := r.zstd.DecodeAll(src, dst[:0])
		if err != nil {
			return errors.Wrap(err, "zstd")
		}
		if len(out) != len(dst) {
			return errors.Errorf("zstd: decompressed %d bytes, expected %d", len(out), len(dst))
		}
		if len(out) > 0 && &out[0] != &dst[0] {
			// Should not happen, capacity of dst is exact.
			copy(dst, out)
		}
	default:
		return errors.Errorf("compression %v not implemented", m)
	}

	return nil
}
