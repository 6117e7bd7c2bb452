package compress

import (
	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Writer compresses payloads.
type Writer struct {
	Data []byte

	lz4   *lz4.Compressor
	lz4hc *lz4.CompressorHC
	zstd  *zstd.Encoder
}

// Compress buf into Data and returns method that was actually used.
//
// LZ4 can't store incompressible data, such payloads are stored with None.
func (w *Writer) Compress(m Method, buf []byte) (Method, error) {
	switch m {
	case LZ4, LZ4HC:
		w.Data = append(w.Data[:0], make([]byte, lz4.CompressBlockBound(len(buf)))...)
		var (
			n   int
			err error
		)
		if m == LZ4 {
			if w.lz4 == nil {
				return m, errors.Errorf("writer was not configured to accept method: %v", m)
			}
			n, err = w.lz4.CompressBlock(buf, w.Data)
		} else {
			if w.lz4hc == nil {
				return m, errors.Errorf("writer was not configured to accept method: %v", m)
			}
			n, err = w.lz4hc.CompressBlock(buf, w.Data)
		}
		if err != nil {
			return m, errors.Wrap(err, "block")
		}
		if n == 0 && len(buf) > 0 {
			// Incompressible.
			w.Data = append(w.Data[:0], buf...)
			return None, nil
		}
		w.Data = w.Data[:n]
	case ZSTD:
		if w.zstd == nil {
			return m, errors.Errorf("writer was not configured to accept method: %v", m)
		}
		w.Data = w.zstd.EncodeAll(buf, w.Data[:0])
	case None:
		w.Data = append(w.Data[:0], buf...)
	default:
		return m, errors.Errorf("unsupported compression method: %v", m)
	}

	return m, nil
}

// NewWriterWithMethods creates a new Writer with the specified compression level that supports only the specified methods.
func NewWriterWithMethods(l Level, m ...Method) *Writer {
	var err error
	var zstdWriter *zstd.Encoder
	var lz4Writer *lz4.Compressor
	var lz4hcWriter *lz4.CompressorHC

	for _, method := range m {
		switch method {
		case LZ4:
			lz4Writer = &lz4.Compressor{}
		case LZ4HC:
			levelLZ4HC := l
			if levelLZ4HC == 0 {
				levelLZ4HC = CompressionLevelLZ4HCDefault
			} else {
				levelLZ4HC = min(levelLZ4HC, CompressionLevelLZ4HCMax)
			}
			lz4hcWriter = &lz4.CompressorHC{Level: lz4.CompressionLevel(1 << (8 + levelLZ4HC))}
		case ZSTD:
			zstdWriter, err = zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedDefault),
				zstd.WithEncoderConcurrency(1),
				zstd.WithLowerEncoderMem(true),
			)
			if err != nil {
				panic(err)
			}
		case None:
		// Nothing to do.
		default:
			panic(errors.Errorf("unsupported compression method: %v", method))
		}
	}

	return &Writer{
		lz4:   lz4Writer,
		lz4hc: lz4hcWriter,
		zstd:  zstdWriter,
	}
}

// NewWriterWithLevel creates a new Writer with the specified compression level that supports all methods.
func NewWriterWithLevel(l Level) *Writer {
	return NewWriterWithMethods(l, MethodValues()...)
}

// NewWriter creates a new Writer with compression level 0 that supports all methods.
func NewWriter() *Writer {
	return NewWriterWithLevel(0)
}
