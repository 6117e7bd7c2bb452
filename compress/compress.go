// Package compress implements payload compression for persisted buffers.
package compress

//go:generate go run github.com/dmarkham/enumer -type Method -output method_enum.go

// Method is compression codec.
type Method byte

// Possible compression methods.
const (
	None Method = iota
	LZ4
	LZ4HC
	ZSTD
)

// Level of compression, currently used only by LZ4HC.
type Level uint32

const (
	CompressionLevelLZ4HCDefault Level = 9
	CompressionLevelLZ4HCMax     Level = 12
)

const maxDataSize = 1 << 40 // 1TB

// MaxRatio returns upper bound of decompressed to compressed size ratio
// that m can produce, or 0 for unknown method.
//
// LZ4 block encodes at most 255 bytes per length byte, ZSTD run-length
// block encodes up to 128KB in 4 bytes.
func MaxRatio(m Method) uint64 {
	switch m {
	case None:
		return 1
	case LZ4, LZ4HC:
		return 255
	case ZSTD:
		return 1 << 15
	default:
		return 0
	}
}
