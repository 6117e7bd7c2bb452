// Binary zc-dump prints persisted buffer header and resolves references
// from it.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/go-faster/zerocopy"
	"github.com/go-faster/zerocopy/compress"
	"github.com/go-faster/zerocopy/internal/cmd/app"
	"github.com/go-faster/zerocopy/le"
	"github.com/go-faster/zerocopy/zcfile"
)

// parseSpan parses "offset:size" pair.
func parseSpan(s string) (offset, size uint64, err error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, errors.Errorf("bad span %q, expected offset:size", s)
	}
	if offset, err = strconv.ParseUint(a, 0, 64); err != nil {
		return 0, 0, errors.Wrap(err, "offset")
	}
	if size, err = strconv.ParseUint(b, 0, 64); err != nil {
		return 0, 0, errors.Wrap(err, "size")
	}
	return offset, size, nil
}

// reencode writes payload of f to new file at path, compressed with m.
func reencode(f *zcfile.File, path string, m compress.Method) (zcfile.Header, error) {
	out, err := os.Create(path)
	if err != nil {
		return zcfile.Header{}, errors.Wrap(err, "create")
	}
	h, err := f.WriteTo(out, m)
	if err != nil {
		_ = out.Close()
		return zcfile.Header{}, errors.Wrap(err, "write")
	}
	if err := out.Close(); err != nil {
		return zcfile.Header{}, errors.Wrap(err, "close")
	}
	return h, nil
}

func main() {
	var (
		arg struct {
			File     string
			Str      string
			U64      string
			Dump     int
			Out      string
			Method   string
			NoVerify bool
		}
	)
	flag.StringVar(&arg.File, "f", "", "file to open")
	flag.StringVar(&arg.Str, "str", "", "resolve utf-8 text at offset:size")
	flag.StringVar(&arg.U64, "u64", "", "resolve little-endian uint64 at offset")
	flag.IntVar(&arg.Dump, "dump", 0, "hex dump first n bytes of payload")
	flag.StringVar(&arg.Out, "o", "", "re-encode file to path")
	flag.StringVar(&arg.Method, "method", "ZSTD", "compression method for re-encoding")
	flag.BoolVar(&arg.NoVerify, "no-verify", false, "skip checksum verification")

	app.Run(func(ctx context.Context, lg *zap.Logger) error {
		if arg.File == "" {
			return errors.New("no file provided")
		}
		f, err := zcfile.Open(arg.File, zcfile.Options{
			Logger:       lg,
			SkipChecksum: arg.NoVerify,
		})
		if err != nil {
			return errors.Wrap(err, "open")
		}
		defer func() { _ = f.Close() }()

		h := f.Header
		fmt.Printf("id:       %s\n", h.ID)
		fmt.Printf("format:   %d.%d\n", h.Major.Get(), h.Minor.Get())
		fmt.Printf("writer:   %d.%d.%d\n", h.Writer[0].Get(), h.Writer[1].Get(), h.Writer[2].Get())
		fmt.Printf("method:   %s\n", h.Method)
		fmt.Printf("raw:      %s\n", humanize.IBytes(h.RawSize.Get()))
		fmt.Printf("stored:   %s\n", humanize.IBytes(h.DataSize.Get()))
		fmt.Printf("root:     %d\n", f.Root())
		fmt.Printf("mapped:   %v\n", f.Mapped())

		buf := f.Buf()
		if arg.Dump > 0 {
			p, err := buf.Range(0, min(arg.Dump, buf.Len()))
			if err != nil {
				return errors.Wrap(err, "dump")
			}
			fmt.Print(hex.Dump(p))
		}
		if arg.Str != "" {
			offset, size, err := parseSpan(arg.Str)
			if err != nil {
				return errors.Wrap(err, "str")
			}
			s, err := zerocopy.NewUnsized[zerocopy.Str, uint64](offset, size).Load(buf)
			if err != nil {
				return errors.Wrap(err, "load str")
			}
			fmt.Printf("str:      %q\n", s)
		}
		if arg.U64 != "" {
			offset, err := strconv.ParseUint(arg.U64, 0, 64)
			if err != nil {
				return errors.Wrap(err, "u64")
			}
			// Byte-array values have no alignment requirement.
			v, err := zerocopy.NewRef[le.U64, uint64](offset).Load(buf)
			if err != nil {
				return errors.Wrap(err, "load u64")
			}
			fmt.Printf("u64:      %d\n", v.Get())
		}
		if arg.Out != "" {
			m, err := compress.MethodString(arg.Method)
			if err != nil {
				return errors.Wrap(err, "method")
			}
			nh, err := reencode(f, arg.Out, m)
			if err != nil {
				return errors.Wrap(err, "re-encode")
			}
			lg.Info("Written",
				zap.String("path", arg.Out),
				zap.Stringer("method", nh.Method),
				zap.String("size", humanize.IBytes(nh.DataSize.Get()+zcfile.HeaderSize)),
			)
		}
		return ctx.Err()
	})
}
