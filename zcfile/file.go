package zcfile

import (
	"io"
	"math"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/go-faster/zerocopy"
	"github.com/go-faster/zerocopy/compress"
	"github.com/go-faster/zerocopy/internal/mmap"
	"github.com/go-faster/zerocopy/internal/version"
	"github.com/go-faster/zerocopy/le"
)

const (
	// maxDataSize limits payload size declared by header.
	maxDataSize = 1 << 34 // 16GB
	// readChunk is the step of payload buffer growth in Read, so truncated
	// input does not allocate declared size upfront.
	readChunk = 1 << 20
)

// Errors of file decoding.
var (
	ErrMagic    = errors.New("bad magic")
	ErrChecksum = errors.New("checksum mismatch")
	ErrClosed   = errors.New("file closed")
	ErrSize     = errors.New("bad payload size")
)

// WriteOptions configures Write.
type WriteOptions struct {
	Method compress.Method
	Level  compress.Level
	// ID of file, random if zero.
	ID     uuid.UUID
	Logger *zap.Logger
}

func (o *WriteOptions) setDefaults() {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// Write encodes payload with root offset to w.
//
// Payload is usually zerocopy.OwnedBuf bytes and root is offset of the
// top-level value in it.
func Write(w io.Writer, payload []byte, root int, opt WriteOptions) (Header, error) {
	opt.setDefaults()
	if root < 0 || root > len(payload) {
		return Header{}, errors.Errorf("root offset %d out of payload [0, %d]", root, len(payload))
	}

	c := compress.NewWriterWithMethods(opt.Level, opt.Method)
	method, err := c.Compress(opt.Method, payload)
	if err != nil {
		return Header{}, errors.Wrap(err, "compress")
	}

	mod := version.Get()
	h := Header{
		Magic:    Magic,
		Major:    le.NewU16(version.FormatMajor),
		Minor:    le.NewU16(version.FormatMinor),
		Method:   method,
		Writer:   [3]le.U16{le.NewU16(uint16(mod.Major)), le.NewU16(uint16(mod.Minor)), le.NewU16(uint16(mod.Patch))},
		ID:       opt.ID,
		RawSize:  le.NewU64(uint64(len(payload))),
		DataSize: le.NewU64(uint64(len(c.Data))),
		Root:     le.NewU64(uint64(root)),
		Checksum: checksum(c.Data),
	}

	o := zerocopy.NewOwnedBufSize(HeaderSize)
	if _, err := zerocopy.Store[Header, uint32](o, h); err != nil {
		return Header{}, errors.Wrap(err, "header")
	}
	if _, err := w.Write(o.Bytes()); err != nil {
		return Header{}, errors.Wrap(err, "write header")
	}
	if _, err := w.Write(c.Data); err != nil {
		return Header{}, errors.Wrap(err, "write data")
	}

	opt.Logger.Debug("Written",
		zap.Stringer("id", h.ID),
		zap.Stringer("method", method),
		zap.Int("raw_size", len(payload)),
		zap.Int("data_size", len(c.Data)),
	)

	return h, nil
}

// Options configures reading of files.
type Options struct {
	Logger *zap.Logger
	// SkipChecksum disables payload checksum verification, which requires
	// reading whole payload.
	SkipChecksum bool
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// File is opened persisted buffer.
//
// Values loaded from File buffers are valid until Close.
type File struct {
	Header Header

	lg     *zap.Logger
	buf    *zerocopy.Buf
	mut    *zerocopy.BufMut // nil if read-only
	m      *mmap.Map        // nil if payload is in memory
	closed atomic.Bool
}

// ID of file.
func (f *File) ID() uuid.UUID { return f.Header.ID }

// Root returns offset of root value in payload.
func (f *File) Root() uint64 { return f.Header.Root.Get() }

// Mapped reports whether payload is memory-mapped from file.
func (f *File) Mapped() bool { return f.m != nil }

// Buf returns payload view.
//
// After Close returned view is empty, so every load fails with
// zerocopy.ErrOutOfBounds.
func (f *File) Buf() *zerocopy.Buf { return f.buf }

// BufMut returns mutable payload view, reporting false if file was
// opened read-only.
func (f *File) BufMut() (*zerocopy.BufMut, bool) {
	return f.mut, f.mut != nil
}

// RootRef returns reference to root value of type T.
func RootRef[T any, O zerocopy.Size](f *File) (zerocopy.Ref[T, O], error) {
	root := f.Root()
	if uint64(O(root)) != root {
		return zerocopy.Ref[T, O]{}, errors.Wrapf(zerocopy.ErrOverflow, "root offset %d", root)
	}
	return zerocopy.NewRef[T, O](O(root)), nil
}

// Close releases file resources, invalidating every value loaded from it.
//
// For writable mappings checksum is updated to match modified payload.
func (f *File) Close() error {
	if !f.closed.CAS(false, true) {
		return nil
	}
	defer func() {
		f.buf = zerocopy.NewBuf(nil)
		f.mut = nil
	}()
	if f.m == nil {
		return nil
	}
	var err error
	if f.m.Writable() {
		err = f.updateChecksum()
	}
	return multierr.Append(err, errors.Wrap(f.m.Close(), "unmap"))
}

func (f *File) updateChecksum() error {
	h, err := zerocopy.NewRef[Header, uint32](0).LoadMut(zerocopy.NewBufMut(f.m.Data()))
	if err != nil {
		return errors.Wrap(err, "header")
	}
	h.Checksum = checksum(f.buf.Bytes())
	f.Header = *h
	return nil
}

// decodeHeader loads and checks header from data.
func decodeHeader(data []byte) (Header, error) {
	h, err := zerocopy.NewRef[Header, uint32](0).Load(zerocopy.NewBuf(data))
	if err != nil {
		return Header{}, errors.Wrap(err, "load")
	}
	if h.Magic != Magic {
		return Header{}, errors.Wrapf(ErrMagic, "%q", h.Magic[:])
	}
	if err := version.CheckFormat(h.Major.Get(), h.Minor.Get()); err != nil {
		return Header{}, errors.Wrap(err, "version")
	}
	if !h.Method.IsAMethod() {
		return Header{}, errors.Errorf("unknown compression %v", h.Method)
	}
	rawSize, dataSize := h.RawSize.Get(), h.DataSize.Get()
	if rawSize > maxDataSize || dataSize > maxDataSize {
		return Header{}, errors.Wrapf(ErrSize, "%d exceeds %d", max(rawSize, dataSize), uint64(maxDataSize))
	}
	if h.Method == compress.None && rawSize != dataSize {
		return Header{}, errors.Wrapf(ErrSize, "raw size %d != data size %d", rawSize, dataSize)
	}
	if rawSize > dataSize*compress.MaxRatio(h.Method) {
		return Header{}, errors.Wrapf(ErrSize, "raw size %d can't be decompressed from %d bytes of %s",
			rawSize, dataSize, h.Method,
		)
	}
	if h.Root.Get() > h.RawSize.Get() {
		return Header{}, errors.Errorf("root offset %d > raw size %d", h.Root.Get(), h.RawSize.Get())
	}
	return *h, nil
}

// sizeInt converts header size to native int.
func sizeInt(v uint64) (int, error) {
	if v > math.MaxInt {
		return 0, errors.Wrapf(ErrSize, "%d overflows int", v)
	}
	return int(v), nil
}

// readPayload reads n bytes from r into o, growing it by chunks.
func readPayload(r io.Reader, o *zerocopy.OwnedBuf, n int) error {
	for n > 0 {
		p := o.Extend(min(n, readChunk))
		if _, err := io.ReadFull(r, p); err != nil {
			return err
		}
		n -= len(p)
	}
	return nil
}

func verify(h Header, data []byte) error {
	if got := checksum(data); got != h.Checksum {
		return errors.Wrapf(ErrChecksum, "got %x%x, expected %x%x",
			got[1].Get(), got[0].Get(), h.Checksum[1].Get(), h.Checksum[0].Get(),
		)
	}
	return nil
}

// Read decodes file from r into memory.
//
// Payload of returned File is writable.
func Read(r io.Reader, opt Options) (*File, error) {
	opt.setDefaults()

	var raw [HeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	h, err := decodeHeader(raw[:])
	if err != nil {
		return nil, errors.Wrap(err, "header")
	}
	dataSize, err := sizeInt(h.DataSize.Get())
	if err != nil {
		return nil, errors.Wrap(err, "data size")
	}
	rawSize, err := sizeInt(h.RawSize.Get())
	if err != nil {
		return nil, errors.Wrap(err, "raw size")
	}

	data := zerocopy.NewOwnedBuf()
	if err := readPayload(r, data, dataSize); err != nil {
		return nil, errors.Wrap(err, "read data")
	}
	if !opt.SkipChecksum {
		if err := verify(h, data.Bytes()); err != nil {
			return nil, err
		}
	}
	o := data
	if h.Method != compress.None {
		o = zerocopy.NewOwnedBufSize(rawSize)
		if err := compress.NewReader().Decompress(h.Method, o.Extend(rawSize), data.Bytes()); err != nil {
			return nil, errors.Wrap(err, "decompress")
		}
	}

	opt.Logger.Debug("Read",
		zap.Stringer("id", h.ID),
		zap.Stringer("method", h.Method),
		zap.Int("raw_size", rawSize),
	)

	mut := o.BufMut()
	return &File{
		Header: h,
		lg:     opt.Logger,
		buf:    &mut.Buf,
		mut:    mut,
	}, nil
}

// Open opens file at path for reading.
//
// Uncompressed payload is memory-mapped read-only, compressed payload is
// decompressed into memory.
func Open(path string, opt Options) (*File, error) {
	return open(path, false, opt)
}

// OpenMut opens uncompressed file at path with shared writable mapping:
// modifications of payload are written back to file and checksum is
// updated on Close.
func OpenMut(path string, opt Options) (*File, error) {
	return open(path, true, opt)
}

func open(path string, writable bool, opt Options) (_ *File, rerr error) {
	opt.setDefaults()

	m, err := mmap.Open(path, writable)
	if err != nil {
		return nil, errors.Wrap(err, "mmap")
	}
	defer func() {
		if rerr != nil {
			rerr = multierr.Append(rerr, m.Close())
		}
	}()

	data := m.Data()
	h, err := decodeHeader(data)
	if err != nil {
		return nil, errors.Wrap(err, "header")
	}
	if uint64(len(data)-HeaderSize) != h.DataSize.Get() {
		return nil, errors.Errorf("file has %d bytes of data, header declares %d", len(data)-HeaderSize, h.DataSize.Get())
	}
	data = data[HeaderSize:]
	if !opt.SkipChecksum {
		if err := verify(h, data); err != nil {
			return nil, err
		}
	}

	lg := opt.Logger.With(zap.String("path", path), zap.Stringer("id", h.ID))
	if h.Method == compress.None {
		lg.Debug("Mapped", zap.Int("size", len(data)), zap.Bool("writable", writable))
		f := &File{
			Header: h,
			lg:     lg,
			m:      m,
		}
		if writable {
			f.mut = zerocopy.NewBufMut(data)
			f.buf = &f.mut.Buf
		} else {
			f.buf = zerocopy.NewBuf(data)
		}
		return f, nil
	}
	if writable {
		return nil, errors.Errorf("compressed (%v) file can't be opened for writing", h.Method)
	}

	rawSize, err := sizeInt(h.RawSize.Get())
	if err != nil {
		return nil, errors.Wrap(err, "raw size")
	}
	o := zerocopy.NewOwnedBufSize(rawSize)
	if err := compress.NewReader().Decompress(h.Method, o.Extend(rawSize), data); err != nil {
		return nil, errors.Wrap(err, "decompress")
	}
	lg.Debug("Decompressed", zap.Stringer("method", h.Method), zap.Int("size", rawSize))
	if err := m.Close(); err != nil {
		return nil, errors.Wrap(err, "unmap")
	}
	mut := o.BufMut()
	return &File{
		Header: h,
		lg:     lg,
		buf:    &mut.Buf,
		mut:    mut,
	}, nil
}

// WriteTo re-encodes file payload to w with same ID and root.
func (f *File) WriteTo(w io.Writer, method compress.Method) (Header, error) {
	if f.closed.Load() {
		return Header{}, ErrClosed
	}
	return Write(w, f.buf.Bytes(), int(f.Root()), WriteOptions{
		Method: method,
		ID:     f.Header.ID,
		Logger: f.lg,
	})
}
