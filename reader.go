package dcmtree

import (
	"bufio"
	"io"
	"math"
	"sync"

	"github.com/pkg/errors"
)

type readerPool struct {
	pool *sync.Pool
}

// ReaderPool is a pool of `bufio.Reader` with a buffer size set to `Config`
var ReaderPool = readerPool{pool: &sync.Pool{
	New: func() interface{} {
		return bufio.NewReaderSize(nil, GetConfig().ReadBufferSize)
	},
}}

// Get selects an arbitrary item from the Pool, removes it from the
// Pool, and returns it to the caller.
func (rp *readerPool) Get(src io.Reader) (r *bufio.Reader) {
	r = rp.pool.Get().(*bufio.Reader)
	r.Reset(src)
	return
}

// Put adds `r` to the pool.
func (rp *readerPool) Put(r *bufio.Reader) {
	r.Reset(nil)
	rp.pool.Put(r)
}

// Cursor provides buffered, position-aware reads over an `io.ReadSeeker`.
// Seeking discards the read buffer.
type Cursor struct {
	source    io.ReadSeeker
	reader    *bufio.Reader
	readerPos int64
	size      int64
	scratch   [8]byte
}

// NewCursor sets up a new `Cursor` positioned at the current offset of `source`.
// Callers must `Close` the cursor to release its buffer.
func NewCursor(source io.ReadSeeker) (*Cursor, error) {
	pos, err := source.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, errors.Wrap(err, "NewCursor")
	}
	size, err := source.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "NewCursor")
	}
	if _, err = source.Seek(pos, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "NewCursor")
	}
	return &Cursor{source: source, reader: ReaderPool.Get(source), readerPos: pos, size: size}, nil
}

// Close returns the read buffer to the pool. The cursor must not be used afterwards.
func (c *Cursor) Close() {
	if c.reader != nil {
		ReaderPool.Put(c.reader)
		c.reader = nil
	}
}

// Position returns the current stream offset
func (c *Cursor) Position() int64 {
	return c.readerPos
}

// Len returns the total stream length
func (c *Cursor) Len() int64 {
	return c.size
}

// Remaining returns the number of remaining unread bytes
func (c *Cursor) Remaining() int64 {
	return c.size - c.readerPos
}

// Seek moves the cursor to the absolute offset `pos`
func (c *Cursor) Seek(pos int64) error {
	if pos < 0 || pos > c.size {
		return InsufficientBytesError("Seek(%d): outside of stream (%d bytes)", pos, c.size)
	}
	if _, err := c.source.Seek(pos, io.SeekStart); err != nil {
		return errors.Wrapf(err, "Seek(%d)", pos)
	}
	c.reader.Reset(c.source)
	c.readerPos = pos
	return nil
}

func (c *Cursor) ensure(fn string, num int64) error {
	if num < 0 {
		return corruptElement(ErrInconsistentLength, "%s: negative length %d", fn, num)
	}
	if remaining := c.Remaining(); remaining < num {
		return InsufficientBytesError("%s: (offset 0x%X): would exceed stream size (%d bytes remaining)", fn, c.readerPos, remaining)
	}
	return nil
}

// Peek returns the next `num` bytes without advancing the cursor
func (c *Cursor) Peek(num int) ([]byte, error) {
	if err := c.ensure("Peek", int64(num)); err != nil {
		return nil, err
	}
	buf, err := c.reader.Peek(num)
	if err != nil {
		return nil, errors.Wrapf(err, "Peek(%d)", num)
	}
	return buf, nil
}

// Skip fast-forwards the cursor `num` bytes
func (c *Cursor) Skip(num int64) error {
	if num == 0 {
		return nil
	}
	if err := c.ensure("Skip", num); err != nil {
		return err
	}
	for num > 0 {
		chunk := num
		if chunk > math.MaxInt32 {
			chunk = math.MaxInt32
		}
		n, err := c.reader.Discard(int(chunk))
		c.readerPos += int64(n)
		if err != nil {
			return errors.Wrapf(err, "Skip(%d)", num)
		}
		num -= chunk
	}
	return nil
}

func (c *Cursor) fill(fn string, dst []byte) error {
	if err := c.ensure(fn, int64(len(dst))); err != nil {
		return err
	}
	n, err := io.ReadFull(c.reader, dst)
	c.readerPos += int64(n)
	if err != nil {
		return errors.Wrapf(err, "%s: nread = %d (!= %d)", fn, n, len(dst))
	}
	return nil
}

// ReadUint16 retrieves a uint16 (two bytes) in byte order `bo`
func (c *Cursor) ReadUint16(bo ByteOrder) (uint16, error) {
	if err := c.fill("ReadUint16", c.scratch[:2]); err != nil {
		return 0, err
	}
	return bo.Binary().Uint16(c.scratch[:2]), nil
}

// ReadUint32 retrieves a uint32 (four bytes) in byte order `bo`
func (c *Cursor) ReadUint32(bo ByteOrder) (uint32, error) {
	if err := c.fill("ReadUint32", c.scratch[:4]); err != nil {
		return 0, err
	}
	return bo.Binary().Uint32(c.scratch[:4]), nil
}

// ReadUint64 retrieves a uint64 (eight bytes) in byte order `bo`
func (c *Cursor) ReadUint64(bo ByteOrder) (uint64, error) {
	if err := c.fill("ReadUint64", c.scratch[:8]); err != nil {
		return 0, err
	}
	return bo.Binary().Uint64(c.scratch[:8]), nil
}

// ReadInt16 retrieves an int16 in byte order `bo`
func (c *Cursor) ReadInt16(bo ByteOrder) (int16, error) {
	v, err := c.ReadUint16(bo)
	return int16(v), err
}

// ReadInt32 retrieves an int32 in byte order `bo`
func (c *Cursor) ReadInt32(bo ByteOrder) (int32, error) {
	v, err := c.ReadUint32(bo)
	return int32(v), err
}

// ReadFloat32 retrieves an IEEE 754 float32 in byte order `bo`
func (c *Cursor) ReadFloat32(bo ByteOrder) (float32, error) {
	v, err := c.ReadUint32(bo)
	return math.Float32frombits(v), err
}

// ReadFloat64 retrieves an IEEE 754 float64 in byte order `bo`
func (c *Cursor) ReadFloat64(bo ByteOrder) (float64, error) {
	v, err := c.ReadUint64(bo)
	return math.Float64frombits(v), err
}

// ReadBytes retrieves `num` bytes into a new slice
func (c *Cursor) ReadBytes(num int64) ([]byte, error) {
	if num == 0 {
		return []byte{}, nil
	}
	if err := c.ensure("ReadBytes", num); err != nil {
		return nil, err
	}
	buf := make([]byte, num)
	if err := c.fill("ReadBytes", buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadString retrieves `num` bytes as a string, without decoding
func (c *Cursor) ReadString(num int64) (string, error) {
	buf, err := c.ReadBytes(num)
	return string(buf), err
}
