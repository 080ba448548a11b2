package dcmtree

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cursorBytes = []byte{
	0x01, 0x02, // uint16
	0x03, 0x04, 0x05, 0x06, // uint32
	0x00, 0x00, 0xC0, 0x3F, // float32: 1.5 (LittleEndian)
	0x44, 0x49, 0x43, 0x4D, // "DICM"
}

func TestCursorReadsInByteOrder(t *testing.T) {
	t.Parallel()
	c := cursorFromBuffer(t, cursorBytes)
	v16, err := c.ReadUint16(LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0201), v16)
	v32, err := c.ReadUint32(BigEndian)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x03040506), v32)
	f32, err := c.ReadFloat32(LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f32)
	s, err := c.ReadString(4)
	require.NoError(t, err)
	assert.Equal(t, "DICM", s)
	assert.Equal(t, int64(0), c.Remaining())
}

func TestCursorPeekDoesNotAdvance(t *testing.T) {
	t.Parallel()
	c := cursorFromBuffer(t, cursorBytes)
	buf, err := c.Peek(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, buf)
	assert.Equal(t, int64(0), c.Position())
	v16, err := c.ReadUint16(BigEndian)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v16)
}

func TestCursorSkipAndSeek(t *testing.T) {
	t.Parallel()
	c := cursorFromBuffer(t, cursorBytes)
	require.NoError(t, c.Skip(10))
	assert.Equal(t, int64(10), c.Position())
	assert.Equal(t, int64(4), c.Remaining())

	require.NoError(t, c.Seek(2))
	v32, err := c.ReadUint32(LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x06050403), v32)

	// seeking outside of the stream fails and leaves the cursor in place
	require.Error(t, c.Seek(int64(len(cursorBytes)+1)))
	assert.Equal(t, int64(6), c.Position())
}

func TestCursorInsufficientBytes(t *testing.T) {
	t.Parallel()
	c := cursorFromBuffer(t, cursorBytes)
	require.NoError(t, c.Skip(12))
	var insufficient *InsufficientBytes

	_, err := c.ReadUint32(LittleEndian)
	assert.True(t, errors.As(err, &insufficient))
	_, err = c.ReadBytes(3)
	assert.True(t, errors.As(err, &insufficient))
	_, err = c.Peek(4)
	assert.True(t, errors.As(err, &insufficient))
	assert.True(t, errors.As(c.Skip(3), &insufficient))
	// failed reads do not consume anything
	assert.Equal(t, int64(12), c.Position())
}

func TestCursorStartsAtSourcePosition(t *testing.T) {
	t.Parallel()
	src := bytes.NewReader(cursorBytes)
	_, err := src.Seek(6, io.SeekStart)
	require.NoError(t, err)
	c, err := NewCursor(src)
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, int64(6), c.Position())
	assert.Equal(t, int64(len(cursorBytes)), c.Len())
	f32, err := c.ReadFloat32(LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f32)
}

func TestCursorReadBytesZero(t *testing.T) {
	t.Parallel()
	c := cursorFromBuffer(t, nil)
	buf, err := c.ReadBytes(0)
	require.NoError(t, err)
	assert.Empty(t, buf)
}
