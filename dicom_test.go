package dcmtree

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withPreamble prefixes `body` with an empty preamble and the "DICM" magic
func withPreamble(body ...[]byte) []byte {
	return concat(append([][]byte{make([]byte, preambleLength), dicmTestString}, body...)...)
}

// validFile contains a file meta group declaring Implicit VR Little Endian, followed by a dataset
var validFile = withPreamble(
	explicitElement(0x0002, 0x0001, "OB", []byte{0x00, 0x01}),
	explicitElement(0x0002, 0x0010, "UI", []byte(ImplicitVRLittleEndianUID+"\x00")),
	definedSequence,
)

func TestAttemptReadPreamble(t *testing.T) {
	t.Parallel()
	c := cursorFromBuffer(t, validFile)
	found, err := attemptReadPreamble(c)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(preambleLength+magicLength), c.Position())

	// 132 bytes without magic
	c = cursorFromBuffer(t, make([]byte, preambleLength+magicLength))
	found, err = attemptReadPreamble(c)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, int64(0), c.Position())

	// too short to hold a preamble
	c = cursorFromBuffer(t, validUS)
	found, err = attemptReadPreamble(c)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, int64(0), c.Position())
}

func TestParseBytes(t *testing.T) {
	t.Parallel()
	tree := NewTree()
	require.NoError(t, newTestParser(Config{}).ParseBytes(validFile, tree))
	// 2 meta elements, then sequence, item, uid and name
	assert.Equal(t, 6, tree.Len())
	pn, ok := tree.Find(0x00100010)
	require.True(t, ok)
	assert.Equal(t, implicitLE, pn.Element.Syntax)
	assert.Equal(t, []string{"A^B"}, pn.Element.Value.Strings())
}

func TestParseWithoutPreamble(t *testing.T) {
	t.Parallel()
	tree := NewTree()
	require.NoError(t, newTestParser(Config{}).ParseBytes(validUS, tree))
	require.Equal(t, 1, tree.Len())
	assert.Equal(t, UnsignedShort, tree.Node(1).Element.VR)
}

func TestParseRewindsSource(t *testing.T) {
	t.Parallel()
	src := bytes.NewReader(validFile)
	_, err := src.Seek(64, io.SeekStart)
	require.NoError(t, err)
	tree := NewTree()
	require.NoError(t, newTestParser(Config{}).Parse(src, tree))
	assert.Equal(t, 6, tree.Len())
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()
	tree := NewTree()
	require.NoError(t, newTestParser(Config{}).ParseBytes([]byte{}, tree))
	assert.Equal(t, 0, tree.Len())
}

func TestParseTruncated(t *testing.T) {
	t.Parallel()
	err := newTestParser(Config{}).ParseBytes(validFile[:len(validFile)-3], NewTree())
	require.Error(t, err)
}

func TestParseFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "valid.dcm")
	require.NoError(t, os.WriteFile(path, validFile, 0o600))

	counter := NewCounter()
	require.NoError(t, newTestParser(Config{}).ParseFile(path, counter))
	assert.Equal(t, 6, counter.Total)
	assert.Equal(t, 2, counter.MaxDepth)

	missing := filepath.Join(dir, "missing.dcm")
	err := newTestParser(Config{}).ParseFile(missing, NewCounter())
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}
