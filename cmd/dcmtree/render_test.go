package main

import (
	"bytes"
	"testing"

	"github.com/b71729/dcmtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// renderBytes contains a sequence holding one item, followed by an AcquisitionMatrix
// ExplicitVR, LittleEndian
var renderBytes = []byte{
	0x08, 0x00, 0x40, 0x11, // (0008,1140) Tag
	0x53, 0x51, 0x00, 0x00, // VR: "SQ" + Reserved
	0x14, 0x00, 0x00, 0x00, // Length: 20 bytes
	/* ---> */ 0xFE, 0xFF, 0x00, 0xE0, // StartItem Tag
	/*      */ 0x0C, 0x00, 0x00, 0x00, // Item Length: 12 bytes
	/*      ---> */ 0x08, 0x00, 0x50, 0x11, // (0008,1150) Tag
	/*           */ 0x55, 0x49, 0x04, 0x00, // VR: "UI", Length: 4 bytes
	/*           */ 0x31, 0x2E, 0x32, 0x00, // "1.2"+NULL
	0x18, 0x00, 0x10, 0x13, // (0018,1310) Tag
	0x55, 0x53, 0x08, 0x00, // VR: "US", Length: 8 bytes
	0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, // 256, 0, 0, 256
}

func renderTree(t *testing.T) *dcmtree.Tree {
	t.Helper()
	tree := dcmtree.NewTree()
	require.NoError(t, dcmtree.NewParser(dcmtree.Config{}).ParseBytes(renderBytes, tree))
	return tree
}

func TestRenderText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, renderText(&buf, renderTree(t)))
	assert.Contains(t, buf.String(), "    [UI] (0008,1150) ReferencedSOPClassUID (4 bytes) 1.2\n")
	assert.Contains(t, buf.String(), "[US] (0018,1310) AcquisitionMatrix (8 bytes) [8 bytes of US]\n")
}

func TestRenderTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, renderTree(t)))
	assert.Contains(t, buf.String(), "ReferencedImageSequence")
	assert.Contains(t, buf.String(), "(0008,1150)")
	assert.Contains(t, buf.String(), "AcquisitionMatrix")
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, renderYAML(&buf, renderTree(t)))

	var nodes []struct {
		Tag      string        `yaml:"tag"`
		VR       string        `yaml:"vr"`
		Value    []int         `yaml:"value"`
		Children []interface{} `yaml:"children"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &nodes))
	require.Len(t, nodes, 2)
	assert.Equal(t, "(0008,1140)", nodes[0].Tag)
	assert.Len(t, nodes[0].Children, 1)
	assert.Equal(t, "US", nodes[1].VR)
	assert.Equal(t, []int{256, 0, 0, 256}, nodes[1].Value)
}

func TestWriteCounts(t *testing.T) {
	t.Parallel()
	counter := dcmtree.NewCounter()
	require.NoError(t, dcmtree.NewParser(dcmtree.Config{}).ParseBytes(renderBytes, counter))
	var buf bytes.Buffer
	writeCounts(&buf, counter)
	assert.Contains(t, buf.String(), "maximum nesting depth: 2\n")
	assert.Contains(t, buf.String(), "TOTAL")
}

func TestGoByteLiteral(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[]byte{0x31, 0x2E, 0x32, 0x00}", goByteLiteral([]byte("1.2\x00")))
	assert.Equal(t, "[]byte{}", goByteLiteral(nil))
}
