package dcmtree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/b71729/dcmtree/dictionary"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := walkBuffer(t, newTestParser(Config{}), undefinedSequence, DefaultTransferSyntax())
	require.NoError(t, err)
	return tree
}

func TestTreeWalkOrder(t *testing.T) {
	t.Parallel()
	tree := buildTree(t)
	var tags []dictionary.Tag
	var depths []int
	require.NoError(t, tree.Walk(func(_, depth int, n *Node) error {
		tags = append(tags, n.Element.Tag)
		depths = append(depths, depth)
		return nil
	}))
	assert.Equal(t, []dictionary.Tag{
		0x00081140,
		ItemTag, 0x00081150, ItemDelimitationTag,
		ItemTag, 0x00081155, ItemDelimitationTag,
		SequenceDelimitationTag,
		0x00100010,
	}, tags)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 2, 2, 1, 0}, depths)
}

func TestTreeWalkStops(t *testing.T) {
	t.Parallel()
	tree := buildTree(t)
	stop := errors.New("stop")
	visited := 0
	err := tree.Walk(func(_, _ int, _ *Node) error {
		visited++
		if visited == 3 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 3, visited)
}

func TestTreeFind(t *testing.T) {
	t.Parallel()
	tree := buildTree(t)
	n, ok := tree.Find(0x00081155)
	require.True(t, ok)
	assert.Equal(t, ItemTag, tree.Node(n.Parent).Element.Tag)
	_, ok = tree.Find(0x7FE00010)
	assert.False(t, ok)
}

func TestCounter(t *testing.T) {
	t.Parallel()
	counter := NewCounter()
	c := cursorFromBuffer(t, undefinedSequence)
	require.NoError(t, newTestParser(Config{}).Walk(c, DefaultTransferSyntax(), RootIndex, c.Len(), counter))
	assert.Equal(t, 9, counter.Total)
	assert.Equal(t, 5, counter.ByVR[Delimiter])
	assert.Equal(t, 2, counter.ByVR[UID])
	assert.Equal(t, 2, counter.MaxDepth)
	assert.Equal(t, []VR{Delimiter, PersonName, SequenceOfItems, UID}, counter.VRs())

	total := NewCounter()
	total.Add(counter)
	total.Add(counter)
	assert.Equal(t, 18, total.Total)
	assert.Equal(t, 4, total.ByVR[UID])
	assert.Equal(t, 2, total.MaxDepth)
}

func TestDumper(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	dumper := NewDumper(&buf)
	c := cursorFromBuffer(t, undefinedSequence)
	require.NoError(t, newTestParser(Config{}).Walk(c, DefaultTransferSyntax(), RootIndex, c.Len(), dumper))
	require.NoError(t, dumper.Err())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, buildTree(t).Describe(), lines)
	assert.Equal(t, "    [UI] (0008,1150) ReferencedSOPClassUID (4 bytes) 1.2", lines[2])
	assert.Equal(t, "[SQ] (0008,1140) ReferencedImageSequence (undefined bytes) ", lines[0])
}

func TestMultiHandler(t *testing.T) {
	t.Parallel()
	tree := NewTree()
	counter := NewCounter()
	var seen []int
	spy := HandlerFunc(func(parent int, _ DataElement) int {
		seen = append(seen, parent)
		return len(seen) * 100
	})
	c := cursorFromBuffer(t, undefinedSequence)
	require.NoError(t, newTestParser(Config{}).Walk(c, DefaultTransferSyntax(), RootIndex, c.Len(), MultiHandler(tree, counter, spy)))

	assert.Equal(t, buildTree(t), tree)
	assert.Equal(t, 9, counter.Total)
	assert.Equal(t, 2, counter.MaxDepth)
	// each handler receives parents from its own index space
	assert.Equal(t, []int{RootIndex, 100, 200, 200, 100, 500, 500, 100, RootIndex}, seen)
}
