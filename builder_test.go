package dcmtree

import (
	"testing"

	"github.com/b71729/dcmtree/dictionary"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Utils

func newTestParser(cfg Config) *Parser {
	return NewParser(cfg).WithLogger(zap.NewNop().Sugar())
}

// walkBuffer decodes the whole of `buf` under `syntax` into a new Tree
func walkBuffer(t *testing.T, p *Parser, buf []byte, syntax TransferSyntax) (*Tree, error) {
	t.Helper()
	c := cursorFromBuffer(t, buf)
	tree := NewTree()
	err := p.Walk(c, syntax, RootIndex, c.Len(), tree)
	return tree, err
}

func childTags(tree *Tree, n *Node) []dictionary.Tag {
	tags := make([]dictionary.Tag, len(n.Children))
	for i, child := range n.Children {
		tags[i] = tree.Node(child).Element.Tag
	}
	return tags
}

// undefinedSequence contains (0008,1140) with two items, each of undefined length
// ExplicitVR, LittleEndian
var undefinedSequence = []byte{
	0x08, 0x00, 0x40, 0x11, // (0008,1140) Tag
	0x53, 0x51, 0x00, 0x00, // VR: "SQ" + Reserved
	0xFF, 0xFF, 0xFF, 0xFF, // Length: undefined
	/* ---> */ 0xFE, 0xFF, 0x00, 0xE0, // StartItem Tag
	/*      */ 0xFF, 0xFF, 0xFF, 0xFF, // Item Length: undefined
	/*      ---> */ 0x08, 0x00, 0x50, 0x11, // (0008,1150) Tag
	/*           */ 0x55, 0x49, 0x04, 0x00, // VR: "UI", Length: 4 bytes
	/*           */ 0x31, 0x2E, 0x32, 0x00, // "1.2"+NULL
	/* ---> */ 0xFE, 0xFF, 0x0D, 0xE0, // EndItem Tag
	/*      */ 0x00, 0x00, 0x00, 0x00, // EndItem Length
	/* ---> */ 0xFE, 0xFF, 0x00, 0xE0, // StartItem Tag
	/*      */ 0xFF, 0xFF, 0xFF, 0xFF, // Item Length: undefined
	/*      ---> */ 0x08, 0x00, 0x55, 0x11, // (0008,1155) Tag
	/*           */ 0x55, 0x49, 0x04, 0x00, // VR: "UI", Length: 4 bytes
	/*           */ 0x33, 0x2E, 0x34, 0x00, // "3.4"+NULL
	/* ---> */ 0xFE, 0xFF, 0x0D, 0xE0, // EndItem Tag
	/*      */ 0x00, 0x00, 0x00, 0x00, // EndItem Length
	0xFE, 0xFF, 0xDD, 0xE0, // EndSequence Tag
	0x00, 0x00, 0x00, 0x00, // EndSequence Length
	0x10, 0x00, 0x10, 0x00, // (0010,0010) Tag
	0x50, 0x4E, 0x04, 0x00, // VR: "PN", Length: 4 bytes
	0x41, 0x5E, 0x42, 0x20, // "A^B "
}

// definedSequence contains (0008,1140) with one item, both of defined length
// ImplicitVR, LittleEndian
var definedSequence = []byte{
	0x08, 0x00, 0x40, 0x11, // (0008,1140) Tag
	0x14, 0x00, 0x00, 0x00, // Length: 20 bytes
	/* ---> */ 0xFE, 0xFF, 0x00, 0xE0, // StartItem Tag
	/*      */ 0x0C, 0x00, 0x00, 0x00, // Item Length: 12 bytes
	/*      ---> */ 0x08, 0x00, 0x50, 0x11, // (0008,1150) Tag
	/*           */ 0x04, 0x00, 0x00, 0x00, // Length: 4 bytes
	/*           */ 0x31, 0x2E, 0x32, 0x00, // "1.2"+NULL
	0x10, 0x00, 0x10, 0x00, // (0010,0010) Tag
	0x04, 0x00, 0x00, 0x00, // Length: 4 bytes
	0x41, 0x5E, 0x42, 0x20, // "A^B "
}

/*
===============================================================================
    Tree Builder
===============================================================================
*/

func TestWalkUndefinedLengthSequence(t *testing.T) {
	t.Parallel()
	tree, err := walkBuffer(t, newTestParser(Config{}), undefinedSequence, DefaultTransferSyntax())
	require.NoError(t, err)
	root := tree.Root()
	require.Equal(t, []dictionary.Tag{0x00081140, 0x00100010}, childTags(tree, root))

	sq := tree.Node(root.Children[0])
	assert.Equal(t, SequenceOfItems, sq.Element.VR)
	assert.True(t, sq.Element.Length.IsUndefined())
	assert.Equal(t, []dictionary.Tag{ItemTag, ItemTag, SequenceDelimitationTag}, childTags(tree, sq))

	// each item is its own subtree, terminated by its delimiter
	first, second := tree.Node(sq.Children[0]), tree.Node(sq.Children[1])
	assert.Equal(t, []dictionary.Tag{0x00081150, ItemDelimitationTag}, childTags(tree, first))
	assert.Equal(t, []dictionary.Tag{0x00081155, ItemDelimitationTag}, childTags(tree, second))
	assert.Equal(t, []string{"3.4"}, tree.Node(second.Children[0]).Element.Value.Strings())

	// the sequence delimiter is a leaf
	assert.Empty(t, tree.Node(sq.Children[2]).Children)

	pn := tree.Node(root.Children[1])
	assert.Equal(t, []string{"A^B"}, pn.Element.Value.Strings())
	assert.Equal(t, RootIndex, pn.Parent)
}

func TestWalkDefinedLengthSequence(t *testing.T) {
	t.Parallel()
	tree, err := walkBuffer(t, newTestParser(Config{}), definedSequence, implicitLE)
	require.NoError(t, err)
	root := tree.Root()
	require.Equal(t, []dictionary.Tag{0x00081140, 0x00100010}, childTags(tree, root))

	sq := tree.Node(root.Children[0])
	assert.Equal(t, ValueLength(20), sq.Element.Length)
	require.Equal(t, []dictionary.Tag{ItemTag}, childTags(tree, sq))
	item := tree.Node(sq.Children[0])
	assert.Equal(t, []dictionary.Tag{0x00081150}, childTags(tree, item))
	assert.Equal(t, UID, tree.Node(item.Children[0]).Element.VR)
	assert.Equal(t, 4, tree.Len())
}

func TestWalkEmptySequence(t *testing.T) {
	t.Parallel()
	buf := concat(
		implicitElement(0x0008, 0x1140, nil),
		implicitElement(0x0010, 0x0010, []byte("A^B ")),
	)
	tree, err := walkBuffer(t, newTestParser(Config{}), buf, implicitLE)
	require.NoError(t, err)
	root := tree.Root()
	require.Equal(t, []dictionary.Tag{0x00081140, 0x00100010}, childTags(tree, root))
	assert.Empty(t, tree.Node(root.Children[0]).Children)
}

// performedProtocolSequence contains (0040,0260) with one empty item, both of undefined length
// ImplicitVR, LittleEndian
var performedProtocolSequence = []byte{
	0x40, 0x00, 0x60, 0x02, // (0040,0260) Tag
	0xFF, 0xFF, 0xFF, 0xFF, // Length: undefined
	/* ---> */ 0xFE, 0xFF, 0x00, 0xE0, // StartItem Tag
	/*      */ 0xFF, 0xFF, 0xFF, 0xFF, // Item Length: undefined
	/* ---> */ 0xFE, 0xFF, 0x0D, 0xE0, // EndItem Tag
	/*      */ 0x00, 0x00, 0x00, 0x00, // EndItem Length
	0xFE, 0xFF, 0xDD, 0xE0, // EndSequence Tag
	0x00, 0x00, 0x00, 0x00, // EndSequence Length
}

func TestWalkImplicitSequence(t *testing.T) {
	t.Parallel()
	tree, err := walkBuffer(t, newTestParser(Config{}), performedProtocolSequence, implicitLE)
	require.NoError(t, err)
	root := tree.Root()
	require.Equal(t, []dictionary.Tag{0x00400260}, childTags(tree, root))

	sq := tree.Node(root.Children[0])
	assert.Equal(t, SequenceOfItems, sq.Element.VR)
	assert.False(t, sq.Element.ImplicitItems)
	assert.Equal(t, "PerformedProtocolCodeSequence", sq.Element.Name())
	require.Equal(t, []dictionary.Tag{ItemTag, SequenceDelimitationTag}, childTags(tree, sq))
	assert.Equal(t, []dictionary.Tag{ItemDelimitationTag}, childTags(tree, tree.Node(sq.Children[0])))
}

func TestWalkUnlistedImplicitSequence(t *testing.T) {
	t.Parallel()
	// (0018,1FFE) is not in the dictionary, so its VR resolves to UN
	buf := concat(
		[]byte{
			0x18, 0x00, 0xFE, 0x1F, // (0018,1FFE) Tag
			0xFF, 0xFF, 0xFF, 0xFF, // Length: undefined
			/* ---> */ 0xFE, 0xFF, 0x00, 0xE0, // StartItem Tag
			/*      */ 0xFF, 0xFF, 0xFF, 0xFF, // Item Length: undefined
		},
		implicitElement(0x0008, 0x1150, []byte("1.2\x00")),
		[]byte{
			/* ---> */ 0xFE, 0xFF, 0x0D, 0xE0, // EndItem Tag
			/*      */ 0x00, 0x00, 0x00, 0x00, // EndItem Length
			0xFE, 0xFF, 0xDD, 0xE0, // EndSequence Tag
			0x00, 0x00, 0x00, 0x00, // EndSequence Length
		},
		implicitElement(0x0010, 0x0010, []byte("A^B ")),
	)
	tree, err := walkBuffer(t, newTestParser(Config{}), buf, implicitLE)
	require.NoError(t, err)
	root := tree.Root()
	require.Equal(t, []dictionary.Tag{0x00181FFE, 0x00100010}, childTags(tree, root))

	sq := tree.Node(root.Children[0])
	assert.Equal(t, SequenceOfItems, sq.Element.VR)
	assert.True(t, sq.Element.ImplicitItems)
	assert.True(t, sq.Element.Length.IsUndefined())
	require.Equal(t, []dictionary.Tag{ItemTag, SequenceDelimitationTag}, childTags(tree, sq))

	item := tree.Node(sq.Children[0])
	require.Equal(t, []dictionary.Tag{0x00081150, ItemDelimitationTag}, childTags(tree, item))
	assert.Equal(t, []string{"1.2"}, tree.Node(item.Children[0]).Element.Value.Strings())
	assert.Equal(t, []string{"A^B"}, tree.Node(root.Children[1]).Element.Value.Strings())
}

func TestWalkExplicitUnknownSequence(t *testing.T) {
	t.Parallel()
	// an explicit UN of undefined length holds implicit VR items
	buf := concat(
		[]byte{
			0x09, 0x00, 0x01, 0x10, // (0009,1001) Tag
			0x55, 0x4E, 0x00, 0x00, // VR: "UN" + Reserved
			0xFF, 0xFF, 0xFF, 0xFF, // Length: undefined
			/* ---> */ 0xFE, 0xFF, 0x00, 0xE0, // StartItem Tag
			/*      */ 0xFF, 0xFF, 0xFF, 0xFF, // Item Length: undefined
		},
		implicitElement(0x0008, 0x1150, []byte("1.2\x00")),
		[]byte{
			/* ---> */ 0xFE, 0xFF, 0x0D, 0xE0, // EndItem Tag
			/*      */ 0x00, 0x00, 0x00, 0x00, // EndItem Length
			0xFE, 0xFF, 0xDD, 0xE0, // EndSequence Tag
			0x00, 0x00, 0x00, 0x00, // EndSequence Length
		},
		explicitElement(0x0010, 0x0010, "PN", []byte("A^B ")),
	)
	tree, err := walkBuffer(t, newTestParser(Config{}), buf, DefaultTransferSyntax())
	require.NoError(t, err)
	root := tree.Root()
	require.Equal(t, []dictionary.Tag{0x00091001, 0x00100010}, childTags(tree, root))

	sq := tree.Node(root.Children[0])
	assert.Equal(t, SequenceOfItems, sq.Element.VR)
	assert.True(t, sq.Element.ImplicitItems)
	require.Equal(t, []dictionary.Tag{ItemTag, SequenceDelimitationTag}, childTags(tree, sq))

	item := tree.Node(sq.Children[0])
	require.Equal(t, []dictionary.Tag{0x00081150, ItemDelimitationTag}, childTags(tree, item))
	uid := tree.Node(item.Children[0]).Element
	assert.Equal(t, UID, uid.VR)
	assert.Equal(t, implicitLE, uid.Syntax)
	assert.Equal(t, []string{"1.2"}, uid.Value.Strings())

	// the sibling after the sequence is back under the enclosing syntax
	pn := tree.Node(root.Children[1]).Element
	assert.Equal(t, DefaultTransferSyntax(), pn.Syntax)
	assert.Equal(t, []string{"A^B"}, pn.Value.Strings())
}

func TestWalkStopsAtLimit(t *testing.T) {
	t.Parallel()
	buf := concat(validUS, explicitElement(0x0010, 0x0010, "PN", []byte("A^B ")))
	c := cursorFromBuffer(t, buf)
	tree := NewTree()
	err := newTestParser(Config{}).Walk(c, DefaultTransferSyntax(), RootIndex, int64(len(validUS)), tree)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, int64(len(validUS)), c.Position())
}

func TestWalkIsRepeatable(t *testing.T) {
	t.Parallel()
	p := newTestParser(Config{})
	first, err := walkBuffer(t, p, undefinedSequence, DefaultTransferSyntax())
	require.NoError(t, err)
	second, err := walkBuffer(t, p, undefinedSequence, DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWalkSequenceOverrun(t *testing.T) {
	t.Parallel()
	// sequence declares 4 bytes, but its item header alone is 8
	buf := concat(
		implicitElement(0x0008, 0x1140, []byte{0xFE, 0xFF, 0x00, 0xE0, 0x00, 0x00, 0x00, 0x00}),
	)
	buf[4] = 0x04
	_, err := walkBuffer(t, newTestParser(Config{}), buf, implicitLE)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentLength))
	var corrupt *CorruptDicom
	assert.True(t, errors.As(err, &corrupt))
}

func TestWalkSequenceBeyondEnclosingLimit(t *testing.T) {
	t.Parallel()
	buf := []byte{
		0x08, 0x00, 0x40, 0x11, // (0008,1140) Tag
		0x64, 0x00, 0x00, 0x00, // Length: 100 bytes
		0xFE, 0xFF, 0x00, 0xE0, // StartItem Tag
		0x00, 0x00, 0x00, 0x00, // Item Length: 0 bytes
	}
	_, err := walkBuffer(t, newTestParser(Config{}), buf, implicitLE)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentLength))
}

func TestWalkDepthLimit(t *testing.T) {
	t.Parallel()
	var nested []byte
	for i := 0; i < 3; i++ {
		nested = append(nested,
			0x08, 0x00, 0x40, 0x11, 0xFF, 0xFF, 0xFF, 0xFF, // (0008,1140) of undefined length
			0xFE, 0xFF, 0x00, 0xE0, 0xFF, 0xFF, 0xFF, 0xFF, // StartItem of undefined length
		)
	}
	tree, err := walkBuffer(t, newTestParser(Config{}), nested, implicitLE)
	require.NoError(t, err)
	assert.Equal(t, 6, tree.Len())

	_, err = walkBuffer(t, newTestParser(Config{MaxDepth: 3}), nested, implicitLE)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDepthExceeded))
}

func TestWalkTransferSyntaxChange(t *testing.T) {
	t.Parallel()
	buf := concat(
		explicitElement(0x0002, 0x0010, "UI", []byte(ImplicitVRLittleEndianUID+"\x00")),
		implicitElement(0x0010, 0x0010, []byte("A^B ")),
		implicitElement(0x0028, 0x0010, []byte{0x2A, 0x00}),
	)
	tree, err := walkBuffer(t, newTestParser(Config{}), buf, DefaultTransferSyntax())
	require.NoError(t, err)
	require.Equal(t, 3, tree.Len())
	pn, ok := tree.Find(0x00100010)
	require.True(t, ok)
	assert.Equal(t, implicitLE, pn.Element.Syntax)
	assert.Equal(t, PersonName, pn.Element.VR)
	rows, ok := tree.Find(0x00280010)
	require.True(t, ok)
	v, _ := rows.Element.Value.Uint16()
	assert.Equal(t, uint16(42), v)
}

func TestWalkCharacterSetScope(t *testing.T) {
	t.Parallel()
	latin1Name := []byte{0x4D, 0xFC, 0x6C, 0x20} // "Mül " in ISO 8859-1
	buf := concat(
		explicitElement(0x0008, 0x1140, "SQ", nil)[:8], // (0008,1140) SQ + Reserved
		[]byte{0xFF, 0xFF, 0xFF, 0xFF},                 // Length: undefined
		[]byte{0xFE, 0xFF, 0x00, 0xE0, 0xFF, 0xFF, 0xFF, 0xFF},
		explicitElement(0x0008, 0x0005, "CS", []byte("ISO_IR 100")),
		explicitElement(0x0010, 0x0010, "PN", latin1Name),
		[]byte{0xFE, 0xFF, 0x0D, 0xE0, 0x00, 0x00, 0x00, 0x00},
		[]byte{0xFE, 0xFF, 0xDD, 0xE0, 0x00, 0x00, 0x00, 0x00},
		explicitElement(0x0010, 0x0010, "PN", latin1Name),
	)
	tree, err := walkBuffer(t, newTestParser(Config{}), buf, DefaultTransferSyntax())
	require.NoError(t, err)

	var names []string
	require.NoError(t, tree.Walk(func(_, depth int, n *Node) error {
		if n.Element.Tag == 0x00100010 {
			names = append(names, n.Element.Value.Strings()...)
		}
		return nil
	}))
	// the character set declared inside the item does not leak out of it
	assert.Equal(t, []string{"Mül", "M\xFCl"}, names)
}

func TestWalkNonTextualTransferSyntax(t *testing.T) {
	t.Parallel()
	buf := explicitElement(0x0002, 0x0010, "OB", []byte{0x01, 0x02, 0x03, 0x04})
	_, err := walkBuffer(t, newTestParser(Config{}), buf, DefaultTransferSyntax())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonTextualSyntax))
}

func TestWalkUnknownTransferSyntax(t *testing.T) {
	t.Parallel()
	buf := concat(
		explicitElement(0x0002, 0x0010, "UI", []byte("1.2.3.4\x00")),
		validUS,
	)

	core, logs := observer.New(zapcore.DebugLevel)
	p := NewParser(Config{}).WithLogger(zap.New(core).Sugar())
	tree, err := walkBuffer(t, p, buf, DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())

	_, err = walkBuffer(t, newTestParser(Config{StrictMode: true}), buf, DefaultTransferSyntax())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSyntax))
	var unsupported *UnsupportedDicom
	assert.True(t, errors.As(err, &unsupported))
}

func TestWalkEncapsulatedTransferSyntax(t *testing.T) {
	t.Parallel()
	buf := concat(
		explicitElement(0x0002, 0x0010, "UI", []byte("1.2.840.10008.1.2.4.50")),
		validUS,
	)
	core, logs := observer.New(zapcore.DebugLevel)
	p := NewParser(Config{}).WithLogger(zap.New(core).Sugar())
	tree, err := walkBuffer(t, p, buf, DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())
	// known compressed syntaxes are expected, so are not warned about
	assert.Equal(t, 0, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 1, logs.FilterField(zap.String("name", "JPEG Baseline (Process 1)")).Len())
}
