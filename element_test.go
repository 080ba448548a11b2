package dcmtree

import (
	"bytes"
	"testing"

	"github.com/b71729/dcmtree/dictionary"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Utils

var implicitLE = TransferSyntax{ImplicitVR, LittleEndian}
var explicitBE = TransferSyntax{ExplicitVR, BigEndian}

// cursorFromBuffer is shorthand for constructing a Cursor over a byte array
func cursorFromBuffer(t *testing.T, buf []byte) *Cursor {
	t.Helper()
	c, err := NewCursor(bytes.NewReader(buf))
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

// elementFromBuffer is shorthand for decoding one Element from a byte array
func elementFromBuffer(t *testing.T, buf []byte, syntax TransferSyntax) (DataElement, *Cursor, error) {
	t.Helper()
	c := cursorFromBuffer(t, buf)
	e, err := DecodeElement(c, syntax)
	return e, c, err
}

// explicitElement encodes an Explicit VR Little Endian element
func explicitElement(group, element uint16, vr string, value []byte) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{byte(group), byte(group >> 8), byte(element), byte(element >> 8)})
	buf.WriteString(vr)
	n := uint32(len(value))
	if ResolveExplicit(vr).HasReservedBytes() {
		buf.Write([]byte{0x00, 0x00, byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)})
	} else {
		buf.Write([]byte{byte(n), byte(n >> 8)})
	}
	buf.Write(value)
	return buf.Bytes()
}

// implicitElement encodes an Implicit VR Little Endian element
func implicitElement(group, element uint16, value []byte) []byte {
	n := uint32(len(value))
	buf := []byte{byte(group), byte(group >> 8), byte(element), byte(element >> 8), byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	return append(buf, value...)
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// validUS contains (0028,0010) Rows = 42
// ExplicitVR, LittleEndian
var validUS = []byte{
	0x28, 0x00, 0x10, 0x00, // (0028,0010) Tag
	0x55, 0x53, // VR: "US"
	0x02, 0x00, // Length: 2 bytes
	0x2A, 0x00, // Data: 42
}

// validUSBigEndian contains (0028,0010) Rows = 42
// ExplicitVR, BigEndian
var validUSBigEndian = []byte{
	0x00, 0x28, 0x00, 0x10, // (0028,0010) Tag
	0x55, 0x53, // VR: "US"
	0x00, 0x02, // Length: 2 bytes
	0x00, 0x2A, // Data: 42
}

// metaTransferSyntax contains (0002,0010) TransferSyntaxUID = Explicit VR Little Endian
// always ExplicitVR, LittleEndian
var metaTransferSyntax = []byte{
	0x02, 0x00, 0x10, 0x00, // (0002,0010) Tag
	0x55, 0x49, // VR: "UI"
	0x14, 0x00, // Length: 20 bytes
	0x31, 0x2E, 0x32, 0x2E, 0x38, 0x34, 0x30, 0x2E, 0x31, 0x30, // "1.2.840.10"
	0x30, 0x30, 0x38, 0x2E, 0x31, 0x2E, 0x32, 0x2E, 0x31, 0x00, // "008.1.2.1"+NULL
}

/*
===============================================================================
    VR Catalog
===============================================================================
*/

func TestResolveExplicit(t *testing.T) {
	t.Parallel()
	for vr, code := range vrCodes {
		assert.Equal(t, VR(vr), ResolveExplicit(code), code)
	}
	assert.Equal(t, LongString, ResolveExplicit("LO"))
	assert.Equal(t, Unknown, ResolveExplicit("ZZ"))
	assert.Equal(t, Unknown, ResolveExplicit("OD"))
}

func TestResolveImplicit(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		tag dictionary.Tag
		vr  VR
	}{
		{tag: 0x00100010, vr: PersonName},
		{tag: 0x00280010, vr: UnsignedShort},
		{tag: 0x00081140, vr: SequenceOfItems},
		{tag: 0x00400260, vr: SequenceOfItems},
		{tag: 0x60020010, vr: UnsignedShort},    // repeating overlay group
		{tag: 0x00180000, vr: UnsignedLong},     // group length
		{tag: 0x00090000, vr: UnsignedLong},     // private group length
		{tag: 0x00090010, vr: LongString},       // private creator
		{tag: 0x000900FF, vr: LongString},       // private creator upper bound
		{tag: 0x00091001, vr: Unknown},          // private data
		{tag: 0x00181FFE, vr: Unknown},          // not in dictionary
		{tag: ItemTag, vr: Delimiter},           // delimiters are fixed
		{tag: ItemDelimitationTag, vr: Delimiter},
		{tag: SequenceDelimitationTag, vr: Delimiter},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.vr, ResolveImplicit(testCase.tag), testCase.tag.String())
	}
}

func TestVRShape(t *testing.T) {
	t.Parallel()
	for _, vr := range []VR{Delimiter, SequenceOfItems, OtherByte, OtherFloat, OtherWord, UnlimitedText, Unknown} {
		assert.Equal(t, 4, vr.LengthWidth(), vr.Code())
	}
	for _, vr := range []VR{Attribute, UnsignedShort, Double, PersonName, UID, DecimalString, LongString} {
		assert.Equal(t, 2, vr.LengthWidth(), vr.Code())
		assert.False(t, vr.HasReservedBytes(), vr.Code())
	}
	assert.False(t, Delimiter.HasReservedBytes())
	assert.True(t, SequenceOfItems.HasReservedBytes())
	assert.True(t, OtherByte.HasReservedBytes())

	assert.Equal(t, 2, SignedShort.ElementWidth())
	assert.Equal(t, 4, Float.ElementWidth())
	assert.Equal(t, 8, Double.ElementWidth())
	assert.Equal(t, 0, LongString.ElementWidth())
}

/*
===============================================================================
    Element Decoder
===============================================================================
*/

func TestDecodeUnsignedShort(t *testing.T) {
	t.Parallel()
	e, c, err := elementFromBuffer(t, validUS, DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, dictionary.Tag(0x00280010), e.Tag)
	assert.Equal(t, UnsignedShort, e.VR)
	assert.Equal(t, 1, e.VM())
	v, ok := e.Value.Uint16()
	assert.True(t, ok)
	assert.Equal(t, uint16(42), v)
	assert.Equal(t, int64(8), e.Offset)
	// ensures that exactly the element's bytes were consumed
	assert.Equal(t, int64(len(validUS)), c.Position())
}

func TestDecodeBigEndian(t *testing.T) {
	t.Parallel()
	e, _, err := elementFromBuffer(t, validUSBigEndian, explicitBE)
	require.NoError(t, err)
	assert.Equal(t, dictionary.Tag(0x00280010), e.Tag)
	v, ok := e.Value.Uint16()
	assert.True(t, ok)
	assert.Equal(t, uint16(42), v)
	assert.Equal(t, explicitBE, e.Syntax)
}

func TestDecodeNumericScalars(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		vr    string
		data  []byte
		value interface{}
	}{
		{vr: "SS", data: []byte{0xFE, 0xFF}, value: int16(-2)},
		{vr: "UL", data: []byte{0x78, 0x56, 0x34, 0x12}, value: uint32(0x12345678)},
		{vr: "SL", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}, value: int32(-1)},
		{vr: "FL", data: []byte{0x00, 0x00, 0xC0, 0x3F}, value: float32(1.5)},
		{vr: "FD", data: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x40}, value: float64(2.5)},
	}
	for _, testCase := range testCases {
		e, _, err := elementFromBuffer(t, explicitElement(0x0018, 0x9999, testCase.vr, testCase.data), DefaultTransferSyntax())
		require.NoError(t, err, testCase.vr)
		assert.Equal(t, KindNumeric, e.Value.Kind, testCase.vr)
		assert.Equal(t, testCase.value, e.Value.Interface(), testCase.vr)
	}
}

func TestDecodeMalformedNumericLength(t *testing.T) {
	t.Parallel()
	// ensures that a length which is not a multiple of the VR width is rejected, not truncated
	for _, testCase := range []struct {
		vr   string
		data []byte
	}{
		{vr: "US", data: []byte{0x01, 0x02, 0x03}},
		{vr: "UL", data: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}},
		{vr: "FD", data: make([]byte, 12)},
	} {
		_, _, err := elementFromBuffer(t, explicitElement(0x0028, 0x0010, testCase.vr, testCase.data), DefaultTransferSyntax())
		require.Error(t, err, testCase.vr)
		assert.True(t, errors.Is(err, ErrMalformedLength), testCase.vr)
		var corrupt *CorruptElement
		assert.True(t, errors.As(err, &corrupt), testCase.vr)
	}
}

func TestDecodeNumericArray(t *testing.T) {
	t.Parallel()
	e, _, err := elementFromBuffer(t, explicitElement(0x0018, 0x1310, "US", []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x04, 0x00}), DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, KindNumericArray, e.Value.Kind)
	assert.Equal(t, 4, e.VM())
	raw, ok := e.Value.Bytes()
	assert.True(t, ok)
	assert.Len(t, raw, 8)
	numbers, err := e.Value.DecodeNumbers(e.Syntax.ByteOrder)
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2, 3, 4}, numbers)

	// a zero length numeric element has VM 0
	e, _, err = elementFromBuffer(t, explicitElement(0x0028, 0x0010, "US", nil), DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, KindNumericArray, e.Value.Kind)
	assert.Equal(t, 0, e.VM())
}

func TestDecodeText(t *testing.T) {
	t.Parallel()
	e, _, err := elementFromBuffer(t, metaTransferSyntax, DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, UID, e.VR)
	text, ok := e.Value.Text()
	assert.True(t, ok)
	// ensures that trailing NULL padding is removed
	assert.Equal(t, "1.2.840.10008.1.2.1", text)

	// backslashes in non-numeric-string text do not split values
	e, _, err = elementFromBuffer(t, explicitElement(0x0010, 0x4000, "LT", []byte(`Long\Text`)), DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, KindText, e.Value.Kind)
	assert.Equal(t, []string{`Long\Text`}, e.Value.Strings())
}

func TestDecodeNumericString(t *testing.T) {
	t.Parallel()
	e, _, err := elementFromBuffer(t, explicitElement(0x0028, 0x0030, "DS", []byte(`1.5\2.5 `)), DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, KindMultiText, e.Value.Kind)
	assert.Equal(t, 2, e.VM())
	assert.Equal(t, []string{"1.5", "2.5"}, e.Value.Strings())

	e, _, err = elementFromBuffer(t, explicitElement(0x0020, 0x0013, "IS", []byte("12")), DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, KindText, e.Value.Kind)
	assert.Equal(t, 1, e.VM())
}

func TestDecodeAttribute(t *testing.T) {
	t.Parallel()
	e, c, err := elementFromBuffer(t, explicitElement(0x0028, 0x0009, "AT", []byte{0x18, 0x00, 0x63, 0x10, 0x18, 0x00, 0x65, 0x10}), DefaultTransferSyntax())
	require.NoError(t, err)
	tag, ok := e.Value.Tag()
	assert.True(t, ok)
	assert.Equal(t, dictionary.Tag(0x00181063), tag)
	assert.Equal(t, 2, e.VM())
	// ensures that the remaining tag pairs are skipped
	assert.Equal(t, c.Len(), c.Position())

	_, _, err = elementFromBuffer(t, explicitElement(0x0028, 0x0009, "AT", []byte{0x18, 0x00, 0x63}), DefaultTransferSyntax())
	assert.True(t, errors.Is(err, ErrMalformedLength))
}

func TestDecodeOpaque(t *testing.T) {
	t.Parallel()
	// validOB contains (0002,0001) FileMetaInformationVersion
	validOB := []byte{
		0x02, 0x00, 0x01, 0x00, // (0002,0001) Tag
		0x4F, 0x42, // VR: "OB"
		0x00, 0x00, // Reserved
		0x02, 0x00, 0x00, 0x00, // Length: 2 bytes
		0x00, 0x01, // Data
	}
	e, _, err := elementFromBuffer(t, validOB, DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, OtherByte, e.VR)
	assert.Equal(t, int64(12), e.Offset)
	raw, ok := e.Value.Bytes()
	assert.True(t, ok)
	assert.Equal(t, []byte{0x00, 0x01}, raw)
	assert.Equal(t, "00 01", e.Value.String())
}

func TestDecodeUndefinedLength(t *testing.T) {
	t.Parallel()
	// undefinedOB contains an OB element of undefined length
	undefinedOB := []byte{
		0xE0, 0x7F, 0x10, 0x00, // (7FE0,0010) Tag
		0x4F, 0x42, // VR: "OB"
		0x00, 0x00, // Reserved
		0xFF, 0xFF, 0xFF, 0xFF, // Length: undefined
	}
	_, _, err := elementFromBuffer(t, undefinedOB, DefaultTransferSyntax())
	assert.True(t, errors.Is(err, ErrUndefinedLength))

	// implicit VR US of undefined length
	_, _, err = elementFromBuffer(t, []byte{0x28, 0x00, 0x10, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}, implicitLE)
	assert.True(t, errors.Is(err, ErrUndefinedLength))

	// sequences may be of undefined length
	e, _, err := elementFromBuffer(t, []byte{0x08, 0x00, 0x40, 0x11, 0x53, 0x51, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}, DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, SequenceOfItems, e.VR)
	assert.True(t, e.Length.IsUndefined())
	assert.Equal(t, KindIgnored, e.Value.Kind)
	assert.False(t, e.ImplicitItems)
}

func TestDecodeUnknownUndefinedLength(t *testing.T) {
	t.Parallel()
	// implicit VR, (0018,1FFE) is not in the dictionary
	e, _, err := elementFromBuffer(t, []byte{0x18, 0x00, 0xFE, 0x1F, 0xFF, 0xFF, 0xFF, 0xFF}, implicitLE)
	require.NoError(t, err)
	assert.Equal(t, SequenceOfItems, e.VR)
	assert.True(t, e.ImplicitItems)
	assert.Equal(t, KindIgnored, e.Value.Kind)

	// explicit "UN"
	e, _, err = elementFromBuffer(t, []byte{0x09, 0x00, 0x01, 0x10, 0x55, 0x4E, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}, DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, SequenceOfItems, e.VR)
	assert.True(t, e.ImplicitItems)
	assert.True(t, e.Length.IsUndefined())
}

func TestDecodeInconsistentLength(t *testing.T) {
	t.Parallel()
	buf := explicitElement(0x0009, 0x1001, "OB", []byte{0x01, 0x02, 0x03, 0x04})
	buf = buf[:len(buf)-2] // truncate the value
	_, _, err := elementFromBuffer(t, buf, DefaultTransferSyntax())
	assert.True(t, errors.Is(err, ErrInconsistentLength))
}

func TestDecodeDelimiterIgnoresVREncoding(t *testing.T) {
	t.Parallel()
	// delimiters never carry a VR, even under explicit encoding
	item := []byte{
		0xFE, 0xFF, 0x00, 0xE0, // StartItem Tag
		0x0C, 0x00, 0x00, 0x00, // Item total length: 12 bytes
	}
	e, c, err := elementFromBuffer(t, item, DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, Delimiter, e.VR)
	assert.Equal(t, ValueLength(12), e.Length)
	assert.Equal(t, int64(8), c.Position())
}

func TestDecodeMetaGroupUnderImplicitSyntax(t *testing.T) {
	t.Parallel()
	// ensures that a group 0x0002 element with an in-line VR decodes as Explicit VR Little Endian
	e, c, err := elementFromBuffer(t, metaTransferSyntax, implicitLE)
	require.NoError(t, err)
	assert.Equal(t, TransferSyntaxUIDTag, e.Tag)
	assert.Equal(t, UID, e.VR)
	assert.Equal(t, DefaultTransferSyntax(), e.Syntax)
	assert.Equal(t, ValueLength(20), e.Length)
	assert.Equal(t, int64(len(metaTransferSyntax)), c.Position())

	// while other groups follow the ambient syntax
	e, _, err = elementFromBuffer(t, implicitElement(0x0010, 0x0010, []byte("A^B ")), implicitLE)
	require.NoError(t, err)
	assert.Equal(t, PersonName, e.VR)
	assert.Equal(t, implicitLE, e.Syntax)
	assert.Equal(t, []string{"A^B"}, e.Value.Strings())
}

func TestDecodeCharacterSet(t *testing.T) {
	t.Parallel()
	cs, err := ParseSpecificCharacterSet("ISO_IR 100")
	require.NoError(t, err)
	c := cursorFromBuffer(t, explicitElement(0x0010, 0x0010, "PN", []byte{0x4D, 0xFC, 0x6C, 0x20}))
	e, err := decodeElement(c, DefaultTransferSyntax(), cs)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mül"}, e.Value.Strings())

	// character sets do not apply to code strings
	c = cursorFromBuffer(t, explicitElement(0x0008, 0x0060, "CS", []byte("MR")))
	e, err = decodeElement(c, DefaultTransferSyntax(), cs)
	require.NoError(t, err)
	assert.Equal(t, []string{"MR"}, e.Value.Strings())
}

func TestDecodeEmptyStream(t *testing.T) {
	t.Parallel()
	_, _, err := elementFromBuffer(t, []byte{0x28}, DefaultTransferSyntax())
	require.Error(t, err)
	var insufficient *InsufficientBytes
	assert.True(t, errors.As(err, &insufficient))
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	e, _, err := elementFromBuffer(t, validUS, DefaultTransferSyntax())
	require.NoError(t, err)
	assert.Equal(t, "  [US] (0028,0010) Rows (2 bytes) 42", e.Describe(1))
	assert.Equal(t, "Rows", e.Name())
}
