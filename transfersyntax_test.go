package dcmtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransferSyntax(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		uid    string
		syntax TransferSyntax
		found  bool
	}{
		{uid: "1.2.840.10008.1.2.1", syntax: TransferSyntax{ExplicitVR, LittleEndian}, found: true},
		{uid: "1.2.840.10008.1.2", syntax: TransferSyntax{ImplicitVR, LittleEndian}, found: true},
		{uid: "1.2.840.10008.1.2.2", syntax: TransferSyntax{ExplicitVR, BigEndian}, found: true},
		{uid: "1.2.840.10008.1.2\x00", syntax: TransferSyntax{ImplicitVR, LittleEndian}, found: true},
		{uid: " 1.2.840.10008.1.2.2 ", syntax: TransferSyntax{ExplicitVR, BigEndian}, found: true},
		{uid: "1.2.840.10008.1.2.4.50", syntax: DefaultTransferSyntax(), found: false},
		{uid: "1.1.1.1.1.1.1.1", syntax: DefaultTransferSyntax(), found: false},
		{uid: "", syntax: DefaultTransferSyntax(), found: false},
	}
	for _, testCase := range testCases {
		ts, found := LookupTransferSyntax(testCase.uid)
		assert.Equal(t, testCase.syntax, ts, testCase.uid)
		assert.Equal(t, testCase.found, found, testCase.uid)
		assert.Equal(t, testCase.syntax, ParseTransferSyntax(testCase.uid), testCase.uid)
	}
}

func TestTransferSyntaxString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ImplicitVR + LittleEndian", ParseTransferSyntax(ImplicitVRLittleEndianUID).String())
	assert.Equal(t, "ExplicitVR + BigEndian", ParseTransferSyntax(ExplicitVRBigEndianUID).String())
}

func TestIsUncompressed(t *testing.T) {
	t.Parallel()
	assert.True(t, IsUncompressed(ExplicitVRLittleEndianUID))
	assert.True(t, IsUncompressed(DeflatedExplicitVRLittleEndianUID+"\x00"))
	assert.False(t, IsUncompressed("1.2.840.10008.1.2.4.50"))
}

func TestPeekSyntax(t *testing.T) {
	t.Parallel()
	c := cursorFromBuffer(t, metaTransferSyntax)
	ts, err := PeekSyntax(c, implicitLE)
	require.NoError(t, err)
	assert.Equal(t, DefaultTransferSyntax(), ts)
	assert.Equal(t, int64(0), c.Position())

	c = cursorFromBuffer(t, validUS)
	ts, err = PeekSyntax(c, explicitBE)
	require.NoError(t, err)
	assert.Equal(t, explicitBE, ts)

	c = cursorFromBuffer(t, []byte{0x02})
	_, err = PeekSyntax(c, implicitLE)
	assert.Error(t, err)
}

/*
===============================================================================
    Character Sets
===============================================================================
*/

func TestParseSpecificCharacterSet(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		value string
		name  string
	}{
		{value: "", name: "Default"},
		{value: "ISO_IR 100", name: "ISO_IR 100"},
		{value: "ISO_IR 192 ", name: "ISO_IR 192"},
		{value: `\ISO 2022 IR 149`, name: "ISO 2022 IR 149"},
		{value: `ISO 2022 IR 6\ISO 2022 IR 87`, name: "ISO 2022 IR 87"},
		{value: "GB18030", name: "GB18030"},
	}
	for _, testCase := range testCases {
		cs, err := ParseSpecificCharacterSet(testCase.value)
		require.NoError(t, err, testCase.value)
		assert.Equal(t, testCase.name, cs.Name, testCase.value)
	}

	cs, err := ParseSpecificCharacterSet("ISO_IR 999")
	assert.Error(t, err)
	assert.Equal(t, DefaultCharacterSet, cs)
}

func TestLookupCharacterSetLabel(t *testing.T) {
	t.Parallel()
	cs, ok := LookupCharacterSet("latin1")
	require.True(t, ok)
	decoded, err := cs.Decode([]byte{0x4D, 0xFC, 0x6C})
	require.NoError(t, err)
	assert.Equal(t, "Mül", decoded)
}

func TestCharacterSetDecode(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		term   string
		input  []byte
		output string
	}{
		{term: "ISO_IR 100", input: []byte{0x4D, 0xFC, 0x6C, 0x6C, 0x65, 0x72}, output: "Müller"},
		{term: "ISO_IR 144", input: []byte{0xB8, 0xD2, 0xD0, 0xDD}, output: "Иван"},
		{term: "ISO_IR 192", input: []byte("中文"), output: "中文"},
	}
	for _, testCase := range testCases {
		cs, ok := LookupCharacterSet(testCase.term)
		require.True(t, ok, testCase.term)
		decoded, err := cs.Decode(testCase.input)
		require.NoError(t, err, testCase.term)
		assert.Equal(t, testCase.output, decoded, testCase.term)
	}

	var nilSet *CharacterSet
	decoded, err := nilSet.Decode([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, "raw", decoded)
}
