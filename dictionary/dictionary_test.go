package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTag(t *testing.T) {
	t.Parallel()
	tag := NewTag(0x0002, 0x0010)
	assert.Equal(t, Tag(0x00020010), tag)
	assert.Equal(t, uint16(0x0002), tag.Group())
	assert.Equal(t, uint16(0x0010), tag.Element())
	assert.Equal(t, "(0002,0010)", tag.String())
	assert.False(t, tag.IsPrivate())
	assert.True(t, NewTag(0x0009, 0x1001).IsPrivate())
}

func TestParseTag(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"(0010,0010)", "0010,0010", "00100010", " (0010,0010) "} {
		tag, err := ParseTag(input)
		assert.NoError(t, err, input)
		assert.Equal(t, Tag(0x00100010), tag, input)
	}
	for _, input := range []string{"", "0010", "(0010,001G)", "0010,0010,0010"} {
		_, err := ParseTag(input)
		assert.Error(t, err, input)
	}
}

func TestLookupTag(t *testing.T) {
	t.Parallel()
	e, found := LookupTag(0x00100010)
	assert.True(t, found)
	assert.Equal(t, "PatientName", e.Name)
	assert.Equal(t, "PN", e.VR)

	_, found = LookupTag(0x00100011)
	assert.False(t, found)

	// every entry must be keyed by its own tag
	for k, v := range DicomDictionary {
		assert.Equal(t, k, v.Tag, "entry %s", v.Name)
	}
	for k, v := range RepeatingDictionary {
		assert.Equal(t, k, v.Tag, "entry %s", v.Name)
		assert.Zero(t, k.Group()&0x00FF, "entry %s", v.Name)
	}
}

func TestLookupTagSequences(t *testing.T) {
	t.Parallel()
	for _, c := range []struct {
		tag  Tag
		name string
	}{
		{0x00081250, "RelatedSeriesSequence"},
		{0x00400260, "PerformedProtocolCodeSequence"},
		{0x00540220, "ViewCodeSequence"},
		{0x52009229, "SharedFunctionalGroupsSequence"},
		{0x52009230, "PerFrameFunctionalGroupsSequence"},
		{0x0040A730, "ContentSequence"},
		{0x30060039, "ROIContourSequence"},
	} {
		e, found := LookupTag(c.tag)
		if assert.True(t, found, c.tag.String()) {
			assert.Equal(t, c.name, e.Name)
			assert.Equal(t, "SQ", e.VR, c.name)
		}
	}
}

func TestLookupTagRetired(t *testing.T) {
	t.Parallel()
	e, found := LookupTag(0x00080010)
	assert.True(t, found)
	assert.Equal(t, "RecognitionCode", e.Name)
	assert.True(t, e.Retired)

	e, found = LookupTag(0x00080060)
	assert.True(t, found)
	assert.False(t, e.Retired)
}

func TestLookupTagRepeatingGroups(t *testing.T) {
	t.Parallel()
	for _, tag := range []Tag{0x60000010, 0x60020010, 0x601E0010} {
		e, found := LookupTag(tag)
		if assert.True(t, found, tag.String()) {
			assert.Equal(t, "OverlayRows", e.Name)
			assert.Equal(t, "US", e.VR)
		}
	}
	e, found := LookupTag(0x50043000)
	assert.True(t, found)
	assert.Equal(t, "CurveData", e.Name)

	// pixel data is listed on its own and is not a repeating group member
	e, found = LookupTag(0x7FE00010)
	assert.True(t, found)
	assert.Equal(t, "PixelData", e.Name)
	_, found = LookupTag(0x7FE00011)
	assert.False(t, found)

	// odd groups are private, never repeating
	_, found = LookupTag(0x60010010)
	assert.False(t, found)
}

func TestTagName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "TransferSyntaxUID", TagName(0x00020010))
	assert.Equal(t, "PrivateCreator", TagName(0x00090010))
	assert.Equal(t, "Private", TagName(0x00091001))
	assert.Equal(t, "GroupLength", TagName(0x00180000))
	assert.Equal(t, "Unknown", TagName(0x00181FFE))
	assert.Equal(t, "OverlayData", TagName(0x60023000))
}

func TestLookupUID(t *testing.T) {
	t.Parallel()
	e, found := LookupUID("1.2.840.10008.1.2")
	assert.True(t, found)
	assert.Equal(t, "Implicit VR Little Endian", e.NameHuman)
	assert.Equal(t, UIDTypeTransferSyntax, e.Type)

	// padded values as read from a file
	e, found = LookupUID("1.2.840.10008.5.1.4.1.1.2\x00")
	assert.True(t, found)
	assert.Equal(t, "CT Image Storage", e.NameHuman)
	assert.Equal(t, UIDTypeSOPClass, e.Type)

	_, found = LookupUID("1.2.3.4")
	assert.False(t, found)
}
