package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `# comment
(0010,0010) PN 1 PatientName

(0008,0010) SH 1 RecognitionCode RET
(60xx,0010) US 1 OverlayRows
`

func TestParseTable(t *testing.T) {
	t.Parallel()
	entries, err := parseTable(strings.NewReader(sampleTable))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// sorted by tag
	assert.Equal(t, entry{Tag: 0x00080010, Keyword: "RecognitionCode", VR: "SH", VM: "1", Retired: true}, entries[0])
	assert.Equal(t, entry{Tag: 0x00100010, Keyword: "PatientName", VR: "PN", VM: "1"}, entries[1])
	assert.Equal(t, entry{Tag: 0x60000010, Keyword: "OverlayRows", VR: "US", VM: "1", Repeating: true}, entries[2])
}

func TestParseTableErrors(t *testing.T) {
	t.Parallel()
	for name, table := range map[string]string{
		"short line":     "(0010,0010) PN 1\n",
		"bad tag":        "(0010-0010) PN 1 PatientName\n",
		"bad hex":        "(0010,00GG) PN 1 PatientName\n",
		"trailing field": "(0010,0010) PN 1 PatientName OLD\n",
		"duplicate":      "(0010,0010) PN 1 PatientName\n(0010,0010) PN 1 PatientName\n",
	} {
		_, err := parseTable(strings.NewReader(table))
		assert.Error(t, err, name)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()
	entries, err := parseTable(strings.NewReader(sampleTable))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, render(&out, entries))

	src := out.String()
	assert.True(t, strings.HasPrefix(src, "// Code generated by gendatadict"))
	assert.Contains(t, src, `0x00100010: {Tag: 0x00100010, Name: "PatientName", VR: "PN", VM: "1"},`)
	assert.Contains(t, src, `0x00080010: {Tag: 0x00080010, Name: "RecognitionCode", VR: "SH", VM: "1", Retired: true},`)

	// the repeating entry lands in its own map
	repeating := src[strings.Index(src, "var RepeatingDictionary"):]
	assert.Contains(t, repeating, "0x60000010")
	assert.NotContains(t, repeating, "0x00100010")
}

func TestGeneratedDictionaryUpToDate(t *testing.T) {
	t.Parallel()
	table, err := os.Open("../../datadict.txt")
	require.NoError(t, err)
	defer table.Close()
	entries, err := parseTable(table)
	require.NoError(t, err)

	var want bytes.Buffer
	require.NoError(t, render(&want, entries))
	got, err := os.ReadFile("../../datadict.go")
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want.Bytes(), got), "datadict.go is stale: run go generate ./dictionary")
}
