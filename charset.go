package dcmtree

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// CharacterSet provides a link between a SpecificCharacterSet defined term and its text encoding.
type CharacterSet struct {
	Name        string
	Description string
	Encoding    encoding.Encoding
}

// DefaultCharacterSet is the repertoire used when no SpecificCharacterSet is present
var DefaultCharacterSet = CharacterSetMap["Default"]

// CharacterSetMap provides a mapping between defined term and character set characteristics.
var CharacterSetMap = map[string]*CharacterSet{
	"Default":         {Name: "Default", Description: "Default Character Repertoire", Encoding: unicode.UTF8},
	"ISO_IR 6":        {Name: "ISO_IR 6", Description: "ASCII", Encoding: unicode.UTF8},
	"ISO_IR 13":       {Name: "ISO_IR 13", Description: "Japanese", Encoding: japanese.ShiftJIS},
	"ISO_IR 100":      {Name: "ISO_IR 100", Description: "Latin alphabet No. 1", Encoding: charmap.ISO8859_1},
	"ISO_IR 101":      {Name: "ISO_IR 101", Description: "Latin alphabet No. 2", Encoding: charmap.ISO8859_2},
	"ISO_IR 109":      {Name: "ISO_IR 109", Description: "Latin alphabet No. 3", Encoding: charmap.ISO8859_3},
	"ISO_IR 110":      {Name: "ISO_IR 110", Description: "Latin alphabet No. 4", Encoding: charmap.ISO8859_4},
	"ISO_IR 126":      {Name: "ISO_IR 126", Description: "Greek", Encoding: charmap.ISO8859_7},
	"ISO_IR 127":      {Name: "ISO_IR 127", Description: "Arabic", Encoding: charmap.ISO8859_6},
	"ISO_IR 138":      {Name: "ISO_IR 138", Description: "Hebrew", Encoding: charmap.ISO8859_8},
	"ISO_IR 144":      {Name: "ISO_IR 144", Description: "Cyrillic", Encoding: charmap.ISO8859_5},
	"ISO_IR 148":      {Name: "ISO_IR 148", Description: "Latin alphabet No. 5", Encoding: charmap.ISO8859_9},
	"ISO_IR 166":      {Name: "ISO_IR 166", Description: "Thai", Encoding: charmap.Windows874},
	"ISO_IR 192":      {Name: "ISO_IR 192", Description: "Unicode (UTF-8)", Encoding: unicode.UTF8},
	"ISO 2022 IR 6":   {Name: "ISO 2022 IR 6", Description: "ASCII", Encoding: unicode.UTF8},
	"ISO 2022 IR 13":  {Name: "ISO 2022 IR 13", Description: "Japanese (Shift JIS)", Encoding: japanese.ShiftJIS},
	"ISO 2022 IR 87":  {Name: "ISO 2022 IR 87", Description: "Japanese (Kanji)", Encoding: japanese.ISO2022JP},
	"ISO 2022 IR 100": {Name: "ISO 2022 IR 100", Description: "Latin alphabet No. 1", Encoding: charmap.ISO8859_1},
	"ISO 2022 IR 101": {Name: "ISO 2022 IR 101", Description: "Latin alphabet No. 2", Encoding: charmap.ISO8859_2},
	"ISO 2022 IR 109": {Name: "ISO 2022 IR 109", Description: "Latin alphabet No. 3", Encoding: charmap.ISO8859_3},
	"ISO 2022 IR 110": {Name: "ISO 2022 IR 110", Description: "Latin alphabet No. 4", Encoding: charmap.ISO8859_4},
	"ISO 2022 IR 126": {Name: "ISO 2022 IR 126", Description: "Greek", Encoding: charmap.ISO8859_7},
	"ISO 2022 IR 127": {Name: "ISO 2022 IR 127", Description: "Arabic", Encoding: charmap.ISO8859_6},
	"ISO 2022 IR 138": {Name: "ISO 2022 IR 138", Description: "Hebrew", Encoding: charmap.ISO8859_8},
	"ISO 2022 IR 144": {Name: "ISO 2022 IR 144", Description: "Cyrillic", Encoding: charmap.ISO8859_5},
	"ISO 2022 IR 148": {Name: "ISO 2022 IR 148", Description: "Latin alphabet No. 5", Encoding: charmap.ISO8859_9},
	"ISO 2022 IR 149": {Name: "ISO 2022 IR 149", Description: "Korean", Encoding: korean.EUCKR},
	"ISO 2022 IR 159": {Name: "ISO 2022 IR 159", Description: "Japanese (Supplementary Kanji)", Encoding: japanese.ISO2022JP},
	"ISO 2022 IR 166": {Name: "ISO 2022 IR 166", Description: "Thai", Encoding: charmap.Windows874},
	"GB18030":         {Name: "GB18030", Description: "Chinese (Simplified)", Encoding: simplifiedchinese.GB18030},
	"GBK":             {Name: "GBK", Description: "Chinese (Simplified)", Encoding: simplifiedchinese.GBK},
}

// LookupCharacterSet resolves a single defined term. Terms outside the DICOM
// vocabulary are tried as WHATWG encoding labels (e.g. "utf-8", "latin1").
func LookupCharacterSet(term string) (*CharacterSet, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return DefaultCharacterSet, true
	}
	if cs, ok := CharacterSetMap[term]; ok {
		return cs, true
	}
	if enc, name := charset.Lookup(term); enc != nil {
		return &CharacterSet{Name: name, Description: "WHATWG label " + term, Encoding: enc}, true
	}
	return nil, false
}

// ParseSpecificCharacterSet resolves a (possibly multi-valued) SpecificCharacterSet
// value. With code extensions, the first term that is not plain ASCII selects
// the encoding.
func ParseSpecificCharacterSet(value string) (*CharacterSet, error) {
	terms := strings.Split(strings.TrimRight(value, "\x00 "), `\`)
	selected := DefaultCharacterSet
	for _, term := range terms {
		cs, ok := LookupCharacterSet(term)
		if !ok {
			return DefaultCharacterSet, errors.Errorf("unsupported specific character set %q", term)
		}
		if cs.Encoding != unicode.UTF8 || cs.Name == "ISO_IR 192" {
			return cs, nil
		}
		selected = cs
	}
	return selected, nil
}

// Decode converts `src` from the character set to UTF-8. A nil receiver
// returns `src` unchanged.
func (cs *CharacterSet) Decode(src []byte) (string, error) {
	if cs == nil || cs.Encoding == unicode.UTF8 {
		return string(src), nil
	}
	decoded, err := cs.Encoding.NewDecoder().Bytes(src)
	if err != nil {
		return string(src), errors.Wrapf(err, "decoding %s", cs.Name)
	}
	return string(decoded), nil
}
