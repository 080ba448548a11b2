package dcmtree

import (
	"github.com/b71729/dcmtree/dictionary"
)

// VR is a value representation: the decode strategy and length-field shape of an element.
type VR int

// Value representations
const (
	Unknown VR = iota
	Delimiter
	SequenceOfItems
	Attribute

	UnsignedShort
	SignedShort
	UnsignedLong
	SignedLong
	Float
	Double

	ApplicationEntity
	AgeString
	CodeString
	Date
	DateTime
	LongText
	PersonName
	ShortString
	ShortText
	Time
	UID
	UnlimitedText

	DecimalString
	IntegerString
	LongString

	OtherByte
	OtherFloat
	OtherWord
)

var vrCodes = [...]string{
	Unknown:           "UN",
	Delimiter:         "DL",
	SequenceOfItems:   "SQ",
	Attribute:         "AT",
	UnsignedShort:     "US",
	SignedShort:       "SS",
	UnsignedLong:      "UL",
	SignedLong:        "SL",
	Float:             "FL",
	Double:            "FD",
	ApplicationEntity: "AE",
	AgeString:         "AS",
	CodeString:        "CS",
	Date:              "DA",
	DateTime:          "DT",
	LongText:          "LT",
	PersonName:        "PN",
	ShortString:       "SH",
	ShortText:         "ST",
	Time:              "TM",
	UID:               "UI",
	UnlimitedText:     "UT",
	DecimalString:     "DS",
	IntegerString:     "IS",
	LongString:        "LO",
	OtherByte:         "OB",
	OtherFloat:        "OF",
	OtherWord:         "OW",
}

var codeToVR = func() map[string]VR {
	m := make(map[string]VR, len(vrCodes))
	for vr, code := range vrCodes {
		m[code] = VR(vr)
	}
	return m
}()

// Code returns the two-letter code of `vr`
func (vr VR) Code() string {
	if vr < 0 || int(vr) >= len(vrCodes) {
		return vrCodes[Unknown]
	}
	return vrCodes[vr]
}

func (vr VR) String() string {
	return vr.Code()
}

// LengthWidth returns the width in bytes of the length field under explicit encoding
func (vr VR) LengthWidth() int {
	switch vr {
	case Delimiter, SequenceOfItems, OtherByte, OtherFloat, OtherWord, UnlimitedText, Unknown:
		return 4
	}
	return 2
}

// HasReservedBytes reports whether 2 reserved bytes precede the length field under explicit encoding
func (vr VR) HasReservedBytes() bool {
	return vr.LengthWidth() == 4 && vr != Delimiter
}

// ElementWidth returns the byte width of one value of a numeric VR, or 0
func (vr VR) ElementWidth() int {
	switch vr {
	case UnsignedShort, SignedShort:
		return 2
	case UnsignedLong, SignedLong, Float:
		return 4
	case Double:
		return 8
	}
	return 0
}

// IsNumeric reports whether `vr` holds binary numbers
func (vr VR) IsNumeric() bool {
	return vr.ElementWidth() != 0
}

// IsText reports whether `vr` holds a single text value
func (vr VR) IsText() bool {
	return vr >= ApplicationEntity && vr <= UnlimitedText
}

// IsNumericString reports whether `vr` holds backslash-separated text values
func (vr VR) IsNumericString() bool {
	return vr >= DecimalString && vr <= LongString
}

// IsOpaque reports whether `vr` holds uninterpreted bytes
func (vr VR) IsOpaque() bool {
	switch vr {
	case OtherByte, OtherFloat, OtherWord, Unknown:
		return true
	}
	return false
}

// IsCharsetSensitive reports whether text of `vr` is subject to SpecificCharacterSet
func (vr VR) IsCharsetSensitive() bool {
	switch vr {
	case ShortString, LongString, ShortText, LongText, UnlimitedText, PersonName:
		return true
	}
	return false
}

// allowsUndefinedLength reports whether an element of `vr` may carry the undefined length sentinel
func (vr VR) allowsUndefinedLength() bool {
	switch vr {
	case Delimiter, SequenceOfItems, Attribute:
		return true
	}
	return false
}

// Tags with a fixed structural meaning
const (
	TransferSyntaxUIDTag     = dictionary.Tag(0x00020010)
	SpecificCharacterSetTag  = dictionary.Tag(0x00080005)
	ItemTag                  = dictionary.Tag(0xFFFEE000)
	ItemDelimitationTag      = dictionary.Tag(0xFFFEE00D)
	SequenceDelimitationTag  = dictionary.Tag(0xFFFEE0DD)
	privateCreatorMaxElement = 0x00FF
)

// IsDelimiterTag reports whether `t` is an item, item delimitation or sequence delimitation tag
func IsDelimiterTag(t dictionary.Tag) bool {
	switch t {
	case ItemTag, ItemDelimitationTag, SequenceDelimitationTag:
		return true
	}
	return false
}

// ResolveExplicit returns the VR for an in-line two-letter code.
// Unrecognised codes resolve to Unknown.
func ResolveExplicit(code string) VR {
	if vr, ok := codeToVR[code]; ok {
		return vr
	}
	return Unknown
}

// ResolveImplicit returns the VR for `t` by dictionary lookup
func ResolveImplicit(t dictionary.Tag) VR {
	if IsDelimiterTag(t) {
		return Delimiter
	}
	if t.Element() == 0x0000 {
		return UnsignedLong
	}
	if t.IsPrivate() {
		if t.Element() <= privateCreatorMaxElement {
			return LongString
		}
		return Unknown
	}
	if e, ok := dictionary.LookupTag(t); ok {
		return ResolveExplicit(e.VR)
	}
	return Unknown
}
