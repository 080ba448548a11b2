// Package dictionary holds the static DICOM lookup tables: data element tags
// and well-known UIDs (transfer syntaxes and SOP classes).
package dictionary

//go:generate go run ./internal/gendatadict datadict.txt datadict.go

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Tag is the uint32 packing of a (group, element) pair: group in the upper 16 bits.
type Tag uint32

// NewTag packs `group` and `element` into a Tag
func NewTag(group, element uint16) Tag {
	return Tag(uint32(group)<<16 | uint32(element))
}

// Group returns the upper 16 bits of the tag
func (t Tag) Group() uint16 {
	return uint16(t >> 16)
}

// Element returns the lower 16 bits of the tag
func (t Tag) Element() uint16 {
	return uint16(t)
}

// IsPrivate reports whether the tag belongs to an odd (private) group
func (t Tag) IsPrivate() bool {
	return t.Group()%2 == 1
}

func (t Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.Group(), t.Element())
}

// ParseTag parses "(gggg,eeee)", "gggg,eeee" or "ggggeeee" (hexadecimal)
func ParseTag(s string) (Tag, error) {
	digits := strings.Replace(strings.Trim(strings.TrimSpace(s), "()"), ",", "", 1)
	if len(digits) != 8 {
		return 0, errors.Errorf("invalid tag %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid tag %q", s)
	}
	return Tag(v), nil
}

// DictEntry describes a data element as listed in the data dictionary.
type DictEntry struct {
	Tag     Tag
	Name    string
	VR      string
	VM      string
	Retired bool
}

// LookupTag returns the dictionary entry for `t`, if one exists.
// Tags in the curve (50xx), overlay (60xx) and variable pixel data (7Fxx)
// groups fall back to their repeating group entry.
func LookupTag(t Tag) (*DictEntry, bool) {
	if e, ok := DicomDictionary[t]; ok {
		return e, true
	}
	if repeatingGroup(t.Group()) {
		e, ok := RepeatingDictionary[t&0xFF00FFFF]
		return e, ok
	}
	return nil, false
}

// repeatingGroup reports whether `group` is one of the even 50xx, 60xx or 7Fxx groups
func repeatingGroup(group uint16) bool {
	if group%2 == 1 || group == 0x7FE0 {
		return false
	}
	switch group & 0xFF00 {
	case 0x5000, 0x6000, 0x7F00:
		return true
	}
	return false
}

// TagName returns the dictionary name of `t`, or a placeholder for
// private and unlisted tags.
func TagName(t Tag) string {
	if e, ok := LookupTag(t); ok {
		return e.Name
	}
	if t.IsPrivate() {
		if t.Element() <= 0xFF && t.Element() >= 0x10 {
			return "PrivateCreator"
		}
		return "Private"
	}
	if t.Element() == 0x0000 {
		return "GroupLength"
	}
	return "Unknown"
}

// UID types
const (
	UIDTypeTransferSyntax = "Transfer Syntax"
	UIDTypeSOPClass       = "SOP Class"
)

// UIDEntry describes a well-known UID.
type UIDEntry struct {
	UID       string
	NameHuman string
	Type      string
}

// LookupUID returns the entry for `uid`. Trailing NUL and space padding,
// which DICOM uses to reach an even value length, is ignored.
func LookupUID(uid string) (*UIDEntry, bool) {
	e, ok := UIDDictionary[strings.TrimRight(uid, "\x00 ")]
	return e, ok
}
