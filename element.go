package dcmtree

import (
	"fmt"
	"strings"

	"github.com/b71729/dcmtree/dictionary"
)

// ValueLength is the declared length of an element's value
type ValueLength uint32

// UndefinedLength is the sentinel meaning "read until the matching delimiter"
const UndefinedLength ValueLength = 0xFFFFFFFF

// IsUndefined reports whether `l` is the undefined length sentinel
func (l ValueLength) IsUndefined() bool {
	return l == UndefinedLength
}

func (l ValueLength) String() string {
	if l.IsUndefined() {
		return "undefined"
	}
	return fmt.Sprintf("%d", uint32(l))
}

// DataElement represents a decoded data element (see: NEMA 7.1 Data Elements)
type DataElement struct {
	Tag dictionary.Tag
	VR  VR
	// Syntax is the transfer syntax the element was decoded under
	Syntax TransferSyntax
	// Offset is the stream position immediately after the length field
	Offset int64
	Length ValueLength
	Value  Value
	// ImplicitItems marks a UN element of undefined length decoded as a
	// sequence. Its items are encoded Implicit VR Little Endian.
	ImplicitItems bool
}

// Name returns the dictionary name of the element's tag
func (e DataElement) Name() string {
	return dictionary.TagName(e.Tag)
}

// VM returns the value multiplicity of the element
func (e DataElement) VM() int {
	switch {
	case e.Length.IsUndefined(), e.VR == Delimiter, e.VR == SequenceOfItems:
		return 0
	case e.VR.IsNumeric():
		return int(e.Length) / e.VR.ElementWidth()
	case e.VR == Attribute:
		return int(e.Length) / 4
	case e.Length == 0:
		return 0
	}
	return len(e.Value.Strings()) + boolToInt(e.Value.Kind == KindBytes)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Describe returns a one line summary of the element, indented by `indent` levels
func (e DataElement) Describe(indent int) string {
	return fmt.Sprintf("%s[%s] %s %s (%s bytes) %s", strings.Repeat("  ", indent), e.VR, e.Tag, e.Name(), e.Length, e.Value)
}

// elementReader decodes elements from a cursor under a transfer syntax and character set.
type elementReader struct {
	cursor  *Cursor
	syntax  TransferSyntax
	charset *CharacterSet
}

// DecodeElement decodes exactly one element from `c`, consuming its header and
// value bytes. File meta group elements are decoded under the default syntax
// regardless of `ambient`.
func DecodeElement(c *Cursor, ambient TransferSyntax) (DataElement, error) {
	return decodeElement(c, ambient, nil)
}

func decodeElement(c *Cursor, ambient TransferSyntax, cs *CharacterSet) (DataElement, error) {
	syntax, err := PeekSyntax(c, ambient)
	if err != nil {
		return DataElement{}, corruptElement(err, "DecodeElement (offset 0x%X)", c.Position())
	}
	elr := elementReader{cursor: c, syntax: syntax, charset: cs}
	return elr.readElement()
}

func (elr *elementReader) readElement() (DataElement, error) {
	dst := DataElement{Syntax: elr.syntax}
	if err := elr.readElementTag(&dst); err != nil {
		return dst, err
	}
	if err := elr.readElementVR(&dst); err != nil {
		return dst, err
	}
	if err := elr.readElementLength(&dst); err != nil {
		return dst, err
	}
	dst.Offset = elr.cursor.Position()
	if err := elr.readElementData(&dst); err != nil {
		return dst, err
	}
	return dst, nil
}

func (elr *elementReader) readElementTag(dst *DataElement) error {
	group, err := elr.cursor.ReadUint16(elr.syntax.ByteOrder)
	if err != nil {
		return corruptElement(err, "readElementTag")
	}
	element, err := elr.cursor.ReadUint16(elr.syntax.ByteOrder)
	if err != nil {
		return corruptElement(err, "readElementTag")
	}
	dst.Tag = dictionary.NewTag(group, element)
	return nil
}

func (elr *elementReader) readElementVR(dst *DataElement) error {
	switch {
	case IsDelimiterTag(dst.Tag):
		dst.VR = Delimiter
	case elr.syntax.IsImplicitVR():
		dst.VR = ResolveImplicit(dst.Tag)
	default:
		code, err := elr.cursor.ReadString(2)
		if err != nil {
			return corruptElement(err, "readElementVR %s", dst.Tag)
		}
		dst.VR = ResolveExplicit(code)
	}
	return nil
}

func (elr *elementReader) readElementLength(dst *DataElement) error {
	bo := elr.syntax.ByteOrder
	if !elr.syntax.IsImplicitVR() && dst.VR.LengthWidth() == 2 {
		length, err := elr.cursor.ReadUint16(bo)
		if err != nil {
			return corruptElement(err, "readElementLength %s", dst.Tag)
		}
		dst.Length = ValueLength(length)
		return nil
	}
	if !elr.syntax.IsImplicitVR() && dst.VR.HasReservedBytes() {
		if err := elr.cursor.Skip(2); err != nil {
			return corruptElement(err, "readElementLength %s: reserved bytes", dst.Tag)
		}
	}
	length, err := elr.cursor.ReadUint32(bo)
	if err != nil {
		return corruptElement(err, "readElementLength %s", dst.Tag)
	}
	dst.Length = ValueLength(length)
	return nil
}

func (elr *elementReader) readElementData(dst *DataElement) error {
	if dst.VR == Unknown && dst.Length.IsUndefined() {
		dst.VR = SequenceOfItems
		dst.ImplicitItems = true
	}
	vr := dst.VR
	if dst.Length.IsUndefined() && !vr.allowsUndefinedLength() {
		return corruptElement(ErrUndefinedLength, "%s %s", dst.Tag, vr)
	}
	if vr == Delimiter || vr == SequenceOfItems {
		dst.Value = IgnoredValue()
		return nil
	}
	length := int64(dst.Length)
	if !dst.Length.IsUndefined() && length > elr.cursor.Remaining() {
		return corruptElement(ErrInconsistentLength, "%s %s: length %d with %d bytes remaining", dst.Tag, vr, length, elr.cursor.Remaining())
	}
	switch {
	case vr == Attribute:
		return elr.readAttribute(dst)
	case vr.IsNumeric():
		return elr.readNumeric(dst)
	case vr.IsText(), vr.IsNumericString():
		text, err := elr.readText(vr, length)
		if err != nil {
			return corruptElement(err, "readElementData %s", dst.Tag)
		}
		if vr.IsNumericString() && strings.Contains(text, `\`) {
			dst.Value = MultiTextValue(text)
		} else {
			dst.Value = TextValue(text)
		}
	default:
		buf, err := elr.cursor.ReadBytes(length)
		if err != nil {
			return corruptElement(err, "readElementData %s", dst.Tag)
		}
		dst.Value = BytesValue(buf)
	}
	return nil
}

// readAttribute reads the first tag pair of an AT element; further pairs are skipped.
func (elr *elementReader) readAttribute(dst *DataElement) error {
	length := int64(4)
	if !dst.Length.IsUndefined() {
		length = int64(dst.Length)
		if length%4 != 0 {
			return corruptElement(ErrMalformedLength, "%s AT: length %d", dst.Tag, length)
		}
		if length == 0 {
			dst.Value = IgnoredValue()
			return nil
		}
	}
	bo := elr.syntax.ByteOrder
	group, err := elr.cursor.ReadUint16(bo)
	if err != nil {
		return corruptElement(err, "readAttribute %s", dst.Tag)
	}
	element, err := elr.cursor.ReadUint16(bo)
	if err != nil {
		return corruptElement(err, "readAttribute %s", dst.Tag)
	}
	if err := elr.cursor.Skip(length - 4); err != nil {
		return corruptElement(err, "readAttribute %s", dst.Tag)
	}
	dst.Value = TagRefValue(dictionary.NewTag(group, element))
	return nil
}

func (elr *elementReader) readNumeric(dst *DataElement) error {
	vr, length := dst.VR, int64(dst.Length)
	width := int64(vr.ElementWidth())
	if length%width != 0 {
		return corruptElement(ErrMalformedLength, "%s %s: length %d, width %d", dst.Tag, vr, length, width)
	}
	if length/width != 1 {
		raw, err := elr.cursor.ReadBytes(length)
		if err != nil {
			return corruptElement(err, "readNumeric %s", dst.Tag)
		}
		dst.Value = NumericArrayValue(vr, raw)
		return nil
	}
	var err error
	bo := elr.syntax.ByteOrder
	switch vr {
	case UnsignedShort:
		var v uint16
		v, err = elr.cursor.ReadUint16(bo)
		dst.Value = Uint16Value(v)
	case SignedShort:
		var v int16
		v, err = elr.cursor.ReadInt16(bo)
		dst.Value = Int16Value(v)
	case UnsignedLong:
		var v uint32
		v, err = elr.cursor.ReadUint32(bo)
		dst.Value = Uint32Value(v)
	case SignedLong:
		var v int32
		v, err = elr.cursor.ReadInt32(bo)
		dst.Value = Int32Value(v)
	case Float:
		var v float32
		v, err = elr.cursor.ReadFloat32(bo)
		dst.Value = Float32Value(v)
	case Double:
		var v float64
		v, err = elr.cursor.ReadFloat64(bo)
		dst.Value = Float64Value(v)
	}
	if err != nil {
		return corruptElement(err, "readNumeric %s", dst.Tag)
	}
	return nil
}

// readText reads `length` bytes as text, decoding charset-sensitive VRs and
// removing trailing NUL/space padding.
func (elr *elementReader) readText(vr VR, length int64) (string, error) {
	buf, err := elr.cursor.ReadBytes(length)
	if err != nil {
		return "", err
	}
	text := string(buf)
	if vr.IsCharsetSensitive() {
		if text, err = elr.charset.Decode(buf); err != nil {
			return "", err
		}
	}
	return strings.TrimRight(text, "\x00 "), nil
}
