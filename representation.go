package dcmtree

import (
	"fmt"
	"math"
	"strings"

	"github.com/b71729/dcmtree/dictionary"
	"github.com/pkg/errors"
)

// Kind discriminates the variants of a Value
type Kind int

// Value kinds
const (
	KindIgnored Kind = iota
	KindTagRef
	KindNumeric
	KindNumericArray
	KindText
	KindMultiText
	KindBytes
)

var kindNames = [...]string{
	KindIgnored:      "Ignored",
	KindTagRef:       "TagRef",
	KindNumeric:      "Numeric",
	KindNumericArray: "NumericArray",
	KindText:         "Text",
	KindMultiText:    "MultiText",
	KindBytes:        "Bytes",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Value is the decoded value of a data element.
//
// Numeric scalars keep their raw bits alongside the numeric VR they were
// decoded as; numeric arrays and multi-valued text are kept undecoded.
type Value struct {
	Kind Kind
	// NumericVR is set for KindNumeric and KindNumericArray
	NumericVR VR
	bits      uint64
	tag       dictionary.Tag
	text      string
	raw       []byte
}

// IgnoredValue is the marker value of delimiters and sequences
func IgnoredValue() Value { return Value{Kind: KindIgnored} }

// TagRefValue wraps a tag reference (VR AT)
func TagRefValue(t dictionary.Tag) Value { return Value{Kind: KindTagRef, tag: t} }

// TextValue wraps a single text value
func TextValue(s string) Value { return Value{Kind: KindText, text: s} }

// MultiTextValue wraps backslash-separated text whose values are split on demand
func MultiTextValue(s string) Value { return Value{Kind: KindMultiText, text: s} }

// BytesValue wraps an opaque byte buffer
func BytesValue(b []byte) Value { return Value{Kind: KindBytes, raw: b} }

// NumericArrayValue wraps the undecoded bytes of a numeric element with VM != 1
func NumericArrayValue(vr VR, raw []byte) Value {
	return Value{Kind: KindNumericArray, NumericVR: vr, raw: raw}
}

func numericValue(vr VR, bits uint64) Value {
	return Value{Kind: KindNumeric, NumericVR: vr, bits: bits}
}

// Uint16Value wraps a single US value
func Uint16Value(v uint16) Value { return numericValue(UnsignedShort, uint64(v)) }

// Int16Value wraps a single SS value
func Int16Value(v int16) Value { return numericValue(SignedShort, uint64(uint16(v))) }

// Uint32Value wraps a single UL value
func Uint32Value(v uint32) Value { return numericValue(UnsignedLong, uint64(v)) }

// Int32Value wraps a single SL value
func Int32Value(v int32) Value { return numericValue(SignedLong, uint64(uint32(v))) }

// Float32Value wraps a single FL value
func Float32Value(v float32) Value { return numericValue(Float, uint64(math.Float32bits(v))) }

// Float64Value wraps a single FD value
func Float64Value(v float64) Value { return numericValue(Double, math.Float64bits(v)) }

// Tag returns the referenced tag of a KindTagRef value
func (v Value) Tag() (dictionary.Tag, bool) {
	return v.tag, v.Kind == KindTagRef
}

// Text returns the raw text of a KindText or KindMultiText value
func (v Value) Text() (string, bool) {
	return v.text, v.Kind == KindText || v.Kind == KindMultiText
}

// Strings splits text values on backslash
func (v Value) Strings() []string {
	switch v.Kind {
	case KindText:
		return []string{v.text}
	case KindMultiText:
		return strings.Split(v.text, `\`)
	}
	return nil
}

// Bytes returns the raw bytes of a KindBytes or KindNumericArray value
func (v Value) Bytes() ([]byte, bool) {
	return v.raw, v.Kind == KindBytes || v.Kind == KindNumericArray
}

func (v Value) isScalar(vr VR) bool {
	return v.Kind == KindNumeric && v.NumericVR == vr
}

// Uint16 returns the scalar of a US value
func (v Value) Uint16() (uint16, bool) { return uint16(v.bits), v.isScalar(UnsignedShort) }

// Int16 returns the scalar of an SS value
func (v Value) Int16() (int16, bool) { return int16(uint16(v.bits)), v.isScalar(SignedShort) }

// Uint32 returns the scalar of a UL value
func (v Value) Uint32() (uint32, bool) { return uint32(v.bits), v.isScalar(UnsignedLong) }

// Int32 returns the scalar of an SL value
func (v Value) Int32() (int32, bool) { return int32(uint32(v.bits)), v.isScalar(SignedLong) }

// Float32 returns the scalar of an FL value
func (v Value) Float32() (float32, bool) {
	return math.Float32frombits(uint32(v.bits)), v.isScalar(Float)
}

// Float64 returns the scalar of an FD value
func (v Value) Float64() (float64, bool) { return math.Float64frombits(v.bits), v.isScalar(Double) }

// Interface returns the value as a native Go type: nil, dictionary.Tag,
// one of the numeric scalar types, string, or []byte.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindTagRef:
		return v.tag
	case KindNumeric:
		switch v.NumericVR {
		case UnsignedShort:
			return uint16(v.bits)
		case SignedShort:
			return int16(uint16(v.bits))
		case UnsignedLong:
			return uint32(v.bits)
		case SignedLong:
			return int32(uint32(v.bits))
		case Float:
			return math.Float32frombits(uint32(v.bits))
		case Double:
			return math.Float64frombits(v.bits)
		}
	case KindText, KindMultiText:
		return v.text
	case KindBytes, KindNumericArray:
		return v.raw
	}
	return nil
}

// DecodeNumbers decodes every value of a KindNumericArray in byte order `bo`.
// The result is a slice of the numeric VR's Go type, e.g. []uint16 for US.
func (v Value) DecodeNumbers(bo ByteOrder) (interface{}, error) {
	if v.Kind != KindNumericArray {
		return nil, errors.Errorf("DecodeNumbers: value is %s, not %s", v.Kind, KindNumericArray)
	}
	width := v.NumericVR.ElementWidth()
	if width == 0 || len(v.raw)%width != 0 {
		return nil, errors.Wrapf(ErrMalformedLength, "DecodeNumbers: %d bytes of %s", len(v.raw), v.NumericVR)
	}
	order := bo.Binary()
	n := len(v.raw) / width
	switch v.NumericVR {
	case UnsignedShort:
		out := make([]uint16, n)
		for i := range out {
			out[i] = order.Uint16(v.raw[i*2:])
		}
		return out, nil
	case SignedShort:
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(order.Uint16(v.raw[i*2:]))
		}
		return out, nil
	case UnsignedLong:
		out := make([]uint32, n)
		for i := range out {
			out[i] = order.Uint32(v.raw[i*4:])
		}
		return out, nil
	case SignedLong:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(order.Uint32(v.raw[i*4:]))
		}
		return out, nil
	case Float:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(order.Uint32(v.raw[i*4:]))
		}
		return out, nil
	default:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(order.Uint64(v.raw[i*8:]))
		}
		return out, nil
	}
}

const maxDescribeBytes = 16

func (v Value) String() string {
	switch v.Kind {
	case KindIgnored:
		return ""
	case KindTagRef:
		return v.tag.String()
	case KindNumeric:
		return fmt.Sprint(v.Interface())
	case KindNumericArray:
		return fmt.Sprintf("[%d bytes of %s]", len(v.raw), v.NumericVR)
	case KindText, KindMultiText:
		return v.text
	case KindBytes:
		if len(v.raw) > maxDescribeBytes {
			return fmt.Sprintf("% X ... (%d bytes)", v.raw[:maxDescribeBytes], len(v.raw))
		}
		return fmt.Sprintf("% X", v.raw)
	}
	return ""
}
