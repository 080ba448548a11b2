package dcmtree

import (
	"encoding/binary"
	"strings"
)

// VREncoding selects whether VR codes are written in-line (explicit) or
// resolved through the dictionary (implicit).
type VREncoding int

// VR encodings
const (
	ExplicitVR VREncoding = iota
	ImplicitVR
)

func (v VREncoding) String() string {
	if v == ImplicitVR {
		return "ImplicitVR"
	}
	return "ExplicitVR"
}

// ByteOrder of the multi-byte fields in a stream
type ByteOrder int

// Byte orders
const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (b ByteOrder) String() string {
	if b == BigEndian {
		return "BigEndian"
	}
	return "LittleEndian"
}

// Binary returns the `binary.ByteOrder` matching `b`
func (b ByteOrder) Binary() binary.ByteOrder {
	if b == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// TransferSyntax is the pair of VR encoding and byte order governing a stream.
type TransferSyntax struct {
	VREncoding VREncoding
	ByteOrder  ByteOrder
}

// Transfer syntax UIDs with a native (uncompressed) element encoding
const (
	ImplicitVRLittleEndianUID         = "1.2.840.10008.1.2"
	ExplicitVRLittleEndianUID         = "1.2.840.10008.1.2.1"
	DeflatedExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1.99"
	ExplicitVRBigEndianUID            = "1.2.840.10008.1.2.2"
)

var transferSyntaxToEncodingMap = map[string]TransferSyntax{
	ImplicitVRLittleEndianUID: {ImplicitVR, LittleEndian},
	ExplicitVRLittleEndianUID: {ExplicitVR, LittleEndian},
	ExplicitVRBigEndianUID:    {ExplicitVR, BigEndian},
}

// DefaultTransferSyntax returns Explicit VR Little Endian
func DefaultTransferSyntax() TransferSyntax {
	return TransferSyntax{ExplicitVR, LittleEndian}
}

func (ts TransferSyntax) String() string {
	return ts.VREncoding.String() + " + " + ts.ByteOrder.String()
}

// IsImplicitVR reports whether `ts` omits in-line VR codes
func (ts TransferSyntax) IsImplicitVR() bool {
	return ts.VREncoding == ImplicitVR
}

func normaliseUID(uid string) string {
	return strings.TrimSpace(strings.TrimRight(uid, "\x00 "))
}

// LookupTransferSyntax resolves `uid` to a TransferSyntax. `found` is false
// when the uid is not one of the native encodings, in which case the default
// is returned.
func LookupTransferSyntax(uid string) (ts TransferSyntax, found bool) {
	uid = normaliseUID(uid)
	for k, v := range transferSyntaxToEncodingMap {
		if strings.EqualFold(k, uid) {
			return v, true
		}
	}
	return DefaultTransferSyntax(), false
}

// ParseTransferSyntax resolves `uid` to a TransferSyntax, falling back to
// the default for anything unrecognised (including compressed syntaxes,
// whose non-pixel elements are encoded as Explicit VR Little Endian).
func ParseTransferSyntax(uid string) TransferSyntax {
	ts, _ := LookupTransferSyntax(uid)
	return ts
}

// IsUncompressed reports whether `uid` names a transfer syntax whose pixel
// data is stored natively.
func IsUncompressed(uid string) bool {
	switch normaliseUID(uid) {
	case ImplicitVRLittleEndianUID, ExplicitVRLittleEndianUID, ExplicitVRBigEndianUID, DeflatedExplicitVRLittleEndianUID:
		return true
	}
	return false
}

// metaGroup is the file meta information group, always Explicit VR Little Endian
const metaGroup = 0x0002

// PeekSyntax returns the syntax the next element must be decoded under: the
// default if the upcoming group is the file meta group, otherwise `ambient`.
// The cursor is not advanced.
func PeekSyntax(c *Cursor, ambient TransferSyntax) (TransferSyntax, error) {
	buf, err := c.Peek(2)
	if err != nil {
		return ambient, err
	}
	if binary.LittleEndian.Uint16(buf) == metaGroup {
		return DefaultTransferSyntax(), nil
	}
	return ambient, nil
}
