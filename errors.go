package dcmtree

import (
	"fmt"

	"github.com/pkg/errors"
)

// Causes carried by the typed errors below. Match them with `errors.Is`.
var (
	ErrUndefinedLength    = errors.New("undefined length not permitted for VR")
	ErrMalformedLength    = errors.New("value length is not a multiple of the VR width")
	ErrInconsistentLength = errors.New("value length exceeds the enclosing bounds")
	ErrNonTextualSyntax   = errors.New("transfer syntax uid has a non-textual value")
	ErrUnknownSyntax      = errors.New("unrecognised transfer syntax uid")
	ErrDepthExceeded      = errors.New("maximum nesting depth exceeded")
	ErrNoProgress         = errors.New("element decode did not advance the stream")
)

// CorruptElement is an error representing that an `Element` is corrupt
type CorruptElement struct {
	error
}

func (e *CorruptElement) Unwrap() error { return e.error }

// corruptElement wraps `cause` so that `errors.Is(err, cause)` holds.
func corruptElement(cause error, format string, a ...interface{}) *CorruptElement {
	return &CorruptElement{errors.Wrapf(cause, format, a...)}
}

// CorruptDicom is an error representing that a DICOM stream is structurally corrupt
type CorruptDicom struct {
	error
}

func (e *CorruptDicom) Unwrap() error { return e.error }

func corruptDicom(cause error, format string, a ...interface{}) *CorruptDicom {
	return &CorruptDicom{errors.Wrapf(cause, format, a...)}
}

// InsufficientBytes is an error representing that the cursor ran out of bytes
type InsufficientBytes struct {
	error
}

func (e *InsufficientBytes) Unwrap() error { return e.error }

// InsufficientBytesError returns a new `InsufficientBytes` formatted according to `format` and `a`
func InsufficientBytesError(format string, a ...interface{}) *InsufficientBytes {
	return &InsufficientBytes{fmt.Errorf(format, a...)}
}

// UnsupportedDicom is an error representing that a DICOM stream uses features that cannot be decoded
type UnsupportedDicom struct {
	error
}

func (e *UnsupportedDicom) Unwrap() error { return e.error }

func unsupportedDicom(cause error, format string, a ...interface{}) *UnsupportedDicom {
	return &UnsupportedDicom{errors.Wrapf(cause, format, a...)}
}
