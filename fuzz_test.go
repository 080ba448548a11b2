package dcmtree

import (
	"testing"

	"github.com/pkg/errors"
)

// FuzzParseBytes checks that arbitrary input either fails with one of the
// package's error types or yields values consistent with their VR.
func FuzzParseBytes(f *testing.F) {
	for _, seed := range [][]byte{validFile, validUS, undefinedSequence, definedSequence, metaTransferSyntax} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		tree := NewTree()
		err := newTestParser(Config{MaxDepth: 16}).ParseBytes(data, tree)
		if err != nil {
			var (
				corruptElement *CorruptElement
				corruptDicom   *CorruptDicom
				insufficient   *InsufficientBytes
				unsupported    *UnsupportedDicom
			)
			if !errors.As(err, &corruptElement) && !errors.As(err, &corruptDicom) &&
				!errors.As(err, &insufficient) && !errors.As(err, &unsupported) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}
		_ = tree.Walk(func(_, _ int, n *Node) error {
			e := n.Element
			kind := e.Value.Kind
			switch {
			case e.VR == Delimiter, e.VR == SequenceOfItems:
				if kind != KindIgnored {
					t.Fatalf("%s %s decoded as %s", e.Tag, e.VR, kind)
				}
			case e.VR.IsNumeric():
				if kind != KindNumeric && kind != KindNumericArray {
					t.Fatalf("%s %s decoded as %s", e.Tag, e.VR, kind)
				}
				if kind == KindNumeric && e.Value.NumericVR != e.VR {
					t.Fatalf("%s %s holds a %s scalar", e.Tag, e.VR, e.Value.NumericVR)
				}
			case e.VR.IsText():
				if kind != KindText {
					t.Fatalf("%s %s decoded as %s", e.Tag, e.VR, kind)
				}
			case e.VR.IsNumericString():
				if kind != KindText && kind != KindMultiText {
					t.Fatalf("%s %s decoded as %s", e.Tag, e.VR, kind)
				}
			case e.VR.IsOpaque():
				if kind != KindBytes {
					t.Fatalf("%s %s decoded as %s", e.Tag, e.VR, kind)
				}
			}
			return nil
		})
	})
}
