package dcmtree

import (
	"github.com/b71729/dcmtree/dictionary"
)

type levelKind int

const (
	topLevel levelKind = iota
	sequenceLevel
	itemLevel
)

// scope is the decoding state inherited by an element's siblings and descendants
type scope struct {
	syntax  TransferSyntax
	charset *CharacterSet
}

// enclosedBy returns the scope for the contents of `element`
func (sc scope) enclosedBy(element DataElement) scope {
	if element.ImplicitItems {
		sc.syntax = TransferSyntax{ImplicitVR, LittleEndian}
	}
	return sc
}

type treeWalker struct {
	parser  *Parser
	cursor  *Cursor
	handler Handler
}

// Walk decodes elements from `c` until its position reaches `limit`, emitting
// each to `h` in pre-order with `parent` as the parent of top-level elements.
// Sequences, and items within them, are descended into before their
// following siblings are decoded.
func (p *Parser) Walk(c *Cursor, syntax TransferSyntax, parent int, limit int64, h Handler) error {
	w := treeWalker{parser: p, cursor: c, handler: h}
	return w.walkLevel(scope{syntax: syntax, charset: DefaultCharacterSet}, parent, limit, 0, topLevel)
}

func (w *treeWalker) walkLevel(sc scope, parent int, limit int64, depth int, kind levelKind) error {
	if depth > w.parser.cfg.MaxDepth {
		return corruptDicom(ErrDepthExceeded, "depth %d at offset 0x%X", depth, w.cursor.Position())
	}
	for w.cursor.Position() < limit {
		start := w.cursor.Position()
		element, err := decodeElement(w.cursor, sc.syntax, sc.charset)
		if err != nil {
			return err
		}
		if w.cursor.Position() <= start {
			return corruptDicom(ErrNoProgress, "%s at offset 0x%X", element.Tag, start)
		}
		if err := w.updateScope(&sc, element); err != nil {
			return err
		}
		child := w.handler.HandleElement(parent, element)

		switch {
		case element.Tag == SequenceDelimitationTag:
			return nil
		case element.Tag == ItemDelimitationTag && kind == itemLevel:
			return nil
		case w.cursor.Position() >= limit:
			return nil
		}

		innerKind, opens := levelOpenedBy(element, kind)
		if !opens {
			continue
		}
		inner, err := w.innerLimit(element, limit)
		if err != nil {
			return err
		}
		if err := w.walkLevel(sc.enclosedBy(element), child, inner, depth+1, innerKind); err != nil {
			return err
		}
		if pos := w.cursor.Position(); !element.Length.IsUndefined() && pos > inner {
			return corruptDicom(ErrInconsistentLength, "%s ending at 0x%X overran by %d bytes", element.Tag, inner, pos-inner)
		}
	}
	return nil
}

// levelOpenedBy reports whether `element` encloses further elements: every
// sequence does, as does an item directly inside a sequence.
func levelOpenedBy(element DataElement, kind levelKind) (levelKind, bool) {
	switch {
	case element.VR == SequenceOfItems:
		return sequenceLevel, true
	case element.Tag == ItemTag && kind == sequenceLevel:
		return itemLevel, true
	}
	return topLevel, false
}

// innerLimit is the end of stream for undefined lengths (a delimiter ends the
// level), otherwise the offset just past the declared length.
func (w *treeWalker) innerLimit(element DataElement, outer int64) (int64, error) {
	if element.Length.IsUndefined() {
		return w.cursor.Len(), nil
	}
	inner := w.cursor.Position() + int64(element.Length)
	if inner > outer {
		return 0, corruptElement(ErrInconsistentLength, "%s %s: length %d ends at 0x%X, beyond enclosing limit 0x%X", element.Tag, element.VR, element.Length, inner, outer)
	}
	return inner, nil
}

// updateScope applies transfer syntax and character set changes declared by
// `element` to its following siblings and their descendants.
func (w *treeWalker) updateScope(sc *scope, element DataElement) error {
	log := w.parser.log
	switch element.Tag {
	case TransferSyntaxUIDTag:
		uid, ok := element.Value.Text()
		if !ok {
			return corruptElement(ErrNonTextualSyntax, "%s %s (%s)", element.Tag, element.VR, element.Value.Kind)
		}
		syntax, found := LookupTransferSyntax(uid)
		if !found {
			if w.parser.cfg.StrictMode {
				return unsupportedDicom(ErrUnknownSyntax, "%q", uid)
			}
			if entry, known := dictionary.LookupUID(uid); known && entry.Type == dictionary.UIDTypeTransferSyntax {
				log.Debugw("decoding encapsulated transfer syntax as default", "uid", uid, "name", entry.NameHuman)
			} else {
				log.Warnw("unrecognised transfer syntax; using default", "uid", uid, "syntax", syntax)
			}
		}
		sc.syntax = syntax
	case SpecificCharacterSetTag:
		value, ok := element.Value.Text()
		if !ok {
			return nil
		}
		cs, err := ParseSpecificCharacterSet(value)
		if err != nil {
			log.Warnw("unsupported character set; text left undecoded", "value", value, "error", err)
		}
		sc.charset = cs
	}
	return nil
}
