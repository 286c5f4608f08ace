// spans.go rewrites macro references found in literal text, code spans, and
// code blocks into expansion-point markup.
package story

// rewriteLiteral scans lit for its first macro and splices the result into
// the tree: the literal is truncated to the text before the macro, a span
// node is inserted after it, and any trailing text becomes a fresh sibling
// Literal of the same context. Only one macro is rewritten per visit; the
// cursor reaches the remainder on its own, so every further macro in the
// original buffer gets its turn.
func (fs *fileState) rewriteLiteral(cur *cursor, lit *Literal) error {
	start := -1
scan:
	for i := 0; i < len(lit.Value); i++ {
		switch lit.Value[i] {
		case '\\':
			i++ // the escaped byte can neither open nor close a macro
		case '{':
			start = i
			break scan
		}
	}
	if start < 0 {
		return nil
	}

	tok, err := scanMacro(lit.Value, start)
	if err != nil {
		return fs.errAt(lit, start, err)
	}
	if tok.Kind == KindSectionBegin {
		return fs.splitSection(cur, lit, tok)
	}

	parent := lit.Parent()
	span := &MacroSpan{Ref: tok.Ref(), Context: lit.Context}
	parent.InsertAfter(parent, lit, span)
	if tok.End < len(lit.Value) {
		rest := newLiteral(lit.Value[tok.End:], lit.Context, offsetOrigin(lit.origin, tok.End))
		parent.InsertAfter(parent, span, rest)
	}
	if tok.Start == 0 {
		parent.RemoveChild(parent, lit)
	} else {
		lit.Value = lit.Value[:tok.Start]
	}
	cur.resume(span, true)
	return nil
}
