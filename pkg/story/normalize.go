// normalize.go is the pre-pass that consolidates fragmented text so the
// scanner never sees a macro split across leaf boundaries.
package story

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
)

// normalize merges every maximal run of adjacent sibling text leaves into a
// single Literal. The upstream parser fragments text arbitrarily, e.g.
// around punctuation, and a macro's opening and closing braces must share
// one buffer to scan. Runs containing neither a brace nor an escape are left
// as parsed since there is nothing in them to rewrite.
func (fs *fileState) normalize(n ast.Node) {
	switch n.(type) {
	case *ast.CodeSpan, *ast.Image:
		// Code spans are lifted wholesale at visit time and image alt text
		// is captured, not scanned.
		return
	}

	child := n.FirstChild()
	for child != nil {
		if !isTextLeaf(child) {
			fs.normalize(child)
			child = child.NextSibling()
			continue
		}
		run := []ast.Node{child}
		next := child.NextSibling()
		for next != nil && isTextLeaf(next) {
			run = append(run, next)
			next = next.NextSibling()
		}
		fs.mergeRun(n, run)
		child = next
	}
}

func isTextLeaf(n ast.Node) bool {
	switch n.(type) {
	case *ast.Text, *ast.String:
		return true
	}
	return false
}

func (fs *fileState) mergeRun(parent ast.Node, run []ast.Node) {
	var buf bytes.Buffer
	origin := -1
	for _, n := range run {
		switch t := n.(type) {
		case *ast.Text:
			if origin < 0 {
				origin = t.Segment.Start
			}
			buf.Write(t.Segment.Value(fs.source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
	}
	if !bytes.ContainsAny(buf.Bytes(), "{\\") {
		return
	}
	lit := newLiteral(buf.Bytes(), ContextText, origin)
	parent.ReplaceChild(parent, run[0], lit)
	for _, n := range run[1:] {
		parent.RemoveChild(parent, n)
	}
}
