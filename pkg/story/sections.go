// sections.go partitions the document into sibling section containers.
package story

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark/ast"
)

// splitSection replaces the paragraph holding a section declaration with a
// marker that closes the previous section and opens the next. The
// declaration must be the sole content of a top-level paragraph, the id
// must be new, and the first declaration must be the document's first
// block so no content ends up outside every section.
func (fs *fileState) splitSection(cur *cursor, lit *Literal, tok Token) error {
	para, ok := lit.Parent().(*ast.Paragraph)
	if !ok {
		return fs.errAt(lit, tok.Start, ErrInvalidSectionPlacement)
	}
	doc := para.Parent()
	if _, topLevel := doc.(*ast.Document); !topLevel {
		return fs.errAt(lit, tok.Start, ErrInvalidSectionPlacement)
	}
	if tok.Start != 0 || para.ChildCount() != 1 || len(bytes.TrimSpace(lit.Value[tok.End:])) != 0 {
		return fs.errAt(lit, tok.Start, ErrInvalidSectionPlacement)
	}
	if fs.sections[tok.Identifier] {
		return fs.errAt(lit, tok.Start, fmt.Errorf("%w: %q", ErrDuplicateSection, tok.Identifier))
	}
	if fs.sectionCount == 0 && para.PreviousSibling() != nil {
		return fs.errAt(lit, tok.Start, fmt.Errorf("%w: content precedes {{%s}}", ErrMissingLeadingSection, tok.Identifier))
	}
	fs.sections[tok.Identifier] = true

	marker := &SectionMarker{ID: tok.Identifier, ClosePrevious: fs.sectionCount > 0}
	doc.ReplaceChild(doc, para, marker)
	fs.sectionCount++
	cur.resume(marker, true)
	return nil
}
