// links.go resolves link-destination macros into navigable anchors.
package story

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// rewriteLink runs on link exit, once the visible link text has been
// rewritten. A destination that does not open a macro passes through as an
// ordinary link. Otherwise the destination selects the anchor's behavior:
// section navigation, function call, or inline expansion when the ":inline"
// modifier is present. The original subtree is replaced by inserting the
// anchor before it and unlinking it, never by mutating the link in place.
func (fs *fileState) rewriteLink(cur *cursor, n *ast.Link) error {
	dest := string(n.Destination)
	if !strings.HasPrefix(dest, "{") {
		return nil
	}
	if !strings.HasSuffix(dest, "}") {
		return fs.errNode(n, fmt.Errorf("%w: %s", ErrUnterminatedMacro, dest))
	}
	ident, modifier, _ := strings.Cut(dest[1:len(dest)-1], ":")
	if ident == "" {
		return fs.errNode(n, fmt.Errorf("%w: %s", ErrUnrecognizedMacro, dest))
	}

	anchor := &Anchor{}
	if modifier == "inline" {
		switch ident[0] {
		case '@', '#':
		case '$':
			return fs.errNode(n, fmt.Errorf("%w: %s", ErrInvalidLinkMacro, dest))
		default:
			return fs.errNode(n, fmt.Errorf("%w: %s", ErrUnrecognizedMacro, dest))
		}
		anchor.Attr = AttrReplaceWith
		anchor.Value = ident[1:]
		anchor.ID = fmt.Sprintf("_inline-%d", fs.c.nextInlineID())
		// Inline targets replace themselves at play time, so the anchor
		// keeps only the flattened text of the original link.
		anchor.AppendChild(anchor, newLiteral([]byte(textContent(n, fs.source)), ContextText, -1))
	} else {
		switch ident[0] {
		case '@':
			anchor.Attr = AttrGotoSection
		case '#':
			anchor.Attr = AttrCallFunction
		case '$':
			return fs.errNode(n, fmt.Errorf("%w: %s", ErrInvalidLinkMacro, dest))
		default:
			return fs.errNode(n, fmt.Errorf("%w: %s", ErrUnrecognizedMacro, dest))
		}
		anchor.Value = ident[1:]
		for c := n.FirstChild(); c != nil; {
			next := c.NextSibling()
			anchor.AppendChild(anchor, c)
			c = next
		}
	}

	parent := n.Parent()
	parent.InsertBefore(parent, n, anchor)
	parent.RemoveChild(parent, n)
	cur.resume(anchor, false)
	return nil
}
