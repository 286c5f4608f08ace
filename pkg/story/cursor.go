// cursor.go implements the resumable traversal the rewriters depend on.
package story

import "github.com/yuin/goldmark/ast"

// cursor is a depth-first iterator over the document tree yielding
// enter/exit events. The rewriters splice nodes in and out of the tree
// mid-traversal; after a mutation they call resume so iteration continues
// from the inserted node instead of a pointer the splice invalidated. The
// cursor never holds more state than the current position, so a resumed
// traversal can neither revisit a rewritten node nor skip a pending one.
type cursor struct {
	root     ast.Node
	node     ast.Node
	entering bool
	resumed  bool
	done     bool
}

func newCursor(root ast.Node) *cursor {
	return &cursor{root: root, node: root, entering: true}
}

// step advances to the next event, returning false once the root has been
// exited. A pending resume consumes the step instead of moving.
func (c *cursor) step() bool {
	if c.done {
		return false
	}
	if c.resumed {
		c.resumed = false
		return true
	}
	if c.entering {
		if c.node.HasChildren() {
			c.node = c.node.FirstChild()
			return true
		}
		c.entering = false
		return true
	}
	if c.node == c.root {
		c.done = true
		return false
	}
	if sib := c.node.NextSibling(); sib != nil {
		c.node, c.entering = sib, true
		return true
	}
	c.node, c.entering = c.node.Parent(), false
	return true
}

// resume continues the traversal from n on the next step.
func (c *cursor) resume(n ast.Node, entering bool) {
	c.node, c.entering, c.resumed = n, entering, true
}
