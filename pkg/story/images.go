// images.go resolves image-destination macros and annotates every image
// with hover-title text.
package story

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// rewriteImage replaces every image, macro-sourced or not. The immediate
// text content becomes the alt text, mirrored into the title. Images need a
// resolvable byte source, so section references are rejected outright while
// function and variable references defer resolution to the engine behind a
// placeholder src.
func (fs *fileState) rewriteImage(cur *cursor, n *ast.Image) error {
	img := &Image{Alt: textContent(n, fs.source)}

	dest := string(n.Destination)
	if !strings.HasPrefix(dest, "{") {
		img.Src = dest
	} else {
		if !strings.HasSuffix(dest, "}") {
			return fs.errNode(n, fmt.Errorf("%w: %s", ErrUnterminatedMacro, dest))
		}
		ident := dest[1 : len(dest)-1]
		if ident == "" {
			return fs.errNode(n, fmt.Errorf("%w: %s", ErrUnknownMacro, dest))
		}
		switch ident[0] {
		case '@':
			return fs.errNode(n, fmt.Errorf("%w: %s", ErrSectionAsImageSource, dest))
		case '#', '$':
			img.Macro = ident[1:]
			img.Src = "#"
		default:
			return fs.errNode(n, fmt.Errorf("%w: %s", ErrUnknownMacro, dest))
		}
	}

	parent := n.Parent()
	parent.InsertBefore(parent, n, img)
	parent.RemoveChild(parent, n)
	cur.resume(img, false)
	return nil
}
