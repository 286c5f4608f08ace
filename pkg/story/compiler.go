// Package story compiles macro-annotated Markdown into the flat section
// markup interpreted by the runtime story engine.
//
// A source file is parsed to a document tree, normalized, rewritten in a
// single resumable traversal (macro spans, links, images, section splits),
// finalized, and serialized. Compilation is synchronous and per-file; the
// only state shared across files is the inline-link id sequence, which must
// span a whole build so generated ids stay globally unique.
package story

import (
	"bytes"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Compiler compiles the source files of one build.
type Compiler struct {
	md        goldmark.Markdown
	inlineSeq int
}

type options struct {
	highlightStyle string
}

// Option configures a Compiler.
type Option func(*options)

// WithHighlighting enables chroma syntax highlighting for fenced code
// blocks using the named style. CSS classes are emitted so the page shell's
// stylesheet stays in control of the colors.
func WithHighlighting(style string) Option {
	return func(o *options) { o.highlightStyle = style }
}

// New returns a Compiler ready to compile one build's files.
func New(opts ...Option) *Compiler {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	exts := []goldmark.Extender{extension.GFM}
	if o.highlightStyle != "" {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(o.highlightStyle),
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			renderer.WithNodeRenderers(util.Prioritized(&nodeRenderer{}, 500)),
		),
	)
	return &Compiler{md: md}
}

// Compile rewrites one source file into engine markup fragments. name is
// used only for diagnostics; Compile performs no file I/O.
func (c *Compiler) Compile(name string, source []byte) (string, error) {
	doc := c.md.Parser().Parse(text.NewReader(source))

	fs := &fileState{
		c:        c,
		name:     name,
		source:   source,
		sections: map[string]bool{},
	}

	fs.normalize(doc)

	cur := newCursor(doc)
	for ok := true; ok; ok = cur.step() {
		if err := fs.dispatch(cur); err != nil {
			return "", err
		}
	}

	if err := fs.finalize(doc); err != nil {
		return "", err
	}
	stripEscapes(doc)

	var buf bytes.Buffer
	if err := c.md.Renderer().Render(&buf, source, doc); err != nil {
		return "", &CompileError{File: name, Err: err}
	}
	return buf.String(), nil
}

func (c *Compiler) nextInlineID() int {
	id := c.inlineSeq
	c.inlineSeq++
	return id
}

// fileState is the per-file compilation state.
type fileState struct {
	c            *Compiler
	name         string
	source       []byte
	sections     map[string]bool
	sectionCount int
}

func (fs *fileState) dispatch(cur *cursor) error {
	switch n := cur.node.(type) {
	case *Literal:
		if cur.entering {
			return fs.rewriteLiteral(cur, n)
		}
	case *ast.CodeSpan:
		if cur.entering {
			return fs.liftCodeSpan(cur, n)
		}
	case *ast.FencedCodeBlock:
		if cur.entering {
			fs.liftCodeBlock(cur, n, n.Lines())
		}
	case *ast.CodeBlock:
		if cur.entering {
			fs.liftCodeBlock(cur, n, n.Lines())
		}
	case *ast.Link:
		if !cur.entering {
			return fs.rewriteLink(cur, n)
		}
	case *ast.Image:
		if cur.entering {
			return fs.rewriteImage(cur, n)
		}
	}
	return nil
}

// liftCodeSpan replaces a code span containing braces or escapes with a
// code-context Literal so the usual literal rewriting applies. Spans with
// nothing to scan keep their parsed form.
func (fs *fileState) liftCodeSpan(cur *cursor, n *ast.CodeSpan) error {
	var buf bytes.Buffer
	origin := -1
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			if origin < 0 {
				origin = t.Segment.Start
			}
			buf.Write(t.Segment.Value(fs.source))
		}
	}
	if !bytes.ContainsAny(buf.Bytes(), "{\\") {
		return nil
	}
	lit := newLiteral(buf.Bytes(), ContextCode, origin)
	parent := n.Parent()
	parent.ReplaceChild(parent, n, lit)
	cur.resume(lit, true)
	return nil
}

// liftCodeBlock does the same for indented and fenced code blocks. Blocks
// without braces or escapes stay untouched, preserving the language class
// and any highlighting the renderer applies.
func (fs *fileState) liftCodeBlock(cur *cursor, n ast.Node, lines *text.Segments) {
	var buf bytes.Buffer
	origin := -1
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if origin < 0 {
			origin = seg.Start
		}
		buf.Write(seg.Value(fs.source))
	}
	if !bytes.ContainsAny(buf.Bytes(), "{\\") {
		return
	}
	val := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	lit := newLiteral(val, ContextCodeBlock, origin)
	parent := n.Parent()
	parent.ReplaceChild(parent, n, lit)
	cur.resume(lit, true)
}

// finalize closes the last open section at the document's end.
func (fs *fileState) finalize(doc ast.Node) error {
	if fs.sectionCount == 0 {
		return &CompileError{File: fs.name, Err: ErrMissingLeadingSection}
	}
	doc.AppendChild(doc, &SectionClose{})
	return nil
}

// stripEscapes removes escape backslashes from every literal once all
// scanning is done. Stripping per-node during the traversal would shift
// offsets under later visits to remainders of the same original buffer.
func stripEscapes(doc ast.Node) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if lit, ok := n.(*Literal); ok {
				lit.Value = unescape(lit.Value)
			}
		}
		return ast.WalkContinue, nil
	})
}

// unescape drops each backslash, keeping the byte it escaped.
func unescape(v []byte) []byte {
	if !bytes.ContainsRune(v, '\\') {
		return v
	}
	out := make([]byte, 0, len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '\\' && i+1 < len(v) {
			i++
		}
		out = append(out, v[i])
	}
	return out
}

// lineCol converts a byte offset into a 1-based line/column pair.
func lineCol(src []byte, off int) (line, col int) {
	line, col = 1, 1
	for _, b := range src[:off] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// errAt wraps err with the file name and a best-effort position: the
// literal's recorded source offset advanced across the newlines already
// scanned inside it.
func (fs *fileState) errAt(lit *Literal, rel int, err error) error {
	ce := &CompileError{File: fs.name, Err: err}
	if lit.origin >= 0 && lit.origin <= len(fs.source) && rel <= len(lit.Value) {
		line, col := lineCol(fs.source, lit.origin)
		for _, b := range lit.Value[:rel] {
			if b == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		ce.Line, ce.Column = line, col
	}
	return ce
}

// errNode positions err at the earliest source offset found under n.
func (fs *fileState) errNode(n ast.Node, err error) error {
	ce := &CompileError{File: fs.name, Err: err}
	if off, ok := nodeOffset(n); ok {
		ce.Line, ce.Column = lineCol(fs.source, off)
	}
	return ce
}

func nodeOffset(n ast.Node) (int, bool) {
	switch t := n.(type) {
	case *ast.Text:
		return t.Segment.Start, true
	case *Literal:
		if t.origin >= 0 {
			return t.origin, true
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off, ok := nodeOffset(c); ok {
			return off, true
		}
	}
	return 0, false
}

// textContent renders the subtree under n with all markup stripped.
func textContent(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
		case *ast.String:
			buf.Write(t.Value)
		case *Literal:
			buf.Write(t.Value)
		default:
			buf.WriteString(textContent(c, source))
		}
	}
	return buf.String()
}
