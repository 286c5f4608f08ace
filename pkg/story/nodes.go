// nodes.go defines the AST node kinds the compiler splices into the
// goldmark tree, plus the data-attribute vocabulary the runtime engine
// interprets.
package story

import "github.com/yuin/goldmark/ast"

// Attributes consumed by the runtime story engine.
const (
	AttrGotoSection      = "data-goto-section"
	AttrCallFunction     = "data-call-function"
	AttrReplaceWith      = "data-replace-with"
	AttrExpandMacro      = "data-expand-macro"
	AttrImageSourceMacro = "data-image-source-macro"
)

// LiteralContext selects the markup wrapping for literals and macro spans.
type LiteralContext int

const (
	ContextText LiteralContext = iota
	ContextCode
	ContextCodeBlock
)

// Literal is a rewritable run of literal text. The normalizer produces one
// Literal per maximal run of adjacent text leaves so a macro's braces always
// share a buffer; splicing produces further Literals for trailing content.
type Literal struct {
	ast.BaseInline
	Value   []byte
	Context LiteralContext
	origin  int // byte offset into the source, -1 when unknown
}

// KindLiteral is the node kind of Literal.
var KindLiteral = ast.NewNodeKind("StoryLiteral")

func (n *Literal) Kind() ast.NodeKind { return KindLiteral }

func (n *Literal) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Value": string(n.Value)}, nil)
}

func newLiteral(value []byte, ctx LiteralContext, origin int) *Literal {
	return &Literal{Value: value, Context: ctx, origin: origin}
}

func offsetOrigin(origin, delta int) int {
	if origin < 0 {
		return -1
	}
	return origin + delta
}

// MacroSpan is a rewritten non-link macro reference: an expansion point the
// engine fills in at play time.
type MacroSpan struct {
	ast.BaseInline
	Ref     string // sigil-prefixed identifier, e.g. "$score"
	Context LiteralContext
}

// KindMacroSpan is the node kind of MacroSpan.
var KindMacroSpan = ast.NewNodeKind("StoryMacroSpan")

func (n *MacroSpan) Kind() ast.NodeKind { return KindMacroSpan }

func (n *MacroSpan) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Ref": n.Ref}, nil)
}

// Anchor replaces a link whose destination was a macro. Its children are
// the visible link text.
type Anchor struct {
	ast.BaseInline
	Attr  string // data attribute name
	Value string
	ID    string // "_inline-N" for inline links, empty otherwise
}

// KindAnchor is the node kind of Anchor.
var KindAnchor = ast.NewNodeKind("StoryAnchor")

func (n *Anchor) Kind() ast.NodeKind { return KindAnchor }

func (n *Anchor) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Attr": n.Attr, "Value": n.Value, "ID": n.ID}, nil)
}

// Image replaces every image node. Macro-sourced images carry Macro and a
// placeholder src until the engine resolves them; literal sources pass
// through with hover-title text added.
type Image struct {
	ast.BaseInline
	Src   string
	Alt   string
	Macro string // sigil-stripped identifier, empty for literal sources
}

// KindImage is the node kind of Image.
var KindImage = ast.NewNodeKind("StoryImage")

func (n *Image) Kind() ast.NodeKind { return KindImage }

func (n *Image) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Src": n.Src, "Alt": n.Alt, "Macro": n.Macro}, nil)
}

// SectionMarker opens a hidden section container, closing the previous one
// unless this is the document's first section.
type SectionMarker struct {
	ast.BaseBlock
	ID            string
	ClosePrevious bool
}

// KindSectionMarker is the node kind of SectionMarker.
var KindSectionMarker = ast.NewNodeKind("StorySectionMarker")

func (n *SectionMarker) Kind() ast.NodeKind { return KindSectionMarker }

func (n *SectionMarker) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"ID": n.ID}, nil)
}

// SectionClose closes the last open section at the end of the document.
type SectionClose struct {
	ast.BaseBlock
}

// KindSectionClose is the node kind of SectionClose.
var KindSectionClose = ast.NewNodeKind("StorySectionClose")

func (n *SectionClose) Kind() ast.NodeKind { return KindSectionClose }

func (n *SectionClose) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}
