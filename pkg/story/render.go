// render.go emits the engine-consumable markup for the compiler's node
// kinds. Everything else in the tree is rendered by goldmark's stock HTML
// renderer.
package story

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type nodeRenderer struct{}

func (r *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindLiteral, r.renderLiteral)
	reg.Register(KindMacroSpan, r.renderMacroSpan)
	reg.Register(KindAnchor, r.renderAnchor)
	reg.Register(KindImage, r.renderImage)
	reg.Register(KindSectionMarker, r.renderSectionMarker)
	reg.Register(KindSectionClose, r.renderSectionClose)
}

func (r *nodeRenderer) renderLiteral(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*Literal)
	switch n.Context {
	case ContextCode:
		_, _ = w.WriteString("<code>")
		_, _ = w.Write(util.EscapeHTML(n.Value))
		_, _ = w.WriteString("</code>")
	case ContextCodeBlock:
		_, _ = w.WriteString("<pre><code>")
		_, _ = w.Write(util.EscapeHTML(n.Value))
		_, _ = w.WriteString("</code></pre>\n")
	default:
		_, _ = w.Write(util.EscapeHTML(n.Value))
	}
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderMacroSpan(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*MacroSpan)
	span := `<span ` + AttrExpandMacro + `="` + escapeAttr(n.Ref) + `"></span>`
	switch n.Context {
	case ContextCode:
		_, _ = w.WriteString("<code>" + span + "</code>")
	case ContextCodeBlock:
		_, _ = w.WriteString("<pre><code>" + span + "</code></pre>\n")
	default:
		_, _ = w.WriteString(span)
	}
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderAnchor(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*Anchor)
	if entering {
		_, _ = w.WriteString("<a")
		if n.ID != "" {
			_, _ = w.WriteString(` id="` + escapeAttr(n.ID) + `"`)
		}
		_, _ = w.WriteString(` href="#" ` + n.Attr + `="` + escapeAttr(n.Value) + `">`)
	} else {
		_, _ = w.WriteString("</a>")
	}
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderImage(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*Image)
	_, _ = w.WriteString("<img")
	if n.Macro != "" {
		_, _ = w.WriteString(` ` + AttrImageSourceMacro + `="` + escapeAttr(n.Macro) + `"`)
	}
	_, _ = w.WriteString(` src="` + escapeAttr(n.Src) + `"`)
	_, _ = w.WriteString(` alt="` + escapeAttr(n.Alt) + `"`)
	_, _ = w.WriteString(` title="` + escapeAttr(n.Alt) + `">`)
	return ast.WalkSkipChildren, nil
}

func (r *nodeRenderer) renderSectionMarker(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*SectionMarker)
	if n.ClosePrevious {
		_, _ = w.WriteString("</div>")
	}
	_, _ = w.WriteString(`<div id="` + escapeAttr(n.ID) + `" class="section" hidden="true">` + "\n")
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderSectionClose(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("</div>\n")
	}
	return ast.WalkContinue, nil
}

// escapeAttr escapes a value for a double-quoted HTML attribute.
func escapeAttr(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}
