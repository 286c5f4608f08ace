package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuin/goldmark/ast"
)

type event struct {
	node     ast.Node
	entering bool
}

func collectEvents(cur *cursor) []event {
	var events []event
	for ok := true; ok; ok = cur.step() {
		events = append(events, event{cur.node, cur.entering})
	}
	return events
}

func TestCursor_VisitsEveryNodeTwice(t *testing.T) {
	doc := ast.NewDocument()
	p1 := ast.NewParagraph()
	doc.AppendChild(doc, p1)
	s1 := ast.NewString([]byte("a"))
	p1.AppendChild(p1, s1)
	p2 := ast.NewParagraph()
	doc.AppendChild(doc, p2)

	got := collectEvents(newCursor(doc))

	want := []event{
		{doc, true},
		{p1, true},
		{s1, true},
		{s1, false},
		{p1, false},
		{p2, true},
		{p2, false},
		{doc, false},
	}
	assert.Equal(t, want, got)
}

func TestCursor_ResumeContinuesFromInsertedNode(t *testing.T) {
	doc := ast.NewDocument()
	p1 := ast.NewParagraph()
	doc.AppendChild(doc, p1)
	p2 := ast.NewParagraph()
	doc.AppendChild(doc, p2)

	replacement := ast.NewParagraph()

	cur := newCursor(doc)
	var got []event
	for ok := true; ok; ok = cur.step() {
		got = append(got, event{cur.node, cur.entering})
		// Splice at p1's enter event, the way the rewriters do.
		if cur.node == p1 && cur.entering {
			doc.ReplaceChild(doc, p1, replacement)
			cur.resume(replacement, true)
		}
	}

	want := []event{
		{doc, true},
		{p1, true},
		{replacement, true},
		{replacement, false},
		{p2, true},
		{p2, false},
		{doc, false},
	}
	assert.Equal(t, want, got)
}

func TestCursor_ResumeOnExitSkipsSubtree(t *testing.T) {
	doc := ast.NewDocument()
	p1 := ast.NewParagraph()
	doc.AppendChild(doc, p1)
	s1 := ast.NewString([]byte("a"))
	p1.AppendChild(p1, s1)
	p2 := ast.NewParagraph()
	doc.AppendChild(doc, p2)

	replacement := ast.NewParagraph()
	inner := ast.NewString([]byte("b"))
	replacement.AppendChild(replacement, inner)

	cur := newCursor(doc)
	var got []event
	for ok := true; ok; ok = cur.step() {
		got = append(got, event{cur.node, cur.entering})
		if cur.node == p1 && cur.entering {
			doc.ReplaceChild(doc, p1, replacement)
			// Resuming at the exit event leaves the replacement's own
			// children unvisited.
			cur.resume(replacement, false)
		}
	}

	want := []event{
		{doc, true},
		{p1, true},
		{replacement, false},
		{p2, true},
		{p2, false},
		{doc, false},
	}
	assert.Equal(t, want, got)
}

func TestNormalize_MergesAdjacentTextLeaves(t *testing.T) {
	doc := ast.NewDocument()
	para := ast.NewParagraph()
	doc.AppendChild(doc, para)
	para.AppendChild(para, ast.NewString([]byte("gold: {$go")))
	para.AppendChild(para, ast.NewString([]byte("ld} coins")))

	fs := &fileState{sections: map[string]bool{}}
	fs.normalize(doc)

	assert.Equal(t, 1, para.ChildCount())
	lit, ok := para.FirstChild().(*Literal)
	assert.True(t, ok)
	assert.Equal(t, "gold: {$gold} coins", string(lit.Value))
	assert.Equal(t, ContextText, lit.Context)
}

func TestNormalize_LeavesMacroFreeTextAlone(t *testing.T) {
	doc := ast.NewDocument()
	para := ast.NewParagraph()
	doc.AppendChild(doc, para)
	para.AppendChild(para, ast.NewString([]byte("plain ")))
	para.AppendChild(para, ast.NewString([]byte("prose")))

	fs := &fileState{sections: map[string]bool{}}
	fs.normalize(doc)

	assert.Equal(t, 2, para.ChildCount())
	_, isString := para.FirstChild().(*ast.String)
	assert.True(t, isString)
}
