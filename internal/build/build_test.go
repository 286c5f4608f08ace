package build

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyweave/weave/internal/project"
	"github.com/storyweave/weave/pkg/story"
)

func testProject(t *testing.T) *project.Project {
	t.Helper()
	p := &project.Project{Title: "My Tale", Start: "Start", Root: t.TempDir()}
	p.ApplyDefaults()
	return p
}

func writeSource(t *testing.T, p *project.Project, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(p.Root, name), []byte(content), 0644))
}

func boolPtr(b bool) *bool { return &b }

func TestRun_CompilesProject(t *testing.T) {
	p := testProject(t)
	writeSource(t, p, "story.md", "{{Start}}\n\nGo [in]({@Cave}).\n\n{{Cave}}\n\nDark.\n")

	res, err := Run(p)
	require.NoError(t, err)

	assert.Equal(t, []string{"story.md"}, res.Files)
	assert.Empty(t, res.Errors)
	assert.Equal(t, filepath.Join(p.Root, "build", "index.html"), res.Output)

	doc, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<title>My Tale</title>")
	assert.Contains(t, string(doc), `data-start="Start"`)
	assert.Contains(t, string(doc), `data-goto-section="Cave"`)
	assert.Contains(t, string(doc), `id="Cave"`)
}

func TestRun_ConcatenatesFilesInOrder(t *testing.T) {
	p := testProject(t)
	writeSource(t, p, "a.md", "{{Start}}\n\nFirst.\n")
	writeSource(t, p, "b.md", "{{Later}}\n\nSecond.\n")

	res, err := Run(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.md"}, res.Files)

	doc, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	first := strings.Index(string(doc), `id="Start"`)
	second := strings.Index(string(doc), `id="Later"`)
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestRun_ContinuesPastFailingFiles(t *testing.T) {
	p := testProject(t)
	writeSource(t, p, "a.md", "{{Start}}\n\nFine.\n")
	writeSource(t, p, "b.md", "{{B}}\n\nBroken {@Foo\n")
	writeSource(t, p, "c.md", "No leading section.\n")

	res, err := Run(p)
	require.Error(t, err)
	assert.ErrorContains(t, err, "2 of 3 files failed to compile")

	// Every failure is collected, and nothing is written.
	require.Len(t, res.Failures, 2)
	assert.ErrorIs(t, res.Failures[0], story.ErrUnterminatedMacro)
	assert.ErrorIs(t, res.Failures[1], story.ErrMissingLeadingSection)
	assert.NoFileExists(t, filepath.Join(p.Root, "build", "index.html"))
}

func TestRun_NoSources(t *testing.T) {
	p := testProject(t)

	_, err := Run(p)
	assert.ErrorContains(t, err, "no sources matched")
}

func TestRun_Unminified(t *testing.T) {
	p := testProject(t)
	p.Minify = boolPtr(false)
	writeSource(t, p, "story.md", "{{Start}}\n\nHello.\n")

	res, err := Run(p)
	require.NoError(t, err)

	doc, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<p>Hello.</p>\n")
}

func TestRun_CopiesAssets(t *testing.T) {
	p := testProject(t)
	p.Assets = []string{"engine.js", "static"}
	writeSource(t, p, "story.md", "{{Start}}\n\nHello.\n")
	writeSource(t, p, "engine.js", "console.log('hi');\n")
	require.NoError(t, os.MkdirAll(filepath.Join(p.Root, "static"), 0755))
	writeSource(t, p, filepath.Join("static", "story.css"), "body {}\n")

	_, err := Run(p)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(p.Root, "build", "engine.js"))
	assert.FileExists(t, filepath.Join(p.Root, "build", "static", "story.css"))
}

func TestRun_MissingAsset(t *testing.T) {
	p := testProject(t)
	p.Assets = []string{"engine.js"}
	writeSource(t, p, "story.md", "{{Start}}\n\nHello.\n")

	_, err := Run(p)
	assert.ErrorContains(t, err, "asset engine.js")
}

func TestRun_CustomTemplate(t *testing.T) {
	p := testProject(t)
	p.Template = "shell.html"
	writeSource(t, p, "story.md", "{{Start}}\n\nHello.\n")
	writeSource(t, p, "shell.html", "<html><body data-story=\"{{.Title}}\">{{.Sections}}</body></html>")

	res, err := Run(p)
	require.NoError(t, err)

	doc, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Contains(t, string(doc), `data-story="My Tale"`)
	assert.Contains(t, string(doc), `id="Start"`)
}

func TestExpandSources_SortedAndDeduplicated(t *testing.T) {
	p := testProject(t)
	p.Sources = []string{"*.md", "a.md"}
	writeSource(t, p, "b.md", "x")
	writeSource(t, p, "a.md", "x")

	files, err := expandSources(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.md"}, files)
}

func TestExpandSources_SkipsDirectories(t *testing.T) {
	p := testProject(t)
	p.Sources = []string{"*"}
	writeSource(t, p, "a.md", "x")
	require.NoError(t, os.MkdirAll(filepath.Join(p.Root, "chapters"), 0755))

	files, err := expandSources(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md"}, files)
}
