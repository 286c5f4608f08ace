package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeProject(t, "title: My Tale\n")

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "My Tale", p.Title)
	assert.Equal(t, []string{"*.md"}, p.Sources)
	assert.Equal(t, "build", p.Output)
	assert.True(t, p.Minified())
	assert.Equal(t, filepath.Dir(path), p.Root)
}

func TestLoad_ReadsAllFields(t *testing.T) {
	path := writeProject(t, `title: My Tale
author: A. Nonymous
start: Start
sources:
  - chapters/*.md
output: dist
assets:
  - engine.js
minify: false
highlight: monokai
template: shell.html
`)

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "A. Nonymous", p.Author)
	assert.Equal(t, "Start", p.Start)
	assert.Equal(t, []string{"chapters/*.md"}, p.Sources)
	assert.Equal(t, "dist", p.Output)
	assert.Equal(t, []string{"engine.js"}, p.Assets)
	assert.False(t, p.Minified())
	assert.Equal(t, "monokai", p.Highlight)
	assert.Equal(t, "shell.html", p.Template)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), DefaultFile))
		assert.ErrorContains(t, err, "failed to read project file")
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeProject(t, "title: [unclosed\n"))
		assert.ErrorContains(t, err, "failed to parse project file")
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := Load(writeProject(t, "output: dist\n"))
		assert.ErrorContains(t, err, "title is required")
	})

	t.Run("absolute source pattern", func(t *testing.T) {
		_, err := Load(writeProject(t, "title: T\nsources:\n  - /etc/*.md\n"))
		assert.ErrorContains(t, err, "must be relative")
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WEAVE_OUTPUT", "public")
	t.Setenv("WEAVE_NO_MINIFY", "1")

	p, err := Load(writeProject(t, "title: T\noutput: dist\nminify: true\n"))
	require.NoError(t, err)

	assert.Equal(t, "public", p.Output)
	assert.False(t, p.Minified())
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", DefaultFile)

	p := &Project{Title: "T", Author: "A", Start: "Start"}
	require.NoError(t, p.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "T", loaded.Title)
	assert.Equal(t, "A", loaded.Author)
	assert.Equal(t, "Start", loaded.Start)
}
