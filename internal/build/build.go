// Package build orchestrates one batch compilation of a story project:
// source globbing, per-file compilation, document assembly, minification,
// and asset copying.
package build

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/storyweave/weave/internal/project"
	"github.com/storyweave/weave/pkg/story"
)

// Result summarizes one build run.
type Result struct {
	Files  []string `json:"files"`
	Errors []string `json:"errors,omitempty"`
	Output string   `json:"output,omitempty"`

	// Failures holds the underlying errors behind Errors.
	Failures []error `json:"-"`
}

func (r *Result) fail(err error) {
	r.Failures = append(r.Failures, err)
	r.Errors = append(r.Errors, err.Error())
}

// Run compiles every source the project matches. A file that fails to
// compile is reported and skipped rather than aborting the batch, so
// authors get the complete error list in one pass; the document is only
// assembled and written when every file compiled.
func Run(p *project.Project) (*Result, error) {
	files, err := expandSources(p)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no sources matched %v", p.Sources)
	}

	var opts []story.Option
	if p.Highlight != "" {
		opts = append(opts, story.WithHighlighting(p.Highlight))
	}
	compiler := story.New(opts...)

	res := &Result{Files: files}
	var fragments []string
	for _, file := range files {
		src, err := os.ReadFile(filepath.Join(p.Root, file))
		if err != nil {
			res.fail(err)
			continue
		}
		out, err := compiler.Compile(file, src)
		if err != nil {
			res.fail(err)
			continue
		}
		fragments = append(fragments, out)
	}
	if len(res.Failures) > 0 {
		return res, fmt.Errorf("%d of %d files failed to compile", len(res.Failures), len(files))
	}

	doc, err := assemble(p, strings.Join(fragments, ""))
	if err != nil {
		return res, err
	}
	if p.Minified() {
		if doc, err = minifyHTML(doc); err != nil {
			return res, fmt.Errorf("failed to minify document: %w", err)
		}
	}

	outDir := filepath.Join(p.Root, p.Output)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return res, err
	}
	outFile := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(outFile, []byte(doc), 0644); err != nil {
		return res, err
	}
	res.Output = outFile

	if err := copyAssets(p, outDir); err != nil {
		return res, err
	}
	return res, nil
}

// expandSources resolves the project's source patterns into a sorted,
// deduplicated list of paths relative to the project root. Compilation
// order is pattern order, then lexical within a pattern, so builds are
// deterministic.
func expandSources(p *project.Project) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, pat := range p.Sources {
		matches, err := filepath.Glob(filepath.Join(p.Root, pat))
		if err != nil {
			return nil, fmt.Errorf("bad source pattern %q: %w", pat, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			rel, err := filepath.Rel(p.Root, m)
			if err != nil {
				rel = m
			}
			if !seen[rel] {
				seen[rel] = true
				files = append(files, rel)
			}
		}
	}
	return files, nil
}
