// template.go wraps compiled fragments in the playable page shell.
package build

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/storyweave/weave/internal/project"
)

//go:embed assets/shell.html.tmpl
var defaultShell string

type shellData struct {
	Title    string
	Author   string
	Start    string
	Sections template.HTML
}

// assemble renders the page shell around the concatenated section markup.
// Projects may point Template at their own shell; it receives the same
// fields as the embedded default.
func assemble(p *project.Project, fragments string) (string, error) {
	shell := defaultShell
	if p.Template != "" {
		data, err := os.ReadFile(filepath.Join(p.Root, p.Template))
		if err != nil {
			return "", fmt.Errorf("failed to read template: %w", err)
		}
		shell = string(data)
	}

	tmpl, err := template.New("shell").Parse(shell)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, shellData{
		Title:    p.Title,
		Author:   p.Author,
		Start:    p.Start,
		Sections: template.HTML(fragments),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}
