// Package project loads, validates, and defaults weave project files.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the project file name weave looks for.
const DefaultFile = "weave.yml"

// Project holds the build configuration for one story.
type Project struct {
	Title     string   `yaml:"title"`
	Author    string   `yaml:"author,omitempty"`
	Start     string   `yaml:"start,omitempty"`     // id of the opening section, surfaced to the page shell
	Sources   []string `yaml:"sources,omitempty"`   // glob patterns relative to the project root
	Output    string   `yaml:"output,omitempty"`    // output directory relative to the project root
	Assets    []string `yaml:"assets,omitempty"`    // files or directories copied into the output verbatim
	Minify    *bool    `yaml:"minify,omitempty"`    // default true
	Highlight string   `yaml:"highlight,omitempty"` // chroma style name, empty disables highlighting
	Template  string   `yaml:"template,omitempty"`  // custom page shell, relative to the project root

	Root string `yaml:"-"` // directory the project file was loaded from
}

// Validate checks that required fields are present and sane.
func (p *Project) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	for _, pat := range p.Sources {
		if filepath.IsAbs(pat) {
			return fmt.Errorf("source pattern must be relative to the project root: %s", pat)
		}
	}
	return nil
}

// ApplyDefaults fills unset fields with their defaults.
func (p *Project) ApplyDefaults() {
	if len(p.Sources) == 0 {
		p.Sources = []string{"*.md"}
	}
	if p.Output == "" {
		p.Output = "build"
	}
	if p.Minify == nil {
		t := true
		p.Minify = &t
	}
}

// LoadFromEnv applies environment overrides.
// Precedence: WEAVE_* → project file value.
func (p *Project) LoadFromEnv() {
	if out := os.Getenv("WEAVE_OUTPUT"); out != "" {
		p.Output = out
	}
	if os.Getenv("WEAVE_NO_MINIFY") != "" {
		f := false
		p.Minify = &f
	}
}

// Minified reports whether minification is enabled.
func (p *Project) Minified() bool {
	return p.Minify == nil || *p.Minify
}

// Load reads and prepares the project file at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project file: %w", err)
	}

	p.Root = filepath.Dir(path)
	p.LoadFromEnv()
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes the project file, creating the directory if needed.
func (p *Project) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}
