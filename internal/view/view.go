// Package view provides terminal output for weave commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Renderer writes human- or machine-readable command output.
type Renderer struct {
	writer io.Writer
	json   bool
}

// NewRenderer creates a renderer. With jsonOut set, commands emit one
// machine-readable report instead of styled lines.
func NewRenderer(jsonOut, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	return &Renderer{writer: os.Stdout, json: jsonOut}
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// JSON reports whether machine-readable output was requested.
func (r *Renderer) JSON() bool { return r.json }

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	green.Fprintln(r.writer, "✓ "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	red.Fprintln(r.writer, "✗ "+msg)
}

// Warnf prints a warning.
func (r *Renderer) Warnf(format string, args ...any) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(r.writer, "! "+format+"\n", args...)
}

// Summary prints a key-value line with a bold key.
func (r *Renderer) Summary(key, value string) {
	bold := color.New(color.Bold)
	bold.Fprintf(r.writer, "%s: ", key)
	fmt.Fprintln(r.writer, value)
}

// RenderJSON renders an object as indented JSON.
func (r *Renderer) RenderJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}
