package story

import (
	"errors"
	"fmt"
)

// Compile error kinds. All are author-facing mistakes in macro syntax or
// placement; each aborts the file being compiled while the surrounding
// build keeps going with the remaining files.
var (
	ErrUnterminatedMacro       = errors.New("unterminated macro")
	ErrUnknownMacro            = errors.New("unknown macro")
	ErrUnrecognizedMacro       = errors.New("unrecognized macro reference")
	ErrInvalidSectionPlacement = errors.New("section declaration must be the sole content of a top-level paragraph")
	ErrSectionAsImageSource    = errors.New("a section reference cannot be an image source")
	ErrInvalidLinkMacro        = errors.New("a variable reference cannot be a link target")
	ErrDuplicateSection        = errors.New("duplicate section id")
	ErrMissingLeadingSection   = errors.New("document must begin with a section declaration")
)

// CompileError carries the failing file and a best-effort source position.
// Position tracking degrades after tree splicing, so Line may be zero; the
// message then falls back to the file name alone.
type CompileError struct {
	File   string
	Line   int // 1-based, 0 when unknown
	Column int
	Err    error
}

func (e *CompileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %v", e.File, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }
