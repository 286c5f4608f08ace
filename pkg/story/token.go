// token.go defines the macro token produced by the scanner.
package story

// Kind identifies the kind of a scanned macro.
type Kind int

const (
	KindSectionBegin Kind = iota // {{id}}
	KindSectionRef               // {@id}
	KindFunctionRef              // {#id}
	KindVariableRef              // {$id}
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSectionBegin:
		return "section-begin"
	case KindSectionRef:
		return "section-ref"
	case KindFunctionRef:
		return "function-ref"
	case KindVariableRef:
		return "variable-ref"
	}
	return "unknown"
}

// Sigil returns the reference sigil for k, or 0 for section declarations.
func (k Kind) Sigil() byte {
	switch k {
	case KindSectionRef:
		return '@'
	case KindFunctionRef:
		return '#'
	case KindVariableRef:
		return '$'
	}
	return 0
}

// Token is one scanned macro.
type Token struct {
	Kind       Kind
	Identifier string // without braces or sigil
	Start, End int    // [Start,End) byte span in the scanned literal
}

// Ref returns the runtime reference form: the sigil followed by the
// identifier, e.g. "$score" for {$score}.
func (t Token) Ref() string {
	if s := t.Kind.Sigil(); s != 0 {
		return string(s) + t.Identifier
	}
	return t.Identifier
}
