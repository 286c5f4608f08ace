// scanner.go extracts a single macro token from a literal buffer.
package story

import "fmt"

// scanMacro scans the macro whose opening brace sits at start. The token
// ends at the brace that returns the depth counter to zero; a backslash
// makes the following byte inert, so escaped braces neither open nor close
// anything. The byte after the opening brace selects the kind.
func scanMacro(lit []byte, start int) (Token, error) {
	if start+1 >= len(lit) {
		return Token{}, ErrUnterminatedMacro
	}

	var kind Kind
	switch lit[start+1] {
	case '{':
		kind = KindSectionBegin
	case '@':
		kind = KindSectionRef
	case '#':
		kind = KindFunctionRef
	case '$':
		kind = KindVariableRef
	default:
		return Token{}, fmt.Errorf("%w: {%c", ErrUnknownMacro, lit[start+1])
	}

	depth := 0
	for i := start; i < len(lit); i++ {
		switch lit[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return newToken(kind, lit, start, i+1)
			}
		}
	}
	return Token{}, ErrUnterminatedMacro
}

func newToken(kind Kind, lit []byte, start, end int) (Token, error) {
	if kind == KindSectionBegin {
		// {{id}} needs both closers adjacent; anything else means the inner
		// pair closed early and the declaration never terminated cleanly.
		if end-start < 5 || lit[end-2] != '}' {
			return Token{}, ErrUnterminatedMacro
		}
		return Token{Kind: kind, Identifier: string(lit[start+2 : end-2]), Start: start, End: end}, nil
	}
	return Token{Kind: kind, Identifier: string(lit[start+2 : end-1]), Start: start, End: end}, nil
}
