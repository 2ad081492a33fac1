package token

import (
	"pystyle/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string or constant literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, KwTrue, KwFalse, KwNone, Ellipsis:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsSoft reports whether the token is the identifier name used as a soft keyword.
func (t Token) IsSoft(name string) bool { return t.Kind == Ident && t.Text == name }

// Comments returns the comment trivia attached in front of the token.
func (t Token) Comments() []Trivia {
	var out []Trivia
	for _, tr := range t.Leading {
		if tr.Kind == TriviaComment {
			out = append(out, tr)
		}
	}
	return out
}
