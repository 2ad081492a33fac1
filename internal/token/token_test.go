package token_test

import (
	"testing"

	"pystyle/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := map[string]token.Kind{
		"def":    token.KwDef,
		"class":  token.KwClass,
		"None":   token.KwNone,
		"lambda": token.KwLambda,
		"yield":  token.KwYield,
		"async":  token.KwAsync,
	}
	for lexeme, want := range cases {
		got, ok := token.LookupKeyword(lexeme)
		if !ok || got != want {
			t.Fatalf("LookupKeyword(%q) = %v,%v want %v", lexeme, got, ok, want)
		}
	}

	// soft keywords и регистр
	for _, s := range []string{"match", "case", "type", "_", "none", "DEF", "print"} {
		if _, ok := token.LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !token.KwDef.IsKeyword() || token.Ident.IsKeyword() || token.Plus.IsKeyword() {
		t.Fatal("IsKeyword misclassified kinds")
	}
	for _, k := range []token.Kind{token.PlusAssign, token.StarStarAssign, token.ShrAssign} {
		if !k.IsAugAssign() {
			t.Fatalf("%v must be an augmented assignment", k)
		}
	}
	for _, k := range []token.Kind{token.Assign, token.ColonAssign, token.EqEq} {
		if k.IsAugAssign() {
			t.Fatalf("%v must not be an augmented assignment", k)
		}
	}
	if token.StarStarAssign.String() != "**=" || token.Indent.String() != "INDENT" {
		t.Fatalf("unexpected names %q %q", token.StarStarAssign, token.Indent)
	}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []token.Kind{token.Number, token.String, token.KwNone, token.Ellipsis} {
		if !(token.Token{Kind: k}).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	if (token.Token{Kind: token.Ident}).IsLiteral() {
		t.Fatal("identifier must not be literal")
	}
	if !(token.Token{Kind: token.Ident, Text: "match"}).IsSoft("match") {
		t.Fatal("match identifier must be recognised as soft keyword")
	}
}
