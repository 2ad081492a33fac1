package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"pystyle/internal/diag"
	"pystyle/internal/lexer"
	"pystyle/internal/source"
	"pystyle/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func (r *testReporter) messages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func lex(input string) ([]token.Token, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.py", []byte(input)))
	reporter := &testReporter{}
	return lexer.Tokenize(file, lexer.Options{Reporter: reporter}), reporter
}

func kindsOf(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		out = append(out, tok.Kind)
	}
	return out
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectTokens проверяет последовательность токенов без EOF
func expectTokens(t *testing.T, input string, expected ...token.Kind) {
	t.Helper()
	tokens, reporter := lex(input)
	got := kindsOf(tokens)
	if len(got) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(got), input, tokensToString(tokens), reporter.messages())
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (input %q)", i, expected[i], got[i], input)
		}
	}
	if len(reporter.diagnostics) != 0 {
		t.Errorf("unexpected diagnostics for %q: %v", input, reporter.messages())
	}
}

func TestLogicalLines(t *testing.T) {
	expectTokens(t, "x = 1\n",
		token.Ident, token.Assign, token.Number, token.Newline)
	expectTokens(t, "x",
		token.Ident, token.Newline)
	expectTokens(t, "")
	expectTokens(t, "\n\n# only a comment\n")
	expectTokens(t, "x = (1,\n     2)\n",
		token.Ident, token.Assign, token.LParen, token.Number, token.Comma, token.Number, token.RParen, token.Newline)
	expectTokens(t, "x = 1 + \\\n    2\n",
		token.Ident, token.Assign, token.Number, token.Plus, token.Number, token.Newline)
	expectTokens(t, "a; b\n",
		token.Ident, token.Semicolon, token.Ident, token.Newline)
}

func TestIndentation(t *testing.T) {
	expectTokens(t, "def f():\n    return 1\n",
		token.KwDef, token.Ident, token.LParen, token.RParen, token.Colon, token.Newline,
		token.Indent, token.KwReturn, token.Number, token.Newline,
		token.Dedent)
	expectTokens(t, "if a:\n\n    # c\n    b\nc\n",
		token.KwIf, token.Ident, token.Colon, token.Newline,
		token.Indent, token.Ident, token.Newline,
		token.Dedent, token.Ident, token.Newline)
	expectTokens(t, "if a:\n    if b:\n        c\nd",
		token.KwIf, token.Ident, token.Colon, token.Newline,
		token.Indent, token.KwIf, token.Ident, token.Colon, token.Newline,
		token.Indent, token.Ident, token.Newline,
		token.Dedent, token.Dedent, token.Ident, token.Newline)
	expectTokens(t, "if a:\n\tb\n",
		token.KwIf, token.Ident, token.Colon, token.Newline,
		token.Indent, token.Ident, token.Newline, token.Dedent)
	expectTokens(t, "class A:\n    def f(self):\n        pass\n",
		token.KwClass, token.Ident, token.Colon, token.Newline,
		token.Indent, token.KwDef, token.Ident, token.LParen, token.Ident, token.RParen, token.Colon, token.Newline,
		token.Indent, token.KwPass, token.Newline,
		token.Dedent, token.Dedent)
}

func TestOperatorsLongestMatch(t *testing.T) {
	expectTokens(t, "a **= b // c -> d := e ... != f\n",
		token.Ident, token.StarStarAssign, token.Ident, token.SlashSlash, token.Ident,
		token.Arrow, token.Ident, token.ColonAssign, token.Ident, token.Ellipsis,
		token.NotEq, token.Ident, token.Newline)
	expectTokens(t, "a <<= b >> c <= d @ e\n",
		token.Ident, token.ShlAssign, token.Ident, token.Shr, token.Ident,
		token.LtEq, token.Ident, token.At, token.Ident, token.Newline)
}

func TestKeywordsAndSoftKeywords(t *testing.T) {
	expectTokens(t, "match x:\n",
		token.Ident, token.Ident, token.Colon, token.Newline)
	expectTokens(t, "async def f(): await g()\n",
		token.KwAsync, token.KwDef, token.Ident, token.LParen, token.RParen, token.Colon,
		token.KwAwait, token.Ident, token.LParen, token.RParen, token.Newline)
	expectTokens(t, "имя = None\n",
		token.Ident, token.Assign, token.KwNone, token.Newline)
	expectTokens(t, "bar = rb\n",
		token.Ident, token.Assign, token.Ident, token.Newline)
}

func TestSingleTokens(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{`"abc"`, token.String},
		{`'a\'b'`, token.String},
		{`r"\d+"`, token.String},
		{`b'x'`, token.String},
		{`Rb"x"`, token.String},
		{`f"{x!r}"`, token.String},
		{`f"{d["k"]}"`, token.String},
		{`f'{{literal}}'`, token.String},
		{"\"\"\"a\n\"b\"\nc\"\"\"", token.String},
		{"0x_FF", token.Number},
		{"0o17", token.Number},
		{"0b1010", token.Number},
		{"0XaF", token.Number},
		{"0O7_7", token.Number},
		{"1_000", token.Number},
		{"3.14", token.Number},
		{".5", token.Number},
		{"10.", token.Number},
		{"1e-3", token.Number},
		{"2j", token.Number},
		{"1.5E+10J", token.Number},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, reporter := lex(tt.input)
			if len(reporter.diagnostics) != 0 {
				t.Fatalf("unexpected diagnostics: %v", reporter.messages())
			}
			if tokens[0].Kind != tt.kind || tokens[0].Text != tt.input {
				t.Fatalf("expected %v(%q), got %v", tt.kind, tt.input, tokensToString(tokens))
			}
			if tokens[1].Kind != token.Newline {
				t.Fatalf("expected the literal to fill the line, got %v", tokensToString(tokens))
			}
		})
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	tokens, _ := lex("# header\nx = 1  # note\n")
	if tokens[0].Kind != token.Ident {
		t.Fatalf("expected identifier first, got %v", tokensToString(tokens))
	}
	if c := tokens[0].Comments(); len(c) != 1 || c[0].Text != "# header" {
		t.Fatalf("expected header comment on the first token, got %+v", tokens[0].Leading)
	}
	nl := tokens[3]
	if nl.Kind != token.Newline {
		t.Fatalf("expected NEWLINE, got %v", nl.Kind)
	}
	if c := nl.Comments(); len(c) != 1 || c[0].Text != "# note" {
		t.Fatalf("expected inline comment before NEWLINE, got %+v", nl.Leading)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"x = 'abc\n", diag.LexUnterminatedString},
		{"x = \"\"\"never closed\n", diag.LexUnterminatedString},
		{"x = $\n", diag.LexUnknownChar},
		{"x = 1 ? 2\n", diag.LexUnknownChar},
		{"if a:\n        b\n    c\n", diag.LexInconsistentDedent},
		{"x = 0x\n", diag.LexBadNumber},
		{"x = 0b2\n", diag.LexBadNumber},
		{"x = 1e\n", diag.LexBadNumber},
		{"x = )\n", diag.LexUnbalancedBracket},
		{"x = (]\n", diag.LexUnbalancedBracket},
		{"x = 1 \\ y\n", diag.LexStrayContinuation},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, reporter := lex(tt.input)
			codes := reporter.codes()
			if len(codes) == 0 || codes[0] != tt.code {
				t.Fatalf("expected %s, got %v", tt.code.ID(), reporter.messages())
			}
			if tokens[len(tokens)-1].Kind != token.EOF {
				t.Fatal("lexing must always finish with EOF")
			}
		})
	}
}

func TestNextAfterEOF(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual("eof.py", []byte("x"))), lexer.Options{})
	for range 3 {
		lx.Next()
	}
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF after end of input, got %v", tok.Kind)
		}
	}
}

func TestSpansMatchText(t *testing.T) {
	input := "def foo(a, b=[]):\n    return a  # c\n"
	tokens, _ := lex(input)
	for _, tok := range tokens {
		if tok.Kind == token.Indent || tok.Kind == token.Dedent || tok.Kind == token.EOF {
			continue
		}
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("span text %q does not match token text %q", got, tok.Text)
		}
	}
}
