package lexer

import (
	"strings"

	"pystyle/internal/diag"
	"pystyle/internal/token"
)

// scanString сканирует строковый литерал. Курсор стоит на открывающей кавычке,
// start указывает на начало префикса.
func (lx *Lexer) scanString(start Mark, prefix string) token.Token {
	formatted := strings.ContainsAny(prefix, "fFtT")
	if !lx.scanStringBody(formatted) {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.String, Span: sp, Text: lx.text(sp)}
}

// scanStringBody съедает литерал от открывающей до закрывающей кавычки.
// Escape-последовательности не валидируются: '\' всегда съедает следующий байт,
// в том числе в raw-строках, где он тоже не даёт кавычке закрыть литерал.
// Внутри {} f-строки кавычки открывают вложенные литералы.
func (lx *Lexer) scanStringBody(formatted bool) bool {
	q := lx.cursor.Bump()
	triple := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == q && b1 == q {
		lx.cursor.Bump()
		lx.cursor.Bump()
		triple = true
	}

	depth := 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
		case depth == 0 && b == q:
			if !triple {
				lx.cursor.Bump()
				return true
			}
			if _, b1, b2, ok := lx.cursor.Peek3(); ok && b1 == q && b2 == q {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.cursor.Bump()
				return true
			}
			lx.cursor.Bump()
		case b == '\n' && !triple && depth == 0:
			return false
		case formatted && b == '{':
			if b0, b1, ok := lx.cursor.Peek2(); depth == 0 && ok && b0 == '{' && b1 == '{' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
			depth++
			lx.cursor.Bump()
		case formatted && b == '}' && depth > 0:
			depth--
			lx.cursor.Bump()
		case depth > 0 && (b == '"' || b == '\''):
			if !lx.scanStringBody(false) {
				return false
			}
		default:
			lx.cursor.Bump()
		}
	}
	return false
}
