package lexer

import (
	"strings"

	"pystyle/internal/diag"
	"pystyle/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Token.Text - ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.cursor.PeekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			lx.cursor.BumpRune()
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnknownChar, sp, "invalid character '"+lx.text(sp)+"'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.BumpRune()
	}

	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) || lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.cursor.PeekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		lx.cursor.BumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	// Проверка на ключевое слово (регистрозависимо)
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// tryPrefixedString распознаёт r"...", b'...', f"""...""" и их комбинации.
// Если за буквами не следует кавычка, курсор не двигается.
func (lx *Lexer) tryPrefixedString() (token.Token, bool) {
	start := lx.cursor.Mark()
	n := 0
	for n < 2 && isIdentStartByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	q := lx.cursor.Peek()
	prefix := lx.cursor.TextFrom(start)
	if (q != '"' && q != '\'') || !validStringPrefix(prefix) {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	return lx.scanString(start, prefix), true
}

func validStringPrefix(p string) bool {
	switch strings.ToLower(p) {
	case "r", "u", "b", "f", "t", "br", "rb", "fr", "rf", "tr", "rt":
		return true
	}
	return false
}
