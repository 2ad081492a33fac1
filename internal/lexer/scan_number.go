package lexer

import (
	"pystyle/internal/diag"
	"pystyle/internal/token"
)

// scanNumber: 0x/0o/0b целые, десятичные, float с экспонентой, мнимые (j).
// '_' допускается между цифрами.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	bad := false

	if pred := radixDigits(lx.cursor.PeekAt(1)); pred != nil && lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		lx.cursor.Bump()
		if lx.scanDigits(pred) == 0 {
			bad = true
		}
	} else {
		lx.scanDigits(isDec)
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
			lx.scanDigits(isDec)
		}
		if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
			lx.cursor.Bump()
			if s := lx.cursor.Peek(); s == '+' || s == '-' {
				lx.cursor.Bump()
			}
			if lx.scanDigits(isDec) == 0 {
				bad = true
			}
		}
		if b := lx.cursor.Peek(); b == 'j' || b == 'J' {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if bad {
		lx.errLex(diag.LexBadNumber, sp, "invalid number literal '"+lx.text(sp)+"'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	return token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
}

// scanDigits съедает цифры и '_' и возвращает количество цифр.
func (lx *Lexer) scanDigits(pred func(byte) bool) int {
	n := 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if pred(b) {
			n++
		} else if b != '_' {
			break
		}
		lx.cursor.Bump()
	}
	return n
}
