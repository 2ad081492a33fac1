package lexer

import (
	"pystyle/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ', '\t', '\f' коалесцируются в один TriviaSpace
// - # ... до \n -> TriviaComment (сам \n не съедаем)
// - \ + \n -> TriviaContinuation
// - внутри скобок \n -> TriviaNewline
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == ' ' || b == '\t' || b == '\f':
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\f' {
					break
				}
				lx.cursor.Bump()
			}
			lx.holdFrom(start, token.TriviaSpace)

		case b == '#':
			lx.scanComment()

		case b == '\\':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '\\' || b1 != '\n' {
				return
			}
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.holdFrom(start, token.TriviaContinuation)

		case b == '\n' && len(lx.brackets) > 0:
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.holdFrom(start, token.TriviaNewline)

		default:
			return
		}
	}
}

func (lx *Lexer) scanComment() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.holdFrom(start, token.TriviaComment)
}

func (lx *Lexer) holdFrom(start Mark, kind token.TriviaKind) {
	sp := lx.cursor.SpanFrom(start)
	if sp.Empty() {
		return
	}
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}
