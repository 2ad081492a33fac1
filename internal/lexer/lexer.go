package lexer

import (
	"pystyle/internal/diag"
	"pystyle/internal/source"
	"pystyle/internal/token"
)

const tabSize = 8

type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	hold    []token.Trivia // накопленные leading trivia
	pending []token.Token  // готовые к выдаче токены (INDENT/DEDENT + значимый)

	indents     []int         // стек уровней отступа, всегда начинается с 0
	brackets    []token.Token // открытые скобки; внутри них NEWLINE не выдаётся
	atLineStart bool
	lineHasCode bool // на текущей логической строке уже был значимый токен
	done        bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		indents:     []int{0},
		atLineStart: true,
	}
}

// Tokenize lexes the whole file. The result always ends with EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	out := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// Next возвращает следующий токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	for len(lx.pending) == 0 {
		lx.fill()
	}
	tok := lx.pending[0]
	lx.pending = lx.pending[1:]
	return tok
}

// fill кладёт в pending хотя бы один токен.
func (lx *Lexer) fill() {
	if lx.done {
		lx.pending = append(lx.pending, token.Token{Kind: token.EOF, Span: lx.emptySpan()})
		return
	}

	if lx.atLineStart && len(lx.brackets) == 0 {
		if !lx.scanIndentation() {
			lx.finish()
			return
		}
	}

	lx.collectLeadingTrivia()
	if lx.cursor.EOF() {
		lx.finish()
		return
	}

	if lx.cursor.Peek() == '\n' {
		// скобки закрыты, иначе перевод строки ушёл бы в trivia
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.emit(token.Token{Kind: token.Newline, Span: sp, Text: "\n"})
		lx.atLineStart = true
		lx.lineHasCode = false
		return
	}

	tok := lx.scanToken()
	lx.trackBrackets(tok)
	lx.emit(tok)
	lx.lineHasCode = true
}

// emit прикрепляет накопленные trivia к токену и ставит его в очередь.
func (lx *Lexer) emit(tok token.Token) {
	if len(lx.hold) > 0 {
		tok.Leading = lx.hold
		lx.hold = nil
	}
	lx.pending = append(lx.pending, tok)
}

// finish закрывает последнюю логическую строку и все открытые блоки.
func (lx *Lexer) finish() {
	sp := lx.emptySpan()
	// при незакрытой скобке строка не закончена: парсер сам сообщит о ней
	if lx.lineHasCode && len(lx.brackets) == 0 {
		lx.pending = append(lx.pending, token.Token{Kind: token.Newline, Span: sp})
		lx.lineHasCode = false
	}
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.pending = append(lx.pending, token.Token{Kind: token.Dedent, Span: sp})
	}
	// Leading из hold не приклеиваем к EOF
	lx.hold = nil
	lx.pending = append(lx.pending, token.Token{Kind: token.EOF, Span: sp})
	lx.done = true
}

// scanIndentation пропускает пустые строки и строки из одних комментариев,
// затем сравнивает отступ первой строки с кодом со стеком уровней.
// Возвращает false, если файл закончился.
func (lx *Lexer) scanIndentation() bool {
	for {
		start := lx.cursor.Mark()
		col := lx.cursor.Indent(tabSize)
		lx.holdFrom(start, token.TriviaSpace)

		if lx.cursor.EOF() {
			return false
		}
		if lx.cursor.Peek() == '#' {
			lx.scanComment()
			if lx.cursor.EOF() {
				return false
			}
		}
		if lx.cursor.Peek() == '\n' {
			nl := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.holdFrom(nl, token.TriviaNewline)
			continue
		}

		lx.applyIndent(col)
		lx.atLineStart = false
		return true
	}
}

func (lx *Lexer) applyIndent(col int) {
	sp := lx.emptySpan()
	top := lx.indents[len(lx.indents)-1]
	switch {
	case col > top:
		lx.indents = append(lx.indents, col)
		lx.pending = append(lx.pending, token.Token{Kind: token.Indent, Span: sp})
	case col < top:
		for len(lx.indents) > 1 && col < lx.indents[len(lx.indents)-1] {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.pending = append(lx.pending, token.Token{Kind: token.Dedent, Span: sp})
		}
		if col != lx.indents[len(lx.indents)-1] {
			lx.errLex(diag.LexInconsistentDedent, sp, "unindent does not match any outer indentation level")
			// выравниваем стек, чтобы не сыпать ошибками на каждой строке
			lx.indents = append(lx.indents, col)
		}
	}
}

func (lx *Lexer) trackBrackets(tok token.Token) {
	switch tok.Kind {
	case token.LParen, token.LBracket, token.LBrace:
		lx.brackets = append(lx.brackets, tok)
	case token.RParen, token.RBracket, token.RBrace:
		if len(lx.brackets) == 0 {
			lx.errLex(diag.LexUnbalancedBracket, tok.Span, "unmatched '"+tok.Text+"'")
			return
		}
		open := lx.brackets[len(lx.brackets)-1]
		lx.brackets = lx.brackets[:len(lx.brackets)-1]
		if closerOf(open.Kind) != tok.Kind {
			lx.errLex(diag.LexUnbalancedBracket, tok.Span,
				"closing '"+tok.Text+"' does not match opening '"+open.Text+"'")
		}
	}
}

func closerOf(k token.Kind) token.Kind {
	switch k {
	case token.LParen:
		return token.RParen
	case token.LBracket:
		return token.RBracket
	default:
		return token.RBrace
	}
}

// scanToken выбирает сканер по текущему байту.
func (lx *Lexer) scanToken() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		if tok, ok := lx.tryPrefixedString(); ok {
			return tok
		}
		return lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString(lx.cursor.Mark(), "")
	case ch == '\\':
		// продолжение строки без перевода строки сразу за ним
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexStrayContinuation, sp, "unexpected character after line continuation character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: "\\"}
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
