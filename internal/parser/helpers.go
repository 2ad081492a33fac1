package parser

import (
	"fmt"

	"pystyle/internal/diag"
	"pystyle/internal/source"
	"pystyle/internal/token"
)

// advance - съедает следующий токен и обновляет lastSpan.
// Синтетические NEWLINE/INDENT/DEDENT не двигают lastSpan, чтобы span блока
// заканчивался на последнем реальном токене.
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind == token.EOF {
		return tok
	}
	p.pos++
	switch tok.Kind {
	case token.Newline, token.Indent, token.Dedent, token.Invalid:
	default:
		p.lastSpan = tok.Span
	}
	return tok
}

// spanFrom - span от начала start до последнего съеденного токена.
func (p *Parser) spanFrom(start token.Token) source.Span {
	return start.Span.Cover(p.lastSpan)
}

// getDiagnosticSpan - возвращает лучший span для диагностики.
// Для пустого EOF используем позицию после lastSpan.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && peek.Span.Empty() && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect - ожидаем конкретный токен. Если нет - репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diagSpan, fmt.Sprintf("%s, got %s", msg, describe(p.peek())))
	return token.Token{Kind: token.Invalid, Span: diagSpan}, false
}

func (p *Parser) expectColon() bool {
	_, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':'")
	return ok
}

func (p *Parser) expectIdent(what string) (token.Token, bool) {
	return p.expect(token.Ident, diag.SynUnexpectedToken, "expected "+what)
}

// expectCloser закрывает скобку open; при EOF сообщает о незакрытой скобке.
func (p *Parser) expectCloser(open token.Token, closer token.Kind) bool {
	if p.at(closer) {
		p.advance()
		return true
	}
	if p.at(token.EOF) {
		p.reportWithNote(diag.SynUnclosedDelimiter, open.Span,
			fmt.Sprintf("'%s' was never closed", open.Text), p.getDiagnosticSpan(), "end of file reached here")
		return false
	}
	p.reportWithNote(diag.SynUnexpectedToken, p.getDiagnosticSpan(),
		fmt.Sprintf("expected '%s', got %s", closer, describe(p.peek())), open.Span, "to match this '"+open.Text+"'")
	return false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) bool {
	return p.reportWithNote(code, sp, msg, source.Span{}, "")
}

func (p *Parser) reportWithNote(code diag.Code, sp source.Span, msg string, noteSpan source.Span, note string) bool {
	if p.quiet > 0 {
		p.quietFailed = true
		return false
	}
	p.opts.CurrentErrors++
	if p.opts.Reporter == nil || (p.opts.MaxErrors != 0 && p.opts.CurrentErrors > p.opts.MaxErrors) {
		return false
	}
	b := diag.ReportError(p.opts.Reporter, code, sp, msg)
	if note != "" {
		b.WithNote(noteSpan, note)
	}
	b.Emit()
	return true
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Newline:
		return "newline"
	case token.Indent:
		return "indent"
	case token.Dedent:
		return "dedent"
	}
	return "'" + tok.Text + "'"
}
