package parser

import (
	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/token"
)

// looksLikeMatch: 'match' - мягкое ключевое слово. Инструкцией match строка
// считается, только если заканчивается на ':' и за ней идёт блок из case.
func (p *Parser) looksLikeMatch() bool {
	next := p.peekAt(1)
	switch next.Kind {
	case token.Newline, token.EOF, token.Assign, token.Colon, token.Dot,
		token.Comma, token.Semicolon, token.RParen, token.RBracket:
		return false
	}
	if next.Kind.IsAugAssign() {
		return false
	}
	for i := p.pos + 1; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case token.Newline:
			return p.toks[i-1].Kind == token.Colon &&
				p.peekAt(i-p.pos+1).Kind == token.Indent &&
				p.peekAt(i-p.pos+2).IsSoft("case")
		case token.EOF:
			return false
		}
	}
	return false
}

// parseMatch: 'match' subject ':' NEWLINE INDENT case_block+ DEDENT
func (p *Parser) parseMatch() (ast.StmtID, bool) {
	start := p.advance()
	var data ast.MatchData
	if data.Subject = p.parseStarNamedExpressions(); !data.Subject.IsValid() {
		return ast.NoStmtID, false
	}
	if !p.expectColon() {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Newline, diag.SynExpectNewline, "expected newline after match subject"); !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Indent, diag.SynExpectIndent, "expected an indented block of 'case' clauses"); !ok {
		return ast.NoStmtID, false
	}

	for !p.at(token.Dedent) && !p.at(token.EOF) {
		if !p.atSoft("case") {
			p.err(diag.SynUnexpectedToken, "expected 'case', got "+describe(p.peek()))
			return ast.NoStmtID, false
		}
		cstart := p.advance()
		c := ast.MatchCase{}

		p.pattern++
		c.Pattern = p.parsePatterns()
		p.pattern--
		if !c.Pattern.IsValid() {
			return ast.NoStmtID, false
		}
		if p.at(token.KwIf) {
			p.advance()
			if c.Guard = p.parseNamedExpression(); !c.Guard.IsValid() {
				return ast.NoStmtID, false
			}
		}
		var ok bool
		if c.Body, ok = p.parseSuite(); !ok {
			return ast.NoStmtID, false
		}
		c.Span = p.spanFrom(cstart)
		data.Cases = append(data.Cases, c)
	}
	if p.at(token.Dedent) {
		p.advance()
	}
	return p.arenas.Stmts.NewMatch(p.spanFrom(start), data), true
}

// parsePatterns: open_sequence_pattern | pattern.
// Образцы разбираются выражениями; в режиме образца 'as' допустим после
// любого элемента, а тернарный if отключён ради guard.
func (p *Parser) parsePatterns() ast.ExprID {
	start := p.peek()
	first := p.parsePatternItem()
	if !first.IsValid() || !p.at(token.Comma) {
		return first
	}
	elts := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		if p.atOr(token.Colon, token.KwIf) {
			break
		}
		e := p.parsePatternItem()
		if !e.IsValid() {
			return ast.NoExprID
		}
		elts = append(elts, e)
	}
	return p.arenas.Exprs.New(ast.ExprTuple, p.spanFrom(start), elts...)
}

func (p *Parser) parsePatternItem() ast.ExprID {
	if !p.at(token.Star) {
		return p.parseExpression()
	}
	start := p.advance()
	name, ok := p.expectIdent("a capture name after '*'")
	if !ok {
		return ast.NoExprID
	}
	capture := p.arenas.Exprs.NewNamed(ast.ExprName, name.Span, name.Text)
	return p.arenas.Exprs.New(ast.ExprStarred, p.spanFrom(start), capture)
}
