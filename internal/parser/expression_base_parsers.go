package parser

import (
	"strings"

	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/token"
)

func (p *Parser) parseAtom() ast.ExprID {
	tok := p.peek()
	exprs := p.arenas.Exprs
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return exprs.NewNamed(ast.ExprName, tok.Span, tok.Text)
	case token.Number, token.KwTrue, token.KwFalse, token.KwNone, token.Ellipsis:
		p.advance()
		return exprs.NewNamed(ast.ExprConstant, tok.Span, tok.Text)
	case token.String:
		return p.parseStrings()
	case token.LParen:
		return p.parseParenthesized()
	case token.LBracket:
		return p.parseListDisplay()
	case token.LBrace:
		return p.parseBraceDisplay()
	case token.Invalid:
		// лексер уже сообщил об ошибке
		if p.quiet > 0 {
			p.quietFailed = true
		}
		return ast.NoExprID
	}
	p.err(diag.SynExpectExpression, "expected expression, got "+describe(tok))
	return ast.NoExprID
}

// parseStrings склеивает соседние строковые литералы в одну константу.
func (p *Parser) parseStrings() ast.ExprID {
	start := p.advance()
	if !p.at(token.String) {
		return p.arenas.Exprs.NewNamed(ast.ExprConstant, start.Span, start.Text)
	}
	var sb strings.Builder
	sb.WriteString(start.Text)
	for p.at(token.String) {
		sb.WriteByte(' ')
		sb.WriteString(p.advance().Text)
	}
	return p.arenas.Exprs.NewNamed(ast.ExprConstant, p.spanFrom(start), sb.String())
}

// parseParenthesized: '(' ')' | '(' yield ')' | группа | кортеж | генератор
func (p *Parser) parseParenthesized() ast.ExprID {
	open := p.advance()
	exprs := p.arenas.Exprs
	if p.at(token.RParen) {
		p.advance()
		return exprs.New(ast.ExprTuple, p.spanFrom(open))
	}
	if p.at(token.KwYield) {
		v := p.parseYield()
		if !v.IsValid() || !p.expectCloser(open, token.RParen) {
			return ast.NoExprID
		}
		return v
	}

	first := p.parseStarItem(true)
	if !first.IsValid() {
		return ast.NoExprID
	}
	if p.atComprehension() {
		return p.closeComprehension(ast.ExprGenerator, open, token.RParen, first)
	}
	if !p.at(token.Comma) {
		// группа: узел сохраняет свой span без скобок
		if !p.expectCloser(open, token.RParen) {
			return ast.NoExprID
		}
		return first
	}
	elts, ok := p.parseSequenceTail(open, token.RParen, first)
	if !ok {
		return ast.NoExprID
	}
	return exprs.New(ast.ExprTuple, p.spanFrom(open), elts...)
}

func (p *Parser) parseListDisplay() ast.ExprID {
	open := p.advance()
	if p.at(token.RBracket) {
		p.advance()
		return p.arenas.Exprs.New(ast.ExprList, p.spanFrom(open))
	}
	first := p.parseStarItem(true)
	if !first.IsValid() {
		return ast.NoExprID
	}
	if p.atComprehension() {
		return p.closeComprehension(ast.ExprListComp, open, token.RBracket, first)
	}
	elts, ok := p.parseSequenceTail(open, token.RBracket, first)
	if !ok {
		return ast.NoExprID
	}
	return p.arenas.Exprs.New(ast.ExprList, p.spanFrom(open), elts...)
}

// parseBraceDisplay: dict, set и их comprehension. Вид определяет первый элемент.
func (p *Parser) parseBraceDisplay() ast.ExprID {
	open := p.advance()
	exprs := p.arenas.Exprs
	if p.at(token.RBrace) {
		p.advance()
		return exprs.New(ast.ExprDict, p.spanFrom(open))
	}
	if p.at(token.StarStar) {
		return p.parseDictItems(open, nil)
	}

	first := p.parseStarItem(true)
	if !first.IsValid() {
		return ast.NoExprID
	}
	if !p.at(token.Colon) {
		if p.atComprehension() {
			return p.closeComprehension(ast.ExprSetComp, open, token.RBrace, first)
		}
		elts, ok := p.parseSequenceTail(open, token.RBrace, first)
		if !ok {
			return ast.NoExprID
		}
		return exprs.New(ast.ExprSet, p.spanFrom(open), elts...)
	}

	p.advance()
	value := p.parseExpression()
	if !value.IsValid() {
		return ast.NoExprID
	}
	if p.atComprehension() {
		return p.closeComprehension(ast.ExprDictComp, open, token.RBrace, first, value)
	}
	return p.parseDictItems(open, []ast.ExprID{first, value})
}

// parseDictItems дочитывает пары словаря и закрывающую '}'.
func (p *Parser) parseDictItems(open token.Token, children []ast.ExprID) ast.ExprID {
	for {
		if len(children) > 0 {
			if !p.at(token.Comma) {
				break
			}
			p.advance()
			if p.at(token.RBrace) {
				break
			}
		}
		key, value, ok := p.parseDictEntry()
		if !ok {
			return ast.NoExprID
		}
		children = append(children, key, value)
	}
	if !p.expectCloser(open, token.RBrace) {
		return ast.NoExprID
	}
	return p.arenas.Exprs.New(ast.ExprDict, p.spanFrom(open), children...)
}

// parseDictEntry: key ':' value | '**' mapping (key = NoExprID)
func (p *Parser) parseDictEntry() (key, value ast.ExprID, ok bool) {
	if p.at(token.StarStar) {
		p.advance()
		value = p.parseBitOr()
		return ast.NoExprID, value, value.IsValid()
	}
	if key = p.parseExpression(); !key.IsValid() || !p.expectColon() {
		return ast.NoExprID, ast.NoExprID, false
	}
	value = p.parseExpression()
	return key, value, value.IsValid()
}

// parseSequenceTail дочитывает элементы после first и закрывающую скобку.
func (p *Parser) parseSequenceTail(open token.Token, closer token.Kind, first ast.ExprID) ([]ast.ExprID, bool) {
	elts := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		if p.atOr(closer, token.EOF) {
			break
		}
		e := p.parseStarItem(true)
		if !e.IsValid() {
			return nil, false
		}
		elts = append(elts, e)
	}
	if !p.expectCloser(open, closer) {
		return nil, false
	}
	return elts, true
}

func (p *Parser) atComprehension() bool {
	return p.at(token.KwFor) || (p.at(token.KwAsync) && p.peekAt(1).Kind == token.KwFor)
}

func (p *Parser) closeComprehension(kind ast.ExprKind, open token.Token, closer token.Kind, head ...ast.ExprID) ast.ExprID {
	id := p.parseComprehension(kind, open, head...)
	if !id.IsValid() || !p.expectCloser(open, closer) {
		return ast.NoExprID
	}
	p.arenas.Exprs.Get(id).Span = p.spanFrom(open)
	return id
}

// parseComprehension собирает *Comp или Generator; head - [elt] или [key, value].
//
//	for_if_clause ::= ['async'] 'for' targets 'in' disjunction ('if' disjunction)*
func (p *Parser) parseComprehension(kind ast.ExprKind, start token.Token, head ...ast.ExprID) ast.ExprID {
	exprs := p.arenas.Exprs
	children := head
	for p.atComprehension() {
		clauseStart := p.peek()
		async := false
		if p.at(token.KwAsync) {
			p.advance()
			async = true
		}
		p.advance() // for

		target := p.parseTargetList()
		if !target.IsValid() || !p.checkTarget(target, "comprehension") {
			return ast.NoExprID
		}
		if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'in'"); !ok {
			return ast.NoExprID
		}
		iter := p.parseOr()
		if !iter.IsValid() {
			return ast.NoExprID
		}
		clause := []ast.ExprID{target, iter}
		for p.at(token.KwIf) {
			p.advance()
			cond := p.parseOr()
			if !cond.IsValid() {
				return ast.NoExprID
			}
			clause = append(clause, cond)
		}
		id := exprs.New(ast.ExprComprehension, p.spanFrom(clauseStart), clause...)
		exprs.Get(id).Async = async
		children = append(children, id)
	}
	return exprs.New(kind, p.spanFrom(start), children...)
}
