package parser

import (
	"pystyle/internal/ast"
	"pystyle/internal/token"
)

// parsePrimary: atom ('.' NAME | '(' args ')' | '[' slices ']')*
func (p *Parser) parsePrimary() ast.ExprID {
	start := p.peek()
	exprs := p.arenas.Exprs
	expr := p.parseAtom()
	for expr.IsValid() {
		switch p.peek().Kind {
		case token.Dot:
			p.advance()
			name, ok := p.expectIdent("attribute name after '.'")
			if !ok {
				return ast.NoExprID
			}
			expr = exprs.NewNamed(ast.ExprAttribute, p.spanFrom(start), name.Text, expr)
		case token.LParen:
			open := p.advance()
			args, ok := p.parseCallArgs()
			if !ok || !p.expectCloser(open, token.RParen) {
				return ast.NoExprID
			}
			expr = exprs.New(ast.ExprCall, p.spanFrom(start), append([]ast.ExprID{expr}, args...)...)
		case token.LBracket:
			open := p.advance()
			index := p.parseSlices()
			if !index.IsValid() || !p.expectCloser(open, token.RBracket) {
				return ast.NoExprID
			}
			expr = exprs.New(ast.ExprSubscript, p.spanFrom(start), expr, index)
		default:
			return expr
		}
	}
	return expr
}

// parseSlices: slice (',' slice)* [','] - несколько срезов дают Tuple.
func (p *Parser) parseSlices() ast.ExprID {
	start := p.peek()
	first := p.parseSlice()
	if !first.IsValid() || !p.at(token.Comma) {
		return first
	}
	elts := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RBracket) {
			break
		}
		e := p.parseSlice()
		if !e.IsValid() {
			return ast.NoExprID
		}
		elts = append(elts, e)
	}
	return p.arenas.Exprs.New(ast.ExprTuple, p.spanFrom(start), elts...)
}

// parseSlice: [expr] ':' [expr] [':' [expr]] | named_expression | '*' expr
func (p *Parser) parseSlice() ast.ExprID {
	if p.at(token.Star) {
		return p.parseStarItem(false)
	}
	start := p.peek()
	lower := ast.NoExprID
	if !p.at(token.Colon) {
		lower = p.parseNamedExpression()
		if !lower.IsValid() || !p.at(token.Colon) {
			return lower
		}
	}
	p.advance()

	upper, step := ast.NoExprID, ast.NoExprID
	if !p.atOr(token.Colon, token.Comma, token.RBracket) {
		if upper = p.parseExpression(); !upper.IsValid() {
			return ast.NoExprID
		}
	}
	if p.at(token.Colon) {
		p.advance()
		if !p.atOr(token.Comma, token.RBracket) {
			if step = p.parseExpression(); !step.IsValid() {
				return ast.NoExprID
			}
		}
	}
	return p.arenas.Exprs.New(ast.ExprSlice, p.spanFrom(start), lower, upper, step)
}

// parseCallArgs разбирает аргументы вызова (или базы класса) до ')',
// не съедая её.
func (p *Parser) parseCallArgs() ([]ast.ExprID, bool) {
	var args []ast.ExprID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		start := p.peek()
		arg := p.parseCallArg()
		if !arg.IsValid() {
			return nil, false
		}
		if p.atComprehension() {
			// f(x for x in xs)
			if arg = p.parseComprehension(ast.ExprGenerator, start, arg); !arg.IsValid() {
				return nil, false
			}
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return args, true
}

func (p *Parser) parseCallArg() ast.ExprID {
	start := p.peek()
	exprs := p.arenas.Exprs
	switch {
	case p.at(token.StarStar):
		p.advance()
		v := p.parseExpression()
		if !v.IsValid() {
			return ast.NoExprID
		}
		return exprs.NewNamed(ast.ExprKeyword, p.spanFrom(start), "", v)
	case p.at(token.Star):
		p.advance()
		v := p.parseExpression()
		if !v.IsValid() {
			return ast.NoExprID
		}
		return exprs.New(ast.ExprStarred, p.spanFrom(start), v)
	case p.at(token.Ident) && p.peekAt(1).Kind == token.Assign:
		name := p.advance()
		p.advance()
		v := p.parseExpression()
		if !v.IsValid() {
			return ast.NoExprID
		}
		return exprs.NewNamed(ast.ExprKeyword, p.spanFrom(start), name.Text, v)
	}
	return p.parseNamedExpression()
}
