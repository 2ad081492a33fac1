package parser

import (
	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/token"
)

// Приоритеты бинарных операторов, от слабого к сильному.
// Ниже последнего уровня идут унарные операторы и '**'.
var binaryLevels = [...][]token.Kind{
	{token.Pipe},
	{token.Caret},
	{token.Amp},
	{token.Shl, token.Shr},
	{token.Plus, token.Minus},
	{token.Star, token.Slash, token.SlashSlash, token.Percent, token.At},
}

// parseStarExpressions: star_expression (',' star_expression)* [',']
// Несколько элементов собираются в Tuple.
func (p *Parser) parseStarExpressions() ast.ExprID {
	return p.parseExprList(false)
}

// parseStarNamedExpressions - то же, но элементы могут быть 'x := v'.
func (p *Parser) parseStarNamedExpressions() ast.ExprID {
	return p.parseExprList(true)
}

func (p *Parser) parseExprList(named bool) ast.ExprID {
	start := p.peek()
	first := p.parseStarItem(named)
	if !first.IsValid() || !p.at(token.Comma) {
		return first
	}
	elts := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		if !p.startsExpression() {
			break
		}
		e := p.parseStarItem(named)
		if !e.IsValid() {
			return ast.NoExprID
		}
		elts = append(elts, e)
	}
	return p.arenas.Exprs.New(ast.ExprTuple, p.spanFrom(start), elts...)
}

func (p *Parser) parseStarItem(named bool) ast.ExprID {
	if p.at(token.Star) {
		start := p.advance()
		v := p.parseBitOr()
		if !v.IsValid() {
			return ast.NoExprID
		}
		return p.arenas.Exprs.New(ast.ExprStarred, p.spanFrom(start), v)
	}
	if named {
		return p.parseNamedExpression()
	}
	return p.parseExpression()
}

// parseNamedExpression: NAME ':=' expression | expression
func (p *Parser) parseNamedExpression() ast.ExprID {
	if !p.at(token.Ident) || p.peekAt(1).Kind != token.ColonAssign {
		return p.parseExpression()
	}
	nameTok := p.advance()
	p.advance()
	value := p.parseExpression()
	if !value.IsValid() {
		return ast.NoExprID
	}
	target := p.arenas.Exprs.NewNamed(ast.ExprName, nameTok.Span, nameTok.Text)
	return p.arenas.Exprs.New(ast.ExprNamedExpr, p.spanFrom(nameTok), target, value)
}

// parseExpression: lambda | disjunction ['if' disjunction 'else' expression]
// Внутри образца case вместо тернарного if допускается 'as NAME'.
func (p *Parser) parseExpression() ast.ExprID {
	if p.at(token.KwLambda) {
		return p.parseLambda()
	}
	start := p.peek()
	body := p.parseOr()
	if !body.IsValid() {
		return ast.NoExprID
	}
	exprs := p.arenas.Exprs

	if p.pattern > 0 {
		if !p.at(token.KwAs) {
			return body
		}
		p.advance()
		name, ok := p.expectIdent("a capture name after 'as'")
		if !ok {
			return ast.NoExprID
		}
		return exprs.NewNamed(ast.ExprMatchAs, p.spanFrom(start), name.Text, body)
	}

	if !p.at(token.KwIf) {
		return body
	}
	p.advance()
	test := p.parseOr()
	if !test.IsValid() {
		return ast.NoExprID
	}
	if _, ok := p.expect(token.KwElse, diag.SynUnexpectedToken, "expected 'else' after 'if' expression"); !ok {
		return ast.NoExprID
	}
	orelse := p.parseExpression()
	if !orelse.IsValid() {
		return ast.NoExprID
	}
	return exprs.New(ast.ExprIfExp, p.spanFrom(start), test, body, orelse)
}

func (p *Parser) parseLambda() ast.ExprID {
	start := p.advance()
	params, ok := p.parseParams(token.Colon, false)
	if !ok || !p.expectColon() {
		return ast.NoExprID
	}
	body := p.parseExpression()
	if !body.IsValid() {
		return ast.NoExprID
	}
	return p.arenas.Exprs.NewLambda(p.spanFrom(start), params, body)
}

func (p *Parser) parseOr() ast.ExprID {
	return p.parseBoolOp(token.KwOr, p.parseAnd)
}

func (p *Parser) parseAnd() ast.ExprID {
	return p.parseBoolOp(token.KwAnd, p.parseNot)
}

func (p *Parser) parseBoolOp(op token.Kind, next func() ast.ExprID) ast.ExprID {
	start := p.peek()
	first := next()
	if !first.IsValid() || !p.at(op) {
		return first
	}
	operands := []ast.ExprID{first}
	for p.at(op) {
		p.advance()
		e := next()
		if !e.IsValid() {
			return ast.NoExprID
		}
		operands = append(operands, e)
	}
	return p.arenas.Exprs.NewOp(ast.ExprBoolOp, p.spanFrom(start), op, operands...)
}

func (p *Parser) parseNot() ast.ExprID {
	if !p.at(token.KwNot) {
		return p.parseComparison()
	}
	start := p.advance()
	operand := p.parseNot()
	if !operand.IsValid() {
		return ast.NoExprID
	}
	return p.arenas.Exprs.NewOp(ast.ExprUnaryOp, p.spanFrom(start), token.KwNot, operand)
}

func (p *Parser) parseComparison() ast.ExprID {
	start := p.peek()
	left := p.parseBitOr()
	if !left.IsValid() {
		return ast.NoExprID
	}
	var ops []string
	operands := []ast.ExprID{left}
	for {
		op, ok := p.compareOp()
		if !ok {
			break
		}
		right := p.parseBitOr()
		if !right.IsValid() {
			return ast.NoExprID
		}
		ops = append(ops, op)
		operands = append(operands, right)
	}
	if len(ops) == 0 {
		return left
	}
	return p.arenas.Exprs.NewCompare(p.spanFrom(start), ops, operands)
}

// compareOp съедает оператор сравнения, если он есть.
func (p *Parser) compareOp() (string, bool) {
	switch p.peek().Kind {
	case token.Lt, token.Gt, token.EqEq, token.GtEq, token.LtEq, token.NotEq:
		return p.advance().Text, true
	case token.KwIn:
		p.advance()
		return "in", true
	case token.KwIs:
		p.advance()
		if p.at(token.KwNot) {
			p.advance()
			return "is not", true
		}
		return "is", true
	case token.KwNot:
		if p.peekAt(1).Kind == token.KwIn {
			p.advance()
			p.advance()
			return "not in", true
		}
	}
	return "", false
}

func (p *Parser) parseBitOr() ast.ExprID {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(level int) ast.ExprID {
	if level == len(binaryLevels) {
		return p.parseFactor()
	}
	start := p.peek()
	left := p.parseBinary(level + 1)
	for left.IsValid() && p.atOr(binaryLevels[level]...) {
		op := p.advance().Kind
		right := p.parseBinary(level + 1)
		if !right.IsValid() {
			return ast.NoExprID
		}
		left = p.arenas.Exprs.NewOp(ast.ExprBinOp, p.spanFrom(start), op, left, right)
	}
	return left
}

// parseFactor: ('+' | '-' | '~') factor | power
func (p *Parser) parseFactor() ast.ExprID {
	if !p.atOr(token.Plus, token.Minus, token.Tilde) {
		return p.parsePower()
	}
	start := p.advance()
	operand := p.parseFactor()
	if !operand.IsValid() {
		return ast.NoExprID
	}
	return p.arenas.Exprs.NewOp(ast.ExprUnaryOp, p.spanFrom(start), start.Kind, operand)
}

// parsePower: await_primary ['**' factor]
func (p *Parser) parsePower() ast.ExprID {
	start := p.peek()
	base := p.parseAwaitPrimary()
	if !base.IsValid() || !p.at(token.StarStar) {
		return base
	}
	p.advance()
	exp := p.parseFactor()
	if !exp.IsValid() {
		return ast.NoExprID
	}
	return p.arenas.Exprs.NewOp(ast.ExprBinOp, p.spanFrom(start), token.StarStar, base, exp)
}

func (p *Parser) parseAwaitPrimary() ast.ExprID {
	if !p.at(token.KwAwait) {
		return p.parsePrimary()
	}
	start := p.advance()
	v := p.parsePrimary()
	if !v.IsValid() {
		return ast.NoExprID
	}
	return p.arenas.Exprs.New(ast.ExprAwait, p.spanFrom(start), v)
}

// parseYield: 'yield' 'from' expression | 'yield' [star_expressions]
func (p *Parser) parseYield() ast.ExprID {
	start := p.advance()
	exprs := p.arenas.Exprs
	if p.at(token.KwFrom) {
		p.advance()
		v := p.parseExpression()
		if !v.IsValid() {
			return ast.NoExprID
		}
		return exprs.New(ast.ExprYieldFrom, p.spanFrom(start), v)
	}
	if !p.startsExpression() {
		return exprs.New(ast.ExprYield, start.Span)
	}
	v := p.parseStarExpressions()
	if !v.IsValid() {
		return ast.NoExprID
	}
	return exprs.New(ast.ExprYield, p.spanFrom(start), v)
}

// startsExpression - может ли текущий токен начинать выражение.
func (p *Parser) startsExpression() bool {
	switch p.peek().Kind {
	case token.Ident, token.Number, token.String,
		token.LParen, token.LBracket, token.LBrace,
		token.Plus, token.Minus, token.Tilde, token.Star,
		token.KwNot, token.KwLambda, token.KwAwait,
		token.KwTrue, token.KwFalse, token.KwNone, token.Ellipsis:
		return true
	}
	return false
}

// parseTargetList: цели for и comprehension. Разбираются на уровне '|',
// чтобы не съесть 'in'.
func (p *Parser) parseTargetList() ast.ExprID {
	start := p.peek()
	first := p.parseTargetAtom()
	if !first.IsValid() || !p.at(token.Comma) {
		return first
	}
	elts := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		if !p.startsExpression() {
			break
		}
		e := p.parseTargetAtom()
		if !e.IsValid() {
			return ast.NoExprID
		}
		elts = append(elts, e)
	}
	return p.arenas.Exprs.New(ast.ExprTuple, p.spanFrom(start), elts...)
}

func (p *Parser) parseTargetAtom() ast.ExprID {
	if !p.at(token.Star) {
		return p.parseBitOr()
	}
	start := p.advance()
	v := p.parseBitOr()
	if !v.IsValid() {
		return ast.NoExprID
	}
	return p.arenas.Exprs.New(ast.ExprStarred, p.spanFrom(start), v)
}
