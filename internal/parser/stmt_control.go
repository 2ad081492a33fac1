package parser

import (
	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/token"
)

func (p *Parser) parseCompound() (ast.StmtID, bool) {
	switch p.peek().Kind {
	case token.At:
		return p.parseDecorated()
	case token.KwDef:
		return p.parseFunctionDef(nil)
	case token.KwClass:
		return p.parseClassDef(nil)
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwTry:
		return p.parseTry()
	case token.KwWith:
		return p.parseWith()
	case token.KwAsync:
		switch p.peekAt(1).Kind {
		case token.KwDef:
			return p.parseFunctionDef(nil)
		case token.KwFor:
			return p.parseFor()
		case token.KwWith:
			return p.parseWith()
		}
		p.advance()
		p.err(diag.SynUnexpectedToken, "expected 'def', 'for' or 'with' after 'async', got "+describe(p.peek()))
		return ast.NoStmtID, false
	}
	p.err(diag.SynUnexpectedToken, "unexpected "+describe(p.peek()))
	return ast.NoStmtID, false
}

// parseBlock разбирает тело после ':' - либо простые инструкции на той же
// строке, либо NEWLINE INDENT stmt+ DEDENT.
func (p *Parser) parseBlock() ([]ast.StmtID, bool) {
	if !p.at(token.Newline) {
		return p.parseSimpleStatements()
	}
	p.advance()
	if !p.at(token.Indent) {
		p.err(diag.SynExpectIndent, "expected an indented block")
		return nil, false
	}
	p.advance()
	body := p.parseStatements(func() bool { return p.at(token.Dedent) })
	if p.at(token.Dedent) {
		p.advance()
	}
	return body, true
}

// parseSuite: ':' block
func (p *Parser) parseSuite() ([]ast.StmtID, bool) {
	if !p.expectColon() {
		return nil, false
	}
	return p.parseBlock()
}

// parseIf: 'if' named_expr ':' block ('elif' ...)* ['else' ':' block]
// elif разворачивается во вложенный If внутри Orelse.
func (p *Parser) parseIf() (ast.StmtID, bool) {
	start := p.advance() // if или elif
	test := p.parseNamedExpression()
	if !test.IsValid() {
		return ast.NoStmtID, false
	}
	body, ok := p.parseSuite()
	if !ok {
		return ast.NoStmtID, false
	}
	var orelse []ast.StmtID
	switch {
	case p.at(token.KwElif):
		elif, ok := p.parseIf()
		if !ok {
			return ast.NoStmtID, false
		}
		orelse = []ast.StmtID{elif}
	case p.at(token.KwElse):
		p.advance()
		if orelse, ok = p.parseSuite(); !ok {
			return ast.NoStmtID, false
		}
	}
	return p.arenas.Stmts.NewCond(ast.StmtIf, p.spanFrom(start), test, body, orelse), true
}

func (p *Parser) parseElse() ([]ast.StmtID, bool) {
	if !p.at(token.KwElse) {
		return nil, true
	}
	p.advance()
	return p.parseSuite()
}

func (p *Parser) parseWhile() (ast.StmtID, bool) {
	start := p.advance()
	test := p.parseNamedExpression()
	if !test.IsValid() {
		return ast.NoStmtID, false
	}
	body, ok := p.parseSuite()
	if !ok {
		return ast.NoStmtID, false
	}
	orelse, ok := p.parseElse()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewCond(ast.StmtWhile, p.spanFrom(start), test, body, orelse), true
}

// parseFor: ['async'] 'for' star_targets 'in' star_expressions ':' block ['else' ':' block]
func (p *Parser) parseFor() (ast.StmtID, bool) {
	start := p.peek()
	var data ast.ForData
	if p.at(token.KwAsync) {
		p.advance()
		data.Async = true
	}
	p.advance() // for
	data.Target = p.parseTargetList()
	if !data.Target.IsValid() || !p.checkTarget(data.Target, "for") {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'in'"); !ok {
		return ast.NoStmtID, false
	}
	if data.Iter = p.parseStarExpressions(); !data.Iter.IsValid() {
		return ast.NoStmtID, false
	}
	var ok bool
	if data.Body, ok = p.parseSuite(); !ok {
		return ast.NoStmtID, false
	}
	if data.Orelse, ok = p.parseElse(); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewFor(p.spanFrom(start), data), true
}

// parseWith: ['async'] 'with' ( '(' items [','] ')' | items ) ':' block
func (p *Parser) parseWith() (ast.StmtID, bool) {
	start := p.peek()
	var data ast.WithData
	if p.at(token.KwAsync) {
		p.advance()
		data.Async = true
	}
	p.advance() // with

	parenthesized := false
	if p.at(token.LParen) {
		parenthesized = p.speculate(func() bool {
			p.advance()
			items, ok := p.parseWithItems(token.RParen)
			if !ok || !p.at(token.RParen) || p.peekAt(1).Kind != token.Colon {
				return false
			}
			p.advance()
			data.Items = items
			return true
		})
	}
	if !parenthesized {
		items, ok := p.parseWithItems(token.Colon)
		if !ok {
			return ast.NoStmtID, false
		}
		data.Items = items
	}

	var ok bool
	if data.Body, ok = p.parseSuite(); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewWith(p.spanFrom(start), data), true
}

func (p *Parser) parseWithItems(closer token.Kind) ([]ast.WithItem, bool) {
	var items []ast.WithItem
	for {
		ctx := p.parseExpression()
		if !ctx.IsValid() {
			return nil, false
		}
		item := ast.WithItem{Context: ctx}
		if p.at(token.KwAs) {
			p.advance()
			item.Target = p.parseTargetAtom()
			if !item.Target.IsValid() || !p.checkTarget(item.Target, "with") {
				return nil, false
			}
		}
		items = append(items, item)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		if p.at(closer) {
			break
		}
	}
	return items, true
}

// parseTry: 'try' ':' block (except_block+ [else] [finally] | finally)
func (p *Parser) parseTry() (ast.StmtID, bool) {
	start := p.advance()
	var data ast.TryData
	var ok bool
	if data.Body, ok = p.parseSuite(); !ok {
		return ast.NoStmtID, false
	}

	for p.at(token.KwExcept) {
		hstart := p.advance()
		star := false
		if p.at(token.Star) {
			p.advance()
			star = true
		}
		if len(data.Handlers) > 0 && star != data.Star {
			p.errAtLast(diag.SynUnexpectedToken, "cannot have both 'except' and 'except*' on the same 'try'")
			return ast.NoStmtID, false
		}
		data.Star = star
		h := ast.ExceptHandler{}
		if !p.at(token.Colon) {
			if h.Type = p.parseExpression(); !h.Type.IsValid() {
				return ast.NoStmtID, false
			}
			if p.at(token.Comma) {
				// except A, B: - кортеж без скобок
				elts := []ast.ExprID{h.Type}
				for p.at(token.Comma) {
					p.advance()
					e := p.parseExpression()
					if !e.IsValid() {
						return ast.NoStmtID, false
					}
					elts = append(elts, e)
				}
				h.Type = p.arenas.Exprs.New(ast.ExprTuple, p.spanFrom(hstart), elts...)
			}
			if p.at(token.KwAs) {
				p.advance()
				name, ok := p.expectIdent("a name after 'as'")
				if !ok {
					return ast.NoStmtID, false
				}
				h.Name = name.Text
			}
		} else if star {
			p.err(diag.SynExpectExpression, "expected exception type after 'except*'")
			return ast.NoStmtID, false
		}
		if h.Body, ok = p.parseSuite(); !ok {
			return ast.NoStmtID, false
		}
		h.Span = p.spanFrom(hstart)
		data.Handlers = append(data.Handlers, h)
	}

	if p.at(token.KwElse) {
		if len(data.Handlers) == 0 {
			p.err(diag.SynMissingExcept, "expected 'except' or 'finally' block")
			return ast.NoStmtID, false
		}
		if data.Orelse, ok = p.parseElse(); !ok {
			return ast.NoStmtID, false
		}
	}
	if p.at(token.KwFinally) {
		p.advance()
		if data.Finalbody, ok = p.parseSuite(); !ok {
			return ast.NoStmtID, false
		}
	}
	if len(data.Handlers) == 0 && data.Finalbody == nil {
		p.err(diag.SynMissingExcept, "expected 'except' or 'finally' block")
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewTry(p.spanFrom(start), data), true
}

func (p *Parser) errAtLast(code diag.Code, msg string) bool {
	return p.report(code, p.lastSpan, msg)
}

// parseDecorated: ('@' named_expr NEWLINE)+ (def | async def | class)
func (p *Parser) parseDecorated() (ast.StmtID, bool) {
	var decorators []ast.ExprID
	for p.at(token.At) {
		p.advance()
		d := p.parseNamedExpression()
		if !d.IsValid() {
			return ast.NoStmtID, false
		}
		if _, ok := p.expect(token.Newline, diag.SynExpectNewline, "expected newline after decorator"); !ok {
			return ast.NoStmtID, false
		}
		decorators = append(decorators, d)
	}
	switch {
	case p.at(token.KwDef), p.at(token.KwAsync) && p.peekAt(1).Kind == token.KwDef:
		return p.parseFunctionDef(decorators)
	case p.at(token.KwClass):
		return p.parseClassDef(decorators)
	}
	p.err(diag.SynUnexpectedToken, "expected function or class definition after decorator, got "+describe(p.peek()))
	return ast.NoStmtID, false
}

// parseFunctionDef: ['async'] 'def' NAME [type_params] '(' params ')' ['->' expression] ':' block
func (p *Parser) parseFunctionDef(decorators []ast.ExprID) (ast.StmtID, bool) {
	start := p.peek()
	data := ast.FnDefData{Decorators: decorators}
	if p.at(token.KwAsync) {
		p.advance()
		data.Async = true
	}
	p.advance() // def

	name, ok := p.expectIdent("function name")
	if !ok {
		return ast.NoStmtID, false
	}
	data.Name, data.NameSpan = name.Text, name.Span

	if p.at(token.LBracket) {
		if data.TypeParams, ok = p.parseTypeParams(); !ok {
			return ast.NoStmtID, false
		}
	}

	open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")
	if !ok {
		return ast.NoStmtID, false
	}
	if data.Params, ok = p.parseParams(token.RParen, true); !ok {
		return ast.NoStmtID, false
	}
	if !p.expectCloser(open, token.RParen) {
		return ast.NoStmtID, false
	}
	data.Params.Span = p.spanFrom(open)

	if p.at(token.Arrow) {
		p.advance()
		if data.Returns = p.parseExpression(); !data.Returns.IsValid() {
			return ast.NoStmtID, false
		}
	}
	if data.Body, ok = p.parseSuite(); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewFunctionDef(p.spanFrom(start), data), true
}

// parseClassDef: 'class' NAME [type_params] ['(' [arguments] ')'] ':' block
func (p *Parser) parseClassDef(decorators []ast.ExprID) (ast.StmtID, bool) {
	start := p.advance()
	data := ast.ClassDefData{Decorators: decorators}

	name, ok := p.expectIdent("class name")
	if !ok {
		return ast.NoStmtID, false
	}
	data.Name, data.NameSpan = name.Text, name.Span

	if p.at(token.LBracket) {
		if data.TypeParams, ok = p.parseTypeParams(); !ok {
			return ast.NoStmtID, false
		}
	}
	if p.at(token.LParen) {
		open := p.advance()
		if data.Bases, ok = p.parseCallArgs(); !ok {
			return ast.NoStmtID, false
		}
		if !p.expectCloser(open, token.RParen) {
			return ast.NoStmtID, false
		}
	}
	if data.Body, ok = p.parseSuite(); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewClassDef(p.spanFrom(start), data), true
}

// parseTypeParams: '[' (['*' | '**'] NAME [':' expr] ['=' expr]) (',' ...)* [','] ']'
func (p *Parser) parseTypeParams() ([]ast.ExprID, bool) {
	open := p.advance()
	var out []ast.ExprID
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		start := p.peek()
		if p.atOr(token.Star, token.StarStar) {
			p.advance()
		}
		name, ok := p.expectIdent("type parameter name")
		if !ok {
			return nil, false
		}
		var children []ast.ExprID
		if p.at(token.Colon) {
			p.advance()
			bound := p.parseExpression()
			if !bound.IsValid() {
				return nil, false
			}
			children = append(children, bound)
		}
		if p.at(token.Assign) {
			p.advance()
			def := p.parseExpression()
			if !def.IsValid() {
				return nil, false
			}
			children = append(children, def)
		}
		out = append(out, p.arenas.Exprs.NewNamed(ast.ExprName, p.spanFrom(start), name.Text, children...))
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if len(out) == 0 {
		p.err(diag.SynExpectExpression, "type parameter list cannot be empty")
		return nil, false
	}
	return out, p.expectCloser(open, token.RBracket)
}
