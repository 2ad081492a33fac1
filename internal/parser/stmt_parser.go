package parser

import (
	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/token"
)

// parseStatement выбирает по первому токену составную или простую инструкцию.
// Простые инструкции через ';' возвращаются списком.
func (p *Parser) parseStatement() ([]ast.StmtID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Indent:
		p.err(diag.SynUnexpectedIndent, "unexpected indent")
		return nil, false
	case token.KwDef, token.KwClass, token.At, token.KwIf, token.KwWhile,
		token.KwFor, token.KwTry, token.KwWith, token.KwAsync:
		return one(p.parseCompound())
	case token.Ident:
		if tok.Text == "match" && p.looksLikeMatch() {
			return one(p.parseMatch())
		}
	}
	return p.parseSimpleStatements()
}

func one(id ast.StmtID, ok bool) ([]ast.StmtID, bool) {
	if !id.IsValid() {
		return nil, ok
	}
	return []ast.StmtID{id}, ok
}

// parseSimpleStatements: simple_stmt (';' simple_stmt)* [';'] NEWLINE
func (p *Parser) parseSimpleStatements() ([]ast.StmtID, bool) {
	var out []ast.StmtID
	for {
		id, ok := p.parseSimpleStatement()
		if !ok {
			return out, false
		}
		out = append(out, id)
		if !p.at(token.Semicolon) {
			break
		}
		p.advance()
		if p.atOr(token.Newline, token.EOF) {
			break
		}
	}
	if p.at(token.EOF) {
		return out, true
	}
	if _, ok := p.expect(token.Newline, diag.SynExpectNewline, "invalid syntax: expected end of statement"); !ok {
		return out, false
	}
	return out, true
}

func (p *Parser) parseSimpleStatement() (ast.StmtID, bool) {
	start := p.peek()
	stmts := p.arenas.Stmts

	switch start.Kind {
	case token.KwPass:
		p.advance()
		return stmts.NewBare(ast.StmtPass, start.Span), true
	case token.KwBreak:
		p.advance()
		return stmts.NewBare(ast.StmtBreak, start.Span), true
	case token.KwContinue:
		p.advance()
		return stmts.NewBare(ast.StmtContinue, start.Span), true
	case token.KwReturn:
		p.advance()
		var values []ast.ExprID
		if p.startsExpression() {
			v := p.parseStarExpressions()
			if !v.IsValid() {
				return ast.NoStmtID, false
			}
			values = append(values, v)
		}
		return stmts.NewValues(ast.StmtReturn, p.spanFrom(start), values...), true
	case token.KwDel:
		return p.parseDel()
	case token.KwRaise:
		return p.parseRaise()
	case token.KwAssert:
		return p.parseAssert()
	case token.KwGlobal, token.KwNonlocal:
		return p.parseGlobal()
	case token.KwImport:
		return p.parseImport()
	case token.KwFrom:
		return p.parseImportFrom()
	case token.Ident:
		if start.Text == "type" && p.peekAt(1).Kind == token.Ident &&
			(p.peekAt(2).Kind == token.Assign || p.peekAt(2).Kind == token.LBracket) {
			return p.parseTypeAlias()
		}
	}
	return p.parseExprOrAssign()
}

// parseExprOrAssign: выражение, присваивание (в т.ч. цепочка), += и аннотация.
func (p *Parser) parseExprOrAssign() (ast.StmtID, bool) {
	start := p.peek()
	stmts := p.arenas.Stmts

	first := p.parseAssignValue()
	if !first.IsValid() {
		return ast.NoStmtID, false
	}

	switch {
	case p.at(token.Colon):
		// x: int [= value]
		if !p.checkSingleTarget(first, "annotated") {
			return ast.NoStmtID, false
		}
		p.advance()
		ann := p.parseExpression()
		if !ann.IsValid() {
			return ast.NoStmtID, false
		}
		value := ast.NoExprID
		if p.at(token.Assign) {
			p.advance()
			if value = p.parseAssignValue(); !value.IsValid() {
				return ast.NoStmtID, false
			}
		}
		return stmts.NewAnnAssign(p.spanFrom(start), first, ann, value), true

	case p.peek().Kind.IsAugAssign():
		op := p.advance().Kind
		if !p.checkSingleTarget(first, "augmented") {
			return ast.NoStmtID, false
		}
		value := p.parseAssignValue()
		if !value.IsValid() {
			return ast.NoStmtID, false
		}
		return stmts.NewAugAssign(p.spanFrom(start), first, op, value), true

	case p.at(token.Assign):
		targets := []ast.ExprID{first}
		var value ast.ExprID
		for p.at(token.Assign) {
			p.advance()
			v := p.parseAssignValue()
			if !v.IsValid() {
				return ast.NoStmtID, false
			}
			if p.at(token.Assign) {
				targets = append(targets, v)
				continue
			}
			value = v
		}
		for _, t := range targets {
			if !p.checkTarget(t, "assign") {
				return ast.NoStmtID, false
			}
		}
		return stmts.NewAssign(p.spanFrom(start), targets, value), true
	}

	return stmts.NewValues(ast.StmtExpr, p.spanFrom(start), first), true
}

// parseAssignValue: yield_expr | star_expressions
func (p *Parser) parseAssignValue() ast.ExprID {
	if p.at(token.KwYield) {
		return p.parseYield()
	}
	return p.parseStarExpressions()
}

func (p *Parser) parseDel() (ast.StmtID, bool) {
	start := p.advance()
	var targets []ast.ExprID
	for {
		t := p.parseBitOr()
		if !t.IsValid() {
			return ast.NoStmtID, false
		}
		if !p.checkTarget(t, "delete") {
			return ast.NoStmtID, false
		}
		targets = append(targets, t)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		if !p.startsExpression() {
			break
		}
	}
	return p.arenas.Stmts.NewValues(ast.StmtDel, p.spanFrom(start), targets...), true
}

func (p *Parser) parseRaise() (ast.StmtID, bool) {
	start := p.advance()
	var values []ast.ExprID
	if p.startsExpression() {
		exc := p.parseExpression()
		if !exc.IsValid() {
			return ast.NoStmtID, false
		}
		values = append(values, exc)
		if p.at(token.KwFrom) {
			p.advance()
			cause := p.parseExpression()
			if !cause.IsValid() {
				return ast.NoStmtID, false
			}
			values = append(values, cause)
		}
	}
	return p.arenas.Stmts.NewValues(ast.StmtRaise, p.spanFrom(start), values...), true
}

func (p *Parser) parseAssert() (ast.StmtID, bool) {
	start := p.advance()
	test := p.parseExpression()
	if !test.IsValid() {
		return ast.NoStmtID, false
	}
	values := []ast.ExprID{test}
	if p.at(token.Comma) {
		p.advance()
		msg := p.parseExpression()
		if !msg.IsValid() {
			return ast.NoStmtID, false
		}
		values = append(values, msg)
	}
	return p.arenas.Stmts.NewValues(ast.StmtAssert, p.spanFrom(start), values...), true
}

func (p *Parser) parseGlobal() (ast.StmtID, bool) {
	start := p.advance()
	kind := ast.StmtGlobal
	if start.Kind == token.KwNonlocal {
		kind = ast.StmtNonlocal
	}
	var data ast.NamesData
	for {
		name, ok := p.expectIdent("a name")
		if !ok {
			return ast.NoStmtID, false
		}
		data.Names = append(data.Names, ast.ImportName{Name: name.Text, Span: name.Span})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return p.arenas.Stmts.NewNames(kind, p.spanFrom(start), data), true
}

// parseTypeAlias: 'type' NAME [type_params] '=' expression
func (p *Parser) parseTypeAlias() (ast.StmtID, bool) {
	start := p.advance()
	nameTok := p.advance()
	name := p.arenas.Exprs.NewNamed(ast.ExprName, nameTok.Span, nameTok.Text)
	var params []ast.ExprID
	if p.at(token.LBracket) {
		var ok bool
		if params, ok = p.parseTypeParams(); !ok {
			return ast.NoStmtID, false
		}
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in type alias"); !ok {
		return ast.NoStmtID, false
	}
	value := p.parseExpression()
	if !value.IsValid() {
		return ast.NoStmtID, false
	}
	values := append([]ast.ExprID{name, value}, params...)
	return p.arenas.Stmts.NewValues(ast.StmtTypeAlias, p.spanFrom(start), values...), true
}
