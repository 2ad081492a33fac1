package parser

import (
	"strings"

	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/token"
)

// parseImport: 'import' dotted_as_name (',' dotted_as_name)*
func (p *Parser) parseImport() (ast.StmtID, bool) {
	start := p.advance()
	var data ast.NamesData
	for {
		name, ok := p.parseImportName(true)
		if !ok {
			return ast.NoStmtID, false
		}
		data.Names = append(data.Names, name)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return p.arenas.Stmts.NewNames(ast.StmtImport, p.spanFrom(start), data), true
}

// parseImportFrom: 'from' ('.' | '...')* [dotted_name] 'import' ('*' | '(' names ')' | names)
func (p *Parser) parseImportFrom() (ast.StmtID, bool) {
	start := p.advance()
	var data ast.NamesData
	for p.atOr(token.Dot, token.Ellipsis) {
		if p.advance().Kind == token.Ellipsis {
			data.Level += 3
		} else {
			data.Level++
		}
	}
	if p.at(token.Ident) {
		module, ok := p.parseDottedName()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Module = module
	} else if data.Level == 0 {
		p.err(diag.SynUnexpectedToken, "expected module name, got "+describe(p.peek()))
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwImport, diag.SynUnexpectedToken, "expected 'import'"); !ok {
		return ast.NoStmtID, false
	}

	if p.at(token.Star) {
		star := p.advance()
		data.Names = append(data.Names, ast.ImportName{Name: "*", Span: star.Span})
		return p.arenas.Stmts.NewNames(ast.StmtImportFrom, p.spanFrom(start), data), true
	}

	var open token.Token
	parens := p.at(token.LParen)
	if parens {
		open = p.advance()
	}
	for {
		name, ok := p.parseImportName(false)
		if !ok {
			return ast.NoStmtID, false
		}
		data.Names = append(data.Names, name)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		if parens && p.at(token.RParen) {
			break
		}
	}
	if parens && !p.expectCloser(open, token.RParen) {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewNames(ast.StmtImportFrom, p.spanFrom(start), data), true
}

func (p *Parser) parseImportName(dotted bool) (ast.ImportName, bool) {
	start := p.peek()
	var name string
	if dotted {
		n, ok := p.parseDottedName()
		if !ok {
			return ast.ImportName{}, false
		}
		name = n
	} else {
		tok, ok := p.expectIdent("a name to import")
		if !ok {
			return ast.ImportName{}, false
		}
		name = tok.Text
	}
	out := ast.ImportName{Name: name}
	if p.at(token.KwAs) {
		p.advance()
		alias, ok := p.expectIdent("a name after 'as'")
		if !ok {
			return ast.ImportName{}, false
		}
		out.AsName = alias.Text
	}
	out.Span = p.spanFrom(start)
	return out, true
}

func (p *Parser) parseDottedName() (string, bool) {
	var parts []string
	for {
		tok, ok := p.expectIdent("a module name")
		if !ok {
			return "", false
		}
		parts = append(parts, tok.Text)
		if !p.at(token.Dot) {
			break
		}
		p.advance()
	}
	return strings.Join(parts, "."), true
}
