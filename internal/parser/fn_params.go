package parser

import (
	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/token"
)

// parseParams разбирает список параметров до closer (')' для def, ':' для lambda).
// Сам closer не съедается. Аннотации допустимы только при typed.
//
//	param  ::= NAME [':' expression] ['=' expression]
//	params ::= param* ['/'] ['*' [param] | '*'] param* ['**' param]
func (p *Parser) parseParams(closer token.Kind, typed bool) (ast.Params, bool) {
	var (
		out          ast.Params
		sawSlash     bool
		sawStar      bool
		bareStar     bool
		starSpanTok  token.Token
		sawKwarg     bool
		sawDefault   bool
		kwOnlyParams int
	)

	for !p.at(closer) && !p.at(token.EOF) {
		if sawKwarg {
			p.err(diag.SynUnexpectedToken, "arguments cannot follow var-keyword argument")
			return out, false
		}
		switch {
		case p.at(token.Slash):
			tok := p.advance()
			if sawSlash || sawStar || len(out.Items) == 0 {
				p.report(diag.SynUnexpectedToken, tok.Span, "'/' must follow at least one positional parameter and appear once")
				return out, false
			}
			sawSlash = true
			for i := range out.Items {
				out.Items[i].Kind = ast.ParamPosOnly
			}

		case p.at(token.Star):
			starSpanTok = p.advance()
			if sawStar {
				p.report(diag.SynDuplicateStarParam, starSpanTok.Span, "* argument may appear only once")
				return out, false
			}
			sawStar = true
			if p.atOr(token.Comma, closer) {
				bareStar = true
				break
			}
			param, ok := p.parseParam(ast.ParamVararg, typed, false)
			if !ok {
				return out, false
			}
			out.Items = append(out.Items, param)

		case p.at(token.StarStar):
			p.advance()
			param, ok := p.parseParam(ast.ParamKwarg, typed, false)
			if !ok {
				return out, false
			}
			out.Items = append(out.Items, param)
			sawKwarg = true

		default:
			kind := ast.ParamRegular
			if sawStar {
				kind = ast.ParamKwOnly
				kwOnlyParams++
			}
			param, ok := p.parseParam(kind, typed, true)
			if !ok {
				return out, false
			}
			if kind == ast.ParamRegular {
				if param.Default.IsValid() {
					sawDefault = true
				} else if sawDefault {
					p.report(diag.SynNonDefaultAfterDefault, param.Span, "parameter without a default follows parameter with a default")
					return out, false
				}
			}
			out.Items = append(out.Items, param)
		}

		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	if bareStar && kwOnlyParams == 0 {
		p.report(diag.SynBareStar, starSpanTok.Span, "named arguments must follow bare *")
		return out, false
	}
	return out, true
}

func (p *Parser) parseParam(kind ast.ParamKind, typed, withDefault bool) (ast.Param, bool) {
	name, ok := p.expectIdent("parameter name")
	if !ok {
		return ast.Param{}, false
	}
	param := ast.Param{Kind: kind, Name: name.Text, Span: name.Span}
	if typed && p.at(token.Colon) {
		p.advance()
		if kind == ast.ParamVararg && p.at(token.Star) {
			// *args: *Ts
			star := p.advance()
			inner := p.parseExpression()
			if !inner.IsValid() {
				return param, false
			}
			param.Annotation = p.arenas.Exprs.New(ast.ExprStarred, p.spanFrom(star), inner)
		} else if param.Annotation = p.parseExpression(); !param.Annotation.IsValid() {
			return param, false
		}
	}
	if p.at(token.Assign) {
		if !withDefault {
			p.err(diag.SynUnexpectedToken, "var-positional and var-keyword parameters cannot have default values")
			return param, false
		}
		p.advance()
		if param.Default = p.parseExpression(); !param.Default.IsValid() {
			return param, false
		}
	}
	return param, true
}
