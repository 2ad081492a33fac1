package parser

import (
	"fmt"

	"pystyle/internal/ast"
	"pystyle/internal/diag"
)

// checkTarget проверяет, что выражение может быть целью присваивания,
// for, with, del или comprehension.
func (p *Parser) checkTarget(id ast.ExprID, ctx string) bool {
	x := p.arenas.Exprs.Get(id)
	if x == nil {
		return false
	}
	switch x.Kind {
	case ast.ExprName, ast.ExprAttribute, ast.ExprSubscript:
		return true
	case ast.ExprTuple, ast.ExprList:
		for _, c := range x.Children {
			if !p.checkTarget(c, ctx) {
				return false
			}
		}
		return true
	case ast.ExprStarred:
		if ctx == "delete" {
			break
		}
		return p.checkTarget(x.Children[0], ctx)
	}
	verb := "assign to"
	if ctx == "delete" {
		verb = "delete"
	}
	p.report(diag.SynInvalidTarget, x.Span, fmt.Sprintf("cannot %s %s", verb, exprNoun(x.Kind)))
	return false
}

// checkSingleTarget - цель аннотации или составного присваивания: только
// имя, атрибут или индекс.
func (p *Parser) checkSingleTarget(id ast.ExprID, ctx string) bool {
	x := p.arenas.Exprs.Get(id)
	if x == nil {
		return false
	}
	switch x.Kind {
	case ast.ExprName, ast.ExprAttribute, ast.ExprSubscript:
		return true
	}
	var msg string
	switch {
	case ctx == "annotated" && (x.Kind == ast.ExprTuple || x.Kind == ast.ExprList):
		msg = "only single target (not tuple) can be annotated"
	case ctx == "annotated":
		msg = "illegal target for annotation"
	default:
		msg = fmt.Sprintf("'%s' is an illegal expression for augmented assignment", exprNoun(x.Kind))
	}
	p.report(diag.SynInvalidTarget, x.Span, msg)
	return false
}

func exprNoun(k ast.ExprKind) string {
	switch k {
	case ast.ExprCall:
		return "function call"
	case ast.ExprConstant:
		return "literal"
	case ast.ExprCompare:
		return "comparison"
	case ast.ExprLambda:
		return "lambda"
	case ast.ExprIfExp:
		return "conditional expression"
	case ast.ExprNamedExpr:
		return "named expression"
	case ast.ExprAwait:
		return "await expression"
	case ast.ExprYield, ast.ExprYieldFrom:
		return "yield expression"
	case ast.ExprListComp:
		return "list comprehension"
	case ast.ExprSetComp:
		return "set comprehension"
	case ast.ExprDictComp:
		return "dict comprehension"
	case ast.ExprGenerator:
		return "generator expression"
	case ast.ExprDict:
		return "dict literal"
	case ast.ExprSet:
		return "set display"
	case ast.ExprTuple:
		return "tuple"
	case ast.ExprList:
		return "list"
	case ast.ExprStarred:
		return "starred"
	}
	return "expression"
}
