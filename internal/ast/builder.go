package ast

import (
	"pystyle/internal/source"
)

type Hints struct{ Stmts, Exprs uint }

// Module is the root of a parsed file.
type Module struct {
	File source.FileID
	Span source.Span
	Body []StmtID
}

type Builder struct {
	Stmts *Stmts
	Exprs *Exprs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 7
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Stmts: NewStmts(hints.Stmts),
		Exprs: NewExprs(hints.Exprs),
	}
}

// Functions returns every function definition of the module in walk order.
func (b *Builder) Functions(mod *Module) []StmtID {
	var out []StmtID
	b.Stmts.Walk(mod.Body, func(id StmtID, st *Stmt) bool {
		if st.Kind == StmtFunctionDef {
			out = append(out, id)
		}
		return true
	})
	return out
}
