package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"pystyle/internal/ast"
	"pystyle/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed module:
// 1) every statement span points at sf and lies within its content
// 2) statements nested in a block lie within the span of that block's owner
// 3) siblings do not start before their predecessor
func CheckSpanInvariants(b *ast.Builder, mod *ast.Module, sf *source.File) error {
	if b == nil || mod == nil || sf == nil {
		return fmt.Errorf("nil builder, module or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var firstErr error
	check := func(sp source.Span, what string) bool {
		switch {
		case sp.File != sf.ID:
			firstErr = fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, sf.ID)
		case sp.End < sp.Start:
			firstErr = fmt.Errorf("%s span is inverted: %v", what, sp)
		case sp.End > lenContent:
			firstErr = fmt.Errorf("%s span end beyond content: %d > %d", what, sp.End, lenContent)
		}
		return firstErr == nil
	}

	if err := checkSiblings(b, mod.Body); err != nil {
		return err
	}
	b.Stmts.Walk(mod.Body, func(id ast.StmtID, st *ast.Stmt) bool {
		if !check(st.Span, st.Kind.String()) {
			return false
		}
		children := b.Stmts.Block(id)
		for _, child := range children {
			sp := b.Stmts.Get(child).Span
			// вложенный оператор не выходит за пределы владельца
			if sp.Start < st.Span.Start || sp.End > st.Span.End {
				firstErr = fmt.Errorf("%s span %v is outside %s span %v",
					b.Stmts.Get(child).Kind, sp, st.Kind, st.Span)
				return false
			}
		}
		if err := checkSiblings(b, children); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	return firstErr
}

func checkSiblings(b *ast.Builder, ids []ast.StmtID) error {
	for i := 1; i < len(ids); i++ {
		prev, cur := b.Stmts.Get(ids[i-1]).Span, b.Stmts.Get(ids[i]).Span
		if cur.Start < prev.Start {
			return fmt.Errorf("statement at %d starts before its predecessor at %d", cur.Start, prev.Start)
		}
	}
	return nil
}
