package rules

import (
	"fmt"

	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/source"
)

// Tree is a parsed module together with the arenas and file it came from.
type Tree struct {
	File    *source.File
	Builder *ast.Builder
	Module  *ast.Module
}

func (t Tree) line(sp source.Span) uint32 {
	return t.File.LineOf(sp.Start)
}

// startsUpper - имя начинается с заглавной ASCII-буквы.
func startsUpper(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}

// functions returns every plain def in breadth-first order. Async defs are
// skipped, but defs nested inside them are not.
func (t Tree) functions() []*ast.FnDefData {
	var out []*ast.FnDefData
	for _, id := range t.Builder.Functions(t.Module) {
		if fn, ok := t.Builder.Stmts.FunctionDef(id); ok && !fn.Async {
			out = append(out, fn)
		}
	}
	return out
}

// CheckMutableDefaults reports the first default value that is a list, dict
// or set literal (S012). Keyword-only defaults are not inspected.
func CheckMutableDefaults(t Tree) (diag.Diagnostic, bool) {
	for _, fn := range t.functions() {
		for _, def := range fn.Params.Defaults() {
			x := t.Builder.Exprs.Get(def)
			if x == nil || !x.Kind.IsMutableLiteral() {
				continue
			}
			return diag.Style(diag.StyleMutableDefault, t.line(x.Span),
				"The default argument value is mutable."), true
		}
	}
	return diag.Diagnostic{}, false
}

// CheckArgumentNames reports the first regular parameter whose name starts
// with an uppercase letter (S010). Positional-only, keyword-only and star
// parameters are not inspected.
func CheckArgumentNames(t Tree) (diag.Diagnostic, bool) {
	for _, fn := range t.functions() {
		for _, param := range fn.Params.Regular() {
			if !startsUpper(param.Name) {
				continue
			}
			return diag.Style(diag.StyleArgumentName, t.line(param.Span),
				fmt.Sprintf("Argument name %s should be written in snake_case", param.Name)), true
		}
	}
	return diag.Diagnostic{}, false
}

// CheckVariableNames reports every plain assignment directly in a function
// body whose name target starts with an uppercase letter (S011). Nested
// blocks and tuple targets are not inspected.
func CheckVariableNames(t Tree) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, fn := range t.functions() {
		for _, id := range fn.Body {
			assign, ok := t.Builder.Stmts.Assign(id)
			if !ok {
				continue
			}
			line := t.line(t.Builder.Stmts.Get(id).Span)
			for _, target := range assign.Targets {
				x := t.Builder.Exprs.Get(target)
				if x == nil || x.Kind != ast.ExprName || !startsUpper(x.Name) {
					continue
				}
				out = append(out, diag.Style(diag.StyleVariableName, line,
					fmt.Sprintf("Variable %s in function should be snake_case", x.Name)))
			}
		}
	}
	return out
}

// CheckTree runs the tree rules in reporting order: S012, S010, S011.
func CheckTree(t Tree) []diag.Diagnostic {
	var out []diag.Diagnostic
	if d, ok := CheckMutableDefaults(t); ok {
		out = append(out, d)
	}
	if d, ok := CheckArgumentNames(t); ok {
		out = append(out, d)
	}
	return append(out, CheckVariableNames(t)...)
}
