package parser

import (
	"fmt"
	"strings"
	"testing"

	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] line %d: %s", d.Code.ID(), d.Line, d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (*ast.Builder, *ast.Module, *diag.Bag) {
	return parseSourceWithOptions(t, input, Options{})
}

func parseSourceWithOptions(t *testing.T, input string, opts Options) (*ast.Builder, *ast.Module, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.py", []byte(input)))

	bag := diag.NewBag(100)
	opts.Reporter = &diag.BagReporter{Bag: bag, File: file}
	if opts.MaxErrors == 0 {
		opts.MaxErrors = 100
	}

	builder := ast.NewBuilder(ast.Hints{})
	result := Parse(file, builder, opts)
	if result.Bag == nil {
		result.Bag = bag
	}
	return builder, result.Module, result.Bag
}

func mustParse(t *testing.T, input string) (*ast.Builder, *ast.Module) {
	t.Helper()
	builder, mod, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	return builder, mod
}

func expectCode(t *testing.T, bag *diag.Bag, code diag.Code) diag.Diagnostic {
	t.Helper()
	for _, d := range bag.Items() {
		if d.Code == code {
			return d
		}
	}
	t.Fatalf("expected %s, got %s", code.ID(), diagnosticsSummary(bag))
	return diag.Diagnostic{}
}

// stmtKinds returns top-level statement kinds.
func stmtKinds(b *ast.Builder, mod *ast.Module) []ast.StmtKind {
	out := make([]ast.StmtKind, 0, len(mod.Body))
	for _, id := range mod.Body {
		out = append(out, b.Stmts.Get(id).Kind)
	}
	return out
}
