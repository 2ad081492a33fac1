package parser

import (
	"reflect"
	"testing"

	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/token"
)

func TestParseSimpleStatements(t *testing.T) {
	input := `import os.path as p, sys
from .. import a as b, c
from m import *
x = y = 1
x += 2
y: int = 3
del x, y
global g
assert x, "msg"
raise ValueError("bad") from None
pass; break; continue
return
type Alias[T] = list[T]
f(x)
`
	b, mod := mustParse(t, input)
	want := []ast.StmtKind{
		ast.StmtImport, ast.StmtImportFrom, ast.StmtImportFrom, ast.StmtAssign,
		ast.StmtAugAssign, ast.StmtAnnAssign, ast.StmtDel, ast.StmtGlobal,
		ast.StmtAssert, ast.StmtRaise, ast.StmtPass, ast.StmtBreak, ast.StmtContinue,
		ast.StmtReturn, ast.StmtTypeAlias, ast.StmtExpr,
	}
	if got := stmtKinds(b, mod); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}

	imp, _ := b.Stmts.NamesOf(mod.Body[0])
	if len(imp.Names) != 2 || imp.Names[0].Name != "os.path" || imp.Names[0].AsName != "p" {
		t.Errorf("unexpected import names %+v", imp.Names)
	}
	from, _ := b.Stmts.NamesOf(mod.Body[1])
	if from.Level != 2 || from.Module != "" || len(from.Names) != 2 {
		t.Errorf("unexpected from-import %+v", from)
	}
	star, _ := b.Stmts.NamesOf(mod.Body[2])
	if len(star.Names) != 1 || star.Names[0].Name != "*" {
		t.Errorf("expected star import, got %+v", star.Names)
	}

	assign, ok := b.Stmts.Assign(mod.Body[3])
	if !ok || len(assign.Targets) != 2 {
		t.Fatalf("expected chained assignment, got %+v", assign)
	}
	aug, _ := b.Stmts.AugAssign(mod.Body[4])
	if aug.Op != token.PlusAssign {
		t.Errorf("expected +=, got %v", aug.Op)
	}
	ann, _ := b.Stmts.AnnAssign(mod.Body[5])
	if !ann.Value.IsValid() {
		t.Error("annotated assignment lost its value")
	}
}

func TestParseFunctionDef(t *testing.T) {
	input := `@decorator
async def fetch(a, /, b: int = 1, *args, c, d=[], **kw) -> dict:
    return {}
`
	b, mod := mustParse(t, input)
	if len(mod.Body) != 1 {
		t.Fatalf("expected one statement, got %d", len(mod.Body))
	}
	fn, ok := b.Stmts.FunctionDef(mod.Body[0])
	if !ok {
		t.Fatalf("expected FunctionDef, got %v", b.Stmts.Get(mod.Body[0]).Kind)
	}
	if fn.Name != "fetch" || !fn.Async || len(fn.Decorators) != 1 || !fn.Returns.IsValid() {
		t.Errorf("unexpected function header %+v", fn)
	}

	wantKinds := []ast.ParamKind{
		ast.ParamPosOnly, ast.ParamRegular, ast.ParamVararg,
		ast.ParamKwOnly, ast.ParamKwOnly, ast.ParamKwarg,
	}
	var gotKinds []ast.ParamKind
	for _, it := range fn.Params.Items {
		gotKinds = append(gotKinds, it.Kind)
	}
	if !reflect.DeepEqual(gotKinds, wantKinds) {
		t.Errorf("param kinds = %v, want %v", gotKinds, wantKinds)
	}

	defaults := fn.Params.Defaults()
	if len(defaults) != 1 {
		t.Fatalf("expected 1 positional default, got %d", len(defaults))
	}
	if k, _ := b.Exprs.Kind(defaults[0]); k != ast.ExprConstant {
		t.Errorf("expected constant default for b, got %v", k)
	}
	if d := fn.Params.Items[4]; d.Name != "d" || !d.Default.IsValid() {
		t.Errorf("keyword-only default of d lost: %+v", d)
	}
	if names := len(fn.Params.Regular()); names != 1 {
		t.Errorf("expected 1 regular param, got %d", names)
	}
}

func TestParseFunctionLineIsDefLine(t *testing.T) {
	input := "@a\n@b\ndef f():\n    pass\n"
	b, mod := mustParse(t, input)
	fn := b.Stmts.Get(mod.Body[0])
	// span начинается с 'def', а не с декоратора
	if fn.Span.Start != uint32(len("@a\n@b\n")) {
		t.Errorf("function span starts at %d", fn.Span.Start)
	}
}

func TestParseCompoundStatements(t *testing.T) {
	input := `if a:
    pass
elif b:
    pass
else:
    pass
while x:
    break
else:
    pass
for i, *rest in items:
    continue
with open(p) as f, lock:
    pass
with (
    open(a) as x,
    open(b) as y,
):
    pass
try:
    pass
except (A, B) as e:
    pass
except C:
    pass
else:
    pass
finally:
    pass
class K(Base, metaclass=Meta):
    x = 1
`
	b, mod := mustParse(t, input)
	want := []ast.StmtKind{
		ast.StmtIf, ast.StmtWhile, ast.StmtFor, ast.StmtWith, ast.StmtWith,
		ast.StmtTry, ast.StmtClassDef,
	}
	if got := stmtKinds(b, mod); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}

	cond, _ := b.Stmts.Cond(mod.Body[0])
	if len(cond.Orelse) != 1 || b.Stmts.Get(cond.Orelse[0]).Kind != ast.StmtIf {
		t.Errorf("elif must be a nested If in orelse")
	}
	with, _ := b.Stmts.With(mod.Body[4])
	if len(with.Items) != 2 || !with.Items[1].Target.IsValid() {
		t.Errorf("parenthesized with items not parsed: %+v", with.Items)
	}
	try, _ := b.Stmts.Try(mod.Body[5])
	if len(try.Handlers) != 2 || try.Handlers[0].Name != "e" || len(try.Orelse) != 1 || len(try.Finalbody) != 1 {
		t.Errorf("unexpected try layout %+v", try)
	}
	class, _ := b.Stmts.ClassDef(mod.Body[6])
	if class.Name != "K" || len(class.Bases) != 2 {
		t.Errorf("unexpected class %+v", class)
	}
}

func TestParseWithParenthesizedExpression(t *testing.T) {
	b, mod := mustParse(t, "with (a, b) as c:\n    pass\n")
	with, _ := b.Stmts.With(mod.Body[0])
	if len(with.Items) != 1 {
		t.Fatalf("expected a single item, got %d", len(with.Items))
	}
	if k, _ := b.Exprs.Kind(with.Items[0].Context); k != ast.ExprTuple {
		t.Errorf("expected tuple context, got %v", k)
	}
}

func TestParseMatch(t *testing.T) {
	input := `match command.split():
    case [action]:
        pass
    case [action, *rest] if rest:
        pass
    case Point(x=0) | None as p:
        pass
    case {"k": v, **others}:
        pass
    case _:
        pass
`
	b, mod := mustParse(t, input)
	m, ok := b.Stmts.Match(mod.Body[0])
	if !ok {
		t.Fatalf("expected Match, got %v", b.Stmts.Get(mod.Body[0]).Kind)
	}
	if len(m.Cases) != 5 {
		t.Fatalf("expected 5 cases, got %d", len(m.Cases))
	}
	if !m.Cases[1].Guard.IsValid() {
		t.Error("expected a guard on the second case")
	}
	if k, _ := b.Exprs.Kind(m.Cases[2].Pattern); k != ast.ExprMatchAs {
		t.Errorf("expected MatchAs pattern, got %v", k)
	}
}

func TestMatchAsIdentifier(t *testing.T) {
	input := "match = 1\nmatch.group(0)\nmatch(x)\n"
	b, mod := mustParse(t, input)
	want := []ast.StmtKind{ast.StmtAssign, ast.StmtExpr, ast.StmtExpr}
	if got := stmtKinds(b, mod); !reflect.DeepEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestParseNestedBlocks(t *testing.T) {
	input := `class A:
    def m(self):
        def inner():
            pass
        return inner
`
	b, mod := mustParse(t, input)
	fns := b.Functions(mod)
	if len(fns) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(fns))
	}
	first, _ := b.Stmts.FunctionDef(fns[0])
	second, _ := b.Stmts.FunctionDef(fns[1])
	if first.Name != "m" || second.Name != "inner" {
		t.Errorf("unexpected walk order %q, %q", first.Name, second.Name)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
		line  uint32
	}{
		{name: "unexpected indent", input: "x = 1\n    y = 2\n", code: diag.SynUnexpectedIndent, line: 2},
		{name: "missing colon", input: "def f()\n    pass\n", code: diag.SynExpectColon, line: 1},
		{name: "missing block", input: "if x:\npass\n", code: diag.SynExpectIndent, line: 2},
		{name: "assign to call", input: "f() = 1\n", code: diag.SynInvalidTarget, line: 1},
		{name: "assign to literal", input: "1 = x\n", code: diag.SynInvalidTarget, line: 1},
		{name: "non-default after default", input: "def f(a=1, b):\n    pass\n", code: diag.SynNonDefaultAfterDefault, line: 1},
		{name: "bare star", input: "def f(a, *):\n    pass\n", code: diag.SynBareStar, line: 1},
		{name: "two stars", input: "def f(*a, *b):\n    pass\n", code: diag.SynDuplicateStarParam, line: 1},
		{name: "unclosed paren", input: "x = (1,\n", code: diag.SynUnclosedDelimiter, line: 1},
		{name: "try without except", input: "try:\n    pass\nx = 1\n", code: diag.SynMissingExcept, line: 3},
		{name: "missing expression", input: "x = \n", code: diag.SynExpectExpression, line: 1},
		{name: "trailing tokens", input: "x = 1 2\n", code: diag.SynExpectNewline, line: 1},
		{name: "augmented tuple", input: "a, b += 1\n", code: diag.SynInvalidTarget, line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bag := parseSource(t, tt.input)
			d := expectCode(t, bag, tt.code)
			if d.Line != tt.line {
				t.Errorf("expected line %d, got %d (%s)", tt.line, d.Line, diagnosticsSummary(bag))
			}
			if d.Severity != diag.SevError {
				t.Errorf("expected error severity, got %v", d.Severity)
			}
		})
	}
}

func TestMaxErrorsStopsParsing(t *testing.T) {
	input := "1 = a\n2 = b\n3 = c\n4 = d\n"
	_, _, bag := parseSourceWithOptions(t, input, Options{MaxErrors: 2})
	if bag.Len() != 2 {
		t.Errorf("expected 2 diagnostics, got %d: %s", bag.Len(), diagnosticsSummary(bag))
	}
}

func TestRecoveryKeepsLaterStatements(t *testing.T) {
	input := "x = = 1\ndef ok():\n    pass\n"
	b, mod, bag := parseSource(t, input)
	if !bag.HasErrors() {
		t.Fatal("expected a syntax error")
	}
	if len(b.Functions(mod)) != 1 {
		t.Errorf("function after the error was not recovered: %s", diagnosticsSummary(bag))
	}
}
