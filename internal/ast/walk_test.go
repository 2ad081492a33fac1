package ast

import (
	"reflect"
	"testing"

	"pystyle/internal/source"
)

func fn(b *Builder, name string, body ...StmtID) StmtID {
	return b.Stmts.NewFunctionDef(source.Span{}, FnDefData{Name: name, Body: body})
}

func names(b *Builder, ids []StmtID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		data, ok := b.Stmts.FunctionDef(id)
		if !ok {
			out = append(out, b.Stmts.Get(id).Kind.String())
			continue
		}
		out = append(out, data.Name)
	}
	return out
}

func TestFunctionsBreadthFirst(t *testing.T) {
	b := NewBuilder(Hints{})

	a := fn(b, "a", fn(b, "a_inner"))
	try := b.Stmts.NewTry(source.Span{}, TryData{
		Body:      []StmtID{fn(b, "t_body")},
		Handlers:  []ExceptHandler{{Body: []StmtID{fn(b, "handler")}}},
		Finalbody: []StmtID{fn(b, "final")},
	})
	last := fn(b, "b")
	mod := &Module{Body: []StmtID{a, try, last}}

	got := names(b, b.Functions(mod))
	want := []string{"a", "b", "a_inner", "t_body", "final", "handler"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Functions() = %v, want %v", got, want)
	}
}

func TestWalkElifIsOneLevelDeeper(t *testing.T) {
	b := NewBuilder(Hints{})

	elif := b.Stmts.NewCond(StmtIf, source.Span{}, NoExprID, []StmtID{fn(b, "in_elif")}, nil)
	top := b.Stmts.NewCond(StmtIf, source.Span{}, NoExprID, []StmtID{fn(b, "in_if")}, []StmtID{elif})
	cls := b.Stmts.NewClassDef(source.Span{}, ClassDefData{Name: "C", Body: []StmtID{fn(b, "method")}})
	mod := &Module{Body: []StmtID{top, cls}}

	var order []StmtID
	b.Stmts.Walk(mod.Body, func(id StmtID, _ *Stmt) bool {
		order = append(order, id)
		return true
	})
	got := names(b, order)
	want := []string{"If", "ClassDef", "in_if", "If", "method", "in_elif"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("walk order = %v, want %v", got, want)
	}
}

func TestWalkMatchCases(t *testing.T) {
	b := NewBuilder(Hints{})
	m := b.Stmts.NewMatch(source.Span{}, MatchData{Cases: []MatchCase{
		{Body: []StmtID{fn(b, "first")}},
		{Body: []StmtID{fn(b, "second")}},
	}})
	sibling := b.Stmts.NewCond(StmtWhile, source.Span{}, NoExprID, []StmtID{fn(b, "loop")}, nil)
	mod := &Module{Body: []StmtID{m, sibling}}

	got := names(b, b.Functions(mod))
	want := []string{"loop", "first", "second"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Functions() = %v, want %v", got, want)
	}
}

func TestWalkStops(t *testing.T) {
	b := NewBuilder(Hints{})
	mod := &Module{Body: []StmtID{fn(b, "x"), fn(b, "y"), fn(b, "z")}}
	visited := 0
	b.Stmts.Walk(mod.Body, func(StmtID, *Stmt) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Fatalf("expected walk to stop after 2 visits, got %d", visited)
	}
}

func TestParamsDefaultsOrder(t *testing.T) {
	b := NewBuilder(Hints{})
	list := b.Exprs.New(ExprList, source.Span{})
	num := b.Exprs.NewNamed(ExprConstant, source.Span{}, "1")
	dict := b.Exprs.New(ExprDict, source.Span{})

	p := Params{Items: []Param{
		{Kind: ParamPosOnly, Name: "a"},
		{Kind: ParamRegular, Name: "b", Default: num},
		{Kind: ParamVararg, Name: "args"},
		{Kind: ParamKwOnly, Name: "c"},
		{Kind: ParamKwOnly, Name: "d", Default: dict},
		{Kind: ParamRegular, Name: "e", Default: list},
		{Kind: ParamKwarg, Name: "kw"},
	}}

	// d=dict после '*' не входит
	if got := p.Defaults(); !reflect.DeepEqual(got, []ExprID{num, list}) {
		t.Fatalf("Defaults() = %v", got)
	}
	regular := p.Regular()
	if len(regular) != 2 || regular[0].Name != "b" || regular[1].Name != "e" {
		t.Fatalf("Regular() = %+v", regular)
	}
	if !ExprDict.IsMutableLiteral() || ExprTuple.IsMutableLiteral() {
		t.Fatal("IsMutableLiteral misclassified kinds")
	}
}
