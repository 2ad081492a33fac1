package ast

import (
	"pystyle/internal/source"
	"pystyle/internal/token"
)

type ExprKind uint8

const (
	ExprName ExprKind = iota
	ExprConstant
	ExprList
	ExprTuple
	ExprSet
	ExprDict
	ExprListComp
	ExprSetComp
	ExprDictComp
	ExprGenerator
	ExprComprehension
	ExprAttribute
	ExprSubscript
	ExprSlice
	ExprCall
	ExprKeyword
	ExprStarred
	ExprBinOp
	ExprUnaryOp
	ExprBoolOp
	ExprCompare
	ExprIfExp
	ExprLambda
	ExprNamedExpr
	ExprAwait
	ExprYield
	ExprYieldFrom
	ExprMatchAs
)

var exprKindNames = [...]string{
	ExprName:          "Name",
	ExprConstant:      "Constant",
	ExprList:          "List",
	ExprTuple:         "Tuple",
	ExprSet:           "Set",
	ExprDict:          "Dict",
	ExprListComp:      "ListComp",
	ExprSetComp:       "SetComp",
	ExprDictComp:      "DictComp",
	ExprGenerator:     "GeneratorExp",
	ExprComprehension: "comprehension",
	ExprAttribute:     "Attribute",
	ExprSubscript:     "Subscript",
	ExprSlice:         "Slice",
	ExprCall:          "Call",
	ExprKeyword:       "keyword",
	ExprStarred:       "Starred",
	ExprBinOp:         "BinOp",
	ExprUnaryOp:       "UnaryOp",
	ExprBoolOp:        "BoolOp",
	ExprCompare:       "Compare",
	ExprIfExp:         "IfExp",
	ExprLambda:        "Lambda",
	ExprNamedExpr:     "NamedExpr",
	ExprAwait:         "Await",
	ExprYield:         "Yield",
	ExprYieldFrom:     "YieldFrom",
	ExprMatchAs:       "MatchAs",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Expr(?)"
}

// IsMutableLiteral reports list, dict and set displays.
func (k ExprKind) IsMutableLiteral() bool {
	return k == ExprList || k == ExprDict || k == ExprSet
}

// Expr - общий узел выражения. Значение полей зависит от Kind:
//
//	Name        Name = идентификатор
//	Constant    Name = исходный текст литерала
//	Attribute   Name = атрибут, Children = [value]
//	Keyword     Name = имя аргумента ("" для **kwargs), Children = [value]
//	Dict        Children = пары key, value; key = NoExprID для **mapping
//	DictComp    Children = [key, value, comprehension...]
//	*Comp/Gen   Children = [elt, comprehension...]
//	Comprehension Children = [target, iter, ifs...], Async
//	Subscript   Children = [value, index]
//	Slice       Children = [lower, upper, step], любой может быть NoExprID
//	Call        Children = [func, args...], keyword-аргументы как ExprKeyword
//	BinOp       Op, Children = [left, right]
//	UnaryOp     Op (Plus, Minus, Tilde, KwNot), Children = [operand]
//	BoolOp      Op (KwAnd, KwOr), Children = операнды
//	Compare     Ops, Children = [left, comparators...]
//	IfExp       Children = [test, body, orelse]
//	Lambda      Params, Children = [body]
//	NamedExpr   Children = [target, value]
//	Yield       Children = [value] или пусто
//	MatchAs     Name = имя захвата, Children = [pattern] (образец case ... as x)
type Expr struct {
	Kind     ExprKind
	Span     source.Span
	Name     string
	Op       token.Kind
	Ops      []string
	Async    bool
	Children []ExprID
	Params   *Params
}

type Exprs struct {
	Arena *Arena[Expr]
}

func NewExprs(capHint uint) *Exprs {
	return &Exprs{
		Arena: NewArena[Expr](capHint),
	}
}

// New allocates an expression node.
func (e *Exprs) New(kind ExprKind, span source.Span, children ...ExprID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:     kind,
		Span:     span,
		Children: children,
	}))
}

// NewNamed allocates Name, Constant, Attribute and Keyword nodes.
func (e *Exprs) NewNamed(kind ExprKind, span source.Span, name string, children ...ExprID) ExprID {
	id := e.New(kind, span, children...)
	e.Get(id).Name = name
	return id
}

// NewOp allocates BinOp, UnaryOp and BoolOp nodes.
func (e *Exprs) NewOp(kind ExprKind, span source.Span, op token.Kind, children ...ExprID) ExprID {
	id := e.New(kind, span, children...)
	e.Get(id).Op = op
	return id
}

func (e *Exprs) NewCompare(span source.Span, ops []string, operands []ExprID) ExprID {
	id := e.New(ExprCompare, span, operands...)
	e.Get(id).Ops = ops
	return id
}

func (e *Exprs) NewLambda(span source.Span, params Params, body ExprID) ExprID {
	id := e.New(ExprLambda, span, body)
	e.Get(id).Params = &params
	return id
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Kind returns the kind of id, or false for NoExprID.
func (e *Exprs) Kind(id ExprID) (ExprKind, bool) {
	x := e.Get(id)
	if x == nil {
		return 0, false
	}
	return x.Kind, true
}
