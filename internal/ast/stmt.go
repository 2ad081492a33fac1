package ast

import (
	"pystyle/internal/source"
	"pystyle/internal/token"
)

type StmtKind uint8

const (
	StmtExpr StmtKind = iota
	StmtAssign
	StmtAugAssign
	StmtAnnAssign
	StmtReturn
	StmtPass
	StmtBreak
	StmtContinue
	StmtDel
	StmtRaise
	StmtAssert
	StmtGlobal
	StmtNonlocal
	StmtImport
	StmtImportFrom
	StmtTypeAlias
	StmtFunctionDef
	StmtClassDef
	StmtIf
	StmtWhile
	StmtFor
	StmtWith
	StmtTry
	StmtMatch
)

var stmtKindNames = [...]string{
	StmtExpr:        "Expr",
	StmtAssign:      "Assign",
	StmtAugAssign:   "AugAssign",
	StmtAnnAssign:   "AnnAssign",
	StmtReturn:      "Return",
	StmtPass:        "Pass",
	StmtBreak:       "Break",
	StmtContinue:    "Continue",
	StmtDel:         "Delete",
	StmtRaise:       "Raise",
	StmtAssert:      "Assert",
	StmtGlobal:      "Global",
	StmtNonlocal:    "Nonlocal",
	StmtImport:      "Import",
	StmtImportFrom:  "ImportFrom",
	StmtTypeAlias:   "TypeAlias",
	StmtFunctionDef: "FunctionDef",
	StmtClassDef:    "ClassDef",
	StmtIf:          "If",
	StmtWhile:       "While",
	StmtFor:         "For",
	StmtWith:        "With",
	StmtTry:         "Try",
	StmtMatch:       "Match",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Stmt(?)"
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// AssignData: a = b = value. Targets are in source order.
type AssignData struct {
	Targets []ExprID
	Value   ExprID
}

type AugAssignData struct {
	Target ExprID
	Op     token.Kind
	Value  ExprID
}

type AnnAssignData struct {
	Target     ExprID
	Annotation ExprID
	Value      ExprID // NoExprID, если значения нет
}

// ValuesData хранит операнды простых инструкций:
// Expr [value], Return [value?], Delete [targets...], Raise [exc?, cause?],
// Assert [test, msg?], TypeAlias [name, value, type params...].
type ValuesData struct {
	Values []ExprID
}

type ImportName struct {
	Name   string // dotted name, "*" для from m import *
	AsName string
	Span   source.Span
}

// NamesData: import/from-import/global/nonlocal.
type NamesData struct {
	Module string // только для ImportFrom, без ведущих точек
	Level  int    // количество ведущих точек
	Names  []ImportName
}

type FnDefData struct {
	Name       string
	NameSpan   source.Span
	Async      bool
	TypeParams []ExprID
	Params     Params
	Returns    ExprID
	Decorators []ExprID
	Body       []StmtID
}

type ClassDefData struct {
	Name       string
	NameSpan   source.Span
	TypeParams []ExprID
	Bases      []ExprID // позиционные аргументы и keyword-аргументы (ExprKeyword)
	Decorators []ExprID
	Body       []StmtID
}

// CondData: if и while. elif представлен вложенным If в Orelse.
type CondData struct {
	Test   ExprID
	Body   []StmtID
	Orelse []StmtID
}

type ForData struct {
	Async  bool
	Target ExprID
	Iter   ExprID
	Body   []StmtID
	Orelse []StmtID
}

type WithItem struct {
	Context ExprID
	Target  ExprID
}

type WithData struct {
	Async bool
	Items []WithItem
	Body  []StmtID
}

type ExceptHandler struct {
	Span source.Span
	Type ExprID
	Name string
	Body []StmtID
}

type TryData struct {
	Star      bool // except*
	Body      []StmtID
	Handlers  []ExceptHandler
	Orelse    []StmtID
	Finalbody []StmtID
}

type MatchCase struct {
	Span    source.Span
	Pattern ExprID
	Guard   ExprID
	Body    []StmtID
}

type MatchData struct {
	Subject ExprID
	Cases   []MatchCase
}

type Stmts struct {
	Arena      *Arena[Stmt]
	Assigns    *Arena[AssignData]
	AugAssigns *Arena[AugAssignData]
	AnnAssigns *Arena[AnnAssignData]
	Values     *Arena[ValuesData]
	Names      *Arena[NamesData]
	Fns        *Arena[FnDefData]
	Classes    *Arena[ClassDefData]
	Conds      *Arena[CondData]
	Fors       *Arena[ForData]
	Withs      *Arena[WithData]
	Tries      *Arena[TryData]
	Matches    *Arena[MatchData]
}

func NewStmts(capHint uint) *Stmts {
	small := capHint/8 + 1
	return &Stmts{
		Arena:      NewArena[Stmt](capHint),
		Assigns:    NewArena[AssignData](capHint / 2),
		AugAssigns: NewArena[AugAssignData](small),
		AnnAssigns: NewArena[AnnAssignData](small),
		Values:     NewArena[ValuesData](capHint / 2),
		Names:      NewArena[NamesData](small),
		Fns:        NewArena[FnDefData](small),
		Classes:    NewArena[ClassDefData](small),
		Conds:      NewArena[CondData](small),
		Fors:       NewArena[ForData](small),
		Withs:      NewArena[WithData](small),
		Tries:      NewArena[TryData](small),
		Matches:    NewArena[MatchData](small),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) payload(id StmtID, kinds ...StmtKind) (uint32, bool) {
	st := s.Get(id)
	if st == nil {
		return 0, false
	}
	for _, k := range kinds {
		if st.Kind == k {
			return uint32(st.Payload), true
		}
	}
	return 0, false
}

// NewBare creates pass/break/continue.
func (s *Stmts) NewBare(kind StmtKind, span source.Span) StmtID {
	return s.new(kind, span, NoPayloadID)
}

func (s *Stmts) NewAssign(span source.Span, targets []ExprID, value ExprID) StmtID {
	payload := s.Assigns.Allocate(AssignData{Targets: targets, Value: value})
	return s.new(StmtAssign, span, PayloadID(payload))
}

func (s *Stmts) Assign(id StmtID) (*AssignData, bool) {
	p, ok := s.payload(id, StmtAssign)
	if !ok {
		return nil, false
	}
	return s.Assigns.Get(p), true
}

func (s *Stmts) NewAugAssign(span source.Span, target ExprID, op token.Kind, value ExprID) StmtID {
	payload := s.AugAssigns.Allocate(AugAssignData{Target: target, Op: op, Value: value})
	return s.new(StmtAugAssign, span, PayloadID(payload))
}

func (s *Stmts) AugAssign(id StmtID) (*AugAssignData, bool) {
	p, ok := s.payload(id, StmtAugAssign)
	if !ok {
		return nil, false
	}
	return s.AugAssigns.Get(p), true
}

func (s *Stmts) NewAnnAssign(span source.Span, target, annotation, value ExprID) StmtID {
	payload := s.AnnAssigns.Allocate(AnnAssignData{Target: target, Annotation: annotation, Value: value})
	return s.new(StmtAnnAssign, span, PayloadID(payload))
}

func (s *Stmts) AnnAssign(id StmtID) (*AnnAssignData, bool) {
	p, ok := s.payload(id, StmtAnnAssign)
	if !ok {
		return nil, false
	}
	return s.AnnAssigns.Get(p), true
}

// NewValues creates Expr, Return, Delete, Raise, Assert and TypeAlias statements.
func (s *Stmts) NewValues(kind StmtKind, span source.Span, values ...ExprID) StmtID {
	payload := s.Values.Allocate(ValuesData{Values: values})
	return s.new(kind, span, PayloadID(payload))
}

func (s *Stmts) ValuesOf(id StmtID) (*ValuesData, bool) {
	p, ok := s.payload(id, StmtExpr, StmtReturn, StmtDel, StmtRaise, StmtAssert, StmtTypeAlias)
	if !ok {
		return nil, false
	}
	return s.Values.Get(p), true
}

// NewNames creates Import, ImportFrom, Global and Nonlocal statements.
func (s *Stmts) NewNames(kind StmtKind, span source.Span, data NamesData) StmtID {
	payload := s.Names.Allocate(data)
	return s.new(kind, span, PayloadID(payload))
}

func (s *Stmts) NamesOf(id StmtID) (*NamesData, bool) {
	p, ok := s.payload(id, StmtImport, StmtImportFrom, StmtGlobal, StmtNonlocal)
	if !ok {
		return nil, false
	}
	return s.Names.Get(p), true
}

func (s *Stmts) NewFunctionDef(span source.Span, data FnDefData) StmtID {
	payload := s.Fns.Allocate(data)
	return s.new(StmtFunctionDef, span, PayloadID(payload))
}

func (s *Stmts) FunctionDef(id StmtID) (*FnDefData, bool) {
	p, ok := s.payload(id, StmtFunctionDef)
	if !ok {
		return nil, false
	}
	return s.Fns.Get(p), true
}

func (s *Stmts) NewClassDef(span source.Span, data ClassDefData) StmtID {
	payload := s.Classes.Allocate(data)
	return s.new(StmtClassDef, span, PayloadID(payload))
}

func (s *Stmts) ClassDef(id StmtID) (*ClassDefData, bool) {
	p, ok := s.payload(id, StmtClassDef)
	if !ok {
		return nil, false
	}
	return s.Classes.Get(p), true
}

// NewCond creates If and While statements.
func (s *Stmts) NewCond(kind StmtKind, span source.Span, test ExprID, body, orelse []StmtID) StmtID {
	payload := s.Conds.Allocate(CondData{Test: test, Body: body, Orelse: orelse})
	return s.new(kind, span, PayloadID(payload))
}

func (s *Stmts) Cond(id StmtID) (*CondData, bool) {
	p, ok := s.payload(id, StmtIf, StmtWhile)
	if !ok {
		return nil, false
	}
	return s.Conds.Get(p), true
}

func (s *Stmts) NewFor(span source.Span, data ForData) StmtID {
	payload := s.Fors.Allocate(data)
	return s.new(StmtFor, span, PayloadID(payload))
}

func (s *Stmts) For(id StmtID) (*ForData, bool) {
	p, ok := s.payload(id, StmtFor)
	if !ok {
		return nil, false
	}
	return s.Fors.Get(p), true
}

func (s *Stmts) NewWith(span source.Span, data WithData) StmtID {
	payload := s.Withs.Allocate(data)
	return s.new(StmtWith, span, PayloadID(payload))
}

func (s *Stmts) With(id StmtID) (*WithData, bool) {
	p, ok := s.payload(id, StmtWith)
	if !ok {
		return nil, false
	}
	return s.Withs.Get(p), true
}

func (s *Stmts) NewTry(span source.Span, data TryData) StmtID {
	payload := s.Tries.Allocate(data)
	return s.new(StmtTry, span, PayloadID(payload))
}

func (s *Stmts) Try(id StmtID) (*TryData, bool) {
	p, ok := s.payload(id, StmtTry)
	if !ok {
		return nil, false
	}
	return s.Tries.Get(p), true
}

func (s *Stmts) NewMatch(span source.Span, data MatchData) StmtID {
	payload := s.Matches.Allocate(data)
	return s.new(StmtMatch, span, PayloadID(payload))
}

func (s *Stmts) Match(id StmtID) (*MatchData, bool) {
	p, ok := s.payload(id, StmtMatch)
	if !ok {
		return nil, false
	}
	return s.Matches.Get(p), true
}
