package parser

import (
	"fmt"
	"slices"

	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/lexer"
	"pystyle/internal/source"
	"pystyle/internal/token"

	"fortio.org/safecast"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Module *ast.Module
	Bag    *diag.Bag
	// Errors counts lexical and syntax errors.
	Errors uint
}

// Parser - состояние парсера на один файл
type Parser struct {
	toks     []token.Token // поток токенов, всегда заканчивается EOF
	pos      int
	arenas   *ast.Builder
	file     *source.File
	opts     Options
	lastSpan source.Span // span последнего съеденного значимого токена

	quiet       int  // >0 во время пробного разбора: ошибки не репортим
	quietFailed bool // пробный разбор наткнулся на ошибку
	pattern     int  // >0 внутри образца case
}

// ParseFile разбирает готовый поток токенов одного файла.
func ParseFile(file *source.File, toks []token.Token, arenas *ast.Builder, opts Options) Result {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		end := endSpan(file)
		toks = append(toks, token.Token{Kind: token.EOF, Span: end})
	}
	p := Parser{
		toks:     toks,
		arenas:   arenas,
		file:     file,
		opts:     opts,
		lastSpan: source.Span{File: file.ID},
	}

	mod := &ast.Module{File: file.ID}
	start := p.peek().Span
	mod.Body = p.parseStatements(func() bool { return p.at(token.EOF) })
	mod.Span = start.Cover(p.lastSpan)

	return Result{
		Module: mod,
		Bag:    bagOf(opts.Reporter),
		Errors: p.opts.CurrentErrors,
	}
}

// Parse лексит и разбирает файл; обе фазы пишут в один Reporter.
func Parse(file *source.File, arenas *ast.Builder, opts Options) Result {
	counter := &countingReporter{next: opts.Reporter}
	toks := lexer.Tokenize(file, lexer.Options{Reporter: counter})
	res := ParseFile(file, toks, arenas, opts)
	res.Errors += counter.errors
	return res
}

type countingReporter struct {
	next   diag.Reporter
	errors uint
}

func (r *countingReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	if sev == diag.SevError {
		r.errors++
	}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes)
	}
}

func bagOf(r diag.Reporter) *diag.Bag {
	switch br := r.(type) {
	case *diag.BagReporter:
		return br.Bag
	case diag.BagReporter:
		return br.Bag
	}
	return nil
}

func endSpan(file *source.File) source.Span {
	n, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return source.Span{File: file.ID, Start: n, End: n}
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// atSoft - мягкое ключевое слово (match, case, type).
func (p *Parser) atSoft(name string) bool {
	return p.peek().IsSoft(name)
}

// parseStatements разбирает инструкции, пока stop() не вернёт true.
func (p *Parser) parseStatements(stop func() bool) []ast.StmtID {
	var body []ast.StmtID
	for !stop() && !p.at(token.EOF) && !p.opts.Enough() {
		if p.at(token.Dedent) {
			// лишний DEDENT после восстановления
			p.advance()
			continue
		}
		ids, ok := p.parseStatement()
		body = append(body, ids...)
		if !ok {
			p.resyncStmt()
		}
	}
	return body
}

// resyncStmt - восстановление после ошибки: прокручиваем до конца логической
// строки, пропуская вложенные блоки целиком.
func (p *Parser) resyncStmt() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.Indent:
			depth++
		case token.Dedent:
			if depth == 0 {
				return
			}
			depth--
			p.advance()
			if depth == 0 {
				return
			}
			continue
		case token.Newline:
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

// speculate пробует разобрать конструкцию; при неудаче откатывает позицию.
// Узлы, созданные в неудачной попытке, остаются в арене недостижимыми.
func (p *Parser) speculate(fn func() bool) bool {
	pos, last, failed := p.pos, p.lastSpan, p.quietFailed
	p.quiet++
	p.quietFailed = false
	ok := fn() && !p.quietFailed
	p.quiet--
	if !ok {
		p.pos, p.lastSpan = pos, last
	}
	p.quietFailed = failed
	return ok
}
