package driver

import (
	"context"
	"fmt"

	"fortio.org/safecast"

	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/observ"
	"pystyle/internal/parser"
	"pystyle/internal/rules"
	"pystyle/internal/source"
	"pystyle/internal/trace"
)

// Options tune a check run.
type Options struct {
	// Jobs bounds the worker pool; values below 2 mean sequential execution.
	Jobs int
	// MaxDiagnostics keeps only the first violations of a unit in print
	// order, 0 means unlimited.
	MaxDiagnostics int
	// Timings enables per-unit phase timings in Report.Timing.
	Timings  bool
	Progress ProgressSink
}

// Report holds the violations of one unit in print order.
type Report struct {
	Path        string
	File        *source.File
	Diagnostics []diag.Diagnostic
	Timing      *observ.Report
}

// Lines renders the report as "<path>: Line N: CODE message" lines.
func (r *Report) Lines() []string {
	out := make([]string, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		out = append(out, r.Path+": "+d.Composed())
	}
	return out
}

// AnalyzeFile runs every rule family over a loaded file and returns its
// deduplicated, line-ordered violations. A file that does not parse yields
// *SyntaxError and no report.
func AnalyzeFile(ctx context.Context, path string, file *source.File, opts Options) (*Report, error) {
	tracer := trace.FromContext(ctx)
	ctx, unitSpan := trace.StartSpan(ctx, trace.ScopeModule, "file:"+path)
	parent := trace.CurrentSpan(ctx).SpanID

	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}

	// лимит применяется после сортировки, иначе он зависел бы от порядка правил
	bag := diag.NewBag(0)
	lines := file.Lines()

	// построчные правила и пустые строки не зависят от разбора
	emit(opts.Progress, Event{File: path, Stage: StageLines, Status: StatusWorking})
	span := trace.Begin(tracer, trace.ScopePass, "lines", parent)
	phase := timer.Begin("lines")
	bag.AddAll(rules.CheckLines(lines))
	timer.End(phase, fmt.Sprintf("%d lines", len(lines)))
	span.End("")

	span = trace.Begin(tracer, trace.ScopePass, "blank", parent)
	phase = timer.Begin("blank")
	if d, ok := rules.CheckBlankRuns(lines); ok {
		bag.Add(d)
	}
	timer.End(phase, "")
	span.End("")

	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	span = trace.Begin(tracer, trace.ScopePass, "parse", parent)
	phase = timer.Begin("parse")
	tree, err := parseTree(path, file)
	timer.End(phase, "")
	if err != nil {
		span.WithExtra("error", err.Error()).End("failed")
		unitSpan.End("syntax error")
		return nil, err
	}
	span.End(fmt.Sprintf("%d stmts", tree.Builder.Stmts.Arena.Len()))

	emit(opts.Progress, Event{File: path, Stage: StageTree, Status: StatusWorking})
	span = trace.Begin(tracer, trace.ScopePass, "tree", parent)
	phase = timer.Begin("tree")
	bag.AddAll(rules.CheckTree(tree))
	timer.End(phase, fmt.Sprintf("%d functions", len(tree.Builder.Functions(tree.Module))))
	span.End("")

	bag.Dedup()
	bag.Sort()
	bag.Truncate(opts.MaxDiagnostics)

	report := &Report{
		Path:        path,
		File:        file,
		Diagnostics: bag.Items(),
	}
	if timer != nil {
		r := timer.Report()
		report.Timing = &r
	}
	unitSpan.WithExtra("violations", fmt.Sprint(bag.Len())).End("")
	return report, nil
}

// parseTree parses file and converts the first syntax error into *SyntaxError.
func parseTree(path string, file *source.File) (rules.Tree, error) {
	contentLen, err := safecast.Conv[uint](len(file.Content))
	if err != nil {
		return rules.Tree{}, err
	}
	builder := ast.NewBuilder(ast.Hints{Stmts: contentLen/16 + 1, Exprs: contentLen/4 + 1})
	syntax := diag.NewBag(0)
	res := parser.Parse(file, builder, parser.Options{
		Reporter:  diag.NewDedupReporter(diag.BagReporter{Bag: syntax, File: file}),
		MaxErrors: 32,
	})
	if res.Errors > 0 {
		first, ok := syntax.FirstError()
		if !ok {
			first = diag.New(diag.SevError, diag.SynUnexpectedToken, 0, "invalid syntax")
		}
		return rules.Tree{}, &SyntaxError{
			Path:       path,
			Diagnostic: first,
			Pos:        file.Position(first.Primary.Start),
			Errors:     res.Errors,
		}
	}
	return rules.Tree{File: file, Builder: builder, Module: res.Module}, nil
}
