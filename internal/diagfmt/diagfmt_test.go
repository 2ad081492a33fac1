package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/lexer"
	"pystyle/internal/observ"
	"pystyle/internal/parser"
	"pystyle/internal/source"
)

func sampleReport() FileReport {
	fs := source.NewFileSet()
	id := fs.AddVirtual("src/a.py", []byte("x = 1;\n\ndef f(Arg):\n    return Arg\n"))
	return FileReport{
		Path: "src/a.py",
		File: fs.Get(id),
		Diagnostics: []diag.Diagnostic{
			diag.Style(diag.StyleSemicolon, 1, "Unnecessary semicolon"),
			diag.Style(diag.StyleArgumentName, 3, "Argument name Arg should be written in snake_case"),
		},
		Timing: &observ.Report{TotalMS: 1.5},
	}
}

func TestTextIsExactWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, sampleReport(), TextOpts{}); err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := "src/a.py: Line 1: S003 Unnecessary semicolon\n" +
		"src/a.py: Line 3: S010 Argument name Arg should be written in snake_case\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTextWithColor(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, sampleReport(), TextOpts{Color: true}); err != nil {
		t.Fatalf("Text: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", out)
	}
	if !strings.Contains(out, "Unnecessary semicolon") {
		t.Errorf("message lost: %q", out)
	}
}

func TestPrettyShowsSource(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, sampleReport(), PrettyOpts{ShowSource: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"src/a.py: 2 issues", "S003  line 1  Unnecessary semicolon", "| x = 1;", "| def f(Arg):"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestPrettySkipsCleanFiles(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, FileReport{Path: "clean.py"}, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestFitWidth(t *testing.T) {
	if got := fitWidth("abcdef", 4); got != "abc…" {
		t.Errorf("fitWidth = %q", got)
	}
	// широкие символы занимают две колонки
	if got := fitWidth("日本語テキスト", 5); got != "日本…" {
		t.Errorf("fitWidth wide = %q", got)
	}
	if got := fitWidth("short", 10); got != "short" {
		t.Errorf("fitWidth short = %q", got)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	reports := []FileReport{sampleReport(), {Path: "src/b.py"}}
	if err := JSON(&buf, reports, JSONOpts{IncludeTiming: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var output ReportOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if output.Count != 2 || len(output.Files) != 2 {
		t.Fatalf("unexpected output %+v", output)
	}
	v := output.Files[0].Violations[1]
	if v.Code != "S010" || v.Rule != "argument-name" || v.Line != 3 || v.Severity != "WARNING" {
		t.Errorf("unexpected violation %+v", v)
	}
	if output.Files[0].Timing == nil || output.Files[0].Timing.TotalMS != 1.5 {
		t.Errorf("timing lost: %+v", output.Files[0].Timing)
	}
	if output.Files[1].Violations == nil {
		t.Error("clean file must have an empty list, not null")
	}
}

func TestJSONMaxLimit(t *testing.T) {
	out := BuildReportOutput([]FileReport{sampleReport(), sampleReport()}, JSONOpts{Max: 3})
	if out.Count != 3 {
		t.Errorf("count = %d, want 3", out.Count)
	}
	if len(out.Files[1].Violations) != 1 {
		t.Errorf("second file has %d violations, want 1", len(out.Files[1].Violations))
	}
}

func TestMsgpackMatchesJSONDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := Msgpack(&buf, []FileReport{sampleReport()}, JSONOpts{}); err != nil {
		t.Fatalf("Msgpack: %v", err)
	}
	var output ReportOutput
	if err := msgpack.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if output.Count != 2 || output.Files[0].Path != "src/a.py" || output.Files[0].Violations[0].Code != "S003" {
		t.Errorf("unexpected document %+v", output)
	}
}

func TestSarif(t *testing.T) {
	var buf bytes.Buffer
	meta := SarifRunMeta{ToolName: "pystyle", ToolVersion: "1.0.0", InvocationArgs: []string{"pystyle", "src"}}
	if err := Sarif(&buf, []FileReport{sampleReport()}, meta); err != nil {
		t.Fatalf("Sarif: %v", err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("invalid SARIF: %v", err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("unexpected log header %+v", log)
	}
	run := log.Runs[0]
	if len(run.Tool.Driver.Rules) != 12 {
		t.Errorf("expected 12 rules, got %d", len(run.Tool.Driver.Rules))
	}
	if len(run.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(run.Results))
	}
	res := run.Results[1]
	if res.RuleID != "S010" || res.RuleIndex != 9 {
		t.Errorf("unexpected result %+v", res)
	}
	loc := res.Locations[0].PhysicalLocation
	if loc.ArtifactLocation.URI != "src/a.py" || loc.Region.StartLine != 3 {
		t.Errorf("unexpected location %+v", loc)
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "PRETTY", "json", "sarif", "msgpack"} {
		if _, err := ParseFormat(name); err != nil {
			t.Errorf("ParseFormat(%q): %v", name, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
	if !FormatText.Streaming() || FormatJSON.Streaming() {
		t.Error("unexpected Streaming() results")
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.py", []byte("x = 1  # note\n"))
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"x"`) || !strings.Contains(out, "at 1:1-1:2") {
		t.Errorf("unexpected pretty dump:\n%s", out)
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var decoded []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != len(toks) {
		t.Errorf("expected %d tokens, got %d", len(toks), len(decoded))
	}
}

func TestOutline(t *testing.T) {
	fs := source.NewFileSet()
	src := "import os\n\nclass A:\n    async def m(self, a, /, b=1, *, c, **kw):\n        X = 1\n"
	file := fs.Get(fs.AddVirtual("o.py", []byte(src)))
	b := ast.NewBuilder(ast.Hints{})
	res := parser.Parse(file, b, parser.Options{})
	if res.Errors != 0 {
		t.Fatalf("unexpected errors: %d", res.Errors)
	}

	nodes := BuildOutline(b, res.Module, file)
	var buf bytes.Buffer
	if err := FormatOutlinePretty(&buf, "o.py", nodes); err != nil {
		t.Fatal(err)
	}
	want := "Module o.py\n" +
		"├─ Import os [1]\n" +
		"└─ ClassDef class A [3-5]\n" +
		"   └─ FunctionDef async def m(self, a, /, b=…, *, c, **kw) [4-5]\n" +
		"      └─ Assign X [5]\n"
	if buf.String() != want {
		t.Errorf("outline mismatch:\n got:\n%s\nwant:\n%s", buf.String(), want)
	}

	buf.Reset()
	if err := FormatOutlineJSON(&buf, nodes); err != nil {
		t.Fatal(err)
	}
	var decoded []OutlineNode
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Children[0].Kind != "FunctionDef" {
		t.Errorf("unexpected decoded outline %+v", decoded)
	}
}
