package fuzztests

import (
	"context"
	"errors"
	"testing"
	"time"

	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/driver"
	"pystyle/internal/parser"
	"pystyle/internal/source"
	"pystyle/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

// FuzzParserNoHang tests that the parser terminates on any input and that a
// clean parse yields a well-formed tree.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		var invariantErr error
		done := make(chan struct{})
		go func() {
			defer close(done)

			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.py", input))
			bag := diag.NewBag(128)
			builder := ast.NewBuilder(ast.Hints{})
			result := parser.Parse(file, builder, parser.Options{
				Reporter:  diag.BagReporter{Bag: bag, File: file},
				MaxErrors: 128,
			})
			if result.Errors == 0 && result.Module != nil {
				invariantErr = testkit.CheckSpanInvariants(builder, result.Module, file)
			}
		}()

		select {
		case <-done:
			if invariantErr != nil {
				t.Fatalf("span invariants violated for %q: %v", truncateForLog(input, 200), invariantErr)
			}
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzAnalyzeFile runs every rule over arbitrary input. The only accepted
// failure is a syntax error.
func FuzzAnalyzeFile(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.py", input))
		report, err := driver.AnalyzeFile(context.Background(), "fuzz.py", file, driver.Options{})
		if err != nil {
			var syntaxErr *driver.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
		for i := 1; i < len(report.Diagnostics); i++ {
			if report.Diagnostics[i].Line < report.Diagnostics[i-1].Line {
				t.Fatalf("violations are not ordered by line: %+v", report.Diagnostics)
			}
		}
	})
}

func truncateForLog(data []byte, maxLen int) []byte {
	if len(data) <= maxLen {
		return data
	}
	return data[:maxLen]
}
