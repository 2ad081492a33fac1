package fuzztests

import (
	"testing"

	"pystyle/internal/diag"
	"pystyle/internal/lexer"
	"pystyle/internal/source"
	"pystyle/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.py", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag, File: file}})
		// каждый токен продвигает позицию, иначе лексер зациклился бы
		var prevEnd uint32
		for steps := 0; ; steps++ {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
			if tok.Span.Start < prevEnd {
				t.Fatalf("token %v at %d starts before previous end %d", tok.Kind, tok.Span.Start, prevEnd)
			}
			prevEnd = tok.Span.End
			if steps > 4*len(input)+16 {
				t.Fatalf("lexer does not terminate on %q", truncateForLog(input, 200))
			}
		}
	})
}
