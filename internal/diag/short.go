package diag

import (
	"fmt"
	"strings"

	"pystyle/internal/source"
)

// FormatShortDiagnostics renders diagnostics one per line as
// "path:line:col: CODE message", followed by their notes. Used for fatal
// front-end errors on stderr. Order is preserved.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	for i := range diags {
		d := &diags[i]
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s %s", location(fs, d.Primary), d.Code.ID(), flatten(d.Message))
		for _, n := range d.Notes {
			fmt.Fprintf(&b, "\n%s: note: %s", location(fs, n.Span), flatten(n.Msg))
		}
	}
	return b.String()
}

func location(fs *source.FileSet, sp source.Span) string {
	if int(sp.File) >= fs.Len() {
		return "?"
	}
	f := fs.Get(sp.File)
	pos := f.Position(sp.Start)
	return fmt.Sprintf("%s:%d:%d", f.Path, pos.Line, pos.Col)
}

func flatten(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
