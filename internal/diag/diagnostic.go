package diag

import (
	"fmt"

	"pystyle/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Line     uint32
	Message  string
	Primary  source.Span
	Notes    []Note
}

// New creates a diagnostic with an explicit line.
func New(sev Severity, code Code, line uint32, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Line:     line,
		Message:  msg,
	}
}

// Style creates a style violation at the given 1-based line.
func Style(code Code, line uint32, msg string) Diagnostic {
	return New(SevWarning, code, line, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// Composed renders "Line N: CODE message", the form printed after the path.
func (d Diagnostic) Composed() string {
	return fmt.Sprintf("Line %d: %s %s", d.Line, d.Code.ID(), d.Message)
}
