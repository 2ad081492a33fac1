package driver

import (
	"fmt"

	"pystyle/internal/diag"
	"pystyle/internal/source"
)

// SyntaxError aborts a run when a unit cannot be parsed.
type SyntaxError struct {
	Path       string
	Diagnostic diag.Diagnostic
	Pos        source.LineCol
	// Errors is the total number of lexical and syntax errors in the unit.
	Errors uint
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("%s:%d:%d: %s %s", e.Path, e.Pos.Line, e.Pos.Col, e.Diagnostic.Code.ID(), e.Diagnostic.Message)
	if e.Errors > 1 {
		msg += fmt.Sprintf(" (and %d more)", e.Errors-1)
	}
	return msg
}

// LoadError is an I/O failure while discovering or reading units.
type LoadError struct {
	Path string
	Code diag.Code
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.Path, e.Code.ID(), e.Code.Title(), e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
