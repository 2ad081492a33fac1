package diagfmt

import (
	"fmt"
	"strings"

	"pystyle/internal/diag"
	"pystyle/internal/observ"
	"pystyle/internal/source"
)

// Format selects how reports are written.
type Format string

const (
	FormatText    Format = "text"
	FormatPretty  Format = "pretty"
	FormatJSON    Format = "json"
	FormatSarif   Format = "sarif"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatPretty, FormatJSON, FormatSarif, FormatMsgpack:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (expected: text|pretty|json|sarif|msgpack)", s)
}

// Streaming reports whether a format can be written file by file.
func (f Format) Streaming() bool {
	return f == FormatText || f == FormatPretty
}

// FileReport is one checked file as the formatters see it.
type FileReport struct {
	Path        string
	File        *source.File // может быть nil: тогда без выдержек из исходника
	Diagnostics []diag.Diagnostic
	Timing      *observ.Report
}

// TextOpts configures the plain report.
type TextOpts struct {
	Color bool
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	Width int // максимальная ширина строки, 0 - не ограничено
	// ShowSource prints the offending line under each violation.
	ShowSource bool
}

// JSONOpts configures JSON and msgpack output of diagnostics.
type JSONOpts struct {
	Max           int // обрезка вывода, не Bag
	IncludeTiming bool
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InformationURI string
	InvocationArgs []string
}
