package diagfmt

import (
	"encoding/json"
	"io"

	"pystyle/internal/observ"
	"pystyle/internal/rules"
)

// ViolationJSON представляет одно нарушение в JSON/msgpack формате
type ViolationJSON struct {
	Code     string `json:"code" msgpack:"code"`
	Rule     string `json:"rule,omitempty" msgpack:"rule,omitempty"`
	Severity string `json:"severity" msgpack:"severity"`
	Line     uint32 `json:"line" msgpack:"line"`
	Message  string `json:"message" msgpack:"message"`
}

// FileJSON groups the violations of one file.
type FileJSON struct {
	Path       string          `json:"path" msgpack:"path"`
	Violations []ViolationJSON `json:"violations" msgpack:"violations"`
	Timing     *observ.Report  `json:"timing,omitempty" msgpack:"timing,omitempty"`
}

// ReportOutput представляет корневую структуру вывода
type ReportOutput struct {
	Files []FileJSON `json:"files" msgpack:"files"`
	Count int        `json:"count" msgpack:"count"`
}

// BuildReportOutput формирует структуру вывода без сериализации.
// opts.Max ограничивает общее число нарушений по всем файлам.
func BuildReportOutput(reports []FileReport, opts JSONOpts) ReportOutput {
	output := ReportOutput{Files: make([]FileJSON, 0, len(reports))}
	for _, r := range reports {
		file := FileJSON{
			Path:       r.Path,
			Violations: make([]ViolationJSON, 0, len(r.Diagnostics)),
		}
		if opts.IncludeTiming {
			file.Timing = r.Timing
		}
		for _, d := range r.Diagnostics {
			if opts.Max > 0 && output.Count >= opts.Max {
				break
			}
			v := ViolationJSON{
				Code:     d.Code.ID(),
				Severity: d.Severity.String(),
				Line:     d.Line,
				Message:  d.Message,
			}
			if info, ok := rules.Lookup(d.Code); ok {
				v.Rule = info.Name
			}
			file.Violations = append(file.Violations, v)
			output.Count++
		}
		output.Files = append(output.Files, file)
	}
	return output
}

// JSON форматирует отчёты всех файлов в один JSON-документ.
func JSON(w io.Writer, reports []FileReport, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildReportOutput(reports, opts))
}
