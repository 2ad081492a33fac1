package rules

import (
	"pystyle/internal/diag"
)

// MaxBlankLines consecutive empty lines are allowed before code.
const MaxBlankLines = 2

// CheckBlankRuns reports the first run of more than MaxBlankLines empty lines.
// The violation points at the line right after the third blank one; the scan
// stops there.
func CheckBlankRuns(lines []string) (diag.Diagnostic, bool) {
	run := 0
	for i, line := range lines {
		if line != "" {
			run = 0
			continue
		}
		run++
		if run > MaxBlankLines {
			// i - 0-based индекс третьей пустой строки, следующая строка имеет номер i+2
			return diag.Style(diag.StyleBlankLines, lineNumber(i+1),
				"More than two blank lines preceding a code line"), true
		}
	}
	return diag.Diagnostic{}, false
}
