package rules

import (
	"testing"
)

func TestCheckBlankRuns(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		line  uint32
		fires bool
	}{
		{"two blanks", []string{"a", "", "", "b"}, 0, false},
		{"three blanks", []string{"a", "", "", "", "b"}, 5, true},
		{"reset between runs", []string{"", "", "a", "", "", "b"}, 0, false},
		{"first run wins", []string{"", "", "", "a", "", "", "", "", "b"}, 4, true},
		{"trailing blanks", []string{"a", "", "", ""}, 5, true},
		{"empty file", nil, 0, false},
		{"whitespace is not blank", []string{"a", " ", " ", " ", "b"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := CheckBlankRuns(tt.lines)
			if ok != tt.fires {
				t.Fatalf("fired = %v, want %v", ok, tt.fires)
			}
			if ok && d.Line != tt.line {
				t.Errorf("line = %d, want %d", d.Line, tt.line)
			}
		})
	}
}
