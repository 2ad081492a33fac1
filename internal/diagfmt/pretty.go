package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Pretty пишет нарушения одного файла группой:
//
//	src/a.py: 2 issues
//	  S003  line 1  Unnecessary semicolon
//	      1 | x = 1;
//
// Ожидается, что диагностики уже отсортированы по строке.
func Pretty(w io.Writer, r FileReport, opts PrettyOpts) error {
	if len(r.Diagnostics) == 0 {
		return nil
	}
	p := newPalette(opts.Color)

	noun := "issues"
	if len(r.Diagnostics) == 1 {
		noun = "issue"
	}
	if _, err := fmt.Fprintf(w, "%s: %d %s\n", p.path.Sprint(r.Path), len(r.Diagnostics), noun); err != nil {
		return err
	}

	lineWidth := len(strconv.FormatUint(uint64(maxLine(r)), 10))
	for _, d := range r.Diagnostics {
		lineLabel := fmt.Sprintf("line %-*d", lineWidth, d.Line)
		header := fmt.Sprintf("  %s  %s  %s", p.code.Sprint(d.Code.ID()), p.line.Sprint(lineLabel), d.Message)
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		if !opts.ShowSource || r.File == nil {
			continue
		}
		text := strings.ReplaceAll(r.File.GetLine(d.Line), "\t", "    ")
		gutter := fmt.Sprintf("    %*d | ", lineWidth+2, d.Line)
		if opts.Width > 0 {
			text = fitWidth(text, opts.Width-runewidth.StringWidth(gutter))
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", p.gutter.Sprint(gutter), text); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func maxLine(r FileReport) uint32 {
	var m uint32
	for _, d := range r.Diagnostics {
		m = max(m, d.Line)
	}
	return m
}

// fitWidth обрезает строку по ширине на экране, а не по байтам.
func fitWidth(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}
