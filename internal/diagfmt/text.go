package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type palette struct {
	path   *color.Color
	code   *color.Color
	line   *color.Color
	gutter *color.Color
	dim    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:   color.New(color.Bold),
		code:   color.New(color.FgYellow, color.Bold),
		line:   color.New(color.FgCyan),
		gutter: color.New(color.FgBlue),
		dim:    color.New(color.Faint),
	}
	// глобальный color.NoColor не трогаем: решение принимает вызывающий
	for _, c := range []*color.Color{p.path, p.code, p.line, p.gutter, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Text writes one line per violation: "<path>: Line N: CODE message".
// Without color the output is byte-exact.
func Text(w io.Writer, r FileReport, opts TextOpts) error {
	p := newPalette(opts.Color)
	for _, d := range r.Diagnostics {
		var err error
		if opts.Color {
			_, err = fmt.Fprintf(w, "%s: %s: %s %s\n",
				p.path.Sprint(r.Path), p.line.Sprintf("Line %d", d.Line), p.code.Sprint(d.Code.ID()), d.Message)
		} else {
			_, err = fmt.Fprintf(w, "%s: %s\n", r.Path, d.Composed())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
