package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pystyle/internal/diagfmt"
	"pystyle/internal/driver"
	"pystyle/internal/version"
)

func runCheck(cmd *cobra.Command, args []string) (err error) {
	cfg, err := discoverConfig(cmd)
	if err != nil {
		return err
	}
	settings, err := resolveSettings(cmd, cfg)
	if err != nil {
		return err
	}

	traceCleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer traceCleanup()

	profCleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer profCleanup()

	opts := driver.Options{
		Jobs:           settings.jobs,
		MaxDiagnostics: settings.maxDiagnostics,
		Timings:        settings.timings,
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	w := &reportWriter{
		out:     out,
		errOut:  errOut,
		format:  settings.format,
		color:   settings.color.enabled(os.Stdout),
		width:   terminalWidth(os.Stdout),
		timings: settings.timings,
		args:    os.Args[1:],
	}

	path := args[0]
	if shouldUseTUI(settings.ui) {
		err = runCheckWithUI(cmd.Context(), path, opts, w)
	} else {
		err = driver.Check(cmd.Context(), path, opts, w.add)
	}

	// json/sarif/msgpack дописываем даже при фатальной ошибке,
	// чтобы уже проверенные файлы не потерялись
	if flushErr := w.flush(); flushErr != nil {
		err = errors.Join(err, flushErr)
	}
	if err != nil {
		return err
	}
	if settings.exitCode && w.violations > 0 {
		return &exitError{code: 2}
	}
	return nil
}

// reportWriter renders reports as they arrive. Streaming formats are written
// immediately; document formats are buffered until flush.
type reportWriter struct {
	out    io.Writer
	errOut io.Writer
	format diagfmt.Format
	color  bool
	width  int

	timings bool
	args    []string

	pending    []diagfmt.FileReport
	violations int
	buffered   bool
}

func (w *reportWriter) add(r *driver.Report) error {
	fr := diagfmt.FileReport{
		Path:        r.Path,
		File:        r.File,
		Diagnostics: r.Diagnostics,
		Timing:      r.Timing,
	}
	w.violations += len(r.Diagnostics)

	// во время UI stderr занят прогрессом, поэтому всё откладываем
	if w.buffered {
		w.pending = append(w.pending, fr)
		return nil
	}
	w.writeTiming(fr)
	if !w.format.Streaming() {
		w.pending = append(w.pending, fr)
		return nil
	}
	return w.write(fr)
}

func (w *reportWriter) writeTiming(fr diagfmt.FileReport) {
	if w.timings && fr.Timing != nil {
		fmt.Fprintf(w.errOut, "%s:\n%s", fr.Path, fr.Timing.String())
	}
}

func (w *reportWriter) write(fr diagfmt.FileReport) error {
	switch w.format {
	case diagfmt.FormatPretty:
		return diagfmt.Pretty(w.out, fr, diagfmt.PrettyOpts{
			Color:      w.color,
			Width:      w.width,
			ShowSource: true,
		})
	default:
		return diagfmt.Text(w.out, fr, diagfmt.TextOpts{Color: w.color})
	}
}

func (w *reportWriter) flush() error {
	pending := w.pending
	w.pending = nil
	if w.buffered {
		w.buffered = false
		for _, fr := range pending {
			w.writeTiming(fr)
		}
	}
	switch w.format {
	case diagfmt.FormatJSON:
		return diagfmt.JSON(w.out, pending, w.jsonOpts())
	case diagfmt.FormatMsgpack:
		return diagfmt.Msgpack(w.out, pending, w.jsonOpts())
	case diagfmt.FormatSarif:
		return diagfmt.Sarif(w.out, pending, diagfmt.SarifRunMeta{
			ToolName:       "pystyle",
			ToolVersion:    version.Version,
			InvocationArgs: w.args,
		})
	}
	for _, fr := range pending {
		if err := w.write(fr); err != nil {
			return err
		}
	}
	return nil
}

func (w *reportWriter) jsonOpts() diagfmt.JSONOpts {
	return diagfmt.JSONOpts{IncludeTiming: w.timings}
}
