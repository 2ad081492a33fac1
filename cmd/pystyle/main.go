package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pystyle/internal/version"
)

// exitError carries a non-default exit status without a message.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// main builds the command tree and executes it. Fatal errors go to stderr
// with status 1; --exit-code runs with violations end with status 2.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "pystyle: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pystyle [flags] <path>",
		Short: "Static style checker for Python sources",
		Long: `pystyle checks Python source files against a fixed set of style rules
(S001-S012) and prints one line per violation.

A directory argument checks every regular file directly inside it, in name
order; any other path is checked as a single file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheck,
	}
	// Устанавливаем версию для автоматического флага --version
	root.Version = version.Version

	root.AddCommand(newRulesCmd())
	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newVersionCmd())

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("timings", false, "print per-file phase timings to stderr")
	pf.Int("max-diagnostics", 0, "maximum number of violations kept per file (0 = unlimited)")
	pf.String("config", "", "path to pystyle.toml (default: search upwards from the working directory)")
	pf.String("trace", "", "write trace events to file ('-' for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "text", "trace output format (text|ndjson)")
	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	f := root.Flags()
	f.String("format", "text", "report format (text|pretty|json|sarif|msgpack)")
	f.Int("jobs", 1, "number of files checked in parallel")
	f.Bool("exit-code", false, "exit with status 2 when violations were reported")
	f.String("ui", "off", "show a progress view on stderr (auto|on|off)")

	return root
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of f, or 0 when f is not a terminal.
func terminalWidth(f *os.File) int {
	if !isTerminal(f) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
