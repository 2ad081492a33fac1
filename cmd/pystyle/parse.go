package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pystyle/internal/diag"
	"pystyle/internal/diagfmt"
	"pystyle/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.py",
		Short: "Parse a Python source file and print its outline",
		Long: `Parse builds the syntax tree of a Python source file and prints an
outline of its definitions and assignments. Syntax errors go to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if result.Bag.HasErrors() {
		fmt.Fprintln(cmd.ErrOrStderr(), diag.FormatShortDiagnostics(result.Bag.Items(), result.FileSet))
		return fmt.Errorf("%s: %d syntax error(s)", filePath, result.Bag.Len())
	}

	nodes := diagfmt.BuildOutline(result.Builder, result.Module, result.File)
	if format == "json" {
		return diagfmt.FormatOutlineJSON(cmd.OutOrStdout(), nodes)
	}
	return diagfmt.FormatOutlinePretty(cmd.OutOrStdout(), filePath, nodes)
}
