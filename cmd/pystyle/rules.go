package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pystyle/internal/rules"
)

type ruleJSON struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Family  string `json:"family"`
	Summary string `json:"summary"`
}

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the style rules pystyle checks",
		Args:  cobra.NoArgs,
		RunE:  runRules,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runRules(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch strings.ToLower(format) {
	case "pretty":
		return renderRulesPretty(cmd.OutOrStdout(), rules.Catalog())
	case "json":
		return renderRulesJSON(cmd.OutOrStdout(), rules.Catalog())
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

func renderRulesPretty(w io.Writer, catalog []rules.Info) error {
	for _, info := range catalog {
		if _, err := fmt.Fprintf(w, "%s  %-20s %-6s %s\n", info.ID(), info.Name, info.Family, info.Summary); err != nil {
			return err
		}
	}
	return nil
}

func renderRulesJSON(w io.Writer, catalog []rules.Info) error {
	out := make([]ruleJSON, 0, len(catalog))
	for _, info := range catalog {
		out = append(out, ruleJSON{
			Code:    info.ID(),
			Name:    info.Name,
			Family:  info.Family.String(),
			Summary: info.Summary,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
