package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/praetorian-inc/linegrep/pkg/option"
	"github.com/spf13/cobra"
)

var combinationsFormat string

var combinationsCmd = &cobra.Command{
	Use:   "combinations",
	Short: "List accepted option combinations",
	Long:  "Display every option combination linegrep accepts and what it prints",
	Args:  cobra.NoArgs,
	RunE:  runCombinations,
}

func init() {
	combinationsCmd.Flags().StringVar(&combinationsFormat, "format", "table", "Output format: table, json")
}

type combinationRow struct {
	Key         string `json:"key"`
	Options     string `json:"options"`
	Strategy    string `json:"strategy"`
	Description string `json:"description"`
}

func runCombinations(cmd *cobra.Command, args []string) error {
	var rows []combinationRow
	for _, c := range option.Supported() {
		rows = append(rows, combinationRow{
			Key:         c.Key,
			Options:     optionsUsage(c),
			Strategy:    c.Kind.String(),
			Description: c.Description,
		})
	}

	switch combinationsFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case "table":
		return outputCombinationsTable(cmd, rows)
	default:
		return fmt.Errorf("unknown output format: %s", combinationsFormat)
	}
}

func outputCombinationsTable(cmd *cobra.Command, rows []combinationRow) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Options\tDescription\n")
	fmt.Fprintf(w, "-------\t-----------\n")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r.Options, r.Description)
	}
	return nil
}

// optionsUsage renders a combination key as command-line options, e.g.
// "Av" as "-A_N -v".
func optionsUsage(c option.Combination) string {
	if c.Key == "" {
		return "(none)"
	}
	parts := make([]string, 0, len(c.Key))
	for i := 0; i < len(c.Key); i++ {
		flag := option.Flag(c.Key[i])
		if flag == c.Window {
			parts = append(parts, fmt.Sprintf("-%c_N", flag))
			continue
		}
		parts = append(parts, fmt.Sprintf("-%c", flag))
	}
	return strings.Join(parts, " ")
}
