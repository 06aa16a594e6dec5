package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"concord/internal/concordance"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize a document's sentence and word counts",
		Long: `Stats scans a document with the same segmentation rules the concordance
uses and prints aggregate counts instead of the full listing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read document %q: %w", args[0], err)
			}

			stats := concordance.Summarize(string(raw))

			rows := [][]string{
				{"Sentences", strconv.Itoa(stats.Sentences)},
				{"Word occurrences", strconv.Itoa(stats.Occurrences)},
				{"Distinct words", strconv.Itoa(stats.DistinctWords)},
				{"Longest word", stats.LongestWord},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Metric", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}
