package main

import (
	"github.com/spf13/cobra"

	"concord/internal/concordance"
	"concord/internal/logging"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <file>",
		Short: "Write the concordance of a text document to stdout",
		Long: `Generate reads an English text document, counts every word whose first
character is a letter, and writes an alphabetical listing with occurrence
counts and the 1-based sentence numbers of each occurrence. Words are
lower-cased, so "Cat" and "cat" share one entry. An empty document
produces no output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(ctx, cmd, args[0])
		},
	}
}

// runGenerate runs the concordance pipeline. A generation failure is
// logged to stderr and the command still reports success; only CLI
// wiring problems surface as command errors.
func runGenerate(ctx *commandContext, cmd *cobra.Command, path string) error {
	if err := concordance.Generate(path, cmd.OutOrStdout()); err != nil {
		ctx.newLogger().Error("concordance generation failed", logging.Error(err))
	}
	return nil
}
