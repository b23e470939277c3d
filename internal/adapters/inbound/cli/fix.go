package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newFixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fix <file>",
		Short: "Apply the formatter's automatic fixes and re-check",
		Long: "Run the external formatter in write mode against one script, then re-run the " +
			"full validation pipeline. Non-formatting findings remain suggestions.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath := args[0]
			cfg := loadConfig(filepath.Dir(filePath))

			outcome := newFixService(cfg).Fix(cmd.Context(), filePath)

			out := cmd.OutOrStdout()
			if !outcome.FormatterRan {
				fmt.Fprintln(out, "formatter is not installed; nothing was changed")
			}
			fmt.Fprintf(out, "before: %s\n", outcome.Before.Summary)
			fmt.Fprintf(out, "after:  %s\n", outcome.After.Summary)
			if n := outcome.IssuesFixed(); n > 0 {
				fmt.Fprintf(out, "fixed %d issue(s)\n", n)
			}

			if !outcome.After.Passed {
				return &exitError{code: 1, msg: outcome.After.Summary}
			}
			return nil
		},
	}
}
