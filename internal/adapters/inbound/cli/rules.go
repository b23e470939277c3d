package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nugate/nugate/internal/domain"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the heuristic rules and their severities",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, id := range domain.Rules() {
				info := domain.Rule(id)
				fixable := ""
				if info.Fixable {
					fixable = "  (fixable)"
				}
				fmt.Fprintf(out, "%-22s %-9s %-10s %s%s\n",
					id, info.Severity, info.Category, info.Description, fixable)
			}
			return nil
		},
	}
}
