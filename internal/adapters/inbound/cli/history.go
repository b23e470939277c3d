package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nugate/nugate/internal/adapters/outbound/history"
	"github.com/nugate/nugate/internal/adapters/outbound/tui"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [path]",
		Short: "Show past check runs for a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := "."
			if len(args) > 0 {
				projectPath = args[0]
			}

			entries, err := history.New().Load(projectPath)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}
}
