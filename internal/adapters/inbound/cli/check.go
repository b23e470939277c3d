package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nugate/nugate/internal/adapters/outbound/tui"
)

func newCheckCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Run every validator over the scripts in a tree",
		Long:  "Walk a directory for governed scripts, run the full post-write pipeline on each, and render one report.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := "."
			if len(args) > 0 {
				projectPath = args[0]
			}

			cfg := loadConfig(projectPath)
			project, err := newCheckService(cfg).CheckProject(cmd.Context(), projectPath, cfg)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(project); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderProject(project))
			}

			if !project.Passed {
				return &exitError{code: 1}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the raw report as JSON")

	return cmd
}
