package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nugate/nugate/internal/adapters/inbound/hook"
	"github.com/nugate/nugate/internal/domain"
)

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Hook-protocol entry points for the host runtime",
		Long: "Commands invoked by the host runtime's hook mechanism. Input arrives as JSON " +
			"on standard input; decisions leave as JSON on standard output with the protocol's exit codes.",
	}
	cmd.AddCommand(newHookPreWriteCmd())
	cmd.AddCommand(newHookPostWriteCmd())
	return cmd
}

func newHookPreWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pre-write",
		Short: "Gate a proposed file write",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			in, err := hook.Decode(cmd.InOrStdin())
			if err != nil {
				// Malformed events are not this gate's to block.
				return hook.WriteDecision(out, domain.Approve())
			}

			filePath := in.FilePath()
			cfg := loadConfig(filepath.Dir(filePath))
			if filePath == "" || !cfg.Governs(filePath) {
				return hook.WriteDecision(out, domain.Approve())
			}

			decision := newGateService(cfg).Evaluate(cmd.Context(), filePath, in.Content())
			if err := hook.WriteDecision(out, decision); err != nil {
				return err
			}
			if decision.Action == domain.ActionDeny {
				return &exitError{code: hook.ExitBlock}
			}
			return nil
		},
	}
}

func newHookPostWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post-write",
		Short: "Validate a file that was just written",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := hook.Decode(cmd.InOrStdin())
			if err != nil {
				return nil
			}

			filePath := in.FilePath()
			cfg := loadConfig(filepath.Dir(filePath))
			if filePath == "" || !cfg.Governs(filePath) {
				return nil
			}

			report := newReportService(cfg).Check(cmd.Context(), filePath)
			if report.Passed {
				return nil
			}

			if err := hook.WriteSystemMessage(cmd.OutOrStdout(), report.Message); err != nil {
				return err
			}
			return &exitError{code: hook.ExitBlock}
		},
	}
}
