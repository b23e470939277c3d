package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nugate",
		Short: "Pre- and post-write validation gate for Nushell scripts",
		Long: "Nugate blocks script writes that fail syntax, type-annotation, documentation, " +
			"or secret-leak checks, and aggregates the output of every installed analysis tool " +
			"into a single report after a write lands.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newHookCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// exitError carries a specific process exit code out of a command. The hook
// protocol distinguishes "blocked" (2) from plain failure (1).
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.msg != "" {
				fmt.Fprintln(os.Stderr, ee.msg)
			}
			return ee.code
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
