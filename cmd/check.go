package cmd

import (
	"github.com/spf13/cobra"
)

// checkCmd represents the check command, the explicit form of the root run.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Check model instantiations for field coverage",
		Long: `Check parses each Python file, extracts the model classes defined in it
and verifies that every instantiation either supplies or later reads each
declared field. With --strict only required fields are checked.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
