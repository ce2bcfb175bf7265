package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/touchall/internal/adapter"
	m "github.com/mouse-blink/touchall/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [files...]",
		Short: "List model classes and call sites per file",
		Long:  "List shows, per input file, how many model classes are defined and how many instantiations of them are found.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := adapter.LoadConfig(m.Path(configFlag))
			if err != nil {
				return err
			}

			summaries, err := workflow.Summarize(parsePaths(args), cfg.Models.Bases)
			if err != nil {
				return err
			}

			return resolveUI().DisplaySummary(summaries)
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
