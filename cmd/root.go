// Package cmd provides the root command and CLI setup for touchall.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/touchall/internal/adapter"
	"github.com/mouse-blink/touchall/internal/controller"
	"github.com/mouse-blink/touchall/internal/domain"
	m "github.com/mouse-blink/touchall/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var pyAdapter adapter.PythonFileAdapter
var workflow domain.Workflow

// ui is resolved per run unless a test injects one.
var ui controller.UI

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	pyAdapter = adapter.NewLocalPythonFileAdapter()
	workflow = domain.NewWorkflow(fsAdapter, pyAdapter)
}

var strictFlag bool
var parallelFlag int
var configFlag string
var plainFlag bool

// rootCmd represents the base command when called without any subcommands.
// It is declared without an initializer and assigned via the blank variable
// below to break the initialization cycle through resolveUI; package-level
// variables are still initialized before any init function runs.
var rootCmd *cobra.Command

var _ = func() struct{} {
	rootCmd = newRootCmd()
	return struct{}{}
}()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "touchall [files...]",
		Short: "Pydantic field-coverage linter",
		Long: `Touchall statically checks that every field declared on a pydantic-style
model is either passed at construction or read from the instance afterwards.

It reports missing required fields and unused optional fields per
instantiation, honors inline suppression comments
(# pydantic-touchall: ignore, # touchall: ignore-field name, ...) and exits
nonzero when any diagnostic is found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheck,
	}

	cmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "check required fields only")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of files checked concurrently")
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", adapter.DefaultConfigFile, "path to the touchall config file")
	cmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "force plain output even on a terminal")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	cfg, err := adapter.LoadConfig(m.Path(configFlag))
	if err != nil {
		return err
	}

	threads := parallelFlag
	if threads <= 0 {
		threads = cfg.Check.Parallel
	}

	report, err := workflow.Check(domain.CheckArgs{
		Paths:   parsePaths(args),
		Strict:  strictFlag || cfg.Check.Strict,
		Threads: threads,
		Bases:   cfg.Models.Bases,
	})
	if err != nil {
		return err
	}

	if err := resolveUI().DisplayReport(report); err != nil {
		return err
	}

	if report.TotalErrors() > 0 {
		return domain.ErrIssuesFound
	}

	return nil
}

// resolveUI picks the UI for this run: a test-injected one if set, otherwise
// the TTY browser or the plain printer depending on where output goes.
func resolveUI() controller.UI {
	if ui != nil {
		return ui
	}

	return controller.NewUI(rootCmd, controller.IsTTY(os.Stdout) && !plainFlag)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, domain.ErrIssuesFound) {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}
