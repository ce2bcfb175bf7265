package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/touchall/internal/model"
)

var (
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	severityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// SimpleUI implements UI with line-oriented output on the command's writer.
// With styling enabled it colors paths and severities; the report shape stays
// identical so the output remains grep-able.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplayReport prints each file's diagnostics as `line:column - Error:
// message` lines under the file path, then a trailing line with the total
// count across all files.
func (s *SimpleUI) DisplayReport(report m.RunReport) error {
	for _, file := range report.Files {
		if len(file.Diagnostics) == 0 {
			continue
		}

		s.printf("%s:\n", s.render(pathStyle, string(file.Path)))

		for _, diag := range file.Diagnostics {
			s.printf("  %d:%d - %s: %s\n",
				diag.Line,
				diag.Column,
				s.render(severityStyle, string(diag.Severity)),
				diag.Message,
			)
		}
	}

	total := report.TotalErrors()
	if total == 0 {
		s.printf("\n%s\n", s.render(passStyle, "All checks passed."))
		return nil
	}

	summary := fmt.Sprintf("Found %d errors.", total)
	if total == 1 {
		summary = "Found 1 error."
	}

	s.printf("\n%s\n", s.render(failStyle, summary))

	return nil
}

// DisplaySummary prints the per-file model and call-site counts as a table
// with column totals in the footer.
func (s *SimpleUI) DisplaySummary(summaries []m.FileSummary) error {
	if len(summaries) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Models", "Call Sites"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	totalModels := 0
	totalSites := 0

	for _, summary := range summaries {
		table.Append([]string{
			string(summary.Path),
			fmt.Sprintf("%d", summary.Models),
			fmt.Sprintf("%d", summary.CallSites),
		})

		totalModels += summary.Models
		totalSites += summary.CallSites
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(summaries)),
		fmt.Sprintf("%d", totalModels),
		fmt.Sprintf("%d", totalSites),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) render(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
