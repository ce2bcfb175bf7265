package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/touchall/internal/model"
)

// TUI implements UI using Bubble Tea for interactive browsing of
// diagnostics. Summaries and clean runs fall back to plain output.
type TUI struct {
	cmd   *cobra.Command
	plain *SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd, plain: NewSimpleUI(cmd, true)}
}

// DisplayReport opens an interactive list of all diagnostics. A run without
// diagnostics has nothing to browse and prints the pass line instead. The
// plain report is printed after the browser closes so the result stays in the
// scrollback.
func (t *TUI) DisplayReport(report m.RunReport) error {
	if report.TotalErrors() == 0 {
		return t.plain.DisplayReport(report)
	}

	items := make([]list.Item, 0, report.TotalErrors())

	for _, file := range report.Files {
		for _, diag := range file.Diagnostics {
			items = append(items, diagItem{path: string(file.Path), diag: diag})
		}
	}

	model := newReportModel(items, report.TotalErrors())

	program := tea.NewProgram(model, tea.WithOutput(t.cmd.OutOrStdout()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run diagnostics browser: %w", err)
	}

	return t.plain.DisplayReport(report)
}

// DisplaySummary prints the summary table; a static table needs no browser.
func (t *TUI) DisplaySummary(summaries []m.FileSummary) error {
	return t.plain.DisplaySummary(summaries)
}

// diagItem adapts one diagnostic to a list item.
type diagItem struct {
	path string
	diag m.Diagnostic
}

// FilterValue lets the list filter on path and message text.
func (d diagItem) FilterValue() string {
	return d.path + " " + d.diag.Message
}

func (d diagItem) location() string {
	return fmt.Sprintf("%s:%d:%d", d.path, d.diag.Line, d.diag.Column)
}

// diagDelegate renders one diagnostic per row.
type diagDelegate struct{}

func (d diagDelegate) Height() int  { return 1 }
func (d diagDelegate) Spacing() int { return 0 }
func (d diagDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d diagDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	diag, ok := item.(diagItem)
	if !ok {
		return
	}

	locStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	msgStyle := lipgloss.NewStyle()

	if index == lm.Index() {
		locStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6"))
	}

	line := fmt.Sprintf("%s  %s",
		locStyle.Render(diag.location()),
		msgStyle.Render(diag.diag.Message),
	)
	_, _ = fmt.Fprint(w, line)
}

// reportModel is the Bubble Tea model for the diagnostics browser.
type reportModel struct {
	list  list.Model
	total int
}

func newReportModel(items []list.Item, total int) reportModel {
	l := list.New(items, diagDelegate{}, 0, 0)
	l.Title = fmt.Sprintf("touchall: %d diagnostics", total)
	l.SetShowStatusBar(false)

	return reportModel{list: l, total: total}
}

// Init implements tea.Model.
func (rm reportModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.list.SetSize(msg.Width, msg.Height)
		return rm, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter":
			return rm, tea.Quit
		}
	}

	var cmd tea.Cmd
	rm.list, cmd = rm.list.Update(msg)

	return rm, cmd
}

// View implements tea.Model.
func (rm reportModel) View() string {
	return rm.list.View()
}
