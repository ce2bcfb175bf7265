package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/touchall/internal/model"
)

func newCapturedUI(t *testing.T) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	return NewSimpleUI(cmd, false), &out
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	ui, out := newCapturedUI(t)

	report := m.RunReport{Files: []m.FileReport{
		{
			Path: "models.py",
			Diagnostics: []m.Diagnostic{
				{Line: 14, Column: 14, Severity: m.SeverityError, Message: "User's required fields are missing: age"},
				{Line: 14, Column: 14, Severity: m.SeverityError, Message: "User's optional fields are unused: address, nickname"},
			},
		},
		{Path: "clean.py"},
	}}

	require.NoError(t, ui.DisplayReport(report))

	expected := "models.py:\n" +
		"  14:14 - Error: User's required fields are missing: age\n" +
		"  14:14 - Error: User's optional fields are unused: address, nickname\n" +
		"\nFound 2 errors.\n"
	assert.Equal(t, expected, out.String())
}

func TestSimpleUI_DisplayReport_SingularTotal(t *testing.T) {
	ui, out := newCapturedUI(t)

	report := m.RunReport{Files: []m.FileReport{{
		Path: "models.py",
		Diagnostics: []m.Diagnostic{
			{Line: 3, Column: 0, Severity: m.SeverityError, Message: "User's required fields are missing: age"},
		},
	}}}

	require.NoError(t, ui.DisplayReport(report))
	assert.Contains(t, out.String(), "Found 1 error.\n")
}

func TestSimpleUI_DisplayReport_AllPassed(t *testing.T) {
	ui, out := newCapturedUI(t)

	report := m.RunReport{Files: []m.FileReport{{Path: "clean.py"}}}

	require.NoError(t, ui.DisplayReport(report))
	assert.Equal(t, "\nAll checks passed.\n", out.String())
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, out := newCapturedUI(t)

	summaries := []m.FileSummary{
		{Path: "models.py", Models: 1, CallSites: 8},
		{Path: "orders.py", Models: 2, CallSites: 3},
	}

	require.NoError(t, ui.DisplaySummary(summaries))

	assert.Contains(t, out.String(), "models.py")
	assert.Contains(t, out.String(), "orders.py")
	// tablewriter renders header and footer cells upper-cased.
	assert.Contains(t, strings.ToUpper(out.String()), "TOTAL FILES 2")
}

func TestSimpleUI_DisplaySummary_Empty(t *testing.T) {
	ui, out := newCapturedUI(t)

	require.NoError(t, ui.DisplaySummary(nil))
	assert.Equal(t, "No source files found\n", out.String())
}
