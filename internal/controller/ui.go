// Package controller provides output adapters for displaying check results.
package controller

import (
	m "github.com/mouse-blink/touchall/internal/model"
)

// UI defines the interface for displaying check results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayReport shows the diagnostics of a run, per file in input order,
	// with a trailing total.
	DisplayReport(report m.RunReport) error
	// DisplaySummary shows per-file model and call-site counts.
	DisplaySummary(summaries []m.FileSummary) error
}
