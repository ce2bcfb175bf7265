package model

// Severity of a diagnostic. The checker currently emits errors only.
type Severity string

// SeverityError is the sole severity tier.
const SeverityError Severity = "Error"

// Diagnostic is one user-visible finding at a source position.
type Diagnostic struct {
	Line     int // 1-based
	Column   int // 0-based
	Severity Severity
	Message  string
}

// FileReport holds the diagnostics produced for a single input file.
type FileReport struct {
	Path        Path
	Diagnostics []Diagnostic
	// ParseFailed marks files whose source could not be read or parsed; the
	// failure itself is recorded as a diagnostic.
	ParseFailed bool
}

// RunReport aggregates per-file reports in input order.
type RunReport struct {
	Files []FileReport
}

// TotalErrors counts diagnostics across all files. The process exit status is
// nonzero exactly when this is nonzero.
func (r RunReport) TotalErrors() int {
	total := 0
	for _, file := range r.Files {
		total += len(file.Diagnostics)
	}

	return total
}

// FileSummary describes one file for the list command.
type FileSummary struct {
	Path      Path
	Models    int
	CallSites int
}
