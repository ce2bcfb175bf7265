package domain

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/touchall/internal/adapter"
	m "github.com/mouse-blink/touchall/internal/model"
)

// ErrIssuesFound signals that a run produced at least one diagnostic. The CLI
// maps it to a nonzero exit status without printing a usage error.
var ErrIssuesFound = errors.New("issues found")

// CheckArgs holds the arguments for a check run.
type CheckArgs struct {
	Paths []m.Path
	// Strict restricts the run to the required-fields check.
	Strict bool
	// Threads bounds the number of files checked concurrently.
	Threads int
	// Bases is the model base-class allow-list; empty means the default.
	Bases []string
}

// Workflow defines the interface for field-coverage operations.
type Workflow interface {
	Check(args CheckArgs) (m.RunReport, error)
	Summarize(paths []m.Path, bases []string) ([]m.FileSummary, error)
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	pyAdapter adapter.PythonFileAdapter
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, pyAdapter adapter.PythonFileAdapter) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		pyAdapter: pyAdapter,
	}
}

// Check runs the per-file pipeline over all paths. Files are independent, so
// they may be checked concurrently; reports are merged by input index to keep
// the output order deterministic. A file that fails to read or parse becomes
// a report with a single file-level error and never aborts the other files.
func (w *workflow) Check(args CheckArgs) (m.RunReport, error) {
	bases := args.Bases
	if len(bases) == 0 {
		bases = adapter.DefaultBases
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	for _, path := range args.Paths {
		if _, err := w.fsAdapter.FileInfo(path); err != nil {
			return m.RunReport{}, fmt.Errorf("input path error: %w", err)
		}
	}

	reports := make([]m.FileReport, len(args.Paths))

	var g errgroup.Group
	g.SetLimit(threads)

	for i, path := range args.Paths {
		i, path := i, path
		g.Go(func() error {
			reports[i] = w.checkFile(path, args.Strict, bases)
			return nil
		})
	}

	// Workers never fail; per-file problems land in their report.
	_ = g.Wait()

	return m.RunReport{Files: reports}, nil
}

// Summarize collects per-file model and call-site counts for the list
// command.
func (w *workflow) Summarize(paths []m.Path, bases []string) ([]m.FileSummary, error) {
	if len(bases) == 0 {
		bases = adapter.DefaultBases
	}

	summaries := make([]m.FileSummary, 0, len(paths))

	for _, path := range paths {
		content, err := w.fsAdapter.ReadFile(path)
		if err != nil {
			return nil, err
		}

		tree, err := w.pyAdapter.Parse(string(path), content)
		if err != nil {
			return nil, err
		}

		root := tree.RootNode()
		schemas := extractSchemas(root, content, bases)

		summaries = append(summaries, m.FileSummary{
			Path:      path,
			Models:    len(schemas),
			CallSites: len(scanCallSites(root, content, schemas)),
		})
	}

	return summaries, nil
}

// checkFile runs the full pipeline for one file: parse, extract schemas, scan
// call sites, resolve usage and directives, classify.
func (w *workflow) checkFile(path m.Path, strict bool, bases []string) m.FileReport {
	report := m.FileReport{Path: path}

	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return failedReport(path, 1, 0, fmt.Sprintf("cannot read file: %v", err))
	}

	tree, err := w.pyAdapter.Parse(string(path), content)
	if err != nil {
		return failedReport(path, 1, 0, fmt.Sprintf("syntax error: %v", err))
	}

	root := tree.RootNode()
	if line, column, bad := adapter.FirstSyntaxError(root); bad {
		return failedReport(path, line, column, "syntax error")
	}

	schemas := extractSchemas(root, content, bases)
	if len(schemas) == 0 {
		return report
	}

	directives := buildSuppressionIndex(root, content)

	for _, s := range scanCallSites(root, content, schemas) {
		if s.HasKwargsSpread {
			// Supplied names cannot be determined statically; skip.
			continue
		}

		used := resolveUsage(s, content)
		sup := directives.resolve(s.Line)

		report.Diagnostics = append(report.Diagnostics,
			classify(schemas[s.SchemaName], s.CallSite, used, sup, strict)...)
	}

	return report
}

func failedReport(path m.Path, line, column int, message string) m.FileReport {
	return m.FileReport{
		Path:        path,
		ParseFailed: true,
		Diagnostics: []m.Diagnostic{{
			Line:     line,
			Column:   column,
			Severity: m.SeverityError,
			Message:  message,
		}},
	}
}
