// Package adapter contains parsing, filesystem and config adapters for the
// touchall CLI.
package adapter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// PythonFileAdapter encapsulates Python-specific parsing so the domain layer
// can focus on checking rules while delegating grammar details to an
// infrastructure component.
type PythonFileAdapter interface {
	// Parse builds a syntax tree for the provided filename/source pair.
	Parse(filename string, content []byte) (*sitter.Tree, error)
}

// LocalPythonFileAdapter provides a concrete PythonFileAdapter backed by
// tree-sitter. Each Parse call creates its own parser instance, so the adapter
// is safe for concurrent use.
type LocalPythonFileAdapter struct{}

// NewLocalPythonFileAdapter constructs a LocalPythonFileAdapter.
func NewLocalPythonFileAdapter() *LocalPythonFileAdapter {
	return &LocalPythonFileAdapter{}
}

// Parse builds a syntax tree for the provided filename/source pair.
func (a *LocalPythonFileAdapter) Parse(filename string, content []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	return tree, nil
}

// FirstSyntaxError returns the position of the first error or missing node in
// the tree. tree-sitter is error-tolerant, so a tree can carry errors while
// still having a root; callers treat any error node as a parse failure.
func FirstSyntaxError(root *sitter.Node) (line, column int, found bool) {
	if root == nil || !root.HasError() {
		return 0, 0, false
	}

	var errNode *sitter.Node

	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if errNode != nil || node == nil || !node.HasError() {
			return
		}

		if node.Type() == "ERROR" || node.IsMissing() {
			errNode = node
			return
		}

		for i := 0; i < int(node.ChildCount()); i++ {
			walk(node.Child(i))
		}
	}
	walk(root)

	if errNode == nil {
		errNode = root
	}

	point := errNode.StartPoint()

	return int(point.Row) + 1, int(point.Column), true
}
