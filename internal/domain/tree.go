package domain

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// walkNodes walks the subtree rooted at node, calling fn for each node. When
// fn returns false the walk does not descend into that node's children.
func walkNodes(node *sitter.Node, fn func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !fn(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		walkNodes(node.Child(i), fn)
	}
}

// sameNode reports whether two nodes cover the same source span. tree-sitter
// hands out fresh wrappers on every traversal, so pointer identity cannot be
// used.
func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}
