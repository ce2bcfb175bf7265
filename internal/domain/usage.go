package domain

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// resolveUsage collects the field names read as `bound.<field>` in the
// statements lexically following the call site's assignment, within the same
// block. Nested control-flow bodies are descended into without branch
// reasoning: an access anywhere reachable counts as usage. The scan stops
// after the first sibling statement that rebinds the name, whose right-hand
// side still counts because it evaluates against the old value.
//
// This deliberately over-approximates usage so that a genuinely-read field is
// never flagged; it will not catch reads inside dead branches.
func resolveUsage(s site, content []byte) map[string]struct{} {
	used := make(map[string]struct{})

	if s.BoundName == "" || s.stmt == nil {
		return used
	}

	block := s.stmt.Parent()
	if block == nil {
		return used
	}

	passed := false

	for i := 0; i < int(block.NamedChildCount()); i++ {
		stmt := block.NamedChild(i)

		if !passed {
			passed = sameNode(stmt, s.stmt)
			continue
		}

		if rebound, rhs := rebindsName(stmt, s.BoundName, content); rebound {
			collectReads(rhs, s.BoundName, content, used)
			break
		}

		collectReads(stmt, s.BoundName, content, used)
	}

	return used
}

// rebindsName reports whether the statement assigns a new value to name via a
// plain single-target assignment, returning the right-hand side for a final
// scan.
func rebindsName(stmt *sitter.Node, name string, content []byte) (bool, *sitter.Node) {
	if stmt.Type() != "expression_statement" || stmt.NamedChildCount() == 0 {
		return false, nil
	}

	assign := stmt.NamedChild(0)
	if assign.Type() != "assignment" {
		return false, nil
	}

	target := assign.ChildByFieldName("left")
	if target == nil || target.Type() != "identifier" || target.Content(content) != name {
		return false, nil
	}

	right := assign.ChildByFieldName("right")
	if right == nil {
		// Bare re-annotation (`name: T`) binds nothing.
		return false, nil
	}

	return true, right
}

// collectReads records the attribute names accessed on the given identifier
// anywhere in the subtree.
func collectReads(node *sitter.Node, name string, content []byte, used map[string]struct{}) {
	walkNodes(node, func(n *sitter.Node) bool {
		if n.Type() != "attribute" {
			return true
		}

		object := n.ChildByFieldName("object")
		if object == nil || object.Type() != "identifier" || object.Content(content) != name {
			return true
		}

		if attr := n.ChildByFieldName("attribute"); attr != nil {
			used[attr.Content(content)] = struct{}{}
		}

		return true
	})
}
