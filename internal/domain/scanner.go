package domain

import (
	sitter "github.com/smacker/go-tree-sitter"

	m "github.com/mouse-blink/touchall/internal/model"
)

// site pairs the call-site data with the syntax nodes the usage resolver
// needs to continue from.
type site struct {
	m.CallSite
	// stmt is the enclosing assignment statement when the call is bound to a
	// name, nil otherwise.
	stmt *sitter.Node
}

// scanCallSites finds every call whose callee is a bare identifier present in
// the schema table, in source order.
func scanCallSites(root *sitter.Node, content []byte, schemas map[string]m.Schema) []site {
	var sites []site

	walkNodes(root, func(node *sitter.Node) bool {
		if node.Type() != "call" {
			return true
		}

		callee := node.ChildByFieldName("function")
		if callee == nil || callee.Type() != "identifier" {
			return true
		}

		name := callee.Content(content)
		if _, ok := schemas[name]; !ok {
			return true
		}

		point := node.StartPoint()
		cs := m.CallSite{
			SchemaName:   name,
			Line:         int(point.Row) + 1,
			Column:       int(point.Column),
			SuppliedArgs: make(map[string]struct{}),
		}

		collectArguments(node.ChildByFieldName("arguments"), content, &cs)

		sites = append(sites, site{
			CallSite: cs,
			stmt:     boundStatement(node, content, &cs),
		})

		return true
	})

	return sites
}

// collectArguments fills SuppliedArgs from keyword arguments and literal-dict
// unpacking. Positional arguments carry no field name and are ignored; a
// non-literal ** unpack makes supplied names undecidable and marks the site
// for exclusion.
func collectArguments(args *sitter.Node, content []byte, cs *m.CallSite) {
	if args == nil {
		return
	}

	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)

		switch arg.Type() {
		case "keyword_argument":
			if name := arg.ChildByFieldName("name"); name != nil {
				cs.SuppliedArgs[name.Content(content)] = struct{}{}
			}
		case "dictionary_splat":
			collectSplatKeys(arg.NamedChild(0), content, cs)
		}
	}
}

// collectSplatKeys extracts string keys from a **{...} literal; anything else
// unpacks unknown keys.
func collectSplatKeys(value *sitter.Node, content []byte, cs *m.CallSite) {
	if value == nil || value.Type() != "dictionary" {
		cs.HasKwargsSpread = true
		return
	}

	for i := 0; i < int(value.NamedChildCount()); i++ {
		pair := value.NamedChild(i)
		if pair.Type() != "pair" {
			cs.HasKwargsSpread = true
			return
		}

		key, ok := stringLiteral(pair.ChildByFieldName("key"), content)
		if !ok {
			cs.HasKwargsSpread = true
			return
		}

		cs.SuppliedArgs[key] = struct{}{}
	}
}

// boundStatement detects the `name = Model(...)` shape: the call must be the
// sole right-hand side of a single-target assignment to a plain identifier.
// It sets BoundName and returns the enclosing statement node.
func boundStatement(call *sitter.Node, content []byte, cs *m.CallSite) *sitter.Node {
	parent := call.Parent()
	if parent == nil || parent.Type() != "assignment" {
		return nil
	}

	if !sameNode(parent.ChildByFieldName("right"), call) {
		return nil
	}

	target := parent.ChildByFieldName("left")
	if target == nil || target.Type() != "identifier" {
		return nil
	}

	// Chained assignments (`a = b = Model(...)`) nest assignments; only a
	// direct statement-level assignment binds a trackable name.
	stmt := parent.Parent()
	if stmt == nil || stmt.Type() != "expression_statement" {
		return nil
	}

	cs.BoundName = target.Content(content)

	return stmt
}

// stringLiteral unquotes a plain string node. Prefixed or interpolated
// strings are not static.
func stringLiteral(node *sitter.Node, content []byte) (string, bool) {
	if node == nil || node.Type() != "string" {
		return "", false
	}

	text := node.Content(content)
	if len(text) < 2 {
		return "", false
	}

	quote := text[0]
	if (quote != '"' && quote != '\'') || text[len(text)-1] != quote {
		return "", false
	}

	return text[1 : len(text)-1], true
}
