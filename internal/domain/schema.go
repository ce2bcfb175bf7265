// Package domain contains the core field-coverage checking workflow and passes.
package domain

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	m "github.com/mouse-blink/touchall/internal/model"
)

// mappingHeads are annotation heads denoting key-value container types.
var mappingHeads = map[string]struct{}{
	"dict":           {},
	"Dict":           {},
	"Mapping":        {},
	"MutableMapping": {},
	"DefaultDict":    {},
	"defaultdict":    {},
	"OrderedDict":    {},
}

// classDef is an intermediate record for one class definition.
type classDef struct {
	name  string
	bases []string
	body  *sitter.Node
}

// extractSchemas builds a schema for every class that inherits, directly or
// transitively within the same file, from one of the allow-listed base names.
// Classes with zero fields yield an empty schema; they can never report a
// violation.
func extractSchemas(root *sitter.Node, content []byte, bases []string) map[string]m.Schema {
	classes := collectClasses(root, content)
	models := resolveModelNames(classes, bases)

	schemas := make(map[string]m.Schema, len(models))

	for _, cls := range classes {
		if _, ok := models[cls.name]; !ok {
			continue
		}

		schemas[cls.name] = m.Schema{
			Name:   cls.name,
			Fields: extractFields(cls.body, content),
		}
	}

	return schemas
}

// collectClasses gathers every class definition in the tree, top-level and
// nested alike.
func collectClasses(root *sitter.Node, content []byte) []classDef {
	var classes []classDef

	walkNodes(root, func(node *sitter.Node) bool {
		if node.Type() != "class_definition" {
			return true
		}

		nameNode := node.ChildByFieldName("name")
		if nameNode == nil {
			return true
		}

		cls := classDef{
			name: nameNode.Content(content),
			body: node.ChildByFieldName("body"),
		}

		if supers := node.ChildByFieldName("superclasses"); supers != nil {
			for i := 0; i < int(supers.NamedChildCount()); i++ {
				base := supers.NamedChild(i)
				switch base.Type() {
				case "identifier":
					cls.bases = append(cls.bases, base.Content(content))
				case "attribute":
					// pydantic.BaseModel matches by its last component.
					cls.bases = append(cls.bases, lastSegment(base.Content(content)))
				}
			}
		}

		classes = append(classes, cls)

		return true
	})

	return classes
}

// resolveModelNames expands the allow-list across same-file inheritance until
// a fixed point: a class is a model if any base is allow-listed or is itself a
// known model.
func resolveModelNames(classes []classDef, bases []string) map[string]struct{} {
	allowed := make(map[string]struct{}, len(bases))
	for _, base := range bases {
		allowed[base] = struct{}{}
	}

	models := make(map[string]struct{})

	changed := true
	for changed {
		changed = false

		for _, cls := range classes {
			if _, ok := models[cls.name]; ok {
				continue
			}

			for _, base := range cls.bases {
				_, isAllowed := allowed[base]
				_, isModel := models[base]

				if isAllowed || isModel {
					models[cls.name] = struct{}{}
					changed = true

					break
				}
			}
		}
	}

	return models
}

// extractFields reads the field-like statements of a class body: a name with a
// type annotation and an optional default. Methods, docstrings and
// unannotated assignments are not fields.
func extractFields(body *sitter.Node, content []byte) []m.Field {
	if body == nil {
		return nil
	}

	var fields []m.Field

	seen := make(map[string]struct{})

	for i := 0; i < int(body.NamedChildCount()); i++ {
		stmt := body.NamedChild(i)
		if stmt.Type() != "expression_statement" || stmt.NamedChildCount() == 0 {
			continue
		}

		assign := stmt.NamedChild(0)
		if assign.Type() != "assignment" {
			continue
		}

		target := assign.ChildByFieldName("left")
		annotation := assign.ChildByFieldName("type")

		if target == nil || target.Type() != "identifier" || annotation == nil {
			continue
		}

		name := target.Content(content)
		if excludedField(name, annotation.Content(content)) {
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}

		hasDefault := assign.ChildByFieldName("right") != nil
		fields = append(fields, m.Field{
			Name: name,
			Kind: classifyField(annotation.Content(content), hasDefault),
		})
	}

	return fields
}

// excludedField reports whether the declaration carries no
// constructor-visible field name: configuration attributes, private names and
// class-level annotations.
func excludedField(name, annotation string) bool {
	if name == "model_config" || strings.HasPrefix(name, "_") {
		return true
	}

	switch lastSegment(genericHead(annotation)) {
	case "ClassVar", "Unpack":
		return true
	}

	return false
}

// classifyField applies the kind rule: Mapping beats Optional beats Required,
// and an absent-capable annotation is Optional even without a default.
func classifyField(annotation string, hasDefault bool) m.FieldKind {
	if _, ok := mappingHeads[lastSegment(genericHead(annotation))]; ok {
		return m.FieldMapping
	}

	if hasDefault || absentCapable(annotation) {
		return m.FieldOptional
	}

	return m.FieldRequired
}

// absentCapable recognizes the closed set of annotation shapes that admit "no
// value": Optional[...], Union[..., None], X | None and bare None.
func absentCapable(annotation string) bool {
	text := strings.TrimSpace(annotation)
	if text == "None" {
		return true
	}

	switch lastSegment(genericHead(text)) {
	case "Optional":
		return true
	case "Union":
		for _, arg := range splitTopLevel(genericInner(text), ',') {
			if strings.TrimSpace(arg) == "None" {
				return true
			}
		}

		return false
	}

	for _, alt := range splitTopLevel(text, '|') {
		if strings.TrimSpace(alt) == "None" {
			return true
		}
	}

	return false
}

// genericHead returns the annotation text before its subscript, e.g.
// "Optional" for "Optional[str]".
func genericHead(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '['); i >= 0 {
		return strings.TrimSpace(text[:i])
	}

	return text
}

// genericInner returns the subscript content, e.g. "str, None" for
// "Union[str, None]".
func genericInner(text string) string {
	text = strings.TrimSpace(text)

	i := strings.IndexByte(text, '[')
	if i < 0 || !strings.HasSuffix(text, "]") {
		return ""
	}

	return text[i+1 : len(text)-1]
}

// lastSegment strips a dotted qualifier, e.g. "typing.Optional" -> "Optional".
func lastSegment(text string) string {
	if i := strings.LastIndexByte(text, '.'); i >= 0 {
		return text[i+1:]
	}

	return text
}

// splitTopLevel splits on sep outside any bracket nesting.
func splitTopLevel(text string, sep byte) []string {
	var parts []string

	depth := 0
	start := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, text[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, text[start:])
}
