package domain

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	m "github.com/mouse-blink/touchall/internal/model"
)

// Suppression comment prefixes. Both forms accept a bare `ignore` and an
// `ignore-field name[, name]*` list.
const (
	directivePrefix = "pydantic-touchall"
	directiveAlias  = "touchall"
)

const ignoreFieldKeyword = "ignore-field"

// suppressionIndex maps source lines to the suppression parsed from the
// comment on that line.
type suppressionIndex struct {
	byLine map[int]m.Suppression
}

// buildSuppressionIndex parses every recognized directive comment in the
// tree. Unrecognized comments are skipped; directive parsing is best-effort
// and never fails.
func buildSuppressionIndex(root *sitter.Node, content []byte) suppressionIndex {
	idx := suppressionIndex{byLine: make(map[int]m.Suppression)}

	walkNodes(root, func(node *sitter.Node) bool {
		if node.Type() != "comment" {
			return true
		}

		sup, ok := parseDirective(node.Content(content))
		if !ok {
			return true
		}

		idx.byLine[int(node.StartPoint().Row)+1] = sup

		return true
	})

	return idx
}

// resolve returns the suppression for a call site on the given line: a
// directive on the site's own line wins over one on the line directly above.
func (idx suppressionIndex) resolve(line int) m.Suppression {
	if sup, ok := idx.byLine[line]; ok {
		return sup
	}

	if sup, ok := idx.byLine[line-1]; ok {
		return sup
	}

	return m.Suppression{}
}

// parseDirective parses one comment's text into a suppression decision.
func parseDirective(text string) (m.Suppression, bool) {
	s := strings.TrimSpace(text)
	s = strings.TrimSpace(strings.TrimPrefix(s, "#"))

	rest := ""
	matched := false

	for _, prefix := range []string{directivePrefix, directiveAlias} {
		if body, ok := strings.CutPrefix(s, prefix+":"); ok {
			rest = strings.TrimSpace(body)
			matched = true

			break
		}
	}

	if !matched {
		return m.Suppression{}, false
	}

	if list, ok := strings.CutPrefix(rest, ignoreFieldKeyword); ok {
		names := make(map[string]struct{})

		for _, part := range strings.Split(list, ",") {
			name := strings.TrimSpace(part)
			if name == "" {
				// Malformed entries are skipped silently.
				continue
			}

			names[name] = struct{}{}
		}

		return m.Suppression{Kind: m.SuppressFields, Fields: names}, true
	}

	if rest == "ignore" {
		return m.Suppression{Kind: m.SuppressAll}, true
	}

	return m.Suppression{}, false
}
