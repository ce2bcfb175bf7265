package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/touchall/internal/model"
)

// classify combines a schema, the arguments supplied at construction, the
// fields read afterwards and the suppression decision into at most two
// diagnostics: one for required fields, one for optional/mapping fields.
// A field is satisfied by either path; supplying it and reading it are
// equivalent. Strict mode restricts the run to the required check.
func classify(
	schema m.Schema,
	cs m.CallSite,
	used map[string]struct{},
	sup m.Suppression,
	strict bool,
) []m.Diagnostic {
	if sup.Kind == m.SuppressAll {
		return nil
	}

	satisfied := func(name string) bool {
		if cs.Supplied(name) {
			return true
		}

		_, ok := used[name]

		return ok
	}

	var diags []m.Diagnostic

	if missing := remaining(schema.FieldNames(m.FieldRequired), satisfied, sup); len(missing) > 0 {
		diags = append(diags, m.Diagnostic{
			Line:     cs.Line,
			Column:   cs.Column,
			Severity: m.SeverityError,
			Message:  fmt.Sprintf("%s's required fields are missing: %s", schema.Name, strings.Join(missing, ", ")),
		})
	}

	if strict {
		return diags
	}

	unused := remaining(schema.FieldNames(m.FieldOptional, m.FieldMapping), satisfied, sup)
	if len(unused) > 0 {
		diags = append(diags, m.Diagnostic{
			Line:     cs.Line,
			Column:   cs.Column,
			Severity: m.SeverityError,
			Message:  fmt.Sprintf("%s's optional fields are unused: %s", schema.Name, strings.Join(unused, ", ")),
		})
	}

	return diags
}

// remaining filters the declaration-ordered names down to those neither
// satisfied nor suppressed.
func remaining(names []string, satisfied func(string) bool, sup m.Suppression) []string {
	var out []string

	for _, name := range names {
		if satisfied(name) || sup.Suppressed(name) {
			continue
		}

		out = append(out, name)
	}

	return out
}
