// Package model defines the data structures for field-coverage checking.
package model

// FieldKind classifies how a model field must be satisfied at construction.
type FieldKind string

const (
	// FieldRequired represents fields with no default and no absent-capable annotation.
	FieldRequired FieldKind = "required"
	// FieldOptional represents fields with a default value or an absent-capable
	// annotation such as Optional[...] or a union with None.
	FieldOptional FieldKind = "optional"
	// FieldMapping represents fields whose annotation denotes a key-value container.
	FieldMapping FieldKind = "mapping"
)

// Field is one declared field of a model class.
type Field struct {
	Name string
	Kind FieldKind
}

// Schema describes one model class: its name and declared fields in
// declaration order. Field names within one Schema are unique.
type Schema struct {
	Name   string
	Fields []Field
}

// FieldNames returns the names of fields matching any of the given kinds,
// preserving declaration order.
func (s Schema) FieldNames(kinds ...FieldKind) []string {
	names := make([]string, 0, len(s.Fields))

	for _, f := range s.Fields {
		for _, kind := range kinds {
			if f.Kind == kind {
				names = append(names, f.Name)
				break
			}
		}
	}

	return names
}
