package model

// SuppressionKind is the variant tag of a Suppression decision.
type SuppressionKind int

const (
	// SuppressNone leaves all checks active.
	SuppressNone SuppressionKind = iota
	// SuppressAll drops every diagnostic for the call site.
	SuppressAll
	// SuppressFields drops the named fields from every diagnostic.
	SuppressFields
)

// Suppression is the decision derived from an ignore directive on the call
// site's line or the line directly above it.
type Suppression struct {
	Kind   SuppressionKind
	Fields map[string]struct{}
}

// Suppressed reports whether diagnostics naming the given field are dropped.
func (s Suppression) Suppressed(name string) bool {
	if s.Kind == SuppressAll {
		return true
	}

	if s.Kind != SuppressFields {
		return false
	}

	_, ok := s.Fields[name]

	return ok
}
