package model

// CallSite represents one instantiation of a known model class. SchemaName is
// resolved against the current file's schema table; call sites never cross
// files.
type CallSite struct {
	SchemaName string
	Line       int // 1-based
	Column     int // 0-based
	// SuppliedArgs holds the field names passed as keyword arguments,
	// including string keys of a literal dict unpacked with **.
	SuppliedArgs map[string]struct{}
	// HasKwargsSpread is true when the call unpacks a non-literal expression
	// with **. Such sites cannot be checked statically.
	HasKwargsSpread bool
	// BoundName is the assignment target when the call is the sole right-hand
	// side of a single-target assignment, empty otherwise.
	BoundName string
}

// Supplied reports whether the field name was passed at construction.
func (c CallSite) Supplied(name string) bool {
	_, ok := c.SuppliedArgs[name]
	return ok
}
