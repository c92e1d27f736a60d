package vals

// Tuple is an immutable ordered sequence of values.
type Tuple []any

// List is a mutable ordered sequence of values, shared by reference.
type List struct {
	Values []any
}

// NewList builds a list from the given values.
func NewList(values ...any) *List {
	return &List{values}
}
