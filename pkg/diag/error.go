package diag

import (
	"fmt"
)

// Error represents an error with a source context. The Type field names the
// kind of the error in the surface language, like "SyntaxError".
type Error struct {
	Type    string
	Message string
	Context Context
}

// Error returns a plain text representation of the error, in the
// "Kind: message at line N" format used by the interpreter's error surface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at line %d", e.Type, e.Message, e.Context.Line())
}

// Range returns the range of the error.
func (e *Error) Range() Ranging {
	return e.Context.Range()
}

// Show shows the error along with the source excerpt it points into.
func (e *Error) Show(indent string) string {
	header := fmt.Sprintf("%s: \033[31;1m%s\033[m\n", e.Type, e.Message)
	return header + e.Context.ShowCompact(indent+"  ")
}
