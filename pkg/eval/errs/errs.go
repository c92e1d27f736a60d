// Package errs declares the error kinds raised by the evaluator. Each kind
// renders in the "Kind: message" form of the interpreter's error surface.
package errs

import "fmt"

// Name is raised when a name lookup fails.
type Name struct {
	Ident string
}

func (e Name) Error() string {
	return fmt.Sprintf("NameError: name '%s' is not defined", e.Ident)
}

// Type is raised when a value has the wrong category for an operation:
// non-callable, non-iterable, non-number, wrong argument count.
type Type struct {
	Msg string
}

func (e Type) Error() string { return "TypeError: " + e.Msg }

// Index is raised for an out-of-range sequence index.
type Index struct{}

func (e Index) Error() string { return "IndexError: index out of range" }

// Value is raised for unpacking mismatches and bad range arguments.
type Value struct {
	Msg string
}

func (e Value) Error() string { return "ValueError: " + e.Msg }

// Attribute is raised when getAttr or setAttr misses.
type Attribute struct {
	Kind string
	Name string
}

func (e Attribute) Error() string {
	return fmt.Sprintf("AttributeError: %s has no attribute '%s'", e.Kind, e.Name)
}

// Assertion is raised by a failed assert statement.
type Assertion struct {
	Msg    string
	HasMsg bool
}

func (e Assertion) Error() string {
	if e.HasMsg {
		return "AssertionError: " + e.Msg
	}
	return "AssertionError"
}

// Import is raised when a module cannot be found.
type Import struct {
	Module string
}

func (e Import) Error() string {
	return fmt.Sprintf("ImportError: No module named '%s'", e.Module)
}

// ImportName is raised when a from-import names a binding the module does
// not have.
type ImportName struct {
	Name string
}

func (e ImportName) Error() string {
	return fmt.Sprintf("ImportError: cannot import name '%s'", e.Name)
}

// ZeroDivision is raised when dividing by zero.
type ZeroDivision struct{}

func (e ZeroDivision) Error() string {
	return "ZeroDivisionError: division by zero"
}

// Unimplemented is raised for operations the interpreter deliberately leaves
// out, like slice steps and assignment to subscripts.
type Unimplemented struct {
	What string
}

func (e Unimplemented) Error() string {
	if e.What == "" {
		return "UnimplementedError"
	}
	return "UnimplementedError: " + e.What
}

// Flow is raised when break, continue or return unwinds past the outermost
// statement that could catch it.
type Flow struct {
	Name string
	Ctx  string
}

func (e Flow) Error() string {
	return fmt.Sprintf("SyntaxError: '%s' outside %s", e.Name, e.Ctx)
}
