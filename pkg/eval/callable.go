package eval

import (
	"unsafe"

	"src.smy.sh/pkg/hash"
)

// Callable wraps the Call method.
type Callable interface {
	// Call invokes the receiver with the given positional arguments.
	Call(args []any) (any, error)
}

// GoFn is a builtin function implemented in Go. Each GoFn has its unique
// identity.
type GoFn struct {
	name string
	impl func(args []any) (any, error)
}

// NewGoFn wraps a Go function into a builtin callable.
func NewGoFn(name string, impl func(args []any) (any, error)) *GoFn {
	return &GoFn{name, impl}
}

// Call invokes the builtin.
func (f *GoFn) Call(args []any) (any, error) {
	v, err := f.impl(args)
	return v, throw(err)
}

// Kind returns "builtin".
func (f *GoFn) Kind() string { return "builtin" }

// Repr identifies the builtin by name.
func (f *GoFn) Repr() string { return "<builtin " + f.name + ">" }

// Hash returns the hash of the address.
func (f *GoFn) Hash() uint32 { return hash.Pointer(unsafe.Pointer(f)) }

// Method is a bound pair of a receiver and a callable, produced by attribute
// access on an instance. Calling it prepends the receiver to the arguments.
type Method struct {
	Recv any
	Fn   Callable
}

// Call invokes the underlying callable with the receiver prepended.
func (m *Method) Call(args []any) (any, error) {
	return m.Fn.Call(append([]any{m.Recv}, args...))
}

// Kind returns "method".
func (m *Method) Kind() string { return "method" }

// Repr identifies the bound function when it has a name.
func (m *Method) Repr() string {
	if f, ok := m.Fn.(*Func); ok {
		return "<bound method " + f.Name + ">"
	}
	return "<bound method>"
}

// Hash returns the hash of the address.
func (m *Method) Hash() uint32 { return hash.Pointer(unsafe.Pointer(m)) }
