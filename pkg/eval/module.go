package eval

import (
	"unsafe"

	"src.smy.sh/pkg/hash"
)

// Module pairs a module name with its globals mapping. Source-loaded modules
// get a fresh globals mapping; preinstalled modules are built from a table
// of builtin attributes.
type Module struct {
	Name    string
	Globals map[string]any
}

// Kind returns "module".
func (m *Module) Kind() string { return "module" }

// Repr identifies the module by name.
func (m *Module) Repr() string { return "<module '" + m.Name + "'>" }

// Hash returns the hash of the address.
func (m *Module) Hash() uint32 { return hash.Pointer(unsafe.Pointer(m)) }
