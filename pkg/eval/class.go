package eval

import (
	"unsafe"

	"src.smy.sh/pkg/eval/errs"
	"src.smy.sh/pkg/hash"
)

// Class is a user-defined class: a name, an optional superclass link, and
// its own dictionary. Attribute lookup climbs the superclass chain.
type Class struct {
	Name  string
	Super *Class
	Dict  map[string]any
}

// get walks the class chain for an attribute.
func (c *Class) get(name string) (any, bool) {
	for cls := c; cls != nil; cls = cls.Super {
		if v, ok := cls.Dict[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Call constructs a fresh instance of the class and invokes __init__ on it
// if present.
func (c *Class) Call(args []any) (any, error) {
	obj := &Object{Class: c, Dict: make(map[string]any)}
	if init, ok := c.get("__init__"); ok {
		fn, ok := init.(Callable)
		if !ok {
			return nil, throw(errs.Type{Msg: "__init__ is not callable"})
		}
		if _, err := fn.Call(append([]any{obj}, args...)); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// Kind returns "class".
func (c *Class) Kind() string { return "class" }

// Repr identifies the class by name.
func (c *Class) Repr() string { return "<class '" + c.Name + "'>" }

// Hash returns the hash of the address.
func (c *Class) Hash() uint32 { return hash.Pointer(unsafe.Pointer(c)) }

// Object is an instance of a class: a reference to its class and its own
// dictionary.
type Object struct {
	Class *Class
	Dict  map[string]any
}

// Kind returns the class name.
func (o *Object) Kind() string { return o.Class.Name }

// Repr identifies the instance by its class.
func (o *Object) Repr() string { return "<" + o.Class.Name + " object>" }

// Hash returns the hash of the address.
func (o *Object) Hash() uint32 { return hash.Pointer(unsafe.Pointer(o)) }
