// Package vals implements the Smython value model.
//
// A value is an "any" holding one of a closed set of representations: nil
// (None), bool, int or float64 (numbers), string, Tuple, *List, *Dict, *Set,
// plus the callable and class types defined in the eval package. The
// functions in this package dispatch on that set with explicit type
// switches; types outside the set can join individual protocols by
// implementing the corresponding single-method interfaces.
package vals

// Kinder wraps the Kind method.
type Kinder interface {
	Kind() string
}

// Kind returns the kind of the value, the name used for it in error
// messages.
func Kind(v any) string {
	switch v := v.(type) {
	case nil:
		return "NoneType"
	case bool:
		return "bool"
	case int, float64:
		return "number"
	case string:
		return "str"
	case Tuple:
		return "tuple"
	case *List:
		return "list"
	case *Dict:
		return "dict"
	case *Set:
		return "set"
	case Kinder:
		return v.Kind()
	default:
		return "object"
	}
}

// Booler wraps the Bool method.
type Booler interface {
	Bool() bool
}

// Bool returns the truthiness of the value. None, False, zero numbers, empty
// strings and empty containers are false; everything else is true.
func Bool(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case int:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	case Tuple:
		return len(v) > 0
	case *List:
		return len(v.Values) > 0
	case *Dict:
		return v.Len() > 0
	case *Set:
		return v.Len() > 0
	case Booler:
		return v.Bool()
	default:
		return true
	}
}

// Lener wraps the Len method.
type Lener interface {
	Len() int
}

// Len returns the length of the value, or -1 if it has no length. Strings
// report their length in characters.
func Len(v any) int {
	switch v := v.(type) {
	case string:
		return len([]rune(v))
	case Tuple:
		return len(v)
	case *List:
		return len(v.Values)
	case Lener:
		return v.Len()
	default:
		return -1
	}
}
