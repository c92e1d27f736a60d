package vals

import (
	"src.smy.sh/pkg/eval/errs"
)

// Iterator wraps the Iterate method.
type Iterator interface {
	// Iterate calls the passed function with each value within the receiver.
	// The iteration is aborted if the function returns false.
	Iterate(func(v any) bool)
}

// CanIterate returns whether the value can be iterated.
func CanIterate(v any) bool {
	switch v.(type) {
	case string, Tuple, *List, *Dict, *Set, Iterator:
		return true
	}
	return false
}

// Iterate iterates the supplied value and calls the supplied function with
// each of its elements; the function can return false to break the
// iteration. Strings iterate one-character substrings, dicts iterate
// key-value pairs as 2-tuples.
func Iterate(v any, f func(any) bool) error {
	switch v := v.(type) {
	case string:
		for _, r := range v {
			if !f(string(r)) {
				break
			}
		}
	case Tuple:
		for _, elem := range v {
			if !f(elem) {
				break
			}
		}
	case *List:
		for _, elem := range v.Values {
			if !f(elem) {
				break
			}
		}
	case *Dict:
		v.Each(func(k, val any) bool {
			return f(Tuple{k, val})
		})
	case *Set:
		v.Each(f)
	case Iterator:
		v.Iterate(f)
	default:
		return errs.Type{Msg: "'" + Kind(v) + "' object is not iterable"}
	}
	return nil
}

// Collect collects all elements of an iterable value into a slice.
func Collect(it any) ([]any, error) {
	var vs []any
	if len := Len(it); len >= 0 {
		vs = make([]any, 0, len)
	}
	err := Iterate(it, func(v any) bool {
		vs = append(vs, v)
		return true
	})
	return vs, err
}
