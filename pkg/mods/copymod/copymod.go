// Package copymod provides shallow copying as the copy module.
package copymod

import (
	"src.smy.sh/pkg/eval"
	"src.smy.sh/pkg/eval/errs"
	"src.smy.sh/pkg/eval/vals"
)

// Build builds the attributes of the copy module.
func Build(ev *eval.Evaler) map[string]any {
	return map[string]any{
		"copy": eval.NewGoFn("copy", copyFn),
	}
}

// copyFn returns a shallow copy of its argument. Immutable values are
// returned unchanged.
func copyFn(args []any) (any, error) {
	if len(args) != 1 {
		return nil, errs.Type{Msg: "copy() takes 1 argument"}
	}
	switch v := args[0].(type) {
	case *vals.List:
		return vals.NewList(append([]any{}, v.Values...)...), nil
	case *vals.Dict:
		d := vals.NewDict()
		v.Each(func(k, val any) bool {
			d.Set(k, val)
			return true
		})
		return d, nil
	case *vals.Set:
		s := vals.NewSet()
		v.Each(func(elem any) bool {
			s.Add(elem)
			return true
		})
		return s, nil
	case *eval.Object:
		dict := make(map[string]any, len(v.Dict))
		for name, attr := range v.Dict {
			dict[name] = attr
		}
		return &eval.Object{Class: v.Class, Dict: dict}, nil
	default:
		return args[0], nil
	}
}
