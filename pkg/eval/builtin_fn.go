package eval

import (
	"fmt"
	"strings"

	"src.smy.sh/pkg/eval/errs"
	"src.smy.sh/pkg/eval/vals"
)

// builtins returns the table of builtin names seeded at startup.
func builtins(ev *Evaler) map[string]any {
	return map[string]any{
		"print":   NewGoFn("print", ev.printFn),
		"len":     NewGoFn("len", lenFn),
		"slice":   NewGoFn("slice", sliceFn),
		"del":     NewGoFn("del", delFn),
		"range":   NewGoFn("range", rangeFn),
		"hasattr": NewGoFn("hasattr", hasattrFn),
		"chr":     NewGoFn("chr", chrFn),
		"ord":     NewGoFn("ord", ordFn),
	}
}

func wantArgs(name string, args []any, low, high int) error {
	if len(args) >= low && len(args) <= high {
		return nil
	}
	n := fmt.Sprintf("%d", low)
	if high > low {
		n = fmt.Sprintf("%d to %d", low, high)
	}
	return errs.Type{Msg: fmt.Sprintf("%s() takes %s arguments (%d given)", name, n, len(args))}
}

// printFn writes the space-separated string forms of its arguments followed
// by a newline.
func (ev *Evaler) printFn(args []any) (any, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = vals.ToString(arg)
	}
	_, err := fmt.Fprintln(ev.out, strings.Join(parts, " "))
	return nil, err
}

func lenFn(args []any) (any, error) {
	if err := wantArgs("len", args, 1, 1); err != nil {
		return nil, err
	}
	n := vals.Len(args[0])
	if n < 0 {
		return nil, errs.Type{Msg: "object of type '" + vals.Kind(args[0]) + "' has no len()"}
	}
	return n, nil
}

// sliceFn returns the 3-tuple that the subscript machinery recognizes as a
// slice. The parser calls it for subscripts written with colons.
func sliceFn(args []any) (any, error) {
	if err := wantArgs("slice", args, 3, 3); err != nil {
		return nil, err
	}
	return vals.Tuple{args[0], args[1], args[2]}, nil
}

// delFn removes an index from a list or dict, or a range from a list when
// given a slice tuple.
func delFn(args []any) (any, error) {
	if err := wantArgs("del", args, 2, 2); err != nil {
		return nil, err
	}
	switch c := args[0].(type) {
	case *vals.List:
		if t, ok := args[1].(vals.Tuple); ok && len(t) == 3 {
			lo, hi, err := vals.SliceRange(t, len(c.Values))
			if err != nil {
				return nil, err
			}
			c.Values = append(c.Values[:lo], c.Values[hi:]...)
			return nil, nil
		}
		i, ok := args[1].(int)
		if !ok {
			return nil, errs.Type{Msg: "list index must be an integer"}
		}
		if i < 0 {
			i += len(c.Values)
		}
		if i < 0 || i >= len(c.Values) {
			return nil, errs.Index{}
		}
		c.Values = append(c.Values[:i], c.Values[i+1:]...)
		return nil, nil
	case *vals.Dict:
		c.Del(args[1])
		return nil, nil
	default:
		return nil, errs.Type{Msg: "del() argument must be a list or dict, not '" + vals.Kind(args[0]) + "'"}
	}
}

// rangeFn returns a list of numbers. range(stop), range(start, stop) and
// range(start, stop, step) are supported; the step must not be zero.
func rangeFn(args []any) (any, error) {
	if err := wantArgs("range", args, 1, 3); err != nil {
		return nil, err
	}
	nums := make([]int, len(args))
	for i, arg := range args {
		n, ok := arg.(int)
		if !ok {
			return nil, errs.Type{Msg: "range() arguments must be integers"}
		}
		nums[i] = n
	}
	start, stop, step := 0, 0, 1
	switch len(args) {
	case 1:
		stop = nums[0]
	case 2:
		start, stop = nums[0], nums[1]
	case 3:
		start, stop, step = nums[0], nums[1], nums[2]
	}
	if step == 0 {
		return nil, errs.Value{Msg: "range() arg 3 must not be zero"}
	}
	list := vals.NewList()
	if step > 0 {
		for i := start; i < stop; i += step {
			list.Values = append(list.Values, i)
		}
	} else {
		for i := start; i > stop; i += step {
			list.Values = append(list.Values, i)
		}
	}
	return list, nil
}

func hasattrFn(args []any) (any, error) {
	if err := wantArgs("hasattr", args, 2, 2); err != nil {
		return nil, err
	}
	return hasAttr(args[0], args[1]), nil
}

func chrFn(args []any) (any, error) {
	if err := wantArgs("chr", args, 1, 1); err != nil {
		return nil, err
	}
	n, ok := args[0].(int)
	if !ok {
		return nil, errs.Type{Msg: "chr() argument must be an integer"}
	}
	return string(rune(n)), nil
}

func ordFn(args []any) (any, error) {
	if err := wantArgs("ord", args, 1, 1); err != nil {
		return nil, err
	}
	s, ok := args[0].(string)
	runes := []rune(s)
	if !ok || len(runes) != 1 {
		return nil, errs.Type{Msg: "ord() expected a character"}
	}
	return int(runes[0]), nil
}
