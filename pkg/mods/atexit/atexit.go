// Package atexit lets scripts register callables to run at interpreter
// shutdown.
package atexit

import (
	"src.smy.sh/pkg/eval"
	"src.smy.sh/pkg/eval/errs"
)

// Build builds the attributes of the atexit module.
func Build(ev *eval.Evaler) map[string]any {
	return map[string]any{
		"register": eval.NewGoFn("register", func(args []any) (any, error) {
			if len(args) != 1 {
				return nil, errs.Type{Msg: "register() takes 1 argument"}
			}
			c, ok := args[0].(eval.Callable)
			if !ok {
				return nil, errs.Type{Msg: "register() argument must be callable"}
			}
			ev.RegisterAtExit(c)
			return args[0], nil
		}),
	}
}
