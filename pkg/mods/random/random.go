// Package random exposes a seedable pseudo-random source as the random
// module.
package random

import (
	"math/rand"

	"src.smy.sh/pkg/eval"
	"src.smy.sh/pkg/eval/errs"
)

// Build builds the attributes of the random module. The source is scoped to
// the module instance, so separate Evalers do not share random state.
func Build(ev *eval.Evaler) map[string]any {
	rng := rand.New(rand.NewSource(1))
	return map[string]any{
		"seed": eval.NewGoFn("seed", func(args []any) (any, error) {
			if len(args) != 1 {
				return nil, errs.Type{Msg: "seed() takes 1 argument"}
			}
			n, ok := args[0].(int)
			if !ok {
				return nil, errs.Type{Msg: "seed() argument must be an integer"}
			}
			rng.Seed(int64(n))
			return nil, nil
		}),
		"randint": eval.NewGoFn("randint", func(args []any) (any, error) {
			if len(args) != 2 {
				return nil, errs.Type{Msg: "randint() takes 2 arguments"}
			}
			lo, lok := args[0].(int)
			hi, hok := args[1].(int)
			if !lok || !hok {
				return nil, errs.Type{Msg: "randint() arguments must be integers"}
			}
			if hi < lo {
				return nil, errs.Value{Msg: "empty range for randint()"}
			}
			return lo + rng.Intn(hi-lo+1), nil
		}),
	}
}
