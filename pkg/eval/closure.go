package eval

import (
	"fmt"
	"unsafe"

	"src.smy.sh/pkg/eval/errs"
	"src.smy.sh/pkg/eval/vals"
	"src.smy.sh/pkg/hash"
	"src.smy.sh/pkg/parse"
)

// Func is a function defined with Smython code: a closure over its defining
// frame. Each Func has its unique identity.
type Func struct {
	Name   string
	Params []string
	// Rest is true when the last parameter collects the remaining positional
	// arguments as a tuple.
	Rest bool
	// Defaults align with the trailing fixed parameters. They are expressions,
	// evaluated in the defining frame at call time.
	Defaults []parse.Expr
	Body     parse.Suite

	def *Frame
}

// Call calls the function: it builds a new frame whose parent is the
// defining frame, binds the parameters positionally, and executes the body
// under a boundary that catches the return signal.
func (f *Func) Call(args []any) (any, error) {
	fixed := len(f.Params)
	if f.Rest {
		fixed--
	}
	fm := f.def.child()
	for i := 0; i < fixed; i++ {
		if i < len(args) {
			fm.local[f.Params[i]] = args[i]
			continue
		}
		di := i - (fixed - len(f.Defaults))
		if di < 0 {
			return nil, throw(f.arityError(len(args)))
		}
		v, err := evalExpr(f.def, f.Defaults[di])
		if err != nil {
			return nil, err
		}
		fm.local[f.Params[i]] = v
	}
	if f.Rest {
		rest := vals.Tuple{}
		if len(args) > fixed {
			rest = vals.Tuple(append([]any{}, args[fixed:]...))
		}
		fm.local[f.Params[len(f.Params)-1]] = rest
	} else if len(args) > fixed {
		return nil, throw(f.arityError(len(args)))
	}
	return evalSuiteAsFunc(fm, f.Body)
}

func (f *Func) arityError(given int) error {
	return errs.Type{Msg: fmt.Sprintf("%s() takes %d arguments (%d given)",
		f.Name, len(f.Params), given)}
}

// Kind returns "function".
func (f *Func) Kind() string { return "function" }

// Repr identifies the function by name.
func (f *Func) Repr() string { return "<function " + f.Name + ">" }

// Hash returns the hash of the address.
func (f *Func) Hash() uint32 { return hash.Pointer(unsafe.Pointer(f)) }
