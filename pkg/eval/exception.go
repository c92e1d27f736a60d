package eval

import (
	"src.smy.sh/pkg/eval/vals"
)

// Exception represents a raised value unwinding the evaluator. User code
// raises arbitrary values; host errors are carried as their message string
// so that a bare except clause, or one matching the string, can catch them.
type Exception struct {
	Value any
}

// Error returns the message of the exception: the string form of the raised
// value.
func (exc *Exception) Error() string {
	return vals.ToString(exc.Value)
}

// throw converts an error into a form that propagates through the
// evaluator. Exceptions and control-flow signals pass through unchanged;
// any other error becomes an Exception carrying its message.
func throw(err error) error {
	if err == nil {
		return nil
	}
	switch err.(type) {
	case *Exception, flowBreak, flowContinue, flowReturn:
		return err
	}
	return &Exception{Value: err.Error()}
}

// Control-flow signals. They are distinct error types so that each catcher
// recognizes exactly the kind it expects: break and continue are caught by
// the enclosing while or for, return by a function invocation boundary.

type flowBreak struct{}

func (flowBreak) Error() string { return "break" }

type flowContinue struct{}

func (flowContinue) Error() string { return "continue" }

type flowReturn struct{ value any }

func (flowReturn) Error() string { return "return" }
