package parse

import (
	"src.smy.sh/pkg/diag"
)

// diagError is an alias for diag.Error, used solely so that embedding it
// below does not produce an anonymous field literally named "Error" (which
// would shadow the promoted Error() method of the same name).
type diagError = diag.Error

// Error is a syntax error, from either the scanner or the parser. It carries
// a source context so that callers can point at the offending text.
type Error struct {
	diagError
	// Partial is true when the error was caused by the source ending too
	// early. An interactive caller can read more input and retry.
	Partial bool
}

func newError(msg string, src Source, r diag.Ranger, partial bool) *Error {
	return &Error{
		diag.Error{
			Type:    "SyntaxError",
			Message: msg,
			Context: *diag.NewContext(src.Name, src.Code, r),
		},
		partial,
	}
}

// GetError returns the *Error inside err, or nil if there is none.
func GetError(err error) *Error {
	if parseErr, ok := err.(*Error); ok {
		return parseErr
	}
	return nil
}
