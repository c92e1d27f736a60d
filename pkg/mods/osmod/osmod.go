// Package osmod exposes a small slice of Go's os package as the os module.
package osmod

import (
	"os"
	"os/user"

	"src.smy.sh/pkg/eval"
)

// Build builds the attributes of the os module.
func Build(ev *eval.Evaler) map[string]any {
	return map[string]any{
		"getlogin": eval.NewGoFn("getlogin", getlogin),
		"getpid":   eval.NewGoFn("getpid", getpid),
	}
}

func getlogin(args []any) (any, error) {
	u, err := user.Current()
	if err != nil {
		return "", nil
	}
	return u.Username, nil
}

func getpid(args []any) (any, error) {
	return os.Getpid(), nil
}
