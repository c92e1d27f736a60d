// Package curses provides a minimal terminal module: a screen class plus a
// few free functions. It is a shim, not a full curses binding; drawing goes
// straight to the Evaler's output.
package curses

import (
	"fmt"
	"os"

	"src.smy.sh/pkg/eval"
	"src.smy.sh/pkg/eval/errs"
	"src.smy.sh/pkg/eval/vals"
	"src.smy.sh/pkg/sys"
)

// Build builds the attributes of the curses module.
func Build(ev *eval.Evaler) map[string]any {
	screen := &eval.Class{
		Name: "screen",
		Dict: map[string]any{
			"addstr":   eval.NewGoFn("addstr", addstr(ev)),
			"refresh":  eval.NewGoFn("refresh", nop),
			"clear":    eval.NewGoFn("clear", nop),
			"getmaxyx": eval.NewGoFn("getmaxyx", getmaxyx),
		},
	}
	return map[string]any{
		"screen":  screen,
		"initscr": eval.NewGoFn("initscr", func(args []any) (any, error) { return screen.Call(nil) }),
		"endwin":  eval.NewGoFn("endwin", nop),
		"isatty":  eval.NewGoFn("isatty", isattyFn),
	}
}

func nop(args []any) (any, error) { return nil, nil }

// addstr writes a string to the output; the optional leading row and column
// arguments are accepted and ignored.
func addstr(ev *eval.Evaler) func(args []any) (any, error) {
	return func(args []any) (any, error) {
		if len(args) < 2 {
			return nil, errs.Type{Msg: "addstr() takes at least 2 arguments"}
		}
		s := args[len(args)-1]
		fmt.Fprint(ev.Output(), vals.ToString(s))
		return nil, nil
	}
}

// getmaxyx reports the terminal size as a (rows, cols) tuple, or (-1, -1)
// when the output is not a terminal.
func getmaxyx(args []any) (any, error) {
	row, col := sys.WinSize(os.Stdout)
	return vals.Tuple{row, col}, nil
}

func isattyFn(args []any) (any, error) {
	return sys.IsATTY(os.Stdout), nil
}
