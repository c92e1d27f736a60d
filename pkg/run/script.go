package run

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"src.smy.sh/pkg/eval"
	"src.smy.sh/pkg/parse"
)

// Configuration for the script mode.
type scriptCfg struct {
	Cmd         bool
	CompileOnly bool
	JSON        bool
}

// script executes a script file, or the code of the first argument when
// -c was given. It returns the exit status.
func script(ev *eval.Evaler, fds [3]*os.File, args []string, cfg *scriptCfg) int {
	arg0 := args[0]

	var name, code string
	if cfg.Cmd {
		name = "code from -c"
		code = arg0
	} else {
		var err error
		name, err = filepath.Abs(arg0)
		if err != nil {
			fmt.Fprintf(fds[2],
				"cannot get full path of script %q: %v\n", arg0, err)
			return 2
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
	}

	src := parse.Source{Name: name, Code: code, IsFile: !cfg.Cmd}
	if cfg.CompileOnly {
		_, err := parse.Parse(src)
		if cfg.JSON {
			fmt.Fprintf(fds[1], "%s\n", errorToJSON(parse.GetError(err)))
		} else if err != nil {
			fmt.Fprintln(fds[2], err)
		}
		if err != nil {
			return 2
		}
		return 0
	}

	if _, err := ev.Execute(src); err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}
	return 0
}

// runStdin reads a whole program from standard input and executes it.
func runStdin(ev *eval.Evaler, fds [3]*os.File) int {
	code, err := io.ReadAll(fds[0])
	if err != nil {
		fmt.Fprintln(fds[2], "cannot read standard input:", err)
		return 2
	}
	if _, err := ev.Execute(parse.Source{Name: "[stdin]", Code: string(code)}); err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}
	return 0
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

// An auxiliary struct for converting errors with diagnostics information to
// JSON.
type errorInJSON struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// errorToJSON converts a parse error into a JSON array, empty when err is
// nil.
func errorToJSON(err *parse.Error) []byte {
	converted := []errorInJSON{}
	if err != nil {
		converted = append(converted,
			errorInJSON{err.Context.Name, err.Context.From, err.Context.To, err.Message})
	}
	jsonError, errMarshal := json.Marshal(converted)
	if errMarshal != nil {
		return []byte(`[{"message":"Unable to convert the errors to JSON"}]`)
	}
	return jsonError
}
