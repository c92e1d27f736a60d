package run

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"src.smy.sh/pkg/eval"
	"src.smy.sh/pkg/eval/vals"
	"src.smy.sh/pkg/parse"
	"src.smy.sh/pkg/store"
)

// interactCfg keeps configuration for the interactive mode.
type interactCfg struct {
	DB     string
	Config Config
}

// interact runs a read-eval-print loop. Input blocks are collected until
// they parse completely: a block whose parse error is partial, or that has
// opened an indented suite, is continued until an empty line.
func interact(ev *eval.Evaler, fds [3]*os.File, cfg *interactCfg) {
	var st store.DBStore
	if !cfg.Config.NoHistory {
		path, err := dbPath(cfg.DB, cfg.Config)
		if err == nil {
			st, err = store.NewStore(path)
		}
		if err != nil {
			fmt.Fprintln(fds[2], "history disabled:", err)
			st = nil
		} else {
			defer st.Close()
		}
	}

	in := bufio.NewReader(fds[0])
	cmdNum := 0
	buf := ""
	multiline := false

	for {
		if buf == "" {
			fmt.Fprint(fds[2], ">>> ")
		} else {
			fmt.Fprint(fds[2], "... ")
		}
		line, err := in.ReadString('\n')
		if err == io.EOF && line == "" {
			if buf != "" {
				cmdNum++
				runInput(ev, fds, st, cmdNum, buf)
			}
			fmt.Fprintln(fds[2])
			return
		} else if err != nil && err != io.EOF {
			fmt.Fprintln(fds[2], "cannot read input:", err)
			return
		}
		if buf == "" && strings.TrimSpace(line) == "" {
			continue
		}
		buf += line

		if blank := strings.TrimSpace(line) == ""; !blank {
			src := parse.Source{Name: "[tty]", Code: buf}
			if _, perr := parse.Parse(src); isPartial(perr) {
				multiline = true
				continue
			}
			if multiline {
				continue
			}
		}
		cmdNum++
		runInput(ev, fds, st, cmdNum, buf)
		buf = ""
		multiline = false
	}
}

func isPartial(err error) bool {
	perr := parse.GetError(err)
	return perr != nil && perr.Partial
}

// runInput executes one collected input block and echoes the
// representation of a non-None result.
func runInput(ev *eval.Evaler, fds [3]*os.File, st store.DBStore, cmdNum int, code string) {
	if st != nil {
		if _, err := st.AddCmd(strings.TrimSuffix(code, "\n")); err != nil {
			logger.Println("cannot save history:", err)
		}
	}
	src := parse.Source{Name: fmt.Sprintf("[tty %d]", cmdNum), Code: code}
	v, err := ev.Execute(src)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return
	}
	if v != nil {
		fmt.Fprintln(fds[1], vals.Repr(v))
	}
}
