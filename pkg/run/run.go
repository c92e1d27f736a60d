// Package run implements the interpreter subprogram: running scripts, code
// given with -c, and the interactive REPL.
package run

import (
	"fmt"
	"os"

	"src.smy.sh/pkg/eval"
	"src.smy.sh/pkg/logutil"
	"src.smy.sh/pkg/mods"
	"src.smy.sh/pkg/prog"
	"src.smy.sh/pkg/sys"
)

var logger = logutil.GetLogger("[run] ")

// Program is the interpreter subprogram. It always runs, so it must be the
// last program of the composite.
type Program struct {
	codeInArg   bool
	compileOnly bool
	json        *bool
	db          string
	config      string
	libDirs     multiFlag
}

type multiFlag []string

func (f *multiFlag) String() string { return fmt.Sprint([]string(*f)) }

func (f *multiFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.codeInArg, "c", false, "take first argument as code to execute")
	fs.BoolVar(&p.compileOnly, "compileonly", false, "parse but do not execute")
	fs.StringVar(&p.db, "db", "", "path to the history database")
	fs.StringVar(&p.config, "config", "", "path to the config file")
	fs.Var(&p.libDirs, "libdir", "add a module search directory (can be repeated)")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	cfg, err := loadConfig(configPath(p.config))
	if err != nil {
		fmt.Fprintln(fds[2], "warning:", err)
	}

	ev := eval.NewEvaler()
	ev.SetOutput(fds[1])
	ev.LibDirs = append(append([]string{}, p.libDirs...), cfg.ModuleDirs...)
	mods.AddTo(ev)

	switch {
	case len(args) > 0:
		scfg := &scriptCfg{Cmd: p.codeInArg, CompileOnly: p.compileOnly, JSON: *p.json}
		exit := script(ev, fds, args, scfg)
		if eerr := ev.RunAtExit(); eerr != nil {
			fmt.Fprintln(fds[2], eerr)
		}
		return prog.Exit(exit)
	case p.codeInArg:
		return prog.BadUsage("argument required to -c")
	case p.compileOnly:
		return prog.BadUsage("argument required to -compileonly")
	case sys.IsATTY(fds[0]):
		interact(ev, fds, &interactCfg{DB: p.db, Config: cfg})
		if eerr := ev.RunAtExit(); eerr != nil {
			fmt.Fprintln(fds[2], eerr)
		}
		return nil
	default:
		exit := runStdin(ev, fds)
		if eerr := ev.RunAtExit(); eerr != nil {
			fmt.Fprintln(fds[2], eerr)
		}
		return prog.Exit(exit)
	}
}
