// Package eval implements the Smython evaluator: a tree walker over the
// parse package's AST, together with the frame machinery that implements
// name resolution, call semantics and non-local control flow.
package eval

import (
	"io"
	"os"
	"path/filepath"

	"src.smy.sh/pkg/eval/errs"
	"src.smy.sh/pkg/eval/vals"
	"src.smy.sh/pkg/logutil"
	"src.smy.sh/pkg/parse"
)

var logger = logutil.GetLogger("[eval] ")

// Evaler provides a Smython runtime: the globals of the top-level script,
// the builtins table, and the module registry. All state is scoped to the
// instance, so embedding several Evalers in one process is safe.
type Evaler struct {
	Global  map[string]any
	Builtin map[string]any

	// LibDirs are directories searched for <name>.py files by import.
	LibDirs []string

	modules      map[string]*Module
	preinstalled map[string]func(*Evaler) map[string]any
	out          io.Writer
	atexit       []Callable
}

// NewEvaler creates a new Evaler with the builtin names seeded.
func NewEvaler() *Evaler {
	ev := &Evaler{
		Global:       make(map[string]any),
		modules:      make(map[string]*Module),
		preinstalled: make(map[string]func(*Evaler) map[string]any),
		out:          os.Stdout,
	}
	ev.Builtin = builtins(ev)
	return ev
}

// SetOutput redirects the output of print. The default is standard output.
func (ev *Evaler) SetOutput(w io.Writer) { ev.out = w }

// Output returns the writer that print writes to.
func (ev *Evaler) Output() io.Writer { return ev.out }

// AddModule registers a preinstalled module under the given name. The build
// function runs at most once, on first import.
func (ev *Evaler) AddModule(name string, build func(*Evaler) map[string]any) {
	ev.preinstalled[name] = build
}

// Execute parses and evaluates a script in the runtime's globals, returning
// the value of the last statement. The error is a *parse.Error for syntax
// errors and a *Exception for runtime errors.
func (ev *Evaler) Execute(src parse.Source) (any, error) {
	suite, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	fm := &Frame{ev: ev, local: ev.Global, global: ev.Global, builtin: ev.Builtin}
	v, err := evalSuite(fm, suite)
	return v, stopFlow(err)
}

// stopFlow turns a control-flow signal escaping the outermost evaluation
// into a visible error.
func stopFlow(err error) error {
	switch err.(type) {
	case flowBreak:
		return throw(errs.Flow{Name: "break", Ctx: "loop"})
	case flowContinue:
		return throw(errs.Flow{Name: "continue", Ctx: "loop"})
	case flowReturn:
		return throw(errs.Flow{Name: "return", Ctx: "function"})
	}
	return err
}

// Import returns the named module, constructing and caching it on first
// use. Preinstalled modules take precedence; otherwise <name>.py is loaded
// from the module search dirs and evaluated into a fresh globals mapping.
func (ev *Evaler) Import(name string) (*Module, error) {
	if m, ok := ev.modules[name]; ok {
		return m, nil
	}
	if build, ok := ev.preinstalled[name]; ok {
		m := &Module{Name: name, Globals: build(ev)}
		ev.modules[name] = m
		return m, nil
	}
	for _, dir := range ev.LibDirs {
		path := filepath.Join(dir, name+".py")
		code, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		logger.Println("loading module", name, "from", path)
		m := &Module{Name: name, Globals: make(map[string]any)}
		fm := &Frame{ev: ev, local: m.Globals, global: m.Globals, builtin: ev.Builtin}
		suite, err := parse.Parse(parse.Source{Name: path, Code: string(code), IsFile: true})
		if err != nil {
			return nil, err
		}
		if _, err := evalSuite(fm, suite); err != nil {
			return nil, stopFlow(err)
		}
		ev.modules[name] = m
		return m, nil
	}
	return nil, errs.Import{Module: name}
}

// Modules returns a dict mapping the names of the modules imported so far
// to the module values. It backs sys.modules.
func (ev *Evaler) Modules() *vals.Dict {
	d := vals.NewDict()
	for name, m := range ev.modules {
		d.Set(name, m)
	}
	return d
}

// RegisterAtExit adds a callable to run when the runtime shuts down.
func (ev *Evaler) RegisterAtExit(c Callable) {
	ev.atexit = append(ev.atexit, c)
}

// RunAtExit runs the registered exit callables, most recently registered
// first. The first error stops the run.
func (ev *Evaler) RunAtExit() error {
	for i := len(ev.atexit) - 1; i >= 0; i-- {
		if _, err := ev.atexit[i].Call(nil); err != nil {
			return err
		}
	}
	return nil
}
