// Package prog provides the entry point to the interpreter. Its subprogram
// abstraction lets the same binary expose the script runner, the REPL, the
// language server and the build info printer.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.smy.sh/pkg/logutil"
)

// Program represents a subprogram.
type Program interface {
	// RegisterFlags registers the subprogram's flags.
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram. A subprogram that is not applicable for the
	// given invocation returns ErrNextProgram to pass control on.
	Run(fds [3]*os.File, args []string) error
}

// FlagSet wraps a flag.FlagSet, providing the flags shared by several
// subprograms.
type FlagSet struct {
	*flag.FlagSet
	json *bool
}

// JSON returns a pointer to the value of the shared -json flag, registering
// it on first use.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show the output from -buildinfo, -compileonly or -version in JSON")
		fs.json = &json
	}
	return fs.json
}

// Run parses command-line flags and runs the program. It returns the exit
// status of the process.
func Run(fds [3]*os.File, args []string, p Program) int {
	fs := &FlagSet{FlagSet: flag.NewFlagSet(args[0], flag.ContinueOnError)}
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	var logFlag string
	var helpFlag bool
	fs.StringVar(&logFlag, "log", "", "a file to write debug log to")
	fs.BoolVar(&helpFlag, "help", false, "show usage help and quit")
	p.RegisterFlags(fs)

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h was requested
			// but not defined. Handle this by printing the same message as
			// an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if logFlag != "" {
		if err = logutil.SetOutputFile(logFlag); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if helpFlag {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	if err == ErrNextProgram {
		err = errNoSuitableSubprogram
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	switch err := err.(type) {
	case badUsageError:
		usage(fds[2], fs)
	case exitError:
		return err.exit
	}
	return 2
}

func usage(out io.Writer, fs *FlagSet) {
	fmt.Fprintln(out, "Usage: smython [flags] [script [args...]]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return ErrNextProgram.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) RegisterFlags(fs *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(fs)
	}
}

func (cp compositeProgram) Run(fds [3]*os.File, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, args)
		if err != ErrNextProgram {
			return err
		}
	}
	return ErrNextProgram
}

var errNoSuitableSubprogram = errors.New("internal error: no suitable subprogram")

// ErrNextProgram is a special error that may be returned by Program.Run, to
// signify that this Program should not be run and the next one should be
// tried.
var ErrNextProgram = errors.New("next program")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information,
// and exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It
// causes the main function to exit with the given code without printing any
// error messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
