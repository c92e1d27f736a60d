package prog_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.smy.sh/pkg/prog"
)

type testProgram struct {
	name     string
	suitable bool
	ran      *[]string
	flagVal  string
}

func (p *testProgram) RegisterFlags(fs *prog.FlagSet) {
	fs.StringVar(&p.flagVal, "flag-"+p.name, "", "test flag")
}

func (p *testProgram) Run(fds [3]*os.File, args []string) error {
	if !p.suitable {
		return prog.ErrNextProgram
	}
	*p.ran = append(*p.ran, p.name)
	return nil
}

func runWithPipes(t *testing.T, args []string, p prog.Program) (exit int, stdout, stderr string) {
	t.Helper()
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatalf("open %s: %v", os.DevNull, err)
	}
	defer devNull.Close()
	r1, w1, _ := os.Pipe()
	r2, w2, _ := os.Pipe()
	exit = prog.Run([3]*os.File{devNull, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	out, _ := io.ReadAll(r1)
	errOut, _ := io.ReadAll(r2)
	r1.Close()
	r2.Close()
	return exit, string(out), string(errOut)
}

func TestComposite_RunsFirstSuitable(t *testing.T) {
	var ran []string
	first := &testProgram{name: "first", suitable: false, ran: &ran}
	second := &testProgram{name: "second", suitable: true, ran: &ran}
	third := &testProgram{name: "third", suitable: true, ran: &ran}

	exit, _, _ := runWithPipes(t, []string{"test"}, prog.Composite(first, second, third))
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if len(ran) != 1 || ran[0] != "second" {
		t.Errorf("ran = %v, want [second]", ran)
	}
}

func TestComposite_NoSuitable(t *testing.T) {
	var ran []string
	p := &testProgram{name: "p", suitable: false, ran: &ran}
	exit, _, stderr := runWithPipes(t, []string{"test"}, prog.Composite(p))
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "internal error: no suitable subprogram") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestBadFlag(t *testing.T) {
	var ran []string
	p := &testProgram{name: "p", suitable: true, ran: &ran}
	exit, _, stderr := runWithPipes(t, []string{"test", "-no-such-flag"}, p)
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr = %q, want usage", stderr)
	}
}

func TestHelp(t *testing.T) {
	var ran []string
	p := &testProgram{name: "p", suitable: true, ran: &ran}
	exit, stdout, _ := runWithPipes(t, []string{"test", "-help"}, p)
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if !strings.Contains(stdout, "Usage:") || !strings.Contains(stdout, "-flag-p") {
		t.Errorf("stdout = %q, want usage with registered flags", stdout)
	}
	if len(ran) != 0 {
		t.Errorf("-help still ran the program: %v", ran)
	}
}

type exitProgram struct{ code int }

func (p *exitProgram) RegisterFlags(fs *prog.FlagSet) {}
func (p *exitProgram) Run(fds [3]*os.File, args []string) error {
	return prog.Exit(p.code)
}

func TestExit(t *testing.T) {
	exit, _, stderr := runWithPipes(t, []string{"test"}, &exitProgram{code: 3})
	if exit != 3 {
		t.Errorf("exit = %d, want 3", exit)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
	exit, _, _ = runWithPipes(t, []string{"test"}, &exitProgram{code: 0})
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
}

type badUsageProgram struct{}

func (p *badUsageProgram) RegisterFlags(fs *prog.FlagSet) {}
func (p *badUsageProgram) Run(fds [3]*os.File, args []string) error {
	return prog.BadUsage("need more arguments")
}

func TestBadUsage(t *testing.T) {
	exit, _, stderr := runWithPipes(t, []string{"test"}, &badUsageProgram{})
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "need more arguments") || !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr = %q", stderr)
	}
}
