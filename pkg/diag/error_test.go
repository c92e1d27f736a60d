package diag

import (
	"strings"
	"testing"
)

func TestError(t *testing.T) {
	err := &Error{
		Type:    "SyntaxError",
		Message: "expected : but found NEWLINE",
		Context: *NewContext("[test]", "if 1\nx\n", Ranging{From: 4, To: 5}),
	}
	if got, want := err.Error(), "SyntaxError: expected : but found NEWLINE at line 1"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := err.Range(); got != (Ranging{From: 4, To: 5}) {
		t.Errorf("Range() = %v", got)
	}
	show := err.Show("")
	if !strings.Contains(show, "SyntaxError") || !strings.Contains(show, "line 1") {
		t.Errorf("Show() = %q", show)
	}
}

func TestError_LineNumbers(t *testing.T) {
	src := "a\nb\nc\n"
	for i, want := range []struct {
		from, line int
	}{{0, 1}, {2, 2}, {4, 3}} {
		err := &Error{
			Type:    "SyntaxError",
			Message: "m",
			Context: *NewContext("t", src, Ranging{From: want.from, To: want.from + 1}),
		}
		if got := err.Context.Line(); got != want.line {
			t.Errorf("case %d: Line() = %d, want %d", i, got, want.line)
		}
	}
}
