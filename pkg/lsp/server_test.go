package lsp

import (
	"testing"

	lsp "github.com/sourcegraph/go-lsp"
)

func TestDiagnostics(t *testing.T) {
	if diags := diagnostics("file:///ok.py", "a = 1\n"); len(diags) != 0 {
		t.Errorf("diagnostics of valid code -> %v, want none", diags)
	}

	diags := diagnostics("file:///bad.py", "a = \n")
	if len(diags) != 1 {
		t.Fatalf("diagnostics of invalid code -> %d entries, want 1", len(diags))
	}
	d := diags[0]
	if d.Severity != lsp.Error || d.Source != "parse" {
		t.Errorf("diagnostic severity/source = %v/%v", d.Severity, d.Source)
	}
	if d.Message != "expected (, [, {, NAME, NUMBER, or STRING but found NEWLINE" {
		t.Errorf("diagnostic message = %q", d.Message)
	}
	if d.Range.Start.Line != 0 {
		t.Errorf("diagnostic on line %d, want 0", d.Range.Start.Line)
	}
}

func TestWordBefore(t *testing.T) {
	tests := []struct {
		s    string
		idx  int
		want string
	}{
		{"pri", 3, "pri"},
		{"a = pri", 7, "pri"},
		{"a = ", 4, ""},
		{"", 0, ""},
	}
	for _, test := range tests {
		if got := wordBefore(test.s, test.idx); got != test.want {
			t.Errorf("wordBefore(%q, %d) = %q, want %q", test.s, test.idx, got, test.want)
		}
	}
}

func TestLspPositionFromIdx(t *testing.T) {
	s := "ab\ncd\n"
	tests := []struct {
		idx  int
		want lsp.Position
	}{
		{0, lsp.Position{Line: 0, Character: 0}},
		{1, lsp.Position{Line: 0, Character: 1}},
		{3, lsp.Position{Line: 1, Character: 0}},
		{5, lsp.Position{Line: 1, Character: 2}},
	}
	for _, test := range tests {
		if got := lspPositionFromIdx(s, test.idx); got != test.want {
			t.Errorf("lspPositionFromIdx(%d) = %v, want %v", test.idx, got, test.want)
		}
	}
}
