// Package evaltest provides a harness for testing the evaluator against
// doctest-style transcripts.
//
// A transcript is a sequence of blocks. A block starts with a ">>> " line,
// continues over "... " lines, and is followed by the lines the block is
// expected to produce: output written by print, the representation of a
// non-None result, or an error message. Blank lines and lines starting with
// "#" separate blocks.
package evaltest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.smy.sh/pkg/eval"
	"src.smy.sh/pkg/eval/vals"
	"src.smy.sh/pkg/mods"
	"src.smy.sh/pkg/parse"
)

// Run runs all blocks of the transcript against a single fresh Evaler and
// compares their output.
func Run(t *testing.T, transcript string) {
	t.Helper()
	RunWith(t, transcript, func(ev *eval.Evaler) {})
}

// RunWith is like Run, but calls setup on the Evaler first.
func RunWith(t *testing.T, transcript string, setup func(ev *eval.Evaler)) {
	t.Helper()
	ev := eval.NewEvaler()
	mods.AddTo(ev)
	setup(ev)

	for _, block := range parseTranscript(transcript) {
		var out strings.Builder
		ev.SetOutput(&out)
		v, err := ev.Execute(parse.Source{Name: "[test]", Code: block.code})
		got := out.String()
		if err != nil {
			got += err.Error() + "\n"
		} else if v != nil {
			got += vals.Repr(v) + "\n"
		}
		if diff := cmp.Diff(block.want, got); diff != "" {
			t.Errorf("transcript block %q: output (-want +got):\n%s", block.code, diff)
		}
	}
}

type block struct {
	code string
	want string
}

func parseTranscript(transcript string) []block {
	var blocks []block
	lines := strings.Split(transcript, "\n")
	i := 0
	for i < len(lines) {
		line := lines[i]
		if !strings.HasPrefix(line, ">>> ") {
			i++
			continue
		}
		var code strings.Builder
		code.WriteString(line[4:])
		code.WriteByte('\n')
		i++
		for i < len(lines) {
			if strings.HasPrefix(lines[i], "... ") {
				code.WriteString(lines[i][4:])
			} else if lines[i] != "..." {
				break
			}
			code.WriteByte('\n')
			i++
		}
		var want strings.Builder
		for i < len(lines) {
			line := lines[i]
			if line == "" || strings.HasPrefix(line, ">>> ") || strings.HasPrefix(line, "#") {
				break
			}
			want.WriteString(line)
			want.WriteByte('\n')
			i++
		}
		blocks = append(blocks, block{code.String(), want.String()})
	}
	return blocks
}
