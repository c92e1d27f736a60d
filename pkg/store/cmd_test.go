package store

import (
	"testing"

	"src.smy.sh/pkg/store/storedefs"
)

func TestCmd(t *testing.T) {
	st, cleanup := MustGetTempStore()
	defer cleanup()

	startSeq, err := st.NextCmdSeq()
	if err != nil {
		t.Fatalf("NextCmdSeq -> error %v", err)
	}
	if startSeq != 1 {
		t.Errorf("NextCmdSeq of empty store = %d, want 1", startSeq)
	}

	cmds := []string{"print(1)", "a = 2", "a + 1"}
	for i, cmd := range cmds {
		seq, err := st.AddCmd(cmd)
		if err != nil {
			t.Fatalf("AddCmd(%q) -> error %v", cmd, err)
		}
		if seq != i+1 {
			t.Errorf("AddCmd(%q) -> seq %d, want %d", cmd, seq, i+1)
		}
	}

	for i, want := range cmds {
		got, err := st.Cmd(i + 1)
		if err != nil {
			t.Fatalf("Cmd(%d) -> error %v", i+1, err)
		}
		if got != want {
			t.Errorf("Cmd(%d) -> %q, want %q", i+1, got, want)
		}
	}

	all, err := st.CmdsWithSeq(0, 100)
	if err != nil {
		t.Fatalf("CmdsWithSeq -> error %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("CmdsWithSeq -> %d entries, want 3", len(all))
	}
	for i, cmd := range all {
		if cmd.Text != cmds[i] || cmd.Seq != i+1 {
			t.Errorf("CmdsWithSeq[%d] = %+v", i, cmd)
		}
	}

	if err := st.DelCmd(2); err != nil {
		t.Fatalf("DelCmd(2) -> error %v", err)
	}
	if _, err := st.Cmd(2); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("Cmd(2) after delete -> error %v, want ErrNoMatchingCmd", err)
	}

	if seq, _ := st.NextCmdSeq(); seq != 4 {
		t.Errorf("NextCmdSeq after 3 adds = %d, want 4", seq)
	}
}
