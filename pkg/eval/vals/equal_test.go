package vals

import (
	"testing"

	"src.smy.sh/pkg/tt"
)

func TestEqual(t *testing.T) {
	l := NewList(1, 2)
	tt.Test(t, tt.Fn("Equal", Equal), tt.Table{
		tt.Args(nil, nil).Rets(true),
		tt.Args(nil, false).Rets(false),
		tt.Args(true, true).Rets(true),
		tt.Args(1, 1).Rets(true),
		tt.Args(1, 2).Rets(false),
		tt.Args(3, 3.0).Rets(true),
		tt.Args(3.0, 3).Rets(true),
		tt.Args(3.5, 3).Rets(false),
		tt.Args("a", "a").Rets(true),
		tt.Args("a", 1).Rets(false),
		tt.Args(Tuple{1, 2}, Tuple{1, 2}).Rets(true),
		tt.Args(Tuple{1, 2}, Tuple{1}).Rets(false),
		tt.Args(NewList(1, 2), NewList(1, 2)).Rets(true),
		tt.Args(NewList(1, 2), NewList(2, 1)).Rets(false),
		tt.Args(l, l).Rets(true),
	})
}

func TestEqual_DictsAndSets(t *testing.T) {
	d1, d2 := NewDict(), NewDict()
	d1.Set(1, "a")
	d2.Set(1, "a")
	if !Equal(d1, d2) {
		t.Errorf("equal dicts compare unequal")
	}
	d2.Set(2, "b")
	if Equal(d1, d2) {
		t.Errorf("dicts of different size compare equal")
	}
	s1, s2 := NewSet(), NewSet()
	s1.Add(1)
	s2.Add(1)
	if !Equal(s1, s2) {
		t.Errorf("equal sets compare unequal")
	}
	s2.Add(2)
	if Equal(s1, s2) {
		t.Errorf("sets of different size compare equal")
	}
}

func TestHash_MatchesEqual(t *testing.T) {
	pairs := [][2]any{
		{3, 3.0},
		{"a", "a"},
		{Tuple{1, "x"}, Tuple{1, "x"}},
	}
	for _, pair := range pairs {
		h1, err1 := Hash(pair[0])
		h2, err2 := Hash(pair[1])
		if err1 != nil || err2 != nil {
			t.Fatalf("Hash errored: %v, %v", err1, err2)
		}
		if h1 != h2 {
			t.Errorf("Hash(%v) = %v != Hash(%v) = %v for equal values",
				pair[0], h1, pair[1], h2)
		}
	}
}

func TestHash_Unhashable(t *testing.T) {
	for _, v := range []any{NewList(1), NewDict(), NewSet()} {
		if _, err := Hash(v); err == nil {
			t.Errorf("Hash(%v) -> no error, want unhashable", v)
		}
	}
	if _, err := Hash(Tuple{NewList(1)}); err == nil {
		t.Errorf("Hash(tuple containing list) -> no error, want unhashable")
	}
}
