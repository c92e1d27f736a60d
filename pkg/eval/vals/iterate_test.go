package vals

import (
	"testing"
)

func collectOrFail(t *testing.T, v any) []any {
	t.Helper()
	elems, err := Collect(v)
	if err != nil {
		t.Fatalf("Collect(%v) -> error %v", v, err)
	}
	return elems
}

func TestIterate(t *testing.T) {
	if got := collectOrFail(t, "abc"); !Equal(NewList(got...), NewList("a", "b", "c")) {
		t.Errorf("Collect(str) -> %v", got)
	}
	if got := collectOrFail(t, Tuple{1, 2}); !Equal(NewList(got...), NewList(1, 2)) {
		t.Errorf("Collect(tuple) -> %v", got)
	}
	if got := collectOrFail(t, NewList(1, 2, 3)); len(got) != 3 {
		t.Errorf("Collect(list) -> %v", got)
	}

	s := NewSet()
	s.Add("x")
	s.Add("y")
	if got := collectOrFail(t, s); !Equal(NewList(got...), NewList("x", "y")) {
		t.Errorf("Collect(set) -> %v", got)
	}

	d := NewDict()
	d.Set(3, 1)
	d.Set(4, 2)
	got := collectOrFail(t, d)
	want := []any{Tuple{3, 1}, Tuple{4, 2}}
	if len(got) != 2 || !Equal(got[0], want[0]) || !Equal(got[1], want[1]) {
		t.Errorf("Collect(dict) -> %v, want key-value 2-tuples", got)
	}
}

func TestIterate_EarlyBreak(t *testing.T) {
	var seen []any
	err := Iterate(NewList(1, 2, 3), func(v any) bool {
		seen = append(seen, v)
		return len(seen) < 2
	})
	if err != nil || len(seen) != 2 {
		t.Errorf("early break visited %v (err %v)", seen, err)
	}
}

func TestIterate_NotIterable(t *testing.T) {
	if err := Iterate(5, func(any) bool { return true }); err == nil {
		t.Errorf("Iterate(number) -> no error")
	}
	if CanIterate(5) {
		t.Errorf("CanIterate(number) = true")
	}
	if !CanIterate("x") || !CanIterate(NewDict()) {
		t.Errorf("CanIterate of iterable = false")
	}
}
