package vals

import (
	"testing"
)

func slice3(lo, hi, step any) Tuple { return Tuple{lo, hi, step} }

func TestIndex_Sequences(t *testing.T) {
	tests := []struct {
		name    string
		v, idx  any
		want    any
		wantErr bool
	}{
		{"str int", "abc", 0, "a", false},
		{"str negative", "abc", -1, "c", false},
		{"str out of range", "abc", 3, nil, true},
		{"str slice", "abcdef", slice3(1, -1, nil), "bcde", false},
		{"str slice open", "abc", slice3(nil, nil, nil), "abc", false},
		{"str slice empty", "abc", slice3(2, 1, nil), "", false},
		{"str slice clamped", "abc", slice3(-10, 10, nil), "abc", false},
		{"str slice step", "abc", slice3(nil, nil, 2), nil, true},
		{"tuple int", Tuple{1, 2, 3}, 1, 2, false},
		{"tuple negative", Tuple{1, 2, 3}, -3, 1, false},
		{"tuple out of range", Tuple{}, -2, nil, true},
		{"list int", NewList(1, 2), 1, 2, false},
		{"number not subscriptable", 5, 0, nil, true},
	}
	for _, test := range tests {
		got, err := Index(test.v, test.idx)
		if test.wantErr {
			if err == nil {
				t.Errorf("%s: Index(%v, %v) -> no error", test.name, test.v, test.idx)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: Index(%v, %v) -> error %v", test.name, test.v, test.idx, err)
			continue
		}
		if !Equal(got, test.want) {
			t.Errorf("%s: Index(%v, %v) -> %v, want %v", test.name, test.v, test.idx, got, test.want)
		}
	}
}

func TestIndex_SliceRoundTrip(t *testing.T) {
	l := NewList(1, 2, 3, 4, 5)
	whole, err := Index(l, slice3(nil, nil, nil))
	if err != nil {
		t.Fatalf("Index(l, [:]) -> error %v", err)
	}
	if !Equal(whole, l) {
		t.Errorf("l[:] != l: %v", Repr(whole))
	}
	if whole == any(l) {
		t.Errorf("l[:] returned the same list, want a copy")
	}
}

func TestIndex_Slices(t *testing.T) {
	l := NewList(1, 2, 3, 4, 5)
	for a := -7; a <= 7; a++ {
		for b := -7; b <= 7; b++ {
			got, err := Index(l, slice3(a, b, nil))
			if err != nil {
				t.Fatalf("Index(l, [%d:%d]) -> error %v", a, b, err)
			}
			lo, hi := a, b
			if lo < 0 {
				lo += 5
			}
			if hi < 0 {
				hi += 5
			}
			if lo < 0 {
				lo = 0
			}
			if hi > 5 {
				hi = 5
			}
			wantLen := hi - lo
			if wantLen < 0 {
				wantLen = 0
			}
			if n := len(got.(*List).Values); n != wantLen {
				t.Errorf("len(l[%d:%d]) = %d, want %d", a, b, n, wantLen)
			}
		}
	}
}

func TestIndex_Dict(t *testing.T) {
	d := NewDict()
	d.Set("a", 1)
	got, err := Index(d, "a")
	if err != nil || !Equal(got, 1) {
		t.Errorf("Index(d, 'a') -> %v, %v", got, err)
	}
	got, err = Index(d, "missing")
	if err != nil || got != nil {
		t.Errorf("Index(d, missing) -> %v, %v; want None", got, err)
	}
}
