package vals

import (
	"testing"

	"src.smy.sh/pkg/tt"
)

func TestRepr(t *testing.T) {
	tt.Test(t, tt.Fn("Repr", Repr), tt.Table{
		tt.Args(nil).Rets("None"),
		tt.Args(true).Rets("True"),
		tt.Args(false).Rets("False"),
		tt.Args(42).Rets("42"),
		tt.Args(-3).Rets("-3"),
		tt.Args(3.0).Rets("3.0"),
		tt.Args(4.8).Rets("4.8"),
		tt.Args("abc").Rets("'abc'"),
		tt.Args("").Rets("''"),
		tt.Args("a'b").Rets(`'a\'b'`),
		tt.Args("a\nb").Rets(`'a\nb'`),
		tt.Args(`a\b`).Rets(`'a\\b'`),
		tt.Args(`"`).Rets(`'"'`),
		tt.Args(Tuple{}).Rets("()"),
		tt.Args(Tuple{3}).Rets("(3,)"),
		tt.Args(Tuple{1, 2}).Rets("(1, 2)"),
		tt.Args(Tuple{1, Tuple{2}}).Rets("(1, (2,))"),
		tt.Args(NewList()).Rets("[]"),
		tt.Args(NewList(1, NewList(2), 3)).Rets("[1, [2], 3]"),
	})
}

func TestRepr_DictAndSet(t *testing.T) {
	d := NewDict()
	d.Set("a", 3)
	d.Set("b", 4)
	if got := Repr(d); got != "{'a': 3, 'b': 4}" {
		t.Errorf("Repr(dict) -> %q", got)
	}
	if got := Repr(NewDict()); got != "{}" {
		t.Errorf("Repr(empty dict) -> %q", got)
	}
	s := NewSet()
	s.Add(1)
	s.Add(2)
	s.Add(1)
	if got := Repr(s); got != "{1, 2}" {
		t.Errorf("Repr(set) -> %q", got)
	}
	if got := Repr(NewSet()); got != "set()" {
		t.Errorf("Repr(empty set) -> %q", got)
	}
}

func TestToString(t *testing.T) {
	tt.Test(t, tt.Fn("ToString", ToString), tt.Table{
		tt.Args("abc").Rets("abc"),
		tt.Args(1).Rets("1"),
		tt.Args(nil).Rets("None"),
	})
}
