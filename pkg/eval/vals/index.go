package vals

import (
	"src.smy.sh/pkg/eval/errs"
)

// Index indexes a value with the given index.
//
// Dicts return the mapped value, or None when the key is missing. Strings,
// tuples and lists accept an integer index (negative indices wrap by
// length; out-of-range raises IndexError) or a 3-tuple slice produced by
// the builtin slice, returning a new value of the same kind. Other values
// are not subscriptable.
func Index(v, idx any) (any, error) {
	switch v := v.(type) {
	case *Dict:
		val, ok := v.Index(idx)
		if !ok {
			return nil, nil
		}
		return val, nil
	case string:
		runes := []rune(v)
		if slice, ok := sliceBounds(idx); ok {
			lo, hi, err := slice.resolve(len(runes))
			if err != nil {
				return nil, err
			}
			return string(runes[lo:hi]), nil
		}
		i, err := seqIndex(idx, len(runes))
		if err != nil {
			return nil, err
		}
		return string(runes[i]), nil
	case Tuple:
		if slice, ok := sliceBounds(idx); ok {
			lo, hi, err := slice.resolve(len(v))
			if err != nil {
				return nil, err
			}
			return Tuple(append([]any{}, v[lo:hi]...)), nil
		}
		i, err := seqIndex(idx, len(v))
		if err != nil {
			return nil, err
		}
		return v[i], nil
	case *List:
		if slice, ok := sliceBounds(idx); ok {
			lo, hi, err := slice.resolve(len(v.Values))
			if err != nil {
				return nil, err
			}
			return NewList(append([]any{}, v.Values[lo:hi]...)...), nil
		}
		i, err := seqIndex(idx, len(v.Values))
		if err != nil {
			return nil, err
		}
		return v.Values[i], nil
	default:
		return nil, errs.Type{Msg: "'" + Kind(v) + "' object is not subscriptable"}
	}
}

// SliceRange resolves a slice 3-tuple against a sequence of the given
// length, returning concrete [lo, hi) offsets.
func SliceRange(t Tuple, length int) (int, int, error) {
	s, ok := sliceBounds(t)
	if !ok {
		return 0, 0, errs.Type{Msg: "not a slice"}
	}
	return s.resolve(length)
}

// sliceTuple holds the unresolved bounds of a slice subscript.
type sliceTuple struct {
	lo, hi, step any
}

// sliceBounds recognizes the 3-tuple emitted by the parser for slice
// subscripts.
func sliceBounds(idx any) (sliceTuple, bool) {
	t, ok := idx.(Tuple)
	if !ok || len(t) != 3 {
		return sliceTuple{}, false
	}
	return sliceTuple{t[0], t[1], t[2]}, true
}

// resolve turns the slice bounds into concrete offsets for a sequence of
// the given length. Omitted bounds default to 0 and length; negative bounds
// wrap by length and are clamped. A non-None step is not supported.
func (s sliceTuple) resolve(length int) (int, int, error) {
	if s.step != nil {
		return 0, 0, errs.Unimplemented{What: "slice step"}
	}
	lo, err := sliceBound(s.lo, 0, length)
	if err != nil {
		return 0, 0, err
	}
	hi, err := sliceBound(s.hi, length, length)
	if err != nil {
		return 0, 0, err
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi, nil
}

func sliceBound(v any, def, length int) (int, error) {
	if v == nil {
		return def, nil
	}
	i, ok := v.(int)
	if !ok {
		return 0, errs.Type{Msg: "slice indices must be integers"}
	}
	if i < 0 {
		i += length
	}
	if i < 0 {
		i = 0
	}
	if i > length {
		i = length
	}
	return i, nil
}

// seqIndex resolves an integer index into a sequence of the given length,
// wrapping negative indices.
func seqIndex(idx any, length int) (int, error) {
	i, ok := idx.(int)
	if !ok {
		return 0, errs.Type{Msg: "index must be an integer"}
	}
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, errs.Index{}
	}
	return i, nil
}
