package vals

import (
	"math"

	"src.smy.sh/pkg/eval/errs"
	"src.smy.sh/pkg/hash"
)

// Hasher wraps the Hash method.
type Hasher interface {
	// Hash computes the hash code of the receiver.
	Hash() uint32
}

// Hash returns the 32-bit hash of a value, or an error if the value is
// unhashable. Hashing matches equality: a float with an integral value
// hashes like the integer, and the mutable containers are unhashable.
func Hash(v any) (uint32, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int:
		return hash.UInt64(uint64(int64(v))), nil
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return hash.UInt64(uint64(int64(v))), nil
		}
		return hash.UInt64(math.Float64bits(v)), nil
	case string:
		return hash.String(v), nil
	case Tuple:
		h := hash.DJBInit
		for _, elem := range v {
			eh, err := Hash(elem)
			if err != nil {
				return 0, err
			}
			h = hash.DJBCombine(h, eh)
		}
		return h, nil
	case Hasher:
		return v.Hash(), nil
	default:
		return 0, errs.Type{Msg: "unhashable type: '" + Kind(v) + "'"}
	}
}
