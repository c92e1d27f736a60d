package vals

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value. Two equal values must
	// have the same hash code.
	Equal(other any) bool
}

// Equal returns whether two values are equal. Equality is structural for
// None, booleans, numbers, strings and the container types; numbers compare
// across the int and float representations. Types outside the closed set
// compare by identity unless they implement Equaler.
func Equal(x, y any) bool {
	switch x := x.(type) {
	case nil:
		return y == nil
	case bool:
		return x == y
	case int:
		switch y := y.(type) {
		case int:
			return x == y
		case float64:
			return float64(x) == y
		}
		return false
	case float64:
		switch y := y.(type) {
		case int:
			return x == float64(y)
		case float64:
			return x == y
		}
		return false
	case string:
		return x == y
	case Tuple:
		if y, ok := y.(Tuple); ok {
			return equalSlices(x, y)
		}
		return false
	case *List:
		if y, ok := y.(*List); ok {
			return equalSlices(x.Values, y.Values)
		}
		return false
	case *Dict:
		if y, ok := y.(*Dict); ok {
			return equalDicts(x, y)
		}
		return false
	case *Set:
		if y, ok := y.(*Set); ok {
			return equalSets(x, y)
		}
		return false
	case Equaler:
		return x.Equal(y)
	default:
		return x == y
	}
}

func equalSlices(x, y []any) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Equal(x[i], y[i]) {
			return false
		}
	}
	return true
}

func equalDicts(x, y *Dict) bool {
	if x.Len() != y.Len() {
		return false
	}
	eq := true
	x.Each(func(k, vx any) bool {
		vy, ok := y.Index(k)
		if !ok || !Equal(vx, vy) {
			eq = false
			return false
		}
		return true
	})
	return eq
}

func equalSets(x, y *Set) bool {
	if x.Len() != y.Len() {
		return false
	}
	eq := true
	x.Each(func(elem any) bool {
		if !y.Has(elem) {
			eq = false
			return false
		}
		return true
	})
	return eq
}
