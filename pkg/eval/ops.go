package eval

import (
	"fmt"
	"math"
	"strings"

	"src.smy.sh/pkg/eval/errs"
	"src.smy.sh/pkg/eval/vals"
)

// binaryOp applies one of the binary operators | & + - * / %. Arithmetic is
// defined on numbers: operations on two ints yield an int, except division,
// which always yields a float. The bitwise operators require ints.
func binaryOp(op string, x, y any) (any, error) {
	switch op {
	case "|", "&":
		xi, xok := x.(int)
		yi, yok := y.(int)
		if !xok || !yok {
			return nil, operandError(op, x, y)
		}
		if op == "|" {
			return xi | yi, nil
		}
		return xi & yi, nil
	}
	xi, xIsInt := x.(int)
	yi, yIsInt := y.(int)
	if xIsInt && yIsInt && op != "/" {
		switch op {
		case "+":
			return xi + yi, nil
		case "-":
			return xi - yi, nil
		case "*":
			return xi * yi, nil
		case "%":
			if yi == 0 {
				return nil, errs.ZeroDivision{}
			}
			return xi % yi, nil
		}
	}
	xf, xok := toFloat(x)
	yf, yok := toFloat(y)
	if !xok || !yok {
		return nil, operandError(op, x, y)
	}
	switch op {
	case "+":
		return xf + yf, nil
	case "-":
		return xf - yf, nil
	case "*":
		return xf * yf, nil
	case "/":
		if yf == 0 {
			return nil, errs.ZeroDivision{}
		}
		return xf / yf, nil
	case "%":
		if yf == 0 {
			return nil, errs.ZeroDivision{}
		}
		return math.Mod(xf, yf), nil
	}
	panic("unknown binary operator " + op)
}

func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func operandError(op string, x, y any) error {
	return errs.Type{Msg: fmt.Sprintf("unsupported operand type(s) for %s: '%s' and '%s'",
		op, vals.Kind(x), vals.Kind(y))}
}

// compareOp applies a single comparison operator. Equality is structural;
// ordering is defined on numbers; in tests containment; is tests identity.
func compareOp(op string, x, y any) (bool, error) {
	switch op {
	case "==":
		return vals.Equal(x, y), nil
	case "!=":
		return !vals.Equal(x, y), nil
	case "<", ">", "<=", ">=":
		xf, xok := toFloat(x)
		yf, yok := toFloat(y)
		if !xok || !yok {
			return false, errs.Type{Msg: fmt.Sprintf(
				"'%s' not supported between instances of '%s' and '%s'",
				op, vals.Kind(x), vals.Kind(y))}
		}
		switch op {
		case "<":
			return xf < yf, nil
		case ">":
			return xf > yf, nil
		case "<=":
			return xf <= yf, nil
		default:
			return xf >= yf, nil
		}
	case "in":
		return contains(y, x)
	case "not in":
		ok, err := contains(y, x)
		return !ok, err
	case "is":
		return is(x, y), nil
	case "is not":
		return !is(x, y), nil
	}
	panic("unknown comparison operator " + op)
}

// contains implements the in operator: substring for strings, element for
// tuples, lists and sets, key for dicts.
func contains(container, elem any) (bool, error) {
	switch c := container.(type) {
	case string:
		s, ok := elem.(string)
		if !ok {
			return false, errs.Type{Msg: "'in <str>' requires string as left operand, not " + vals.Kind(elem)}
		}
		return strings.Contains(c, s), nil
	case vals.Tuple:
		for _, v := range c {
			if vals.Equal(v, elem) {
				return true, nil
			}
		}
		return false, nil
	case *vals.List:
		for _, v := range c.Values {
			if vals.Equal(v, elem) {
				return true, nil
			}
		}
		return false, nil
	case *vals.Set:
		return c.Has(elem), nil
	case *vals.Dict:
		return c.Has(elem), nil
	default:
		return false, errs.Type{Msg: "argument of type '" + vals.Kind(container) + "' is not a container"}
	}
}

// is implements identity: scalars compare structurally, mutable and
// identity-based values by reference. Two distinct but equal tuples are
// never identical.
func is(x, y any) bool {
	switch x.(type) {
	case nil, bool, int, float64, string:
		return vals.Equal(x, y)
	case vals.Tuple:
		return false
	}
	if _, ok := y.(vals.Tuple); ok {
		return false
	}
	return x == y
}
