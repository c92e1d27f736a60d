package eval

import (
	"src.smy.sh/pkg/eval/errs"
	"src.smy.sh/pkg/eval/vals"
	"src.smy.sh/pkg/parse"
)

// evalExpr evaluates an expression against a frame. Errors returned from
// here are always exceptions or control-flow signals.
func evalExpr(fm *Frame, e parse.Expr) (any, error) {
	switch e := e.(type) {
	case *parse.LitExpr:
		return e.Value, nil
	case *parse.VarExpr:
		v, err := fm.lookup(e.Name)
		return v, throw(err)
	case *parse.TupleExpr:
		items, err := evalExprs(fm, e.Items)
		if err != nil {
			return nil, err
		}
		return vals.Tuple(items), nil
	case *parse.ListExpr:
		items, err := evalExprs(fm, e.Items)
		if err != nil {
			return nil, err
		}
		return vals.NewList(items...), nil
	case *parse.DictExpr:
		d := vals.NewDict()
		for i, key := range e.Keys {
			k, err := evalExpr(fm, key)
			if err != nil {
				return nil, err
			}
			v, err := evalExpr(fm, e.Values[i])
			if err != nil {
				return nil, err
			}
			if err := d.Set(k, v); err != nil {
				return nil, throw(err)
			}
		}
		return d, nil
	case *parse.SetExpr:
		s := vals.NewSet()
		for _, item := range e.Items {
			v, err := evalExpr(fm, item)
			if err != nil {
				return nil, err
			}
			if err := s.Add(v); err != nil {
				return nil, throw(err)
			}
		}
		return s, nil
	case *parse.CondExpr:
		cond, err := evalExpr(fm, e.Cond)
		if err != nil {
			return nil, err
		}
		if vals.Bool(cond) {
			return evalExpr(fm, e.Then)
		}
		return evalExpr(fm, e.Else)
	case *parse.OrExpr:
		x, err := evalExpr(fm, e.X)
		if err != nil || vals.Bool(x) {
			return x, err
		}
		return evalExpr(fm, e.Y)
	case *parse.AndExpr:
		x, err := evalExpr(fm, e.X)
		if err != nil || !vals.Bool(x) {
			return x, err
		}
		return evalExpr(fm, e.Y)
	case *parse.NotExpr:
		x, err := evalExpr(fm, e.X)
		if err != nil {
			return nil, err
		}
		return !vals.Bool(x), nil
	case *parse.CompareExpr:
		left, err := evalExpr(fm, e.X)
		if err != nil {
			return nil, err
		}
		for i, op := range e.Ops {
			right, err := evalExpr(fm, e.Operands[i])
			if err != nil {
				return nil, err
			}
			ok, err := compareOp(op, left, right)
			if err != nil {
				return nil, throw(err)
			}
			if !ok {
				return false, nil
			}
			left = right
		}
		return true, nil
	case *parse.BinExpr:
		x, err := evalExpr(fm, e.X)
		if err != nil {
			return nil, err
		}
		y, err := evalExpr(fm, e.Y)
		if err != nil {
			return nil, err
		}
		v, err := binaryOp(e.Op, x, y)
		return v, throw(err)
	case *parse.UnaryExpr:
		x, err := evalExpr(fm, e.X)
		if err != nil {
			return nil, err
		}
		switch x := x.(type) {
		case int:
			if e.Op == "-" {
				return -x, nil
			}
			return x, nil
		case float64:
			if e.Op == "-" {
				return -x, nil
			}
			return x, nil
		}
		return nil, throw(errs.Type{Msg: "bad operand type for unary " + e.Op + ": '" + vals.Kind(x) + "'"})
	case *parse.CallExpr:
		callee, err := evalExpr(fm, e.Fn)
		if err != nil {
			return nil, err
		}
		args, err := evalExprs(fm, e.Args)
		if err != nil {
			return nil, err
		}
		return call(callee, args)
	case *parse.IndexExpr:
		x, err := evalExpr(fm, e.X)
		if err != nil {
			return nil, err
		}
		idx, err := evalExpr(fm, e.Index)
		if err != nil {
			return nil, err
		}
		v, err := vals.Index(x, idx)
		return v, throw(err)
	case *parse.AttrExpr:
		x, err := evalExpr(fm, e.X)
		if err != nil {
			return nil, err
		}
		v, err := getAttr(x, e.Name)
		return v, throw(err)
	}
	panic("unknown expression type")
}

func evalExprs(fm *Frame, exprs []parse.Expr) ([]any, error) {
	values := make([]any, len(exprs))
	for i, e := range exprs {
		v, err := evalExpr(fm, e)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// call invokes a callable value with the given arguments.
func call(callee any, args []any) (any, error) {
	if c, ok := callee.(Callable); ok {
		return c.Call(args)
	}
	return nil, throw(errs.Type{Msg: "'" + vals.Kind(callee) + "' object is not callable"})
}
