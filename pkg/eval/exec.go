package eval

import (
	"src.smy.sh/pkg/eval/errs"
	"src.smy.sh/pkg/eval/vals"
	"src.smy.sh/pkg/parse"
)

// evalSuite evaluates the statements of a suite in order and returns the
// value of the last statement, or None for an empty suite.
func evalSuite(fm *Frame, suite parse.Suite) (any, error) {
	var last any
	for _, stmt := range suite {
		v, err := execStmt(fm, stmt)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

// evalSuiteAsFunc evaluates a suite as a function body, additionally
// catching the return signal and yielding its payload. A break or continue
// with no enclosing loop inside the body stops here too: the call boundary
// must not leak it into a loop of the caller.
func evalSuiteAsFunc(fm *Frame, suite parse.Suite) (any, error) {
	v, err := evalSuite(fm, suite)
	if ret, ok := err.(flowReturn); ok {
		return ret.value, nil
	}
	return v, stopFlow(err)
}

// execStmt executes a single statement and returns its value. Most
// statements have value None; an expression statement yields the value of
// its expression.
func execStmt(fm *Frame, stmt parse.Stmt) (any, error) {
	switch s := stmt.(type) {
	case *parse.ExprStmt:
		return evalExpr(fm, s.X)
	case *parse.AssignStmt:
		return nil, execAssign(fm, s)
	case *parse.PassStmt:
		return nil, nil
	case *parse.BreakStmt:
		return nil, flowBreak{}
	case *parse.ContinueStmt:
		return nil, flowContinue{}
	case *parse.ReturnStmt:
		var v any
		if s.Value != nil {
			var err error
			v, err = evalExpr(fm, s.Value)
			if err != nil {
				return nil, err
			}
		}
		return nil, flowReturn{v}
	case *parse.RaiseStmt:
		var v any
		if s.Value != nil {
			var err error
			v, err = evalExpr(fm, s.Value)
			if err != nil {
				return nil, err
			}
		}
		return nil, &Exception{Value: v}
	case *parse.AssertStmt:
		cond, err := evalExpr(fm, s.Cond)
		if err != nil {
			return nil, err
		}
		if vals.Bool(cond) {
			return nil, nil
		}
		if s.Msg == nil {
			return nil, throw(errs.Assertion{})
		}
		msg, err := evalExpr(fm, s.Msg)
		if err != nil {
			return nil, err
		}
		return nil, throw(errs.Assertion{Msg: vals.ToString(msg), HasMsg: true})
	case *parse.IfStmt:
		cond, err := evalExpr(fm, s.Cond)
		if err != nil {
			return nil, err
		}
		if vals.Bool(cond) {
			_, err = evalSuite(fm, s.Then)
		} else {
			_, err = evalSuite(fm, s.Else)
		}
		return nil, err
	case *parse.WhileStmt:
		return nil, execWhile(fm, s)
	case *parse.ForStmt:
		return nil, execFor(fm, s)
	case *parse.TryFinallyStmt:
		_, err := evalSuite(fm, s.Body)
		if _, ferr := evalSuite(fm, s.Finally); ferr != nil {
			return nil, ferr
		}
		return nil, err
	case *parse.TryExceptStmt:
		return nil, execTryExcept(fm, s)
	case *parse.DefStmt:
		fm.set(s.Name, &Func{
			Name: s.Name, Params: s.Params, Rest: s.Rest,
			Defaults: s.Defaults, Body: s.Body, def: fm,
		})
		return nil, nil
	case *parse.ClassStmt:
		return nil, execClass(fm, s)
	case *parse.GlobalStmt:
		fm.markGlobal(s.Names)
		return nil, nil
	case *parse.ImportStmt:
		for _, item := range s.Items {
			m, err := fm.ev.Import(item.Name)
			if err != nil {
				return nil, throw(err)
			}
			name := item.Name
			if item.As != "" {
				name = item.As
			}
			fm.set(name, m)
		}
		return nil, nil
	case *parse.FromImportStmt:
		return nil, execFromImport(fm, s)
	}
	panic("unknown statement type")
}

func execWhile(fm *Frame, s *parse.WhileStmt) error {
	for {
		cond, err := evalExpr(fm, s.Cond)
		if err != nil {
			return err
		}
		if !vals.Bool(cond) {
			_, err = evalSuite(fm, s.Else)
			return err
		}
		_, err = evalSuite(fm, s.Body)
		switch err.(type) {
		case nil, flowContinue:
		case flowBreak:
			return nil
		default:
			return err
		}
	}
}

// execFor evaluates the iterable once, assigns each element to the target
// pattern and executes the body. break terminates the loop without running
// the else-suite; normal exhaustion runs it.
func execFor(fm *Frame, s *parse.ForStmt) error {
	iter, err := evalExpr(fm, s.Iter)
	if err != nil {
		return err
	}
	elems, err := vals.Collect(iter)
	if err != nil {
		return throw(err)
	}
	for _, elem := range elems {
		if err := assignTo(fm, s.Target, elem); err != nil {
			return err
		}
		_, err = evalSuite(fm, s.Body)
		switch err.(type) {
		case nil, flowContinue:
		case flowBreak:
			return nil
		default:
			return err
		}
	}
	_, err = evalSuite(fm, s.Else)
	return err
}

// execTryExcept runs the body; on an exception it finds the first clause
// whose test is absent or equal to the raised value and runs its body in a
// child frame binding the capture name. The else-suite runs only when no
// exception was raised.
func execTryExcept(fm *Frame, s *parse.TryExceptStmt) error {
	_, err := evalSuite(fm, s.Body)
	if err == nil {
		_, err = evalSuite(fm, s.Else)
		return err
	}
	exc, ok := err.(*Exception)
	if !ok {
		return err
	}
	for _, clause := range s.Excepts {
		if clause.Test != nil {
			test, terr := evalExpr(fm, clause.Test)
			if terr != nil {
				return terr
			}
			if !vals.Equal(test, exc.Value) {
				continue
			}
		}
		child := fm.child()
		if clause.Name != "" {
			child.local[clause.Name] = exc.Value
		}
		_, cerr := evalSuite(child, clause.Body)
		return cerr
	}
	return err
}

// execClass evaluates the superclass expression, binds the class name in
// the current frame, then evaluates the body in a fresh frame whose locals
// are the class dict, so that every binding in the body becomes a class
// member.
func execClass(fm *Frame, s *parse.ClassStmt) error {
	var super *Class
	if s.Super != nil {
		v, err := evalExpr(fm, s.Super)
		if err != nil {
			return err
		}
		switch v := v.(type) {
		case nil:
		case *Class:
			super = v
		default:
			return throw(errs.Type{Msg: "superclass must be a class or None, not '" + vals.Kind(v) + "'"})
		}
	}
	cls := &Class{Name: s.Name, Super: super, Dict: make(map[string]any)}
	fm.set(s.Name, cls)
	// The body frame has no parent link, so every binding in the body lands
	// in the class dict instead of an enclosing frame. Reads still reach
	// globals and builtins.
	body := &Frame{ev: fm.ev, local: cls.Dict,
		global: fm.global, builtin: fm.builtin}
	_, err := evalSuite(body, s.Body)
	return err
}

func execFromImport(fm *Frame, s *parse.FromImportStmt) error {
	m, err := fm.ev.Import(s.Module)
	if err != nil {
		return throw(err)
	}
	if s.Star {
		for name, v := range m.Globals {
			fm.local[name] = v
		}
		return nil
	}
	for _, item := range s.Items {
		v, ok := m.Globals[item.Name]
		if !ok {
			return throw(errs.ImportName{Name: item.Name})
		}
		name := item.Name
		if item.As != "" {
			name = item.As
		}
		fm.set(name, v)
	}
	return nil
}

// execAssign evaluates the right-hand side once and assigns it to the
// target. Augmented assignments read the target first, then evaluate the
// right-hand side, combine with the matching binary operator and write back
// to the same slot; the read comes first so that an unbound target raises
// NameError before the right-hand side runs.
func execAssign(fm *Frame, s *parse.AssignStmt) error {
	if s.Op == "=" {
		rhs, err := evalExpr(fm, s.RHS)
		if err != nil {
			return err
		}
		return assignTo(fm, s.LHS, rhs)
	}
	cur, err := evalExpr(fm, s.LHS)
	if err != nil {
		return err
	}
	rhs, err := evalExpr(fm, s.RHS)
	if err != nil {
		return err
	}
	combined, err := binaryOp(s.Op[:1], cur, rhs)
	if err != nil {
		return throw(err)
	}
	return assignTo(fm, s.LHS, combined)
}

// assignTo stores a value through an assignable expression: a name, an
// attribute, or a tuple pattern destructured element by element. Assignment
// to a subscript is reserved.
func assignTo(fm *Frame, lhs parse.Expr, v any) error {
	switch lhs := lhs.(type) {
	case *parse.VarExpr:
		fm.set(lhs.Name, v)
		return nil
	case *parse.AttrExpr:
		obj, err := evalExpr(fm, lhs.X)
		if err != nil {
			return err
		}
		return throw(setAttr(obj, lhs.Name, v))
	case *parse.IndexExpr:
		return throw(errs.Unimplemented{What: "assignment to subscript"})
	case *parse.TupleExpr:
		elems, err := vals.Collect(v)
		if err != nil {
			return throw(err)
		}
		if len(elems) < len(lhs.Items) {
			return throw(errs.Value{Msg: "not enough values to unpack"})
		}
		if len(elems) > len(lhs.Items) {
			return throw(errs.Value{Msg: "too many values to unpack"})
		}
		for i, item := range lhs.Items {
			if err := assignTo(fm, item, elems[i]); err != nil {
				return err
			}
		}
		return nil
	}
	return throw(errs.Type{Msg: "cannot assign to expression"})
}
