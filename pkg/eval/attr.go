package eval

import (
	"src.smy.sh/pkg/eval/errs"
	"src.smy.sh/pkg/eval/vals"
)

// getAttr resolves attribute access on a value.
//
// On an instance it checks the instance dict, then walks the class chain,
// wrapping functions retrieved from a class as bound methods. Classes
// resolve through their own chain without binding. Modules resolve through
// their globals. The special names __class__ and __superclass__ expose the
// class links.
func getAttr(v any, name string) (any, error) {
	switch v := v.(type) {
	case *Object:
		if name == "__class__" {
			return v.Class, nil
		}
		if attr, ok := v.Dict[name]; ok {
			return attr, nil
		}
		if attr, ok := v.Class.get(name); ok {
			switch f := attr.(type) {
			case *Func:
				return &Method{Recv: v, Fn: f}, nil
			case *GoFn:
				return &Method{Recv: v, Fn: f}, nil
			}
			return attr, nil
		}
		return nil, errs.Attribute{Kind: "'" + v.Class.Name + "' object", Name: name}
	case *Class:
		switch name {
		case "__superclass__":
			if v.Super == nil {
				return nil, nil
			}
			return v.Super, nil
		case "__name__":
			return v.Name, nil
		}
		if attr, ok := v.get(name); ok {
			return attr, nil
		}
		return nil, errs.Attribute{Kind: "class '" + v.Name + "'", Name: name}
	case *Module:
		if attr, ok := v.Globals[name]; ok {
			return attr, nil
		}
		return nil, errs.Attribute{Kind: "module '" + v.Name + "'", Name: name}
	default:
		return nil, errs.Attribute{Kind: "'" + vals.Kind(v) + "' object", Name: name}
	}
}

// setAttr assigns an attribute. Instances write to their own dict, classes
// and modules to theirs.
func setAttr(v any, name string, val any) error {
	switch v := v.(type) {
	case *Object:
		v.Dict[name] = val
	case *Class:
		v.Dict[name] = val
	case *Module:
		v.Globals[name] = val
	default:
		return errs.Attribute{Kind: "'" + vals.Kind(v) + "' object", Name: name}
	}
	return nil
}

// hasAttr implements the hasattr builtin: dict keys, valid list indices,
// and attributes of modules, instances and classes all count.
func hasAttr(v any, key any) bool {
	switch v := v.(type) {
	case *vals.Dict:
		return v.Has(key)
	case *vals.List:
		i, ok := key.(int)
		if i < 0 {
			i += len(v.Values)
		}
		return ok && i >= 0 && i < len(v.Values)
	case *Object, *Class, *Module:
		name, ok := key.(string)
		if !ok {
			return false
		}
		_, err := getAttr(v, name)
		return err == nil
	default:
		return false
	}
}
