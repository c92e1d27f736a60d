package eval

import (
	"src.smy.sh/pkg/eval/errs"
)

// Frame is the evaluation environment of one call or one suite: a locals
// mapping, an optional parent link for lexical nesting, and the globals and
// builtins mappings shared across sibling frames. At the top level, locals
// and globals are the same mapping.
type Frame struct {
	ev      *Evaler
	up      *Frame
	local   map[string]any
	global  map[string]any
	builtin map[string]any

	// Names declared global in this frame; reads and writes of these route
	// directly to the globals mapping.
	globalNames map[string]struct{}
}

func (fm *Frame) child() *Frame {
	return &Frame{ev: fm.ev, up: fm, local: make(map[string]any),
		global: fm.global, builtin: fm.builtin}
}

func (fm *Frame) isGlobal(name string) bool {
	_, ok := fm.globalNames[name]
	return ok
}

func (fm *Frame) markGlobal(names []string) {
	if fm.globalNames == nil {
		fm.globalNames = make(map[string]struct{})
	}
	for _, name := range names {
		fm.globalNames[name] = struct{}{}
	}
}

// lookup resolves a name: locals, then the parent chain, then globals, then
// builtins. A name declared global skips locals and the parent chain. A
// missing name raises NameError.
func (fm *Frame) lookup(name string) (any, error) {
	if fm.isGlobal(name) {
		if v, ok := fm.global[name]; ok {
			return v, nil
		}
	} else {
		for f := fm; f != nil; f = f.up {
			if v, ok := f.local[name]; ok {
				return v, nil
			}
		}
		if v, ok := fm.global[name]; ok {
			return v, nil
		}
	}
	if v, ok := fm.builtin[name]; ok {
		return v, nil
	}
	return nil, errs.Name{Ident: name}
}

// set assigns a name: it writes to the first enclosing frame that already
// has the name as a local, and defines it in the current frame's locals
// otherwise. This is how closures mutate enclosing state; there is no
// nonlocal keyword. A name declared global is written to the globals.
func (fm *Frame) set(name string, v any) {
	if fm.isGlobal(name) {
		fm.global[name] = v
		return
	}
	for f := fm; f != nil; f = f.up {
		if _, ok := f.local[name]; ok {
			f.local[name] = v
			return
		}
	}
	fm.local[name] = v
}
