// Package sysmod exposes interpreter internals as the sys module.
package sysmod

import (
	"src.smy.sh/pkg/eval"
)

// Build builds the attributes of the sys module.
func Build(ev *eval.Evaler) map[string]any {
	return map[string]any{
		"modules": ev.Modules(),
	}
}
