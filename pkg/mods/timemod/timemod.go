// Package timemod is the time module. It has no attributes yet; it exists
// so that "import time" succeeds.
package timemod

import (
	"src.smy.sh/pkg/eval"
)

// Build builds the attributes of the time module.
func Build(ev *eval.Evaler) map[string]any {
	return map[string]any{}
}
