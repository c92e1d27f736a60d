// Smython is a tree-walking interpreter for a small Python-like language.
// It runs scripts, an interactive REPL, and a language server.
package main

import (
	"os"

	"src.smy.sh/pkg/buildinfo"
	"src.smy.sh/pkg/lsp"
	"src.smy.sh/pkg/prog"
	"src.smy.sh/pkg/run"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&buildinfo.Program{}, &lsp.Program{}, &run.Program{})))
}
