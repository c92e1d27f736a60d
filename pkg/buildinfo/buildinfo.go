// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.smy.sh/pkg/buildinfo.Var=value" to "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"src.smy.sh/pkg/prog"
)

// Version identifies the version of the interpreter. On development commits
// it identifies the next release.
const Version = "v0.1.0"

// VersionSuffix is appended to Version to build the full version string.
// It can be overridden when building.
var VersionSuffix = "-dev.unknown"

// Reproducible identifies whether the build is reproducible. This can be
// overridden when building.
var Reproducible = "false"

// Program is the buildinfo subprogram.
type Program struct {
	version, buildinfo bool
	json               *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.version, "version", false, "show version and quit")
	fs.BoolVar(&p.buildinfo, "buildinfo", false, "show build info and quit")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	fullVersion := Version + VersionSuffix
	switch {
	case p.buildinfo:
		if *p.json {
			fmt.Fprintf(fds[1],
				`{"version":%s,"goversion":%s,"reproducible":%v}`+"\n",
				quoteJSON(fullVersion), quoteJSON(runtime.Version()), Reproducible)
		} else {
			fmt.Fprintln(fds[1], "Version:", fullVersion)
			fmt.Fprintln(fds[1], "Go version:", runtime.Version())
			fmt.Fprintln(fds[1], "Reproducible build:", Reproducible)
		}
	case p.version:
		if *p.json {
			fmt.Fprintln(fds[1], quoteJSON(fullVersion))
		} else {
			fmt.Fprintln(fds[1], fullVersion)
		}
	default:
		return prog.ErrNextProgram
	}
	return nil
}

func quoteJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
