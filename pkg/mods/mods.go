// Package mods collects the preinstalled modules.
package mods

import (
	"src.smy.sh/pkg/eval"
	"src.smy.sh/pkg/mods/atexit"
	"src.smy.sh/pkg/mods/copymod"
	"src.smy.sh/pkg/mods/curses"
	"src.smy.sh/pkg/mods/osmod"
	"src.smy.sh/pkg/mods/random"
	"src.smy.sh/pkg/mods/sysmod"
	"src.smy.sh/pkg/mods/timemod"
)

// AddTo adds all preinstalled modules to the Evaler.
func AddTo(ev *eval.Evaler) {
	ev.AddModule("sys", sysmod.Build)
	ev.AddModule("os", osmod.Build)
	ev.AddModule("random", random.Build)
	ev.AddModule("curses", curses.Build)
	ev.AddModule("atexit", atexit.Build)
	ev.AddModule("copy", copymod.Build)
	ev.AddModule("time", timemod.Build)
}
