// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file is a terminal.
func IsATTY(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// WinSize queries the size of the terminal referenced by the given file. It
// returns -1, -1 when the size cannot be determined.
func WinSize(file *os.File) (row, col int) { return winSize(file) }
