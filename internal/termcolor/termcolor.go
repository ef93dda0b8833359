// Package termcolor decides whether a writer should receive ANSI colour.
package termcolor

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Enabled reports whether w is a terminal and NO_COLOR is unset.
func Enabled(w io.Writer) bool {
	return IsTerminal(w) && os.Getenv("NO_COLOR") == ""
}
