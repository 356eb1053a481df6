// Package term answers whether a file is an interactive terminal.
package term

import "os"

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isTerminal(int(f.Fd()))
}
