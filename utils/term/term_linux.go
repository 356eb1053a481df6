package term

import "golang.org/x/sys/unix"

// isTerminal asks the tty driver for the line settings of fd; only
// terminals answer.
func isTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	return err == nil
}
