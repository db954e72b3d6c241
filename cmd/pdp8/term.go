// Copyright (C) 2024 pdp8fp contributors

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

var termRestore unix.Termios

// enterRawTerm puts stdout into raw, unbuffered mode for the --trace
// pager. It is a no-op when stdout is not a terminal, so piping trace
// output to a file or another process never blocks waiting for keypresses.
func enterRawTerm() bool {
	fd := int(os.Stdout.Fd())

	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return false
	}

	termRestore = *termios
	termstate := *termios

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	termstate.Cflag &^= unix.CSIZE | unix.PARENB
	termstate.Cflag |= unix.CS8

	termstate.Cc[unix.VMIN] = 1
	termstate.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &termstate); err != nil {
		return false
	}

	return true
}

func exitRawTerm() {
	unix.IoctlSetTermios(int(os.Stdout.Fd()), unix.TCSETS, &termRestore)
}

// waitForKeypress blocks for a single byte of input from stdin before the
// trace pager continues to the next instruction.
func waitForKeypress() {
	var b [1]byte
	os.Stdin.Read(b[:])
}
