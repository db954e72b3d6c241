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

// Package loader reads a whitespace-separated hex-word text image into a
// machine's memory.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/chana030102/pdp8fp/pkg/machine"
)

// Load scans whitespace-separated hex tokens from r and writes them into
// mem starting at base, truncating each word to 12 bits. It stops at EOF;
// a token that would land past the end of mem is an error.
func Load(r io.Reader, mem *[machine.MemSize]uint16, base uint16) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	addr := base
	n := 0

	for scanner.Scan() {
		if int(addr) >= machine.MemSize {
			return n, fmt.Errorf("loader: image overruns memory at word %d", n)
		}

		tok := scanner.Text()
		v, err := strconv.ParseUint(tok, 16, 32)
		if err != nil {
			return n, fmt.Errorf("loader: word %d (%q): %w", n, tok, err)
		}

		mem[addr] = uint16(v) & machine.WordMask
		addr++
		n++
	}

	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("loader: %w", err)
	}

	return n, nil
}
