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

package machine_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/chana030102/pdp8fp/pkg/machine"
)

func TestAutoIncrement(t *testing.T) {
	is := is.New(t)

	var m machine.Machine
	m.Reset()
	m.State.AC = 07777

	load(&m, 0200, 00410) // AND I Z 010, indirect page-zero through 010
	m.State.Memory[010] = 0300
	m.State.Memory[0301] = 042

	m.Step()

	is.Equal(m.State.Memory[010], uint16(0301))
	is.Equal(m.State.MA, uint16(0301))
	is.Equal(m.State.AC, uint16(042))
	is.Equal(m.Counters.CPI[machine.OpAND], uint64(4))
}

func TestAutoIncrementAdvancesOnEveryIndirectUse(t *testing.T) {
	is := is.New(t)

	var m machine.Machine
	m.Reset()

	load(&m, 0200, 00410, 00410) // AND I Z 010, twice
	m.State.Memory[010] = 0300
	m.State.Memory[0301] = 1
	m.State.Memory[0302] = 2

	m.Step()
	is.Equal(m.State.Memory[010], uint16(0301))

	m.Step()
	is.Equal(m.State.Memory[010], uint16(0302))
}

func TestIndirectWithoutAutoIncrementDoesNotMutateMemory(t *testing.T) {
	is := is.New(t)

	var m machine.Machine
	m.Reset()
	m.State.AC = 07777

	load(&m, 0200, 00430) // AND I Z 030, indirect but outside the autoinc range
	m.State.Memory[030] = 0500
	m.State.Memory[0500] = 0123

	m.Step()

	is.Equal(m.State.Memory[030], uint16(0500))
	is.Equal(m.State.AC, uint16(0123))
	is.Equal(m.Counters.CPI[machine.OpAND], uint64(3))
}

func TestDirectPageZero(t *testing.T) {
	is := is.New(t)

	var m machine.Machine
	m.Reset()
	m.State.AC = 0

	load(&m, 0200, 00020) // AND Z 020, direct page zero
	m.State.Memory[020] = 0777

	m.Step()

	is.Equal(m.State.MA, uint16(020))
}

func TestIndirectJMPAdvancesAutoIncrementPointer(t *testing.T) {
	is := is.New(t)

	var m machine.Machine
	m.Reset()

	load(&m, 0200, 05410) // JMP I Z 010
	m.State.Memory[010] = 0600

	m.Step()

	is.Equal(m.State.Memory[010], uint16(0601))
	is.Equal(m.State.PC, uint16(0601))
}
