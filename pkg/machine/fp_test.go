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

func TestFPLoadStoreRoundTrip(t *testing.T) {
	is := is.New(t)

	var m machine.Machine
	m.Reset()

	// Source float region at 0400: sign=1, exponent=0201, mantissa set.
	// All three words stay within their defined 12-bit fields so the
	// load/store pair is a true round trip with nothing left to discard.
	m.State.Memory[0400] = 0201   // bits 4..11 exponent, bits 0..3 zero
	m.State.Memory[0401] = 006001 // sign bit plus high 11 bits of mantissa
	m.State.Memory[0402] = 007417 // low 12 bits of mantissa

	load(&m, 0200,
		machine.IOTFPLOAD, 0400,
		machine.IOTFPSTOR, 0500,
		07402, // HLT
	)

	m.Run(0)

	is.Equal(m.State.Memory[0500], m.State.Memory[0400])
	is.Equal(m.State.Memory[0501], m.State.Memory[0401])
	is.Equal(m.State.Memory[0502], m.State.Memory[0402])
}

func TestFPCLACZeroesAccumulator(t *testing.T) {
	is := is.New(t)

	var m machine.Machine
	m.Reset()
	m.FPU.FP = machine.FPRegister{Sign: true, Exponent: 0201, Mantissa: 0x7FFFFF}

	load(&m, 0200, machine.IOTFPCLAC)

	m.Step()

	is.Equal(m.FPU.FP, machine.FPRegister{})
}

func TestFPADDIsDiagnosticOnly(t *testing.T) {
	is := is.New(t)

	var m machine.Machine
	m.Reset()
	m.FPU.FP = machine.FPRegister{Sign: true, Exponent: 7, Mantissa: 42}

	load(&m, 0200, machine.IOTFPADD, 0600)

	m.Step()

	is.Equal(m.FPU.FP, machine.FPRegister{Sign: true, Exponent: 7, Mantissa: 42})
	is.Equal(m.State.PC, uint16(0202))
	is.Equal(m.Counters.CPI[machine.OpIOT], uint64(0))
}

func TestFPMULTIsDiagnosticOnly(t *testing.T) {
	is := is.New(t)

	var m machine.Machine
	m.Reset()

	load(&m, 0200, machine.IOTFPMULT, 0600)

	m.Step()

	is.Equal(m.State.PC, uint16(0202))
}

func TestUnsupportedIOTDeviceIsNonFatal(t *testing.T) {
	is := is.New(t)

	var m machine.Machine
	m.Reset()
	m.State.AC = 01111

	load(&m, 0200, 06046) // IOT device 04, not the floating-point unit

	m.Step()

	is.Equal(m.State.AC, uint16(01111))
	is.Equal(m.State.Run, true)
	is.Equal(m.Counters.CPI[machine.OpIOT], uint64(0))
}

func TestLoadSecondOperand(t *testing.T) {
	is := is.New(t)

	var m machine.Machine
	m.Reset()

	m.State.Memory[0600] = 0100
	m.State.Memory[0601] = 1<<11 | 0x123
	m.State.Memory[0602] = 0x456

	m.LoadSecondOperand(0600)

	is.Equal(m.FPU.FPop.Sign, true)
	is.Equal(m.FPU.FPop.Exponent, uint8(0100))
	is.Equal(m.FPU.FPop.Mantissa, uint32(0x123)<<12|uint32(0x456))
}
