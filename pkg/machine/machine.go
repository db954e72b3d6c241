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

package machine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Reset establishes the documented startup state: registers zeroed, PC at
// the conventional entry address, Run set. Memory is left untouched -- it
// is the loader's job to fill it, before or after Reset.
func (m *Machine) Reset() {
	m.State.PC = StartupPC
	m.State.IR = 0
	m.State.AC = 0
	m.State.L = 0
	m.State.SR = 0
	m.State.MA = 0
	m.State.CPage = 0
	m.State.Run = true
	m.State.InterruptsOn = false
	m.State.InterruptReq = false
	m.FPU = FPUnit{}
	m.Counters = Counters{}
}

// Run executes instructions until Run is cleared by HLT, or until max
// instructions have retired (0 disables the cap). It reports whether the
// cap was hit before a halt.
func (m *Machine) Run(max uint64) (cappedOut bool) {
	var executed uint64
	for m.State.Run {
		m.Step()
		executed++
		if max != 0 && executed >= max {
			return true
		}
	}
	return false
}

// Step fetches, decodes and executes exactly one instruction, folding its
// clocks into the per-opcode counters.
func (m *Machine) Step() {
	instrPC := m.State.PC

	m.State.IR = m.State.Memory[instrPC&WordMask]
	m.State.CPage = uint8((instrPC >> 7) & 037)
	m.State.PC = (instrPC + 1) & WordMask

	ir := m.State.IR
	op := fieldMSB(ir, 0, 2)

	var clocks uint64
	switch op {
	case OpAND:
		ea, c := m.effectiveAddress(ir)
		m.State.AC &= m.State.Memory[ea]
		clocks = 2 + c
	case OpTAD:
		ea, c := m.effectiveAddress(ir)
		sum := uint32(m.State.L)<<12 + uint32(m.State.AC) + uint32(m.State.Memory[ea])
		m.State.L = uint8((sum >> 12) & 1)
		m.State.AC = uint16(sum) & WordMask
		clocks = 2 + c
	case OpISZ:
		ea, c := m.effectiveAddress(ir)
		v := (m.State.Memory[ea] + 1) & WordMask
		m.State.Memory[ea] = v
		if v == 0 {
			m.State.PC = (m.State.PC + 1) & WordMask
		}
		clocks = 2 + c
	case OpDCA:
		ea, c := m.effectiveAddress(ir)
		m.State.Memory[ea] = m.State.AC
		m.State.AC = 0
		clocks = 2 + c
	case OpJMS:
		ea, c := m.effectiveAddress(ir)
		m.State.Memory[ea] = m.State.PC
		m.State.PC = (ea + 1) & WordMask
		clocks = 2 + c
	case OpJMP:
		ea, c := m.effectiveAddress(ir)
		m.State.PC = ea
		clocks = 1 + c
	case OpIOT:
		m.executeIOT(instrPC, ir)
		clocks = 0
	case OpOPR:
		m.executeOperate(instrPC, ir)
		clocks = 1
	}

	m.Counters.CPI[op] += clocks
	m.Counters.IC[op]++
}

// notify routes a non-fatal diagnostic through Notifier if one is set,
// otherwise through logrus.
func (m *Machine) notify(pc uint16, format string, args ...interface{}) {
	detail := fmt.Sprintf(format, args...)
	if m.Notifier != nil {
		m.Notifier.Unsupported(pc, detail)
		return
	}
	logrus.WithFields(logrus.Fields{"pc": fmt.Sprintf("%04o", pc)}).Errorf("%s", detail)
}
