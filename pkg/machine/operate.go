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

// executeOperate decodes an OPR (opcode 7) instruction into its group and
// dispatches accordingly. The groups overlay disjoint bit fields on the
// same word; they are never mutually exclusive cases, only mutually
// exclusive by the single bit-3/bit-11 selector pair.
func (m *Machine) executeOperate(pc, ir uint16) {
	if bitMSB(ir, 3) == 0 {
		m.group1(pc, ir)
		return
	}
	if bitMSB(ir, 11) == 0 {
		m.group2(ir)
		return
	}
	m.notify(pc, "unsupported group 3 microinstruction %04o", ir)
}

// group1 applies the fixed-order sequence of CLA/CLL/CMA/CML/IAC followed
// by the rotate-or-swap field. Multiple bits may be set simultaneously;
// they are applied as a set in this order, never as alternatives.
func (m *Machine) group1(pc, ir uint16) {
	if bitMSB(ir, 4) == 1 { // CLA
		m.State.AC = 0
	}
	if bitMSB(ir, 5) == 1 { // CLL
		m.State.L = 0
	}
	if bitMSB(ir, 6) == 1 { // CMA
		m.State.AC = ^m.State.AC & WordMask
	}
	if bitMSB(ir, 7) == 1 { // CML
		m.State.L ^= 1
	}
	if bitMSB(ir, 11) == 1 { // IAC
		sum := uint32(m.State.L)<<12 + uint32(m.State.AC) + 1
		m.State.L = uint8((sum >> 12) & 1)
		m.State.AC = uint16(sum) & WordMask
	}

	switch fieldMSB(ir, 8, 10) {
	case RotNone:
	case RotBSW:
		m.bsw()
	case RotRAL:
		m.ral()
	case RotRTL:
		m.ral()
		m.ral()
	case RotRAR:
		m.rar()
	case RotRTR:
		m.rar()
		m.rar()
	default:
		m.notify(pc, "unsupported rotate code %o", fieldMSB(ir, 8, 10))
	}
}

// bsw swaps the two 6-bit halves of AC.
func (m *Machine) bsw() {
	hi := (m.State.AC >> 6) & 077
	lo := m.State.AC & 077
	m.State.AC = (lo << 6) | hi
}

// ral performs a 13-bit left rotate of (AC, L) by one.
func (m *Machine) ral() {
	carry := (m.State.AC >> 11) & 1
	m.State.AC = ((m.State.AC << 1) | uint16(m.State.L)) & WordMask
	m.State.L = uint8(carry)
}

// rar performs a 13-bit right rotate of (L, AC) by one.
func (m *Machine) rar() {
	carry := m.State.AC & 1
	m.State.AC = (m.State.AC >> 1) | (uint16(m.State.L) << 11)
	m.State.L = uint8(carry)
}

// group2 evaluates the skip predicate, applies the skip, then CLA/OSR/HLT
// in that order. IS (bit 8) selects whether the enabled conditions are
// OR'd together (set skip) or AND'd together (clear skip); either way the
// net effect reduces to a single PC += 1.
func (m *Machine) group2(ir uint16) {
	is := bitMSB(ir, 8)
	sign := (m.State.AC>>11)&1 == 1

	var skip bool
	if is == 0 {
		if bitMSB(ir, 7) == 1 && m.State.L == 1 { // SNL
			skip = true
		}
		if bitMSB(ir, 6) == 1 && m.State.AC == 0 { // SZA
			skip = true
		}
		if bitMSB(ir, 5) == 1 && sign { // SMA
			skip = true
		}
	} else {
		skip = true
		if bitMSB(ir, 7) == 1 && m.State.L != 0 { // SZL
			skip = false
		}
		if bitMSB(ir, 6) == 1 && m.State.AC == 0 { // SNA
			skip = false
		}
		if bitMSB(ir, 5) == 1 && sign { // SPA
			skip = false
		}
	}

	if skip {
		m.State.PC = (m.State.PC + 1) & WordMask
	}

	if bitMSB(ir, 4) == 1 { // CLA
		m.State.AC = 0
	}
	if bitMSB(ir, 9) == 1 { // OSR
		m.State.AC |= m.State.SR
	}
	if bitMSB(ir, 10) == 1 { // HLT
		m.State.Run = false
	}
}
