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

// Primary opcodes, IR bits 0..2.
const (
	OpAND uint16 = iota
	OpTAD
	OpISZ
	OpDCA
	OpJMS
	OpJMP
	OpIOT
	OpOPR
)

var OpName = [8]string{
	OpAND: "AND",
	OpTAD: "TAD",
	OpISZ: "ISZ",
	OpDCA: "DCA",
	OpJMS: "JMS",
	OpJMP: "JMP",
	OpIOT: "IOT",
	OpOPR: "OPR",
}

// AutoIncLow and AutoIncHigh bound the eight auto-increment pointer cells.
const (
	AutoIncLow  uint16 = 010
	AutoIncHigh uint16 = 017
)

// Group 1 rotate/swap field values, IR bits 8..10.
const (
	RotNone uint16 = iota
	RotBSW
	RotRAL
	RotRTL
	RotRAR
	RotRTR
)

// fpDevice is the reserved IOT device code (bits 3..8) for the
// floating-point coprocessor.
const fpDevice uint16 = 055

// Floating-point extended opcodes, IR bits 9..11.
const (
	FPCLAC uint16 = iota
	FPLOAD
	FPSTOR
	FPADD
	FPMULT
)

// iotFPBase is an IOT instruction word with the device code field set to
// the floating-point unit and the extended opcode field left at zero.
const iotFPBase = OpIOT<<9 | fpDevice<<3

// Assembled IOT instruction words for the floating-point unit, useful for
// building test programs and memory images without an assembler.
const (
	IOTFPCLAC = iotFPBase | FPCLAC
	IOTFPLOAD = iotFPBase | FPLOAD
	IOTFPSTOR = iotFPBase | FPSTOR
	IOTFPADD  = iotFPBase | FPADD
	IOTFPMULT = iotFPBase | FPMULT
)
