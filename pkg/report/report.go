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

// Package report formats the per-opcode cycle and instruction counters a
// Machine accumulates over a run into the end-of-run console summary.
package report

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/chana030102/pdp8fp/pkg/machine"
)

// LogNotifier implements machine.Notifier by writing one structured entry
// per diagnostic to a logrus.Logger targeting Out, tagging each entry with
// the offending PC the same way the interpreter's built-in fallback does
// when no Notifier is set.
type LogNotifier struct {
	Out io.Writer
}

// Unsupported writes a single structured diagnostic entry.
func (n LogNotifier) Unsupported(pc uint16, detail string) {
	logger := logrus.New()
	logger.Out = n.Out
	logger.WithFields(logrus.Fields{"pc": fmt.Sprintf("%04o", pc)}).Errorf("%s", detail)
}

// Collector mirrors a Machine's Counters. It is filled by calling Count
// once per retired instruction, the same one-call-per-Step contract golc3's
// Debugger.Step hook follows.
type Collector struct {
	CPI [8]uint64
	IC  [8]uint64
}

// Count folds one retired instruction's clocks into the collector.
func (c *Collector) Count(op uint16, clocks uint64) {
	c.CPI[op] += clocks
	c.IC[op]++
}

// FromCounters builds a Collector from a Machine's final Counters, for
// reporting after a Run rather than instruction-by-instruction.
func FromCounters(cnt machine.Counters) Collector {
	return Collector{CPI: cnt.CPI, IC: cnt.IC}
}

// WriteSummary writes one line per opcode that retired at least once,
// followed by totals and the average cycles-per-instruction.
func (c Collector) WriteSummary(w io.Writer) error {
	var totalIC, totalCPI uint64

	for op := 0; op < 8; op++ {
		if c.IC[op] == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-4s %8d instructions %10d cycles\n",
			machine.OpName[op], c.IC[op], c.CPI[op]); err != nil {
			return err
		}
		totalIC += c.IC[op]
		totalCPI += c.CPI[op]
	}

	var avgCPI float64
	if totalIC > 0 {
		avgCPI = float64(totalCPI) / float64(totalIC)
	}

	_, err := fmt.Fprintf(w, "total %8d instructions %10d cycles, %.3f avg CPI\n",
		totalIC, totalCPI, avgCPI)
	return err
}
