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

// Command pdp8 loads a hex-word memory image and runs it on the PDP-8
// simulator in package machine, printing a cycle-count summary on halt.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/chana030102/pdp8fp/pkg/loader"
	"github.com/chana030102/pdp8fp/pkg/machine"
	"github.com/chana030102/pdp8fp/pkg/report"
)

func main() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)

	var cli struct {
		Run runCmd `cmd:"" default:"1" help:"run a memory image on the PDP-8 simulator"`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run(&kong.Context{})
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	Image string `arg:"" type:"existingfile" help:"path to a hex-word memory image"`

	Start           uint16 `name:"start" short:"s" default:"0200" help:"starting PC, octal"`
	SR              uint16 `name:"sr" default:"0" help:"switch-register seed value"`
	MaxInstructions uint64 `name:"max-instructions" default:"0" help:"abort after this many instructions (0 disables)"`
	Dump            bool   `name:"dump" help:"print the pre-run nonzero-memory dump"`
	Trace           bool   `name:"trace" help:"page through one line per retired instruction"`
}

func (r *runCmd) Run(ctx *kong.Context) error {
	file, err := os.Open(r.Image)
	if err != nil {
		return err
	}
	defer file.Close()

	var mc machine.Machine
	mc.Reset()
	mc.Notifier = report.LogNotifier{Out: os.Stderr}

	n, err := loader.Load(file, &mc.State.Memory, 0)
	if err != nil {
		return fmt.Errorf("pdp8: %w", err)
	}
	log.Printf("loaded %d words", n)

	mc.State.PC = r.Start
	mc.State.SR = r.SR

	if r.Dump {
		dumpMemory(os.Stdout, &mc.State)
	}

	if r.Trace {
		runTraced(&mc, r.MaxInstructions)
	} else {
		capped := mc.Run(r.MaxInstructions)
		if capped {
			log.Printf("instruction cap of %d reached before halt", r.MaxInstructions)
		}
	}

	summary := report.FromCounters(mc.Counters)
	return summary.WriteSummary(os.Stdout)
}

// dumpMemory prints every nonzero memory cell before execution begins.
func dumpMemory(w *os.File, s *machine.State) {
	for addr, word := range s.Memory {
		if word != 0 {
			fmt.Fprintf(w, "%04o: %04o\n", addr, word)
		}
	}
}

// runTraced steps the machine one instruction at a time, printing the
// fetch/execute line and waiting for a keypress before continuing, only
// when stdout is a terminal.
func runTraced(mc *machine.Machine, max uint64) {
	paged := enterRawTerm()
	if paged {
		defer exitRawTerm()
	}

	var executed uint64
	for mc.State.Run {
		pc, ir := mc.State.PC, mc.State.Memory[mc.State.PC]
		mc.Step()
		fmt.Printf("pc=%04o ir=%04o ac=%04o l=%o\n", pc, ir, mc.State.AC, mc.State.L)

		executed++
		if max != 0 && executed >= max {
			log.Printf("instruction cap of %d reached before halt", max)
			return
		}

		if paged {
			waitForKeypress()
		}
	}
}
