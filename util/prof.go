// util/prof.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"fmt"
	"os"
	"runtime/pprof"
)

// Profiler manages optional CPU and heap profiles for the lifetime of a
// run. The zero value is a valid Profiler that does nothing.
type Profiler struct {
	cpu *os.File
	mem *os.File
}

// CreateProfiler starts a CPU profile written to cpu (if non-empty) and
// arranges for a heap profile to be written to mem (if non-empty) when
// Cleanup is called.
func CreateProfiler(cpu, mem string) (Profiler, error) {
	var p Profiler
	var err error
	if cpu != "" {
		if p.cpu, err = os.Create(cpu); err != nil {
			return Profiler{}, fmt.Errorf("%s: unable to create CPU profile file: %w", cpu, err)
		}
		if err = pprof.StartCPUProfile(p.cpu); err != nil {
			p.cpu.Close()
			return Profiler{}, fmt.Errorf("unable to start CPU profile: %w", err)
		}
	}

	if mem != "" {
		if p.mem, err = os.Create(mem); err != nil {
			p.Cleanup()
			return Profiler{}, fmt.Errorf("%s: unable to create memory profile file: %w", mem, err)
		}
	}
	return p, nil
}

// Cleanup stops the CPU profile and writes the heap profile. It's safe to
// call more than once.
func (p *Profiler) Cleanup() error {
	var err error
	if p.cpu != nil {
		pprof.StopCPUProfile()
		err = p.cpu.Close()
		p.cpu = nil
	}
	if p.mem != nil {
		if werr := pprof.WriteHeapProfile(p.mem); werr != nil {
			err = fmt.Errorf("unable to write memory profile file: %w", werr)
		}
		p.mem.Close()
		p.mem = nil
	}
	return err
}
