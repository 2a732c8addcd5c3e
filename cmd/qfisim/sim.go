// cmd/qfisim/sim.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"log/slog"

	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/math"
	"github.com/mmp/qfi/renderer"
	"github.com/mmp/qfi/util"

	"golang.org/x/sync/errgroup"
)

// Simulator steps a set of panels through a flight script at a fixed
// tick rate.
type Simulator struct {
	Panels []*Panel

	script   *Script
	tickRate float32
	capture  *util.CaptureWriter[Frame]
	recorder recorder
	lg       *log.Logger
}

func NewSimulator(config *Config, script *Script, lg *log.Logger) (*Simulator, error) {
	s := &Simulator{
		script:   script,
		tickRate: config.TickRate,
		lg:       lg,
	}
	for _, pc := range config.Panels {
		p, err := NewPanel(pc, lg)
		if err != nil {
			return nil, err
		}
		s.Panels = append(s.Panels, p)
	}
	return s, nil
}

// Record arranges for the command buffers of every tick to be written
// to the given capture.
func (s *Simulator) Record(cw *util.CaptureWriter[Frame]) {
	s.capture = cw
}

// Run steps through the script from its start until the time of its
// last keyframe.
func (s *Simulator) Run(ctx context.Context) error {
	nticks := int(math.Floor(s.script.Duration()*s.tickRate)) + 1
	s.lg.Info("starting run", slog.Int("ticks", nticks), slog.Int("panels", len(s.Panels)))

	lastKey := -1
	for i := range nticks {
		if err := ctx.Err(); err != nil {
			return err
		}

		t := float32(i) / s.tickRate
		st, key := s.script.At(t)
		// Take any resizes from keyframes that fell between ticks.
		for k := lastKey + 1; k <= key; k++ {
			if vp, ok := s.script.Resize(k); ok {
				for _, p := range s.Panels {
					p.Resize(vp)
				}
			}
		}
		lastKey = key

		if err := s.Tick(ctx, t, st); err != nil {
			return err
		}
	}

	s.lg.Info("run complete", slog.Int("ticks", nticks), slog.Any("stats", s.Stats()))
	return nil
}

// Tick applies the flight state to all of the panels and steps them
// concurrently.
func (s *Simulator) Tick(ctx context.Context, t float32, st FlightState) error {
	g, _ := errgroup.WithContext(ctx)
	for _, p := range s.Panels {
		g.Go(func() error {
			p.Apply(st)
			return p.Step()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if s.capture != nil {
		f := s.recorder.frame(t, s.Panels)
		if err := s.capture.Write(&f); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns the sum of the statistics of all of the panels.
func (s *Simulator) Stats() renderer.Stats {
	var st renderer.Stats
	for _, p := range s.Panels {
		st.Merge(p.Stats)
	}
	return st
}

// Scenes returns snapshots of the panels' scenes; they aren't affected
// by subsequent ticks.
func (s *Simulator) Scenes() []PanelScene {
	var ps []PanelScene
	for _, p := range s.Panels {
		ps = append(ps, PanelScene{Name: p.Name, Scene: p.Scene.Snapshot()})
	}
	return ps
}

// Close releases the panels' command buffers.
func (s *Simulator) Close() {
	for _, p := range s.Panels {
		p.Close()
	}
}
