// cmd/qfisim/capture.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/renderer"
	"github.com/mmp/qfi/util"
)

// Frame holds the command buffers of all of the panels for a single
// tick.
type Frame struct {
	T      float32      `msgpack:"t"`
	Panels []PanelFrame `msgpack:"panels"`
}

// PanelFrame is a panel's command buffer. Successive frames of a panel
// issue largely the same commands, so Buf is delta-encoded with respect
// to the panel's previous Buf, and Names is only stored when it differs
// from the previous frame's.
type PanelFrame struct {
	Name  string               `msgpack:"name"`
	Names []renderer.ElementID `msgpack:"names,omitempty"`
	Buf   []uint32             `msgpack:"buf"`
}

type panelHistory struct {
	names []renderer.ElementID
	buf   []uint32
}

// recorder encodes the panels' command buffers into Frames.
type recorder struct {
	prev map[string]panelHistory
}

func (r *recorder) frame(t float32, panels []*Panel) Frame {
	if r.prev == nil {
		r.prev = make(map[string]panelHistory)
	}

	f := Frame{T: t}
	for _, p := range panels {
		h := r.prev[p.Name]
		pf := PanelFrame{Name: p.Name, Buf: util.DeltaEncodeRef(h.buf, p.cb.Buf)}
		if h.names == nil || !slices.Equal(h.names, p.cb.Names) {
			pf.Names = slices.Clone(p.cb.Names)
		}
		f.Panels = append(f.Panels, pf)

		r.prev[p.Name] = panelHistory{
			names: slices.Clone(p.cb.Names),
			buf:   slices.Clone(p.cb.Buf),
		}
	}
	return f
}

type replayPanel struct {
	scene *renderer.Scene
	cb    *renderer.CommandBuffer
	named bool // whether element names have been seen
}

// Replay executes the command buffers in a capture on fresh scenes and
// returns snapshots of the scenes, in order of each panel's first
// appearance.
func Replay(ctx context.Context, cr *util.CaptureReader[Frame], lg *log.Logger) ([]PanelScene, error) {
	panels := make(map[string]*replayPanel)
	defer func() {
		for _, rp := range panels {
			renderer.ReturnCommandBuffer(rp.cb)
		}
	}()
	var order []string
	var stats renderer.Stats
	nframes := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f, err := cr.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("frame %d: %w", nframes, err)
		}

		for _, pf := range f.Panels {
			rp, ok := panels[pf.Name]
			if !ok {
				rp = &replayPanel{scene: renderer.NewScene(), cb: renderer.GetCommandBuffer()}
				panels[pf.Name] = rp
				order = append(order, pf.Name)
			}

			if pf.Names != nil {
				rp.cb.Names = pf.Names
				rp.named = true
			} else if !rp.named && len(pf.Buf) > 0 {
				return nil, fmt.Errorf("frame %d: %s: %w", nframes, pf.Name, ErrCaptureNames)
			}
			rp.cb.Buf = util.DeltaDecodeRef(rp.cb.Buf, pf.Buf)

			st, err := rp.cb.Execute(rp.scene)
			stats.Merge(st)
			if err != nil {
				return nil, fmt.Errorf("frame %d: %s: %w", nframes, pf.Name, err)
			}
		}
		nframes++
	}

	lg.Info("replay complete", slog.Int("frames", nframes), slog.Any("stats", stats))

	var ps []PanelScene
	for _, name := range order {
		ps = append(ps, PanelScene{Name: name, Scene: panels[name].scene.Snapshot()})
	}
	return ps, nil
}
