// cmd/qfisim/summary.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mmp/qfi/renderer"

	"github.com/goforj/godump"
	"github.com/iancoleman/orderedmap"
)

// PanelScene associates a scene with the name of the panel it belongs to.
type PanelScene struct {
	Name  string
	Scene *renderer.Scene
}

// Summary returns the final state of each panel's scene as an ordered
// map: panels in order, and within each, elements in the order they were
// first referred to.
func Summary(scenes []PanelScene) *orderedmap.OrderedMap {
	sm := orderedmap.New()
	for _, ps := range scenes {
		pm := orderedmap.New()
		for _, n := range ps.Scene.Nodes() {
			nm := orderedmap.New()
			nm.Set("pos", n.Pos)
			nm.Set("rotation", n.Rotation)
			nm.Set("scale", n.Scale)
			nm.Set("visible", n.Visible)
			if n.Text != "" {
				nm.Set("text", n.Text)
			}
			pm.Set(string(n.ID), nm)
		}
		sm.Set(ps.Name, pm)
	}
	return sm
}

func WriteSummary(w io.Writer, scenes []PanelScene) error {
	b, err := json.MarshalIndent(Summary(scenes), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// DumpScenes writes a human-readable dump of all of the scenes' nodes.
func DumpScenes(w io.Writer, scenes []PanelScene) {
	for _, ps := range scenes {
		fmt.Fprintf(w, "%s:\n", ps.Name)
		godump.Fdump(w, ps.Scene.Nodes())
	}
}
