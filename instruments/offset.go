// instruments/offset.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"github.com/mmp/qfi/math"
	"github.com/mmp/qfi/renderer"
)

// Renderers only let us move elements relative to where they are, so for
// each element that translates we track both the offset it should have
// after the current update (New) and the offset it had after the
// previous one (Old). All of an instrument's New offsets are computed
// before any of them are committed.

// Target is the offset, in viewport units and screen orientation (+y
// down), that an element should have after the current update. If Hold is
// set the element keeps its previous offset; this is used for hidden
// elements so that there's no jump when they reappear.
type Target struct {
	Offset [2]float32
	Hold   bool
}

// At returns a Target for the given offset.
func At(x, y float32) Target {
	return Target{Offset: [2]float32{x, y}}
}

// Held is the Target for an element that shouldn't move.
var Held = Target{Hold: true}

// Offset is the DeltaTracker for a single element.
type Offset struct {
	New, Old [2]float32
}

// Retarget sets the new offset for the current update.
func (o *Offset) Retarget(t Target) {
	if t.Hold {
		o.New = o.Old
	} else {
		o.New = t.Offset
	}
}

// Move returns the relative move from the previous offset to the new one.
func (o *Offset) Move() [2]float32 {
	return math.Sub2f(o.New, o.Old)
}

// Commit returns the relative move and makes the new offset the baseline
// for the next update.
func (o *Offset) Commit() [2]float32 {
	mv := o.Move()
	o.Old = o.New
	return mv
}

// tracked couples an element with its Offset.
type tracked struct {
	id renderer.ElementID
	Offset
}

// commit emits the element's move for this update (if it has moved at
// all) and makes its new offset the baseline.
func (t *tracked) commit(s renderer.Surface) {
	if mv := t.Commit(); mv != [2]float32{} {
		s.Element(t.id).TranslateBy(mv[0], mv[1])
	}
}

// commitAll commits the given elements, in order. It must only be called
// once every element's target for the update has been set.
func commitAll(s renderer.Surface, ts ...*tracked) {
	for _, t := range ts {
		t.commit(s)
	}
}
