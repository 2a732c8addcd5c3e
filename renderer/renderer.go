// renderer/renderer.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"log/slog"
)

// ElementID names a single visual element (a needle, a tape tile, a
// label, ...) of an instrument. IDs are namespaced by instrument, e.g.
// "pfd.alt.label1".
type ElementID string

// Element is the set of primitives that instruments use to reposition
// their visual elements. Translation is relative: the element moves by
// (dx,dy) from wherever it currently is. Rotation and scale are absolute.
type Element interface {
	TranslateBy(dx, dy float32)
	SetRotation(degrees float32)
	SetVisible(visible bool)
	SetText(s string)
	SetScale(sx, sy float32)
}

// Surface is what an instrument draws into. Clear discards all elements
// so that they can be created anew (at the origin, unrotated, unscaled,
// visible, with no text); it is only called when an instrument is
// reinitialized. Element returns the element with the given ID, creating
// it if necessary.
type Surface interface {
	Clear()
	Element(id ElementID) Element
}

// Stats encapsulates assorted statistics about the primitives applied to
// a Surface.
type Stats struct {
	nClears, nTranslates, nRotations, nVisibility, nTexts, nScales int
}

func (s *Stats) String() string {
	return fmt.Sprintf("%d clears, %d translates, %d rotations, %d visibility changes, %d texts, %d scales",
		s.nClears, s.nTranslates, s.nRotations, s.nVisibility, s.nTexts, s.nScales)
}

func (s *Stats) Merge(o Stats) {
	s.nClears += o.nClears
	s.nTranslates += o.nTranslates
	s.nRotations += o.nRotations
	s.nVisibility += o.nVisibility
	s.nTexts += o.nTexts
	s.nScales += o.nScales
}

// Primitives returns the total number of element primitives applied.
func (s Stats) Primitives() int {
	return s.nTranslates + s.nRotations + s.nVisibility + s.nTexts + s.nScales
}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("clears", s.nClears),
		slog.Int("translates", s.nTranslates),
		slog.Int("rotations", s.nRotations),
		slog.Int("visibility", s.nVisibility),
		slog.Int("texts", s.nTexts),
		slog.Int("scales", s.nScales),
	)
}
