// instruments/instruments_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"testing"

	"github.com/mmp/qfi/math"
	"github.com/mmp/qfi/renderer"
)

const epsilon = 1e-2

func approx(a, b float32) bool {
	return math.Abs(a-b) < epsilon
}

func approx2(a, b [2]float32) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1])
}

// recordingSurface records the moves emitted for each element so that
// tests can check exactly what an update produced.
type recordingSurface struct {
	clears int
	moves  map[renderer.ElementID][][2]float32
}

func (r *recordingSurface) Clear() {
	r.clears++
	r.moves = nil
}

func (r *recordingSurface) Element(id renderer.ElementID) renderer.Element {
	if r.moves == nil {
		r.moves = make(map[renderer.ElementID][][2]float32)
	}
	return recordingElement{r: r, id: id}
}

// netMove returns the sum of the moves emitted for an element.
func (r *recordingSurface) netMove(id renderer.ElementID) [2]float32 {
	var m [2]float32
	for _, mv := range r.moves[id] {
		m = math.Add2f(m, mv)
	}
	return m
}

type recordingElement struct {
	r  *recordingSurface
	id renderer.ElementID
}

func (e recordingElement) TranslateBy(dx, dy float32) {
	e.r.moves[e.id] = append(e.r.moves[e.id], [2]float32{dx, dy})
}

func (recordingElement) SetRotation(float32)   {}
func (recordingElement) SetVisible(bool)       {}
func (recordingElement) SetText(string)        {}
func (recordingElement) SetScale(_, _ float32) {}

func node(t *testing.T, s *renderer.Scene, id renderer.ElementID) renderer.Node {
	t.Helper()
	n, ok := s.Node(id)
	if !ok {
		t.Fatalf("%s: not found in scene", id)
	}
	return n
}
