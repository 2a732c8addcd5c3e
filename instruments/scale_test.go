// instruments/scale_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import "testing"

func TestRecomputeScale(t *testing.T) {
	for _, c := range []struct {
		vw, vh, dw, dh float32
		expected       ScaleFactors
	}{
		{300, 300, 300, 300, ScaleFactors{1, 1}},
		{600, 150, 300, 300, ScaleFactors{2, 0.5}},
		{480, 240, 240, 240, ScaleFactors{2, 1}},
		{0, 0, 240, 240, ScaleFactors{0, 0}},
		{-10, 120, 240, 240, ScaleFactors{0, 0.5}},
	} {
		if sf := RecomputeScale(c.vw, c.vh, c.dw, c.dh); sf != c.expected {
			t.Errorf("RecomputeScale(%v, %v, %v, %v): got %v, expected %v", c.vw, c.vh, c.dw, c.dh, sf, c.expected)
		}
	}
}

func TestScaleApply(t *testing.T) {
	sf := ScaleFactors{X: 2, Y: 0.5}
	if p := sf.Apply([2]float32{110, -175}); p != [2]float32{220, -87.5} {
		t.Errorf("got %v, expected [220 -87.5]", p)
	}
}

func TestOffsetCommit(t *testing.T) {
	var o Offset

	o.Retarget(At(3, 4))
	if mv := o.Commit(); mv != [2]float32{3, 4} {
		t.Errorf("first commit: got %v, expected [3 4]", mv)
	}

	o.Retarget(At(1, 5))
	if mv := o.Move(); mv != [2]float32{-2, 1} {
		t.Errorf("move: got %v, expected [-2 1]", mv)
	}
	// Move doesn't change the baseline.
	if mv := o.Commit(); mv != [2]float32{-2, 1} {
		t.Errorf("second commit: got %v, expected [-2 1]", mv)
	}
	if o.Old != [2]float32{1, 5} {
		t.Errorf("baseline: got %v, expected [1 5]", o.Old)
	}

	o.Retarget(Held)
	if mv := o.Commit(); mv != [2]float32{} {
		t.Errorf("held commit: got %v, expected zero move", mv)
	}
	if o.Old != [2]float32{1, 5} {
		t.Errorf("held baseline: got %v, expected [1 5]", o.Old)
	}

	// The next move after a hold is relative to the last real offset.
	o.Retarget(At(0, 0))
	if mv := o.Commit(); mv != [2]float32{-1, -5} {
		t.Errorf("commit after hold: got %v, expected [-1 -5]", mv)
	}
}

func TestTrackedCommitSkipsZeroMoves(t *testing.T) {
	var r recordingSurface
	tr := tracked{id: "x"}

	tr.Retarget(At(2, 0))
	tr.commit(&r)
	tr.Retarget(At(2, 0))
	tr.commit(&r)

	if n := len(r.moves["x"]); n != 1 {
		t.Errorf("got %d moves, expected 1: %v", n, r.moves["x"])
	}
}
